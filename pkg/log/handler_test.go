package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	plsgoErrors "github.com/DongElkan/plsgo/pkg/errors"
)

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	err := plsgoErrors.NewNotFittedError("CrossValidation", "Predict")
	logger.Error("predict failed", ErrAttr(err))

	var entry map[string]interface{}
	if jsonErr := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); jsonErr != nil {
		t.Fatalf("Failed to parse log output: %v", jsonErr)
	}

	stack, ok := entry[StacktraceAttrKey].(string)
	if !ok || stack == "" {
		t.Fatal("Expected non-empty stacktrace attribute for cockroachdb error")
	}
	if !strings.Contains(stack, "errors") {
		t.Errorf("Stacktrace should reference the error origin, got: %s", stack)
	}
}

func TestErrFmtHandlerPlainError(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	logger.Error("plain failure", slog.String("extra", "field"))

	// Records without an error attribute pass through unchanged.
	var entry map[string]interface{}
	if jsonErr := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); jsonErr != nil {
		t.Fatalf("Failed to parse log output: %v", jsonErr)
	}
	if entry["extra"] != "field" {
		t.Error("Expected extra field to pass through handler")
	}
	if _, present := entry[StacktraceAttrKey]; present {
		t.Error("Did not expect stacktrace attribute without an error")
	}
}

func TestZerologWarningSink(t *testing.T) {
	var buf bytes.Buffer
	EnableZerologWarnings(&buf)
	defer DisableZerologWarnings()

	plsgoErrors.Warn(plsgoErrors.NewConvergenceWarning("nipals", 100, ""))
	plsgoErrors.Warn(plsgoErrors.NewUndefinedMetricWarning("Q2", "zero total sum of squares", 1.0))

	out := buf.String()
	if !strings.Contains(out, "ConvergenceWarning") {
		t.Errorf("Expected structured ConvergenceWarning in output, got: %s", out)
	}
	if !strings.Contains(out, "UndefinedMetricWarning") {
		t.Errorf("Expected structured UndefinedMetricWarning in output, got: %s", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("Expected warn level in zerolog output, got: %s", out)
	}
}
