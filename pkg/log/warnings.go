package log

import (
	"io"

	"github.com/rs/zerolog"

	plsgoErrors "github.com/DongElkan/plsgo/pkg/errors"
)

// EnableZerologWarnings routes library warnings through a zerolog logger
// writing to w. Warning types implementing zerolog.LogObjectMarshaler are
// emitted as structured objects under the "warning" key.
func EnableZerologWarnings(w io.Writer) {
	zl := zerolog.New(w).With().Timestamp().Logger()
	plsgoErrors.SetZerologWarnFunc(func(warning error) {
		evt := zl.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			evt.Object("warning", obj).Msg(warning.Error())
			return
		}
		evt.Err(warning).Msg("warning")
	})
}

// DisableZerologWarnings removes the zerolog sink so warnings fall back to
// the handler installed with errors.SetWarningHandler.
func DisableZerologWarnings() {
	plsgoErrors.SetZerologWarnFunc(nil)
}
