package visualize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/DongElkan/plsgo/crossval"
	"github.com/DongElkan/plsgo/pkg/errors"
)

// fittedCV cross validates a small two-class data set with a strong signal
// on the first three variables.
func fittedCV(t *testing.T, kind crossval.EstimatorKind) *crossval.CrossValidation {
	t.Helper()
	restore := errors.SetWarningHandler(func(error) {})
	t.Cleanup(func() { errors.SetWarningHandler(restore) })

	const n, p = 20, 5
	x := mat.NewDense(n, p, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		base := 1.0
		if i >= n/2 {
			base = 3.0
			y.SetVec(i, 1)
		}
		for v := 0; v < 3; v++ {
			x.Set(i, v, base+0.1*float64((i*7+v*3)%5-2))
		}
		for v := 3; v < p; v++ {
			x.Set(i, v, 0.3*float64((i*7+v*3)%5-2))
		}
	}

	cv, err := crossval.New(crossval.WithEstimator(kind), crossval.WithKFold(5))
	require.NoError(t, err)
	require.NoError(t, cv.Fit(x, y))
	return cv
}

func assertRendered(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestScoresWritesFile(t *testing.T) {
	cv := fittedCV(t, crossval.OPLSEstimator)
	path := filepath.Join(t.TempDir(), "scores.png")
	require.NoError(t, Scores(cv, path))
	assertRendered(t, path)
}

func TestSPlotWritesFile(t *testing.T) {
	cv := fittedCV(t, crossval.OPLSEstimator)
	path := filepath.Join(t.TempDir(), "splot.png")
	require.NoError(t, SPlot(cv, path))
	assertRendered(t, path)
}

func TestMisclassificationsWritesFile(t *testing.T) {
	cv := fittedCV(t, crossval.OPLSEstimator)
	path := filepath.Join(t.TempDir(), "nmc.png")
	require.NoError(t, Misclassifications(cv, path))
	assertRendered(t, path)
}

func TestQ2WritesFile(t *testing.T) {
	cv := fittedCV(t, crossval.OPLSEstimator)
	path := filepath.Join(t.TempDir(), "q2.png")
	require.NoError(t, Q2(cv, path))
	assertRendered(t, path)
}

func TestCurvesWorkForPLS(t *testing.T) {
	cv := fittedCV(t, crossval.PLSEstimator)
	dir := t.TempDir()
	require.NoError(t, Misclassifications(cv, filepath.Join(dir, "nmc.png")))
	require.NoError(t, Q2(cv, filepath.Join(dir, "q2.png")))
}

func TestScorePlotsRequireOPLS(t *testing.T) {
	cv := fittedCV(t, crossval.PLSEstimator)
	dir := t.TempDir()

	var em *errors.EstimatorMismatchError
	assert.ErrorAs(t, Scores(cv, filepath.Join(dir, "scores.png")), &em)
	assert.ErrorAs(t, SPlot(cv, filepath.Join(dir, "splot.png")), &em)
}

func TestPlotsRequireFitted(t *testing.T) {
	cv, err := crossval.New()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "out.png")

	var nf *errors.NotFittedError
	assert.ErrorAs(t, Scores(cv, path), &nf)
	assert.ErrorAs(t, SPlot(cv, path), &nf)
	assert.ErrorAs(t, Misclassifications(cv, path), &nf)
	assert.ErrorAs(t, Q2(cv, path), &nf)
}
