// Package metrics provides the goodness-of-fit and classification error
// measures used to summarize cross-validated latent variable models.
package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/DongElkan/plsgo/pkg/errors"
)

// SumSquares returns the total sum of squared entries of m. An empty matrix
// sums to zero.
func SumSquares(m mat.Matrix) float64 {
	r, c := m.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			sum += v * v
		}
	}
	return sum
}

// R2 returns the fraction of variation in the observed data captured by the
// fitted reconstruction, 1 - SS(observed-fitted)/SS(observed). Both
// arguments must have the same shape; a column vector works for a single
// response.
//
// When the observed data has zero sum of squares the metric is undefined; a
// warning is emitted and the IEEE result of the division is returned.
func R2(observed, fitted mat.Matrix) (float64, error) {
	ro, co := observed.Dims()
	rf, cf := fitted.Dims()
	if ro == 0 || co == 0 {
		return 0, errors.NewValueError("R2", "empty matrix")
	}
	if ro != rf || co != cf {
		return 0, errors.NewDimensionError("R2", ro, rf, 0)
	}

	var rss float64
	for i := 0; i < ro; i++ {
		for j := 0; j < co; j++ {
			d := observed.At(i, j) - fitted.At(i, j)
			rss += d * d
		}
	}
	tss := SumSquares(observed)
	r2 := 1 - rss/tss
	if tss == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("R2", "total sum of squares is zero", r2))
	}
	return r2, nil
}

// Q2 returns the cross-validated coefficient 1 - press/total, where press is
// the prediction error sum of squares over held-out samples and total is the
// sum of squares of the held-out responses.
//
// A zero total leaves the metric undefined; a warning is emitted and the
// IEEE result of the division is returned.
func Q2(press, total float64) float64 {
	q2 := 1 - press/total
	if total == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("Q2", "total sum of squares is zero", q2))
	}
	return q2
}
