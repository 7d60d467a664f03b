// Package preprocessing provides column-wise pretreatment of data matrices
// prior to latent-variable modeling.
package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/DongElkan/plsgo/core/model"
	"github.com/DongElkan/plsgo/core/parallel"
	"github.com/DongElkan/plsgo/pkg/errors"
)

// ScalingMethod selects the column pretreatment applied by a Scaler.
type ScalingMethod string

const (
	// UVScaling centers each column and divides by its standard deviation,
	// giving every variable unit variance.
	UVScaling ScalingMethod = "uv"

	// ParetoScaling centers each column and divides by the square root of
	// its standard deviation. Large-variance variables keep more weight
	// than under UV scaling.
	ParetoScaling ScalingMethod = "pareto"

	// MinMaxScaling maps each column linearly onto [0, 1] using the range
	// observed during fitting.
	MinMaxScaling ScalingMethod = "minmax"

	// MeanCentering subtracts the column mean without rescaling.
	MeanCentering ScalingMethod = "mean"
)

// Valid reports whether m names a supported scaling method.
func (m ScalingMethod) Valid() bool {
	switch m {
	case UVScaling, ParetoScaling, MinMaxScaling, MeanCentering:
		return true
	}
	return false
}

// Rows below this run sequentially in Transform.
const parallelThreshold = 1000

// Scaler applies one of the standard pretreatment methods column by column.
// Parameters are learned from one matrix with Fit and applied to another
// with Transform, so test data can be scaled with training statistics.
//
// Example usage:
//
//	scaler := preprocessing.NewScaler(preprocessing.ParetoScaling)
//	xtr, err := scaler.FitTransform(xTrain)
//	xte, err := scaler.Transform(xTest)
type Scaler struct {
	state *model.StateManager

	// Method selects the pretreatment applied to each column.
	Method ScalingMethod

	// Center holds the per-column offset subtracted before dividing.
	Center []float64

	// Scale holds the per-column divisor.
	Scale []float64

	// NVariables is the number of columns seen during fitting.
	NVariables int
}

var _ model.Transformer = (*Scaler)(nil)

// NewScaler creates a Scaler with the given method. The method is validated
// at Fit time.
func NewScaler(method ScalingMethod) *Scaler {
	return &Scaler{
		state:  model.NewStateManager(),
		Method: method,
	}
}

// Fit learns the per-column center and scale parameters from x.
func (s *Scaler) Fit(x mat.Matrix) error {
	if !s.Method.Valid() {
		return errors.NewValidationError("method", "unknown scaling method", string(s.Method))
	}

	r, c := x.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("Scaler.Fit", "empty data", errors.ErrEmptyData)
	}

	s.NVariables = c
	s.Center = make([]float64, c)
	s.Scale = make([]float64, c)

	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, x)

		switch s.Method {
		case UVScaling:
			s.Center[j] = stat.Mean(col, nil)
			s.Scale[j] = math.Sqrt(stat.PopVariance(col, nil))
		case ParetoScaling:
			s.Center[j] = stat.Mean(col, nil)
			s.Scale[j] = math.Sqrt(math.Sqrt(stat.PopVariance(col, nil)))
		case MinMaxScaling:
			lo := floats.Min(col)
			s.Center[j] = lo
			s.Scale[j] = floats.Max(col) - lo
		case MeanCentering:
			s.Center[j] = stat.Mean(col, nil)
			s.Scale[j] = 1.0
		}

		// Constant columns get unit scale to avoid division by zero.
		if math.Abs(s.Scale[j]) < 1e-8 {
			s.Scale[j] = 1.0
		}
	}

	s.state.SetDimensions(r, c)
	s.state.SetFitted()
	return nil
}

// Transform applies the learned parameters to x and returns the scaled
// matrix.
func (s *Scaler) Transform(x mat.Matrix) (*mat.Dense, error) {
	if !s.state.IsFitted() {
		return nil, errors.NewNotFittedError("Scaler", "Transform")
	}

	r, c := x.Dims()
	if c != s.NVariables {
		return nil, errors.NewDimensionError("Scaler.Transform", s.NVariables, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				result.Set(i, j, (x.At(i, j)-s.Center[j])/s.Scale[j])
			}
		}
	})

	return result, nil
}

// FitTransform learns the parameters from x and returns the scaled matrix in
// one call.
func (s *Scaler) FitTransform(x mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(x); err != nil {
		return nil, err
	}
	return s.Transform(x)
}

// InverseTransform maps scaled data back to the original coordinates.
func (s *Scaler) InverseTransform(x mat.Matrix) (*mat.Dense, error) {
	if !s.state.IsFitted() {
		return nil, errors.NewNotFittedError("Scaler", "InverseTransform")
	}

	r, c := x.Dims()
	if c != s.NVariables {
		return nil, errors.NewDimensionError("Scaler.InverseTransform", s.NVariables, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				result.Set(i, j, x.At(i, j)*s.Scale[j]+s.Center[j])
			}
		}
	})

	return result, nil
}

// IsFitted reports whether Fit has completed.
func (s *Scaler) IsFitted() bool {
	return s.state.IsFitted()
}

// GetParams returns the scaler configuration.
func (s *Scaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"method": string(s.Method),
	}
}

// String returns a readable description of the scaler.
func (s *Scaler) String() string {
	if !s.state.IsFitted() {
		return fmt.Sprintf("Scaler(method=%s)", s.Method)
	}
	return fmt.Sprintf("Scaler(method=%s, n_variables=%d)", s.Method, s.NVariables)
}
