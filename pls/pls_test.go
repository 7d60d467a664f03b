package pls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/DongElkan/plsgo/pkg/errors"
)

func TestPLSFitSingleComponent(t *testing.T) {
	// One variable proportional to the response, so a single component
	// reproduces it exactly.
	x := mat.NewDense(6, 1, []float64{1, 2, 3, -1, -2, -3})
	y := mat.NewVecDense(6, []float64{2, 4, 6, -2, -4, -6})

	m := NewPLS()
	require.NoError(t, m.Fit(x, y, 1))

	assert.Equal(t, 1, m.Components())
	assert.InDelta(t, 2.0, m.WeightsY().AtVec(0), 1e-12)

	yhat, err := m.Predict(mat.NewDense(2, 1, []float64{0.5, -1.5}), 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, yhat.AtVec(0), 1e-12)
	assert.InDelta(t, -3.0, yhat.AtVec(1), 1e-12)
}

func TestPLSFitRecoversLinearResponse(t *testing.T) {
	// Full-rank x with y inside its column space: with as many components
	// as the rank, training predictions match y exactly.
	x := mat.NewDense(4, 2, []float64{
		2, 1,
		-2, 1,
		2, -1,
		-2, -1,
	})
	y := mat.NewVecDense(4, []float64{3, -1, 1, -3})

	m := NewPLS()
	require.NoError(t, m.Fit(x, y, 2))

	yhat, err := m.Predict(x, 2)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		assert.InDelta(t, y.AtVec(i), yhat.AtVec(i), 1e-8, "row %d", i)
	}
}

func TestPLSFullRankDecompositionReconstructsX(t *testing.T) {
	// With as many components as the rank, the score and loading product
	// rebuilds the data matrix.
	x := mat.NewDense(4, 2, []float64{
		2, 1,
		-2, 1,
		2, -1,
		-2, -1,
	})
	y := mat.NewVecDense(4, []float64{3, -1, 1, -3})

	m := NewPLS()
	require.NoError(t, m.Fit(x, y, 2))

	var xrec mat.Dense
	xrec.Mul(m.ScoresX(), m.LoadingsX().T())
	assert.True(t, mat.EqualApprox(x, &xrec, 1e-10))
}

func TestPLSWeightsAreUnitNorm(t *testing.T) {
	x := mat.NewDense(5, 3, []float64{
		1.2, 0.3, -0.5,
		-0.7, 1.1, 0.4,
		0.2, -1.4, 0.9,
		-0.9, 0.6, -1.2,
		0.2, -0.6, 0.4,
	})
	y := mat.NewVecDense(5, []float64{1, -1, 1, -1, 0})

	m := NewPLS()
	require.NoError(t, m.Fit(x, y, 2))

	w := m.weights
	for nc := 0; nc < m.Components(); nc++ {
		assert.InDelta(t, 1.0, mat.Norm(w.ColView(nc), 2), 1e-10, "component %d", nc)
	}
}

func TestPLSFitClampsComponents(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 0.5,
		-1, 0.5,
		1, -0.5,
		-1, -0.5,
	})
	y := mat.NewVecDense(4, []float64{1.5, -0.5, 0.5, -1.5})

	m := NewPLS()
	require.NoError(t, m.Fit(x, y, 10))
	assert.Equal(t, 2, m.Components())

	r, c := m.ScoresX().Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 2, c)
}

func TestPLSFitValidation(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	y := mat.NewVecDense(3, []float64{1, -1, 0})

	tests := []struct {
		name string
		fn   func(m *PLS) error
	}{
		{
			name: "zero components",
			fn: func(m *PLS) error {
				return m.Fit(x, y, 0)
			},
		},
		{
			name: "mismatched response length",
			fn: func(m *PLS) error {
				return m.Fit(x, mat.NewVecDense(2, []float64{1, -1}), 1)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.fn(NewPLS()))
		})
	}
}

func TestPLSPredictErrors(t *testing.T) {
	m := NewPLS()

	_, err := m.Predict(mat.NewDense(1, 2, []float64{1, 2}), 1)
	var notFitted *errors.NotFittedError
	require.ErrorAs(t, err, &notFitted)

	x := mat.NewDense(3, 2, []float64{1, 0, -1, 0.5, 0, -0.5})
	y := mat.NewVecDense(3, []float64{1, -1, 0})
	require.NoError(t, m.Fit(x, y, 1))

	_, err = m.Predict(mat.NewDense(1, 3, []float64{1, 2, 3}), 1)
	var dim *errors.DimensionError
	require.ErrorAs(t, err, &dim)

	_, err = m.Predict(mat.NewDense(1, 2, []float64{1, 2}), 5)
	var value *errors.ValueError
	require.ErrorAs(t, err, &value)
}

func TestPLSDeflationOrthogonalScores(t *testing.T) {
	// NIPALS deflation makes successive score vectors orthogonal.
	x := mat.NewDense(6, 3, []float64{
		5.1, 0.3, -0.1,
		4.9, -0.2, 0.2,
		5.0, -0.1, -0.1,
		-5.0, 0.2, 0.1,
		-5.1, -0.3, -0.2,
		-4.9, 0.1, 0.1,
	})
	y := mat.NewVecDense(6, []float64{1, 1, 1, -1, -1, -1})

	m := NewPLS()
	require.NoError(t, m.Fit(x, y, 2))

	td := m.ScoresX()
	dot := mat.Dot(td.ColView(0), td.ColView(1))
	assert.InDelta(t, 0.0, dot, 1e-8)
}
