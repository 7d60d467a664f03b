// Package pls implements partial least squares regression and its orthogonal
// variant for a single response variable, fitted by the NIPALS algorithm.
//
// Both estimators expect pretreated (at least centered) input. They are the
// building blocks the crossval package drives; using them directly is
// supported for callers that manage scaling themselves.
package pls

import (
	"gonum.org/v1/gonum/mat"

	"github.com/DongElkan/plsgo/core/model"
	"github.com/DongElkan/plsgo/pkg/errors"
)

// NIPALS iteration limits.
const (
	nipalsTol     = 1e-10
	nipalsMaxIter = 10000
)

// nipals extracts the next latent component from the residual matrices x and
// y, returning the normalized predictive weight w, the score vector t and
// the y-weight c. The iteration refines the score direction until the
// response projection stabilizes.
func nipals(x *mat.Dense, y *mat.VecDense) (w, t *mat.VecDense, c float64) {
	n, p := x.Dims()
	u := mat.VecDenseCopyOf(y)
	w = mat.NewVecDense(p, nil)
	t = mat.NewVecDense(n, nil)

	d := nipalsTol * 10
	iter := 0
	for d > nipalsTol && iter < nipalsMaxIter {
		w.MulVec(x.T(), u)
		w.ScaleVec(1/mat.Norm(w, 2), w)
		t.MulVec(x, w)
		c = mat.Dot(t, y) / mat.Dot(t, t)

		uNew := mat.VecDenseCopyOf(y)
		uNew.ScaleVec(1/c, uNew)
		var diff mat.VecDense
		diff.SubVec(uNew, u)
		d = mat.Norm(&diff, 2) / mat.Norm(uNew, 2)
		u = uNew
		iter++
	}
	if d > nipalsTol {
		errors.Warn(errors.NewConvergenceWarning("nipals", nipalsMaxIter, "score direction did not stabilize"))
	}
	return w, t, c
}

// PLS is a single-response partial least squares regressor. Fit extracts
// latent components by NIPALS with rank-one deflation of both matrices and
// keeps a regression coefficient vector for every component count, so
// predictions can be queried at any count up to the fitted number.
type PLS struct {
	state *model.StateManager

	scoresX   *mat.Dense    // T, n x npc
	loadingsX *mat.Dense    // P, p x npc
	weights   *mat.Dense    // W, p x npc
	weightsY  *mat.VecDense // C, npc
	coefs     *mat.Dense    // row k-1 predicts with k components, npc x p
	npc       int
}

// NewPLS creates an unfitted PLS estimator.
func NewPLS() *PLS {
	return &PLS{
		state: model.NewStateManager(),
	}
}

// Fit extracts up to nComponents latent components from x and y. The
// component count is capped at min(n, p). x is not modified; deflation works
// on an internal copy.
func (m *PLS) Fit(x mat.Matrix, y *mat.VecDense, nComponents int) error {
	n, p := x.Dims()
	if n == 0 || p == 0 {
		return errors.NewModelError("PLS.Fit", "empty data", errors.ErrEmptyData)
	}
	if y.Len() != n {
		return errors.NewDimensionError("PLS.Fit", n, y.Len(), 0)
	}
	if nComponents < 1 {
		return errors.NewValueError("PLS.Fit", "number of components must be at least 1")
	}

	npc := n
	if p < npc {
		npc = p
	}
	if nComponents < npc {
		npc = nComponents
	}

	xc := mat.DenseCopyOf(x)
	yc := mat.VecDenseCopyOf(y)

	m.scoresX = mat.NewDense(n, npc, nil)
	m.loadingsX = mat.NewDense(p, npc, nil)
	m.weights = mat.NewDense(p, npc, nil)
	m.weightsY = mat.NewVecDense(npc, nil)
	m.coefs = mat.NewDense(npc, p, nil)
	m.npc = npc

	for nc := 0; nc < npc; nc++ {
		w, t, c := nipals(xc, yc)

		ssT := mat.Dot(t, t)
		pvec := mat.NewVecDense(p, nil)
		pvec.MulVec(xc.T(), t)
		pvec.ScaleVec(1/ssT, pvec)

		// Deflate both matrices by the extracted component.
		xc.RankOne(xc, -1, t, pvec)
		yc.AddScaledVec(yc, -c, t)

		m.weights.SetCol(nc, w.RawVector().Data)
		m.scoresX.SetCol(nc, t.RawVector().Data)
		m.loadingsX.SetCol(nc, pvec.RawVector().Data)
		m.weightsY.SetVec(nc, c)

		if err := m.computeCoefs(nc); err != nil {
			return err
		}
	}

	if err := errors.CheckMatrix("PLS.Fit", m.scoresX, n, npc, npc); err != nil {
		// Rank exhaustion leaves non-finite trailing components.
		errors.Warn(err)
	}

	m.state.SetDimensions(n, p)
	m.state.SetFitted()
	return nil
}

// computeCoefs derives the regression coefficient vector for the model using
// components 0..nc, coef = W (P^T W)^-1 C.
func (m *PLS) computeCoefs(nc int) error {
	p, _ := m.weights.Dims()
	wk := m.weights.Slice(0, p, 0, nc+1)
	pk := m.loadingsX.Slice(0, p, 0, nc+1)

	var ptw mat.Dense
	ptw.Mul(pk.T(), wk)

	var inv mat.Dense
	if err := inv.Inverse(&ptw); err != nil {
		return errors.NewModelError("PLS.Fit", "loading-weight product is not invertible", errors.ErrSingularMatrix)
	}

	var tmp mat.VecDense
	tmp.MulVec(&inv, m.weightsY.SliceVec(0, nc+1))

	coef := mat.NewVecDense(p, nil)
	coef.MulVec(wk, &tmp)
	m.coefs.SetRow(nc, coef.RawVector().Data)
	return nil
}

// Predict returns predictions for the rows of x using the first nComponents
// components.
func (m *PLS) Predict(x mat.Matrix, nComponents int) (*mat.VecDense, error) {
	if !m.state.IsFitted() {
		return nil, errors.NewNotFittedError("PLS", "Predict")
	}
	n, p := x.Dims()
	if _, pf := m.state.GetDimensions(); p != pf {
		return nil, errors.NewDimensionError("PLS.Predict", pf, p, 1)
	}
	if nComponents < 1 || nComponents > m.npc {
		return nil, errors.NewValueError("PLS.Predict", "number of components out of fitted range")
	}

	yhat := mat.NewVecDense(n, nil)
	yhat.MulVec(x, m.coefs.RowView(nComponents-1))
	return yhat, nil
}

// ScoresX returns the score matrix T with one column per component. Valid
// after Fit.
func (m *PLS) ScoresX() *mat.Dense {
	return m.scoresX
}

// LoadingsX returns the loading matrix P with one column per component.
// Valid after Fit.
func (m *PLS) LoadingsX() *mat.Dense {
	return m.loadingsX
}

// WeightsY returns the y-weight vector C with one entry per component.
// Valid after Fit.
func (m *PLS) WeightsY() *mat.VecDense {
	return m.weightsY
}

// Components returns the number of fitted components.
func (m *PLS) Components() int {
	return m.npc
}
