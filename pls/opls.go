package pls

import (
	"gonum.org/v1/gonum/mat"

	"github.com/DongElkan/plsgo/core/model"
	"github.com/DongElkan/plsgo/pkg/errors"
)

// OPLS is an orthogonal projection to latent structures regressor for a
// single response. Each component splits the variation of x into a part
// correlated with y and a part orthogonal to it; the orthogonal part is
// removed before the predictive component is extracted. Predictions use a
// single predictive weight with a per-component y-weight, so new data must
// be corrected with Correct before calling Predict.
//
// Reference:
//
//	Trygg J, Wold S. Orthogonal projections to latent structures (O-PLS).
//	J Chemometrics. 2002, 16, 119-128.
type OPLS struct {
	state *model.StateManager

	weights  *mat.VecDense // w, p, shared predictive weight
	scores   *mat.Dense    // T, n x npc, predictive scores
	loadings *mat.Dense    // P, p x npc, predictive loadings
	weightsY *mat.VecDense // C, npc

	orthoScores   *mat.Dense // To, n x npc
	orthoLoadings *mat.Dense // Po, p x npc
	orthoWeights  *mat.Dense // Wo, p x npc

	npc int
}

// NewOPLS creates an unfitted OPLS estimator.
func NewOPLS() *OPLS {
	return &OPLS{
		state: model.NewStateManager(),
	}
}

// Fit extracts up to nComponents orthogonal and predictive component pairs
// from x and y. The component count is capped at min(n, p). x is not
// modified; deflation works on an internal copy.
func (m *OPLS) Fit(x mat.Matrix, y *mat.VecDense, nComponents int) error {
	n, p := x.Dims()
	if n == 0 || p == 0 {
		return errors.NewModelError("OPLS.Fit", "empty data", errors.ErrEmptyData)
	}
	if y.Len() != n {
		return errors.NewDimensionError("OPLS.Fit", n, y.Len(), 0)
	}
	if nComponents < 1 {
		return errors.NewValueError("OPLS.Fit", "number of components must be at least 1")
	}

	npc := n
	if p < npc {
		npc = p
	}
	if nComponents < npc {
		npc = nComponents
	}

	xc := mat.DenseCopyOf(x)

	// The predictive weight is fixed by the response and shared by every
	// component.
	w := mat.NewVecDense(p, nil)
	w.MulVec(xc.T(), y)
	w.ScaleVec(1/mat.Norm(w, 2), w)

	m.weights = w
	m.scores = mat.NewDense(n, npc, nil)
	m.loadings = mat.NewDense(p, npc, nil)
	m.weightsY = mat.NewVecDense(npc, nil)
	m.orthoScores = mat.NewDense(n, npc, nil)
	m.orthoLoadings = mat.NewDense(p, npc, nil)
	m.orthoWeights = mat.NewDense(p, npc, nil)
	m.npc = npc

	t := mat.NewVecDense(n, nil)
	pvec := mat.NewVecDense(p, nil)
	for nc := 0; nc < npc; nc++ {
		t.MulVec(xc, w)
		pvec.MulVec(xc.T(), t)
		pvec.ScaleVec(1/mat.Dot(t, t), pvec)

		// Orthogonal weight: the part of the loading not carried by w.
		wo := mat.NewVecDense(p, nil)
		wo.AddScaledVec(pvec, -mat.Dot(w, pvec), w)
		wo.ScaleVec(1/mat.Norm(wo, 2), wo)

		to := mat.NewVecDense(n, nil)
		to.MulVec(xc, wo)
		po := mat.NewVecDense(p, nil)
		po.MulVec(xc.T(), to)
		po.ScaleVec(1/mat.Dot(to, to), po)

		// Remove the orthogonal component before the predictive one.
		xc.RankOne(xc, -1, to, po)

		m.orthoScores.SetCol(nc, to.RawVector().Data)
		m.orthoLoadings.SetCol(nc, po.RawVector().Data)
		m.orthoWeights.SetCol(nc, wo.RawVector().Data)

		t.MulVec(xc, w)
		ssT := mat.Dot(t, t)
		pvec.MulVec(xc.T(), t)
		pvec.ScaleVec(1/ssT, pvec)

		m.scores.SetCol(nc, t.RawVector().Data)
		m.loadings.SetCol(nc, pvec.RawVector().Data)
		m.weightsY.SetVec(nc, mat.Dot(t, y)/ssT)
	}

	if err := errors.CheckMatrix("OPLS.Fit", m.scores, n, npc, npc); err != nil {
		// Rank exhaustion leaves non-finite trailing components.
		errors.Warn(err)
	}

	m.state.SetDimensions(n, p)
	m.state.SetFitted()
	return nil
}

// Correct removes the first nComponents orthogonal components from the rows
// of x. It returns the corrected matrix and the orthogonal scores of every
// removed component, one column per component. x is not modified.
func (m *OPLS) Correct(x mat.Matrix, nComponents int) (*mat.Dense, *mat.Dense, error) {
	if !m.state.IsFitted() {
		return nil, nil, errors.NewNotFittedError("OPLS", "Correct")
	}
	n, p := x.Dims()
	if _, pf := m.state.GetDimensions(); p != pf {
		return nil, nil, errors.NewDimensionError("OPLS.Correct", pf, p, 1)
	}
	if nComponents < 1 || nComponents > m.npc {
		return nil, nil, errors.NewValueError("OPLS.Correct", "number of components out of fitted range")
	}

	xc := mat.DenseCopyOf(x)
	scores := mat.NewDense(n, nComponents, nil)
	t := mat.NewVecDense(n, nil)
	for nc := 0; nc < nComponents; nc++ {
		t.MulVec(xc, m.orthoWeights.ColView(nc))
		xc.RankOne(xc, -1, t, m.orthoLoadings.ColView(nc))
		scores.SetCol(nc, t.RawVector().Data)
	}
	return xc, scores, nil
}

// Predict returns predictions and predictive scores for the rows of x at
// nComponents components. x must already be corrected to the same component
// count.
func (m *OPLS) Predict(x mat.Matrix, nComponents int) (*mat.VecDense, *mat.VecDense, error) {
	if !m.state.IsFitted() {
		return nil, nil, errors.NewNotFittedError("OPLS", "Predict")
	}
	n, p := x.Dims()
	if _, pf := m.state.GetDimensions(); p != pf {
		return nil, nil, errors.NewDimensionError("OPLS.Predict", pf, p, 1)
	}
	if nComponents < 1 || nComponents > m.npc {
		return nil, nil, errors.NewValueError("OPLS.Predict", "number of components out of fitted range")
	}

	tp := mat.NewVecDense(n, nil)
	tp.MulVec(x, m.weights)
	yhat := mat.NewVecDense(n, nil)
	yhat.ScaleVec(m.weightsY.AtVec(nComponents-1), tp)
	return yhat, tp, nil
}

// PredictiveScores returns the predictive score matrix T with one column per
// component. Valid after Fit.
func (m *OPLS) PredictiveScores() *mat.Dense {
	return m.scores
}

// PredictiveScoreAt returns the predictive score vector of the model with
// nComponents components, the last column of T used at that count.
func (m *OPLS) PredictiveScoreAt(nComponents int) (*mat.VecDense, error) {
	if !m.state.IsFitted() {
		return nil, errors.NewNotFittedError("OPLS", "PredictiveScoreAt")
	}
	if nComponents < 1 || nComponents > m.npc {
		return nil, errors.NewValueError("OPLS.PredictiveScoreAt", "number of components out of fitted range")
	}
	n, _ := m.scores.Dims()
	t := mat.NewVecDense(n, nil)
	t.CopyVec(m.scores.ColView(nComponents - 1))
	return t, nil
}

// PredictiveLoadings returns the predictive loading matrix P with one column
// per component. Valid after Fit.
func (m *OPLS) PredictiveLoadings() *mat.Dense {
	return m.loadings
}

// OrthogonalScores returns the orthogonal score matrix with one column per
// component. Valid after Fit.
func (m *OPLS) OrthogonalScores() *mat.Dense {
	return m.orthoScores
}

// OrthogonalLoadings returns the orthogonal loading matrix with one column
// per component. Valid after Fit.
func (m *OPLS) OrthogonalLoadings() *mat.Dense {
	return m.orthoLoadings
}

// WeightsY returns the y-weight vector C with one entry per component.
// Valid after Fit.
func (m *OPLS) WeightsY() *mat.VecDense {
	return m.weightsY
}

// Components returns the number of fitted components.
func (m *OPLS) Components() int {
	return m.npc
}
