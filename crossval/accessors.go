package crossval

import (
	"gonum.org/v1/gonum/mat"

	"github.com/DongElkan/plsgo/pkg/errors"
)

// Accessors report results at the component count selected by cross
// validation. All of them fail with a NotFittedError before Fit; the ones
// specific to orthogonal corrections fail with an EstimatorMismatchError
// when the plain PLS estimator is configured.

func (cv *CrossValidation) requireFitted(method string) error {
	if !cv.state.IsFitted() {
		return errors.NewNotFittedError("CrossValidation", method)
	}
	return nil
}

func (cv *CrossValidation) requireOPLS(attribute string) error {
	if cv.estimator != OPLSEstimator {
		return errors.NewEstimatorMismatchError(attribute, string(cv.estimator), string(OPLSEstimator))
	}
	return nil
}

// OrthogonalScore returns the cross validated orthogonal score of each
// sample at the optimal component count.
func (cv *CrossValidation) OrthogonalScore() (*mat.VecDense, error) {
	if err := cv.requireFitted("OrthogonalScore"); err != nil {
		return nil, err
	}
	if err := cv.requireOPLS("OrthogonalScore"); err != nil {
		return nil, err
	}
	return columnOf(cv.tortho, cv.opt), nil
}

// PredictiveScore returns the cross validated predictive score of each
// sample at the optimal component count.
func (cv *CrossValidation) PredictiveScore() (*mat.VecDense, error) {
	if err := cv.requireFitted("PredictiveScore"); err != nil {
		return nil, err
	}
	if err := cv.requireOPLS("PredictiveScore"); err != nil {
		return nil, err
	}
	return columnOf(cv.tpred, cv.opt), nil
}

// Scores returns the cross validated predictive scores under OPLS, or the
// score matrix of the final fit under PLS.
func (cv *CrossValidation) Scores() (mat.Matrix, error) {
	if err := cv.requireFitted("Scores"); err != nil {
		return nil, err
	}
	if cv.estimator == OPLSEstimator {
		return columnOf(cv.tpred, cv.opt), nil
	}
	return cv.plsModel.ScoresX(), nil
}

// Q2 returns the cross validated predictive ability at the optimal
// component count.
func (cv *CrossValidation) Q2() (float64, error) {
	if err := cv.requireFitted("Q2"); err != nil {
		return 0, err
	}
	return cv.q2[cv.opt], nil
}

// OptimalComponents returns the component count selected by cross
// validation, at least 1.
func (cv *CrossValidation) OptimalComponents() (int, error) {
	if err := cv.requireFitted("OptimalComponents"); err != nil {
		return 0, err
	}
	return cv.opt + 1, nil
}

// R2XCorr returns the fraction of x variation jointly correlated with y at
// the optimal component count.
func (cv *CrossValidation) R2XCorr() (float64, error) {
	if err := cv.requireFitted("R2XCorr"); err != nil {
		return 0, err
	}
	if err := cv.requireOPLS("R2XCorr"); err != nil {
		return 0, err
	}
	return cv.r2xcorr[cv.opt], nil
}

// R2XYO returns the fraction of x variation orthogonal to y, the structured
// noise, at the optimal component count.
func (cv *CrossValidation) R2XYO() (float64, error) {
	if err := cv.requireFitted("R2XYO"); err != nil {
		return 0, err
	}
	if err := cv.requireOPLS("R2XYO"); err != nil {
		return 0, err
	}
	return cv.r2xyo[cv.opt], nil
}

// R2X returns the modeled variation of x in the final fit.
func (cv *CrossValidation) R2X() (float64, error) {
	if err := cv.requireFitted("R2X"); err != nil {
		return 0, err
	}
	return cv.r2x, nil
}

// R2Y returns the modeled variation of y in the final fit.
func (cv *CrossValidation) R2Y() (float64, error) {
	if err := cv.requireFitted("R2Y"); err != nil {
		return 0, err
	}
	return cv.r2y, nil
}

// Correlation returns the correlation loading profile of the final fit, one
// value per variable.
func (cv *CrossValidation) Correlation() (*mat.VecDense, error) {
	if err := cv.requireFitted("Correlation"); err != nil {
		return nil, err
	}
	if err := cv.requireOPLS("Correlation"); err != nil {
		return nil, err
	}
	return cv.corr, nil
}

// Covariance returns the covariance loading profile of the final fit, one
// value per variable.
func (cv *CrossValidation) Covariance() (*mat.VecDense, error) {
	if err := cv.requireFitted("Covariance"); err != nil {
		return nil, err
	}
	if err := cv.requireOPLS("Covariance"); err != nil {
		return nil, err
	}
	return cv.cov, nil
}

// LoadingsCV returns the per-fold predictive loadings at the optimal
// component count, one row per fold.
func (cv *CrossValidation) LoadingsCV() (*mat.Dense, error) {
	if err := cv.requireFitted("LoadingsCV"); err != nil {
		return nil, err
	}
	if err := cv.requireOPLS("LoadingsCV"); err != nil {
		return nil, err
	}
	return cv.pcv[cv.opt], nil
}

// MinMisclassifications returns the misclassification count at the optimal
// component count, the minimum over all counts.
func (cv *CrossValidation) MinMisclassifications() (int, error) {
	if err := cv.requireFitted("MinMisclassifications"); err != nil {
		return 0, err
	}
	return cv.nmc[cv.opt], nil
}

// Misclassifications returns the misclassification counts of the held-out
// predictions at every component count.
func (cv *CrossValidation) Misclassifications() ([]int, error) {
	if err := cv.requireFitted("Misclassifications"); err != nil {
		return nil, err
	}
	out := make([]int, len(cv.nmc))
	copy(out, cv.nmc)
	return out, nil
}

// Q2PerComponent returns the cross validated predictive ability at every
// component count.
func (cv *CrossValidation) Q2PerComponent() ([]float64, error) {
	if err := cv.requireFitted("Q2PerComponent"); err != nil {
		return nil, err
	}
	out := make([]float64, len(cv.q2))
	copy(out, cv.q2)
	return out, nil
}

// Labels returns a copy of the class labels passed to Fit.
func (cv *CrossValidation) Labels() (*mat.VecDense, error) {
	if err := cv.requireFitted("Labels"); err != nil {
		return nil, err
	}
	return mat.VecDenseCopyOf(cv.y), nil
}

// columnOf copies column j of m into a new vector.
func columnOf(m *mat.Dense, j int) *mat.VecDense {
	r, _ := m.Dims()
	out := mat.NewVecDense(r, nil)
	out.CopyVec(m.ColView(j))
	return out
}
