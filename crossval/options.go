package crossval

import (
	"github.com/DongElkan/plsgo/preprocessing"
)

// EstimatorKind selects the latent variable estimator driven by the
// cross validation.
type EstimatorKind string

// Supported estimators.
const (
	OPLSEstimator EstimatorKind = "opls"
	PLSEstimator  EstimatorKind = "pls"
)

// Valid reports whether the kind is a supported estimator.
func (k EstimatorKind) Valid() bool {
	switch k {
	case OPLSEstimator, PLSEstimator:
		return true
	}
	return false
}

// Option is a function that configures CrossValidation.
type Option func(*CrossValidation)

// WithEstimator sets the estimator kind, opls by default.
func WithEstimator(kind EstimatorKind) Option {
	return func(cv *CrossValidation) {
		cv.estimator = kind
	}
}

// WithKFold sets the number of cross validation folds, 10 by default.
func WithKFold(k int) Option {
	return func(cv *CrossValidation) {
		cv.kfold = k
	}
}

// WithScaling sets the pretreatment scaling method, pareto by default.
func WithScaling(method preprocessing.ScalingMethod) Option {
	return func(cv *CrossValidation) {
		cv.scaling = method
	}
}
