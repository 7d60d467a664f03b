package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for models trainable from a predictor matrix and a
// response.
type Fitter interface {
	// Fit trains the model on X and y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for fitted models that predict a single
// response per sample.
type Predictor interface {
	// Predict returns one prediction per row of X.
	Predict(X mat.Matrix) (*mat.VecDense, error)
}

// Transformer is the interface for column-wise data transformations such as
// scaling.
type Transformer interface {
	// Fit learns the transformation parameters from X.
	Fit(X mat.Matrix) error

	// Transform applies the learned transformation to X.
	Transform(X mat.Matrix) (*mat.Dense, error)

	// FitTransform runs Fit and Transform in one call.
	FitTransform(X mat.Matrix) (*mat.Dense, error)
}

// ParameterGetter is the interface for models that expose their learned
// parameters.
type ParameterGetter interface {
	// GetParams returns the model's parameters.
	GetParams() map[string]interface{}
}
