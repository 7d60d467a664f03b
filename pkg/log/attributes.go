// Standard attribute keys for structured logging.
//
// Using these keys consistently across the library enables filtering and
// analysis of fitting and cross-validation logs. The keys follow a
// hierarchical naming convention ("model.name", "cv.fold") so related
// attributes group together in log processors.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the model type emitting the record.
	// Examples: "CrossValidation", "OPLS", "Scaler"
	ModelNameKey = "model.name"

	// EstimatorKey names the underlying estimator kind, "pls" or "opls".
	EstimatorKey = "model.estimator"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "correct"
	OperationKey = "ml.operation"

	// ComponentKey identifies the package or component performing the
	// operation. Examples: "crossval", "pls.opls", "preprocessing"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the model lifecycle.
	// Examples: "training", "validation", "inference"
	PhaseKey = "ml.phase"
)

// Data shape.
const (
	// SamplesKey is the number of samples (rows) being processed.
	SamplesKey = "data.samples"

	// VariablesKey is the number of predictor variables (columns).
	VariablesKey = "data.variables"
)

// Cross-validation context.
const (
	// FoldKey is the zero-based index of the current fold.
	FoldKey = "cv.fold"

	// KFoldKey is the total number of folds.
	KFoldKey = "cv.kfold"

	// TrainSamplesKey is the training-partition size of the current fold.
	TrainSamplesKey = "cv.train_samples"

	// TestSamplesKey is the test-partition size of the current fold.
	TestSamplesKey = "cv.test_samples"
)

// Model structure and quality metrics.
const (
	// ComponentsKey is the number of latent components in play.
	ComponentsKey = "model.components"

	// OptimalComponentsKey is the component count selected by
	// cross-validation.
	OptimalComponentsKey = "model.optimal_components"

	// Q2Key records the predictive ability estimate at the selected
	// component count.
	Q2Key = "metrics.q2"

	// R2XKey records the fraction of predictor variance explained.
	R2XKey = "metrics.r2x"

	// R2YKey records the fraction of response variance explained.
	R2YKey = "metrics.r2y"

	// MisclassificationsKey records the misclassification count at the
	// selected component count.
	MisclassificationsKey = "metrics.misclassifications"

	// DurationMsKey records the execution time of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"

	// IterationKey records the iteration number inside an iterative
	// algorithm such as NIPALS.
	IterationKey = "training.iteration"
)

// Error and warning context.
const (
	// ErrorCodeKey provides a structured error code for programmatic
	// handling. Examples: "DIMENSION_MISMATCH", "NOT_FITTED"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the error type.
	// Examples: "ValidationError", "NumericalInstabilityError"
	ErrorTypeKey = "error.type"
)

// Standard attribute value constants for common operations.
const (
	OperationFit           = "fit"
	OperationPredict       = "predict"
	OperationTransform     = "transform"
	OperationFitTransform  = "fit_transform"
	OperationCorrect       = "correct"
	OperationCrossValidate = "cross_validate"

	PhaseTraining      = "training"
	PhaseValidation    = "validation"
	PhaseInference     = "inference"
	PhasePreprocessing = "preprocessing"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorConvergence       = "CONVERGENCE_FAILURE"
	ErrorSingularMatrix    = "SINGULAR_MATRIX"
	ErrorEstimatorMismatch = "ESTIMATOR_MISMATCH"
)
