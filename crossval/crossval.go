// Package crossval implements cross validated fitting of PLS and OPLS
// models for binary classification of high dimensional data, such as
// metabolomics intensity tables.
//
// Fit drives a k-fold loop: each fold scales its training partition, fits a
// fresh estimator, and predicts the held-out block at every usable component
// count. The accumulated out-of-fold statistics are reduced to quality
// metrics (Q2, misclassification counts, and the OPLS variation fractions
// R2Xcorr and R2XYO), the component count minimizing the misclassifications
// is selected, and a final model is refit on the full data at that count.
// Predict applies the final model to new samples.
//
// Typical usage:
//
//	cv, err := crossval.New(
//	    crossval.WithEstimator(crossval.OPLSEstimator),
//	    crossval.WithKFold(5),
//	    crossval.WithScaling(preprocessing.ParetoScaling),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := cv.Fit(x, y); err != nil {
//	    return err
//	}
//	yhat, err := cv.Predict(x)
package crossval

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/DongElkan/plsgo/core/model"
	"github.com/DongElkan/plsgo/metrics"
	"github.com/DongElkan/plsgo/pkg/errors"
	"github.com/DongElkan/plsgo/pkg/log"
	"github.com/DongElkan/plsgo/pls"
	"github.com/DongElkan/plsgo/preprocessing"
)

// CrossValidation fits and selects a latent variable classification model by
// k-fold cross validation. The zero value is not usable; construct with New.
type CrossValidation struct {
	state  *model.StateManager
	logger log.Logger

	estimator EstimatorKind
	kfold     int
	scaling   preprocessing.ScalingMethod

	// Long-lived instances from the final refit, the only state Predict
	// depends on.
	xscaler   *preprocessing.Scaler
	yscaler   *preprocessing.Scaler
	oplsModel *pls.OPLS
	plsModel  *pls.PLS

	y   *mat.VecDense // labels as passed to Fit
	npc int           // component counts usable in every fold
	opt int           // zero-based index of the selected component count

	// Out-of-fold accumulators, one column per component count.
	ypred  *mat.Dense
	pressy *mat.Dense
	tortho *mat.Dense // OPLS only
	tpred  *mat.Dense // OPLS only

	ssy float64

	q2      []float64
	nmc     []int
	r2xcorr []float64 // OPLS only
	r2xyo   []float64 // OPLS only
	r2x     float64
	r2y     float64

	corr *mat.VecDense // OPLS only
	cov  *mat.VecDense // OPLS only

	pcv []*mat.Dense // OPLS only, kfold x p fold loadings per component count
}

var (
	_ model.Fitter          = (*CrossValidation)(nil)
	_ model.Predictor       = (*CrossValidation)(nil)
	_ model.ParameterGetter = (*CrossValidation)(nil)
)

// New creates a CrossValidation with the given options. Defaults are the
// OPLS estimator, 10 folds and pareto scaling. An unknown estimator kind,
// scaling method or fold count below 2 is rejected here rather than at Fit.
func New(opts ...Option) (*CrossValidation, error) {
	cv := &CrossValidation{
		state:     model.NewStateManager(),
		logger:    log.GetLoggerWithName("crossval"),
		estimator: OPLSEstimator,
		kfold:     10,
		scaling:   preprocessing.ParetoScaling,
	}
	for _, opt := range opts {
		opt(cv)
	}
	if !cv.estimator.Valid() {
		return nil, errors.NewValidationError("estimator", `must be "opls" or "pls"`, string(cv.estimator))
	}
	if cv.kfold < 2 {
		return nil, errors.NewValidationError("kfold", "must be at least 2", cv.kfold)
	}
	if !cv.scaling.Valid() {
		return nil, errors.NewValidationError("scaling", "unknown scaling method", string(cv.scaling))
	}
	return cv, nil
}

// Fit cross validates the estimator on x and y and refits the final model at
// the optimal component count. y holds one 0/1 class label per row of x as
// an n by 1 matrix or column vector; other values silently degrade the
// classification metrics.
//
// Row counts of x and y are not cross-checked; a mismatch surfaces as an
// error through the recovered panic of the underlying matrix operation.
func (cv *CrossValidation) Fit(x, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "CrossValidation.Fit")

	n, p := x.Dims()
	if n == 0 || p == 0 {
		return errors.NewModelError("CrossValidation.Fit", "empty data", errors.ErrEmptyData)
	}
	if _, yc := y.Dims(); yc != 1 {
		return errors.NewDimensionError("CrossValidation.Fit", 1, yc, 1)
	}
	if n < cv.kfold {
		return errors.NewValidationError("kfold", "must not exceed the number of samples", cv.kfold)
	}

	cv.logger.Debug("starting cross validation",
		log.OperationKey, log.OperationCrossValidate,
		log.EstimatorKey, string(cv.estimator),
		log.SamplesKey, n,
		log.VariablesKey, p,
		log.KFoldKey, cv.kfold,
	)

	cv.y = columnVector(y)
	isOPLS := cv.estimator == OPLSEstimator

	kInit := n
	if p < kInit {
		kInit = p
	}
	npc0 := kInit

	cv.ypred = mat.NewDense(n, kInit, nil)
	cv.pressy = mat.NewDense(n, kInit, nil)
	ssy := make([]float64, 0, cv.kfold)

	var ssxCorr, ssxXYO, ssxTotal [][]float64
	if isOPLS {
		cv.tortho = mat.NewDense(n, kInit, nil)
		cv.tpred = mat.NewDense(n, kInit, nil)
		ssxCorr = makeGrid(kInit, cv.kfold)
		ssxXYO = makeGrid(kInit, cv.kfold)
		ssxTotal = makeGrid(kInit, cv.kfold)
		cv.pcv = make([]*mat.Dense, kInit)
		for k := range cv.pcv {
			cv.pcv[k] = mat.NewDense(cv.kfold, p, nil)
		}
	}

	folds := BlockKFold{K: cv.kfold}.Split(n)
	for f, fold := range folds {
		xtr := pickRows(x, fold.Train)
		xte := pickRows(x, fold.Test)
		ytr := pickVec(cv.y, fold.Train)
		yte := pickVec(cv.y, fold.Test)

		// Fresh scalers per fold; statistics never leak between folds.
		xscaler := preprocessing.NewScaler(cv.scaling)
		xtrS, err := xscaler.FitTransform(xtr)
		if err != nil {
			return errors.Wrapf(err, "fold %d", f)
		}
		xteS, err := xscaler.Transform(xte)
		if err != nil {
			return errors.Wrapf(err, "fold %d", f)
		}
		yscaler := preprocessing.NewScaler(cv.scaling)
		ytrS, err := yscaler.FitTransform(ytr)
		if err != nil {
			return errors.Wrapf(err, "fold %d", f)
		}
		yteS, err := yscaler.Transform(yte)
		if err != nil {
			return errors.Wrapf(err, "fold %d", f)
		}
		ytrVec := denseColumn(ytrS)

		ssyTot := metrics.SumSquares(yteS)
		ssxTot := metrics.SumSquares(xteS)

		npcF := len(fold.Train)
		if p < npcF {
			npcF = p
		}
		if npcF < npc0 {
			npc0 = npcF
		}

		cv.logger.Debug("fitting fold",
			log.FoldKey, f,
			log.TrainSamplesKey, len(fold.Train),
			log.TestSamplesKey, len(fold.Test),
			log.ComponentsKey, npcF,
		)

		if isOPLS {
			est := pls.NewOPLS()
			if err := est.Fit(xtrS, ytrVec, npcF); err != nil {
				return errors.Wrapf(err, "fold %d", f)
			}
			for k := 1; k <= npcF; k++ {
				xteCorr, tcorr, err := est.Correct(xteS, k)
				if err != nil {
					return errors.Wrapf(err, "fold %d", f)
				}
				ypk, tpk, err := est.Predict(xteCorr, k)
				if err != nil {
					return errors.Wrapf(err, "fold %d", f)
				}

				for i, row := range fold.Test {
					// The first correction score carries the
					// dominant orthogonal variation.
					cv.tortho.Set(row, k-1, tcorr.At(i, 0))
					cv.tpred.Set(row, k-1, tpk.AtVec(i))
					cv.ypred.Set(row, k-1, ypk.AtVec(i))
					d := ypk.AtVec(i) - yteS.At(i, 0)
					cv.pressy.Set(row, k-1, d*d)
				}

				ssxCorr[k-1][f] = metrics.SumSquares(xteCorr)
				var xteOrtho mat.Dense
				xteOrtho.Mul(tcorr, est.OrthogonalLoadings().Slice(0, p, 0, k).T())
				ssxXYO[k-1][f] = metrics.SumSquares(&xteOrtho)
				ssxTotal[k-1][f] = ssxTot

				// Predictive loading of this fold's training data,
				// kept for assessing loading stability across folds.
				tp := est.PredictiveScores().ColView(k - 1)
				var wv mat.VecDense
				wv.MulVec(xtrS.T(), tp)
				wv.ScaleVec(1/mat.Dot(tp, tp), &wv)
				cv.pcv[k-1].SetRow(f, wv.RawVector().Data)
			}
		} else {
			est := pls.NewPLS()
			if err := est.Fit(xtrS, ytrVec, npcF); err != nil {
				return errors.Wrapf(err, "fold %d", f)
			}
			for k := 1; k <= npcF; k++ {
				ypk, err := est.Predict(xteS, k)
				if err != nil {
					return errors.Wrapf(err, "fold %d", f)
				}
				for i, row := range fold.Test {
					cv.ypred.Set(row, k-1, ypk.AtVec(i))
					d := ypk.AtVec(i) - yteS.At(i, 0)
					cv.pressy.Set(row, k-1, d*d)
				}
			}
		}

		ssy = append(ssy, ssyTot)
	}

	// Keep only the component counts every fold was able to fit.
	cv.npc = npc0
	cv.ypred = cv.ypred.Slice(0, n, 0, npc0).(*mat.Dense)
	cv.pressy = cv.pressy.Slice(0, n, 0, npc0).(*mat.Dense)
	cv.ssy = floats.Sum(ssy)
	if isOPLS {
		cv.tortho = cv.tortho.Slice(0, n, 0, npc0).(*mat.Dense)
		cv.tpred = cv.tpred.Slice(0, n, 0, npc0).(*mat.Dense)
		cv.pcv = cv.pcv[:npc0]
		ssxCorr = ssxCorr[:npc0]
		ssxXYO = ssxXYO[:npc0]
		ssxTotal = ssxTotal[:npc0]
	}

	if err := cv.summaryCV(ssxCorr, ssxXYO, ssxTotal); err != nil {
		return err
	}
	if err := cv.createOptimalModel(x); err != nil {
		return err
	}

	cv.state.SetDimensions(n, p)
	cv.state.SetFitted()

	cv.logger.Info("cross validation complete",
		log.OperationKey, log.OperationCrossValidate,
		log.EstimatorKey, string(cv.estimator),
		log.OptimalComponentsKey, cv.opt+1,
		log.Q2Key, cv.q2[cv.opt],
		log.MisclassificationsKey, cv.nmc[cv.opt],
		log.R2XKey, cv.r2x,
		log.R2YKey, cv.r2y,
	)
	return nil
}

// summaryCV reduces the out-of-fold accumulators to quality metrics and
// selects the optimal component count.
func (cv *CrossValidation) summaryCV(ssxCorr, ssxXYO, ssxTotal [][]float64) error {
	nmc, err := metrics.Misclassifications(cv.ypred, cv.y)
	if err != nil {
		return err
	}
	cv.nmc = nmc
	cv.opt = metrics.ArgMin(nmc)

	n, _ := cv.pressy.Dims()
	cv.q2 = make([]float64, cv.npc)
	col := make([]float64, n)
	for j := 0; j < cv.npc; j++ {
		mat.Col(col, j, cv.pressy)
		cv.q2[j] = metrics.Q2(floats.Sum(col), cv.ssy)
	}

	if cv.estimator == OPLSEstimator {
		cv.r2xcorr = make([]float64, cv.npc)
		cv.r2xyo = make([]float64, cv.npc)
		for k := 0; k < cv.npc; k++ {
			total := floats.Sum(ssxTotal[k])
			if total == 0 {
				errors.Warn(errors.NewUndefinedMetricWarning("R2Xcorr", "total sum of squares is zero", floats.Sum(ssxCorr[k])/total))
			}
			cv.r2xcorr[k] = floats.Sum(ssxCorr[k]) / total
			cv.r2xyo[k] = floats.Sum(ssxXYO[k]) / total
		}
	}
	return nil
}

// createOptimalModel refits scalers and the estimator on the full data at
// the selected component count and summarizes the fit.
func (cv *CrossValidation) createOptimalModel(x mat.Matrix) error {
	cv.yscaler = preprocessing.NewScaler(cv.scaling)
	yS, err := cv.yscaler.FitTransform(cv.y)
	if err != nil {
		return err
	}
	cv.xscaler = preprocessing.NewScaler(cv.scaling)
	xS, err := cv.xscaler.FitTransform(x)
	if err != nil {
		return err
	}

	npc := cv.opt + 1
	yVec := denseColumn(yS)
	if cv.estimator == OPLSEstimator {
		cv.oplsModel = pls.NewOPLS()
		if err := cv.oplsModel.Fit(xS, yVec, npc); err != nil {
			return err
		}
	} else {
		cv.plsModel = pls.NewPLS()
		if err := cv.plsModel.Fit(xS, yVec, npc); err != nil {
			return err
		}
	}
	return cv.summaryFit(xS, yVec)
}

// summaryFit derives the modeled variation of the full scaled data and, for
// OPLS, the covariance and correlation loading profiles used for variable
// importance assessment.
//
// Reference:
//
//	Wiklund S, et al. Visualization of GC/TOF-MS-Based Metabolomics Data
//	for Identification of Biochemically Interesting Compounds Using OPLS
//	Class Models. Anal Chem. 2008, 80, 115-122.
func (cv *CrossValidation) summaryFit(x *mat.Dense, y *mat.VecDense) error {
	npc := cv.opt + 1
	_, p := x.Dims()

	var xrec mat.Dense
	var yrec mat.VecDense
	if cv.estimator == OPLSEstimator {
		tp, err := cv.oplsModel.PredictiveScoreAt(npc)
		if err != nil {
			return err
		}
		ssTp := mat.Dot(tp, tp)

		var wv mat.VecDense
		wv.MulVec(x.T(), tp)
		cv.cov = mat.NewVecDense(p, nil)
		cv.cov.ScaleVec(1/ssTp, &wv)
		cv.corr = mat.NewVecDense(p, nil)
		sqrtSS := math.Sqrt(ssTp)
		for j := 0; j < p; j++ {
			cv.corr.SetVec(j, wv.AtVec(j)/(sqrtSS*mat.Norm(x.ColView(j), 2)))
		}

		// Reconstruct x from the orthogonal components plus the
		// predictive component, and y from the predictive score.
		xrec.Mul(cv.oplsModel.OrthogonalScores(), cv.oplsModel.OrthogonalLoadings().T())
		xrec.RankOne(&xrec, 1, tp, cv.oplsModel.PredictiveLoadings().ColView(npc-1))
		yrec.ScaleVec(cv.oplsModel.WeightsY().AtVec(npc-1), tp)
	} else {
		xrec.Mul(cv.plsModel.ScoresX(), cv.plsModel.LoadingsX().T())
		yrec.MulVec(cv.plsModel.ScoresX(), cv.plsModel.WeightsY())
	}

	r2x, err := metrics.R2(x, &xrec)
	if err != nil {
		return err
	}
	r2y, err := metrics.R2(y, &yrec)
	if err != nil {
		return err
	}
	cv.r2x, cv.r2y = r2x, r2y
	return nil
}

// Predict returns predictions for the rows of x from the final model at the
// optimal component count. Predictions live in the scaled response space:
// positive values indicate class 1, non-positive class 0.
func (cv *CrossValidation) Predict(x mat.Matrix) (_ *mat.VecDense, err error) {
	defer errors.Recover(&err, "CrossValidation.Predict")

	if !cv.state.IsFitted() {
		return nil, errors.NewNotFittedError("CrossValidation", "Predict")
	}
	xS, err := cv.xscaler.Transform(x)
	if err != nil {
		return nil, err
	}
	npc := cv.opt + 1
	if cv.estimator == OPLSEstimator {
		xc, _, err := cv.oplsModel.Correct(xS, npc)
		if err != nil {
			return nil, err
		}
		yhat, _, err := cv.oplsModel.Predict(xc, npc)
		return yhat, err
	}
	return cv.plsModel.Predict(xS, npc)
}

// GetParams returns the configuration of the cross validation.
func (cv *CrossValidation) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"estimator": string(cv.estimator),
		"kfold":     cv.kfold,
		"scaling":   string(cv.scaling),
	}
}

// makeGrid allocates a components-by-folds accumulator.
func makeGrid(components, folds int) [][]float64 {
	g := make([][]float64, components)
	for i := range g {
		g[i] = make([]float64, folds)
	}
	return g
}

// pickRows copies the given rows of x into a new matrix.
func pickRows(x mat.Matrix, rows []int) *mat.Dense {
	_, p := x.Dims()
	out := mat.NewDense(len(rows), p, nil)
	for i, r := range rows {
		for j := 0; j < p; j++ {
			out.Set(i, j, x.At(r, j))
		}
	}
	return out
}

// pickVec copies the given entries of y into a new vector.
func pickVec(y *mat.VecDense, rows []int) *mat.VecDense {
	out := mat.NewVecDense(len(rows), nil)
	for i, r := range rows {
		out.SetVec(i, y.AtVec(r))
	}
	return out
}

// columnVector copies the single column of y into a vector.
func columnVector(y mat.Matrix) *mat.VecDense {
	if v, ok := y.(*mat.VecDense); ok {
		return mat.VecDenseCopyOf(v)
	}
	r, _ := y.Dims()
	out := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		out.SetVec(i, y.At(i, 0))
	}
	return out
}

// denseColumn views the single column of d as a vector copy.
func denseColumn(d *mat.Dense) *mat.VecDense {
	r, _ := d.Dims()
	out := mat.NewVecDense(r, nil)
	out.CopyVec(d.ColView(0))
	return out
}
