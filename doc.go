// Package plsgo provides cross-validated partial least squares modeling for
// binary classification of high dimensional data, such as metabolomics or
// proteomics intensity tables.
//
// The library fits PLS-DA and OPLS-DA models with k-fold cross validation,
// selects the number of latent components from the held-out misclassification
// counts, and reports the standard quality metrics (Q2, R2X, R2Y and the
// OPLS variance fractions R2Xcorr and R2XYO) together with the covariance
// and correlation loading profiles used for variable selection.
//
// # Installation
//
//	go get github.com/DongElkan/plsgo
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/DongElkan/plsgo/crossval"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // x is an n by p data matrix, y holds one 0/1 label per row.
//	    x := mat.NewDense(n, p, data)
//	    y := mat.NewVecDense(n, labels)
//
//	    cv, err := crossval.New(crossval.WithKFold(5))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := cv.Fit(x, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    npc, _ := cv.OptimalComponents()
//	    q2, _ := cv.Q2()
//	    fmt.Printf("%d components, Q2 = %.3f\n", npc, q2)
//	}
//
// # Packages
//
//   - crossval: cross validated fitting, component selection and prediction
//   - pls: the PLS and OPLS estimators (NIPALS)
//   - preprocessing: column pretreatment (uv, pareto, minmax, mean centring)
//   - metrics: sums of squares, R2, Q2 and misclassification counts
//   - visualize: score scatter, S-plot and quality curves via gonum/plot
//   - pkg/errors: structured errors and warnings with stack traces
//   - pkg/log: structured logging facade used across the library
//   - core/model, core/parallel: shared model state and CPU parallel helpers
package plsgo
