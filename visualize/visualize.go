// Package visualize renders the standard diagnostic plots of a cross
// validated model to image files: the predictive versus orthogonal score
// scatter, the S-plot of variable covariance against correlation, and the
// per-component misclassification and Q2 curves. The output format follows
// the file extension, as supported by gonum/plot.
package visualize

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/DongElkan/plsgo/crossval"
	"github.com/DongElkan/plsgo/pkg/errors"
)

var (
	class0Color = color.RGBA{B: 255, A: 255}
	class1Color = color.RGBA{R: 255, A: 255}
)

// Scores renders the cross validated predictive versus orthogonal score
// scatter, one glyph style per class. The model must be a fitted OPLS cross
// validation.
func Scores(cv *crossval.CrossValidation, path string) error {
	tp, err := cv.PredictiveScore()
	if err != nil {
		return err
	}
	to, err := cv.OrthogonalScore()
	if err != nil {
		return err
	}
	labels, err := cv.Labels()
	if err != nil {
		return err
	}

	var neg, pos plotter.XYs
	for i := 0; i < tp.Len(); i++ {
		xy := plotter.XY{X: tp.AtVec(i), Y: to.AtVec(i)}
		if labels.AtVec(i) > 0.5 {
			pos = append(pos, xy)
		} else {
			neg = append(neg, xy)
		}
	}

	return errors.SafeExecute("visualize.Scores", func() error {
		p := plot.New()
		p.Title.Text = "Cross validated scores"
		p.X.Label.Text = "Predictive score"
		p.Y.Label.Text = "Orthogonal score"

		if len(neg) > 0 {
			s, err := plotter.NewScatter(neg)
			if err != nil {
				return err
			}
			s.Color = class0Color
			p.Add(s)
			p.Legend.Add("class 0", s)
		}
		if len(pos) > 0 {
			s, err := plotter.NewScatter(pos)
			if err != nil {
				return err
			}
			s.Color = class1Color
			s.Shape = draw.PyramidGlyph{}
			p.Add(s)
			p.Legend.Add("class 1", s)
		}
		p.Legend.Top = true

		return p.Save(5*vg.Inch, 4*vg.Inch, path)
	})
}

// SPlot renders the covariance against the correlation of each variable with
// the predictive score, the variable importance view of OPLS-DA. The model
// must be a fitted OPLS cross validation.
func SPlot(cv *crossval.CrossValidation, path string) error {
	cov, err := cv.Covariance()
	if err != nil {
		return err
	}
	corr, err := cv.Correlation()
	if err != nil {
		return err
	}

	pts := make(plotter.XYs, 0, cov.Len())
	for j := 0; j < cov.Len(); j++ {
		x, y := cov.AtVec(j), corr.AtVec(j)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}

	return errors.SafeExecute("visualize.SPlot", func() error {
		p := plot.New()
		p.Title.Text = "S-plot"
		p.X.Label.Text = "Covariance"
		p.Y.Label.Text = "Correlation"

		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.Color = class0Color
		s.Radius = vg.Points(2)
		p.Add(s)

		return p.Save(5*vg.Inch, 4*vg.Inch, path)
	})
}

// Misclassifications renders the held-out misclassification count against
// the number of components.
func Misclassifications(cv *crossval.CrossValidation, path string) error {
	nmc, err := cv.Misclassifications()
	if err != nil {
		return err
	}

	pts := make(plotter.XYs, len(nmc))
	for k, v := range nmc {
		pts[k] = plotter.XY{X: float64(k + 1), Y: float64(v)}
	}

	return errors.SafeExecute("visualize.Misclassifications", func() error {
		p := plot.New()
		p.Title.Text = "Cross validation error"
		p.X.Label.Text = "Number of components"
		p.Y.Label.Text = "Misclassifications"

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		line.Color = class0Color
		points.Color = class0Color
		points.Shape = draw.CircleGlyph{}
		p.Add(line, points)

		return p.Save(5*vg.Inch, 4*vg.Inch, path)
	})
}

// Q2 renders the cross validated predictive ability against the number of
// components. Component counts with an undefined Q2 are left out.
func Q2(cv *crossval.CrossValidation, path string) error {
	q2, err := cv.Q2PerComponent()
	if err != nil {
		return err
	}

	pts := make(plotter.XYs, 0, len(q2))
	for k, v := range q2 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(k + 1), Y: v})
	}

	return errors.SafeExecute("visualize.Q2", func() error {
		p := plot.New()
		p.Title.Text = "Predictive ability"
		p.X.Label.Text = "Number of components"
		p.Y.Label.Text = "Q2"

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		line.Color = class1Color
		points.Color = class1Color
		points.Shape = draw.CircleGlyph{}
		p.Add(line, points)

		return p.Save(5*vg.Inch, 4*vg.Inch, path)
	})
}
