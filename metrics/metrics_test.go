package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/DongElkan/plsgo/pkg/errors"
)

func TestSumSquares(t *testing.T) {
	tests := []struct {
		name string
		m    mat.Matrix
		want float64
	}{
		{
			name: "vector",
			m:    mat.NewVecDense(3, []float64{1, -2, 3}),
			want: 14,
		},
		{
			name: "matrix",
			m:    mat.NewDense(2, 2, []float64{1, 1, -1, 2}),
			want: 7,
		},
		{
			name: "zeros",
			m:    mat.NewDense(2, 3, nil),
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumSquares(tt.m); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SumSquares() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestR2(t *testing.T) {
	obs := mat.NewVecDense(4, []float64{2, -1, 1, -2})

	t.Run("perfect fit", func(t *testing.T) {
		got, err := R2(obs, obs)
		if err != nil {
			t.Fatalf("R2() error = %v", err)
		}
		if got != 1 {
			t.Errorf("R2() = %v, want 1", got)
		}
	})

	t.Run("half residual", func(t *testing.T) {
		fit := mat.NewVecDense(4, []float64{1, -0.5, 0.5, -1})
		got, err := R2(obs, fit)
		if err != nil {
			t.Fatalf("R2() error = %v", err)
		}
		// Residual sum is a quarter of the observed sum.
		if math.Abs(got-0.75) > 1e-12 {
			t.Errorf("R2() = %v, want 0.75", got)
		}
	})

	t.Run("shape mismatch", func(t *testing.T) {
		_, err := R2(obs, mat.NewVecDense(3, []float64{1, 2, 3}))
		var dim *errors.DimensionError
		if !errors.As(err, &dim) {
			t.Errorf("R2() error = %v, want DimensionError", err)
		}
	})

	t.Run("zero observed warns", func(t *testing.T) {
		var captured error
		restore := errors.SetWarningHandler(func(w error) { captured = w })
		defer errors.SetWarningHandler(restore)

		got, err := R2(mat.NewVecDense(2, nil), mat.NewVecDense(2, []float64{1, 1}))
		if err != nil {
			t.Fatalf("R2() error = %v", err)
		}
		if !math.IsInf(got, -1) {
			t.Errorf("R2() = %v, want -Inf", got)
		}
		var warn *errors.UndefinedMetricWarning
		if !errors.As(captured, &warn) {
			t.Errorf("warning = %v, want UndefinedMetricWarning", captured)
		}
	})
}

func TestQ2(t *testing.T) {
	if got := Q2(2, 8); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("Q2() = %v, want 0.75", got)
	}

	var captured error
	restore := errors.SetWarningHandler(func(w error) { captured = w })
	defer errors.SetWarningHandler(restore)
	if got := Q2(0, 0); !math.IsNaN(got) {
		t.Errorf("Q2(0, 0) = %v, want NaN", got)
	}
	if captured == nil {
		t.Error("Q2(0, 0) did not warn")
	}
}

func TestMisclassifications(t *testing.T) {
	// Column 0 classifies every sample correctly, column 1 flips two.
	scores := mat.NewDense(4, 2, []float64{
		0.8, -0.2,
		0.3, 0.4,
		-0.5, 0.1,
		-0.9, -0.6,
	})
	labels := mat.NewVecDense(4, []float64{1, 1, 0, 0})

	counts, err := Misclassifications(scores, labels)
	if err != nil {
		t.Fatalf("Misclassifications() error = %v", err)
	}
	if counts[0] != 0 || counts[1] != 2 {
		t.Errorf("Misclassifications() = %v, want [0 2]", counts)
	}
}

func TestMisclassificationsZeroScoreIsClassZero(t *testing.T) {
	scores := mat.NewDense(2, 1, []float64{0, 0})
	labels := mat.NewVecDense(2, []float64{1, 0})

	counts, err := Misclassifications(scores, labels)
	if err != nil {
		t.Fatalf("Misclassifications() error = %v", err)
	}
	if counts[0] != 1 {
		t.Errorf("Misclassifications() = %v, want [1]", counts)
	}
}

func TestMisclassificationsLengthMismatch(t *testing.T) {
	_, err := Misclassifications(mat.NewDense(2, 1, []float64{1, -1}), mat.NewVecDense(3, nil))
	var dim *errors.DimensionError
	if !errors.As(err, &dim) {
		t.Errorf("Misclassifications() error = %v, want DimensionError", err)
	}
}

func TestArgMin(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{name: "single minimum", values: []int{5, 2, 7}, want: 1},
		{name: "first of ties", values: []int{3, 1, 1, 4}, want: 1},
		{name: "descending", values: []int{4, 3, 2}, want: 2},
		{name: "empty", values: nil, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArgMin(tt.values); got != tt.want {
				t.Errorf("ArgMin(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}
