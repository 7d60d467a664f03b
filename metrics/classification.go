package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/DongElkan/plsgo/pkg/errors"
)

// Misclassifications counts, for every column of scores, the samples whose
// predicted class disagrees with the label. A sample is assigned class 1
// when its score is strictly positive and class 0 otherwise, matching
// centered predictions of a 0/1 response. Labels outside {0,1} silently
// degrade the counts.
func Misclassifications(scores mat.Matrix, labels mat.Vector) ([]int, error) {
	n, k := scores.Dims()
	if n == 0 || k == 0 {
		return nil, errors.NewValueError("Misclassifications", "empty matrix")
	}
	if labels.Len() != n {
		return nil, errors.NewDimensionError("Misclassifications", n, labels.Len(), 0)
	}

	counts := make([]int, k)
	for j := 0; j < k; j++ {
		for i := 0; i < n; i++ {
			pred := 0.0
			if scores.At(i, j) > 0 {
				pred = 1.0
			}
			if pred != labels.AtVec(i) {
				counts[j]++
			}
		}
	}
	return counts, nil
}

// ArgMin returns the index of the smallest value, taking the first on ties.
// An empty slice returns -1.
func ArgMin(values []int) int {
	if len(values) == 0 {
		return -1
	}
	best := 0
	for i, v := range values {
		if v < values[best] {
			best = i
		}
	}
	return best
}
