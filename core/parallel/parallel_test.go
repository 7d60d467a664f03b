package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelizeCoversAllItems(t *testing.T) {
	for _, items := range []int{0, 1, 3, 7, 100, 1001} {
		var visited int64
		Parallelize(items, func(start, end int) {
			atomic.AddInt64(&visited, int64(end-start))
		})
		if visited != int64(items) {
			t.Errorf("items=%d: visited %d, want %d", items, visited, items)
		}
	}
}

func TestParallelizeDisjointRanges(t *testing.T) {
	const items = 500
	hits := make([]int64, items)
	Parallelize(items, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt64(&hits[i], 1)
		}
	})
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("item %d visited %d times, want exactly once", i, h)
		}
	}
}

func TestParallelizeWithThreshold(t *testing.T) {
	var calls int64
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		atomic.AddInt64(&calls, 1)
		if start != 0 || end != 10 {
			t.Errorf("sequential path got range [%d,%d), want [0,10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("below threshold: %d calls, want 1 sequential call", calls)
	}
}
