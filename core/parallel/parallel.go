package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits items across the available CPU cores and runs fn
// concurrently on each half-open range [start, end). It returns after all
// ranges have been processed.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Spread the remainder so ranges differ in size by at most one.
	base := items / numWorkers
	rem := items % numWorkers

	var wg sync.WaitGroup
	start := 0
	for i := 0; i < numWorkers; i++ {
		size := base
		if i < rem {
			size++
		}
		end := start + size

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)

		start = end
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn in parallel only when items exceeds
// threshold. Below the threshold the whole range is processed sequentially,
// avoiding goroutine overhead on small data.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}
