package crossval

// Fold is one train/test partition of sample row indices.
type Fold struct {
	Train []int
	Test  []int
}

// BlockKFold partitions n samples into K contiguous test blocks of n/K rows
// each, in order and without shuffling. Rows are expected to be grouped by
// class, one group following the other, so each block draws from a narrow
// slice of the data; there is no class balance guarantee within a fold.
//
// When K does not divide n, the trailing n mod K rows are never placed in a
// test block and are used for training only.
type BlockKFold struct {
	K int
}

// Split returns the K folds for n samples. Fold i holds out rows
// [i*blk, (i+1)*blk) with blk = n/K and trains on the complement.
func (s BlockKFold) Split(n int) []Fold {
	blk := n / s.K
	folds := make([]Fold, s.K)
	for i := 0; i < s.K; i++ {
		lo := blk * i
		hi := blk * (i + 1)
		if hi > n {
			hi = n
		}
		test := make([]int, 0, hi-lo)
		train := make([]int, 0, n-(hi-lo))
		for j := 0; j < n; j++ {
			if j >= lo && j < hi {
				test = append(test, j)
			} else {
				train = append(train, j)
			}
		}
		folds[i] = Fold{Train: train, Test: test}
	}
	return folds
}
