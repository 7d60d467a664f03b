package crossval

import (
	"testing"
)

func TestBlockKFoldSplitExactDivision(t *testing.T) {
	folds := BlockKFold{K: 5}.Split(20)
	if len(folds) != 5 {
		t.Fatalf("Split() returned %d folds, want 5", len(folds))
	}

	seen := make(map[int]int)
	for i, fold := range folds {
		if len(fold.Test) != 4 {
			t.Errorf("fold %d test size = %d, want 4", i, len(fold.Test))
		}
		if len(fold.Train) != 16 {
			t.Errorf("fold %d train size = %d, want 16", i, len(fold.Train))
		}
		for _, idx := range fold.Test {
			seen[idx]++
		}

		// Train and test are complementary.
		inTest := make(map[int]bool, len(fold.Test))
		for _, idx := range fold.Test {
			inTest[idx] = true
		}
		for _, idx := range fold.Train {
			if inTest[idx] {
				t.Errorf("fold %d: index %d in both train and test", i, idx)
			}
		}
	}

	// Every sample is held out exactly once.
	for idx := 0; idx < 20; idx++ {
		if seen[idx] != 1 {
			t.Errorf("index %d held out %d times, want 1", idx, seen[idx])
		}
	}
}

func TestBlockKFoldSplitContiguousBlocks(t *testing.T) {
	folds := BlockKFold{K: 4}.Split(12)
	for i, fold := range folds {
		lo := 3 * i
		for j, idx := range fold.Test {
			if idx != lo+j {
				t.Errorf("fold %d test = %v, want block starting at %d", i, fold.Test, lo)
				break
			}
		}
	}
}

func TestBlockKFoldSplitRemainderNeverTested(t *testing.T) {
	// 23 samples over 5 folds: block size 4, rows 20-22 train only.
	folds := BlockKFold{K: 5}.Split(23)

	tested := make(map[int]bool)
	for i, fold := range folds {
		for _, idx := range fold.Test {
			tested[idx] = true
		}
		trained := make(map[int]bool, len(fold.Train))
		for _, idx := range fold.Train {
			trained[idx] = true
		}
		for idx := 20; idx < 23; idx++ {
			if !trained[idx] {
				t.Errorf("fold %d: remainder row %d missing from train", i, idx)
			}
		}
	}
	for idx := 0; idx < 20; idx++ {
		if !tested[idx] {
			t.Errorf("index %d never held out", idx)
		}
	}
	for idx := 20; idx < 23; idx++ {
		if tested[idx] {
			t.Errorf("remainder index %d held out", idx)
		}
	}
}

func TestBlockKFoldSplitSingleRowBlocks(t *testing.T) {
	folds := BlockKFold{K: 4}.Split(4)
	for i, fold := range folds {
		if len(fold.Test) != 1 || fold.Test[0] != i {
			t.Errorf("fold %d test = %v, want [%d]", i, fold.Test, i)
		}
		if len(fold.Train) != 3 {
			t.Errorf("fold %d train size = %d, want 3", i, len(fold.Train))
		}
	}
}
