package seqs_test

import (
	"slices"
	"testing"

	"chunkiter/seqs"
)

func TestRange(t *testing.T) {
	if got := slices.Collect(seqs.Range(0, 5, 1)); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Range(0,5,1) = %v", got)
	}
	if got := slices.Collect(seqs.Range(5, 0, -2)); !slices.Equal(got, []int{5, 3, 1}) {
		t.Errorf("Range(5,0,-2) = %v", got)
	}
	if got := slices.Collect(seqs.Range(0, 5, 0)); len(got) != 0 {
		t.Errorf("Range with zero step = %v, want empty", got)
	}
}

func TestRepeat(t *testing.T) {
	if got := slices.Collect(seqs.Repeat("a", 3)); !slices.Equal(got, []string{"a", "a", "a"}) {
		t.Errorf("Repeat = %v", got)
	}
}

func TestTake(t *testing.T) {
	if got := slices.Collect(seqs.Take(seqs.Range(0, 100, 1), 3)); !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("Take = %v", got)
	}
	if got := slices.Collect(seqs.Take(seqs.Range(0, 100, 1), 0)); len(got) != 0 {
		t.Errorf("Take(0) = %v, want empty", got)
	}
}

func TestFilterMap(t *testing.T) {
	even := seqs.Filter(seqs.Range(0, 10, 1), func(v int) bool { return v%2 == 0 })
	doubled := seqs.Map(even, func(v int) int { return v * 2 })
	if got := slices.Collect(doubled); !slices.Equal(got, []int{0, 4, 8, 12, 16}) {
		t.Errorf("Filter+Map = %v", got)
	}
}

func TestSinks(t *testing.T) {
	if v, ok := seqs.First(seqs.Range(7, 10, 1)); !ok || v != 7 {
		t.Errorf("First = %d, %v", v, ok)
	}
	if _, ok := seqs.First(seqs.Range(0, 0, 1)); ok {
		t.Error("First of empty sequence reported a value")
	}
	if got := seqs.Count(seqs.Repeat(0, 4)); got != 4 {
		t.Errorf("Count = %d", got)
	}
}
