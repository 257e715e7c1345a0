package dataset

import (
	"testing"
)

func TestSplitBounds(t *testing.T) {
	cases := []struct {
		size int64
		n    int
	}{
		{size: 0, n: 4},
		{size: 3, n: 8},
		{size: 100, n: 8},
		{size: 101, n: 8},
		{size: 7, n: 7},
	}

	for _, c := range cases {
		var total int64
		prevHi := int64(0)
		for i := 0; i < c.n; i++ {
			lo, hi := splitBounds(c.size, i, c.n)
			if lo != prevHi {
				t.Errorf("size=%d n=%d split %d: expected lo %d, got %d", c.size, c.n, i, prevHi, lo)
			}
			if hi < lo {
				t.Errorf("size=%d n=%d split %d: inverted bounds [%d, %d)", c.size, c.n, i, lo, hi)
			}
			total += hi - lo
			prevHi = hi
		}
		if total != c.size {
			t.Errorf("size=%d n=%d: splits cover %d elements", c.size, c.n, total)
		}
		if prevHi != c.size {
			t.Errorf("size=%d n=%d: last split ends at %d", c.size, c.n, prevHi)
		}
	}
}

func TestFilterIter(t *testing.T) {
	it := &filterIter[int]{
		inner: newSliceIter([]int{1, 2, 3, 4, 5, 6}),
		pred:  func(x int) bool { return x%2 == 0 },
	}

	var got []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != 2 || got[1] != 4 || got[2] != 6 {
		t.Errorf("Expected [2 4 6], got %v", got)
	}
}

func TestFlatMapIterSkipsEmpty(t *testing.T) {
	it := &flatMapIter[int, int]{
		outer: newSliceIter([]int{0, 1, 2, 3}),
		f: func(x int) []int {
			if x%2 == 0 {
				return nil
			}
			return []int{x * 10, x*10 + 1}
		},
	}

	var got []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	want := []int{10, 11, 30, 31}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestFuncIter(t *testing.T) {
	it := newFuncIter(3, func(i int) int { return i * i })

	var got []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 4 {
		t.Errorf("Expected [0 1 4], got %v", got)
	}

	// Exhausted iterators stay exhausted.
	if _, ok := it.Next(); ok {
		t.Error("Expected Next to keep returning false after exhaustion")
	}
}

func TestDrainEmpty(t *testing.T) {
	if got := drain[int](newSliceIter[int](nil)); len(got) != 0 {
		t.Errorf("Expected empty drain, got %v", got)
	}
}
