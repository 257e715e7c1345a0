package dataset

import (
	"github.com/ValentinKolb/pRDD/lib/engine"
)

// --------------------------------------------------------------------------
// Split Arithmetic
// --------------------------------------------------------------------------

// splitBounds returns the half-open sub-range [lo, hi) of the i-th of n splits
// over a sequence of the given size. Floor arithmetic spreads the remainder
// over the splits (size 10 over 4 splits gives 2, 3, 2, 3); the last split
// always ends at size.
func splitBounds(size int64, i, n int) (int64, int64) {
	lo := int64(i) * size / int64(n)
	hi := int64(i+1) * size / int64(n)
	return lo, hi
}

// --------------------------------------------------------------------------
// Source: Range
// --------------------------------------------------------------------------

// rangePart generates f(k) for k in [begin, end). Random-access: elements are
// pure function applications over the index range.
type rangePart[E any] struct {
	base
	begin, end int64
	f          func(int64) E
}

func (p *rangePart[E]) Iter() Iterator[E] {
	return iterate(&p.base, func() Iterator[E] {
		return newFuncIter(int(p.end-p.begin), func(i int) E {
			return p.f(p.begin + int64(i))
		})
	})
}

func (p *rangePart[E]) Len() int {
	return int(p.end - p.begin)
}

func (p *rangePart[E]) At(i int) E {
	return p.f(p.begin + int64(i))
}

// Range creates a dataset whose elements are f(k) for every k in the numeric
// range [begin, end). The range is split evenly over the context's parallel
// task number; an empty or inverted range yields empty partitions. Elements
// are computed lazily, one partition per task.
func Range[E any](ctx *engine.Context, begin, end int64, f func(int64) E) *Dataset[E] {
	n := ctx.Config().ParallelTaskNum
	size := end - begin
	if size < 0 {
		size = 0
	}

	parts := make([]Partition[E], n)
	for i := 0; i < n; i++ {
		lo, hi := splitBounds(size, i, n)
		parts[i] = &rangePart[E]{
			base:  newBase(ctx),
			begin: begin + lo,
			end:   begin + hi,
			f:     f,
		}
	}
	return newDataset(ctx, parts)
}

// --------------------------------------------------------------------------
// Source: FromSlice
// --------------------------------------------------------------------------

// slicePart exposes a sub-range of an in-memory sequence. Random-access.
type slicePart[E any] struct {
	base
	view []E
}

func (p *slicePart[E]) Iter() Iterator[E] {
	return iterate(&p.base, func() Iterator[E] {
		return newSliceIter(p.view)
	})
}

func (p *slicePart[E]) Len() int {
	return len(p.view)
}

func (p *slicePart[E]) At(i int) E {
	return p.view[i]
}

// FromSlice creates a dataset over an existing sequence. Partition i exposes
// the sub-range [⌊i·S/N⌋, ⌊(i+1)·S/N⌋) of the sequence by reference; the
// caller must not mutate the slice while the dataset is in use.
func FromSlice[E any](ctx *engine.Context, view []E) *Dataset[E] {
	n := ctx.Config().ParallelTaskNum

	parts := make([]Partition[E], n)
	for i := 0; i < n; i++ {
		lo, hi := splitBounds(int64(len(view)), i, n)
		parts[i] = &slicePart[E]{
			base: newBase(ctx),
			view: view[lo:hi],
		}
	}
	return newDataset(ctx, parts)
}
