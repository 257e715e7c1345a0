package dataset

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Zip
// --------------------------------------------------------------------------

// zipPart pairs the elements of two parent partitions positionally. The
// sequence ends when either parent's does.
type zipPart[A, B any] struct {
	base
	left  Partition[A]
	right Partition[B]
}

func (p *zipPart[A, B]) Iter() Iterator[Zipped[A, B]] {
	return iterate(&p.base, func() Iterator[Zipped[A, B]] {
		return &zipIter[A, B]{left: p.left.Iter(), right: p.right.Iter()}
	})
}

type zipIter[A, B any] struct {
	left  Iterator[A]
	right Iterator[B]
}

func (it *zipIter[A, B]) Next() (Zipped[A, B], bool) {
	a, okA := it.left.Next()
	b, okB := it.right.Next()
	if !okA || !okB {
		var zero Zipped[A, B]
		return zero, false
	}
	return Zipped[A, B]{First: a, Second: b}, true
}

// Zip creates a dataset pairing the datasets elementwise: child partition i
// pairs a's partition i with b's partition i, truncating to the shorter of
// the two. The datasets must have the same partition count.
func Zip[A, B any](a *Dataset[A], b *Dataset[B]) (*Dataset[Zipped[A, B]], error) {
	if len(a.parts) != len(b.parts) {
		return nil, NewError(RetCShape,
			fmt.Sprintf("zip requires equal partition counts, got %d and %d",
				len(a.parts), len(b.parts)))
	}

	parts := make([]Partition[Zipped[A, B]], len(a.parts))
	for i := range a.parts {
		parts[i] = &zipPart[A, B]{
			base:  newBase(a.ctx, a.parts[i].ID(), b.parts[i].ID()),
			left:  a.parts[i],
			right: b.parts[i],
		}
	}
	return newDataset(a.ctx, parts), nil
}
