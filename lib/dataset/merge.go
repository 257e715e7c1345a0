package dataset

import (
	"github.com/ValentinKolb/pRDD/lib/engine"
)

// --------------------------------------------------------------------------
// Merge
// --------------------------------------------------------------------------

// mergePart concatenates all parent partitions in their declared order.
// Forward-only; parents are opened lazily as the cursor reaches them.
type mergePart[E any] struct {
	base
	parents []Partition[E]
}

func (p *mergePart[E]) Iter() Iterator[E] {
	return iterate(&p.base, func() Iterator[E] {
		return &concatIter[E]{parents: p.parents}
	})
}

// concatIter steps through the parents, skipping empty ones on advance.
type concatIter[E any] struct {
	parents []Partition[E]
	index   int
	inner   Iterator[E]
}

func (it *concatIter[E]) Next() (E, bool) {
	for {
		if it.inner == nil {
			if it.index >= len(it.parents) {
				var zero E
				return zero, false
			}
			it.inner = it.parents[it.index].Iter()
			it.index++
		}
		if v, ok := it.inner.Next(); ok {
			return v, true
		}
		it.inner = nil
	}
}

// Merge creates a dataset with exactly one partition whose elements are the
// concatenation of all of d's partitions in index order.
func (d *Dataset[E]) Merge() *Dataset[E] {
	ids := make([]engine.PartitionID, len(d.parts))
	for i, parent := range d.parts {
		ids[i] = parent.ID()
	}

	part := &mergePart[E]{
		base:    newBase(d.ctx, ids...),
		parents: d.parts,
	}
	return newDataset(d.ctx, []Partition[E]{part})
}
