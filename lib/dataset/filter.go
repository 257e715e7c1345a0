package dataset

// --------------------------------------------------------------------------
// Filter
// --------------------------------------------------------------------------

// filterPart keeps the elements of one parent partition for which pred holds.
// Forward-only: positions are unknown before iterating.
type filterPart[E any] struct {
	base
	parent Partition[E]
	pred   func(E) bool
}

func (p *filterPart[E]) Iter() Iterator[E] {
	return iterate(&p.base, func() Iterator[E] {
		return &filterIter[E]{inner: p.parent.Iter(), pred: p.pred}
	})
}

type filterIter[E any] struct {
	inner Iterator[E]
	pred  func(E) bool
}

func (it *filterIter[E]) Next() (E, bool) {
	for {
		v, ok := it.inner.Next()
		if !ok {
			var zero E
			return zero, false
		}
		if it.pred(v) {
			return v, true
		}
	}
}

// Filter creates a dataset keeping only the elements for which pred holds,
// one child partition per parent partition.
func (d *Dataset[E]) Filter(pred func(E) bool) *Dataset[E] {
	parts := make([]Partition[E], len(d.parts))
	for i, parent := range d.parts {
		parts[i] = &filterPart[E]{
			base:   newBase(d.ctx, parent.ID()),
			parent: parent,
			pred:   pred,
		}
	}
	return newDataset(d.ctx, parts)
}
