package dataset

// --------------------------------------------------------------------------
// FlatMap
// --------------------------------------------------------------------------

// flatMapPart expands every parent element into a sequence and concatenates
// the expansions. Forward-only.
type flatMapPart[A, B any] struct {
	base
	parent Partition[A]
	f      func(A) []B
}

func (p *flatMapPart[A, B]) Iter() Iterator[B] {
	return iterate(&p.base, func() Iterator[B] {
		return &flatMapIter[A, B]{outer: p.parent.Iter(), f: p.f}
	})
}

// flatMapIter holds the outer cursor into the parent and the current
// expansion. Empty expansions are skipped on advance.
type flatMapIter[A, B any] struct {
	outer   Iterator[A]
	f       func(A) []B
	current []B
	pos     int
}

func (it *flatMapIter[A, B]) Next() (B, bool) {
	for it.pos >= len(it.current) {
		v, ok := it.outer.Next()
		if !ok {
			var zero B
			return zero, false
		}
		it.current = it.f(v)
		it.pos = 0
	}
	b := it.current[it.pos]
	it.pos++
	return b, true
}

// FlatMap creates a dataset whose elements are the concatenation of f applied
// to every element of d, one child partition per parent partition.
func FlatMap[A, B any](d *Dataset[A], f func(A) []B) *Dataset[B] {
	parts := make([]Partition[B], len(d.parts))
	for i, parent := range d.parts {
		parts[i] = &flatMapPart[A, B]{
			base:   newBase(d.ctx, parent.ID()),
			parent: parent,
			f:      f,
		}
	}
	return newDataset(d.ctx, parts)
}
