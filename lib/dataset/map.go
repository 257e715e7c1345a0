package dataset

// --------------------------------------------------------------------------
// Map
// --------------------------------------------------------------------------

// mapPart applies f element-wise over one parent partition.
type mapPart[A, B any] struct {
	base
	parent Partition[A]
	f      func(A) B
}

func (p *mapPart[A, B]) Iter() Iterator[B] {
	return iterate(&p.base, func() Iterator[B] {
		return &mapIter[A, B]{inner: p.parent.Iter(), f: p.f}
	})
}

// mapRandomPart is the random-access variant, used when the parent partition
// itself supports random access.
type mapRandomPart[A, B any] struct {
	mapPart[A, B]
	ra RandomAccess[A]
}

func (p *mapRandomPart[A, B]) Len() int {
	return p.ra.Len()
}

func (p *mapRandomPart[A, B]) At(i int) B {
	return p.f(p.ra.At(i))
}

type mapIter[A, B any] struct {
	inner Iterator[A]
	f     func(A) B
}

func (it *mapIter[A, B]) Next() (B, bool) {
	v, ok := it.inner.Next()
	if !ok {
		var zero B
		return zero, false
	}
	return it.f(v), true
}

// Map creates a dataset whose elements are f applied to every element of d,
// one child partition per parent partition. The iterator category of the
// parent is preserved: mapping a random-access partition yields a
// random-access partition.
func Map[A, B any](d *Dataset[A], f func(A) B) *Dataset[B] {
	parts := make([]Partition[B], len(d.parts))
	for i, parent := range d.parts {
		mp := mapPart[A, B]{
			base:   newBase(d.ctx, parent.ID()),
			parent: parent,
			f:      f,
		}
		if ra, ok := parent.(RandomAccess[A]); ok {
			parts[i] = &mapRandomPart[A, B]{mapPart: mp, ra: ra}
		} else {
			parts[i] = &mp
		}
	}
	return newDataset(d.ctx, parts)
}
