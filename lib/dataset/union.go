package dataset

// --------------------------------------------------------------------------
// Union
// --------------------------------------------------------------------------

// unionPart mirrors exactly one parent partition.
type unionPart[E any] struct {
	base
	parent Partition[E]
}

func (p *unionPart[E]) Iter() Iterator[E] {
	return iterate(&p.base, func() Iterator[E] {
		return p.parent.Iter()
	})
}

// Union creates a dataset containing the elements of d followed by the
// elements of other. The result has len(d) + len(other) partitions: the first
// block mirrors d's partitions, the second block other's.
func (d *Dataset[E]) Union(other *Dataset[E]) *Dataset[E] {
	parts := make([]Partition[E], 0, len(d.parts)+len(other.parts))
	for _, parent := range d.parts {
		parts = append(parts, &unionPart[E]{
			base:   newBase(d.ctx, parent.ID()),
			parent: parent,
		})
	}
	for _, parent := range other.parts {
		parts = append(parts, &unionPart[E]{
			base:   newBase(d.ctx, parent.ID()),
			parent: parent,
		})
	}
	return newDataset(d.ctx, parts)
}
