package dataset

import (
	"sync"
)

// --------------------------------------------------------------------------
// GroupByKey
// --------------------------------------------------------------------------

// groupPart groups one parent partition's pairs by key. The grouping map is
// built eagerly on first demand, guarded by a per-partition lock, and
// memoized for the lifetime of the partition. Key order is unspecified but
// stable within one materialization. Memory is proportional to the parent
// partition's element count.
type groupPart[K comparable, V any] struct {
	base
	parent Partition[Pair[K, V]]

	once    sync.Once
	groups  []Pair[K, []V]
	failure interface{}
}

// materialize builds the grouping exactly once. A failure during the build
// (a panicking upstream user function) is remembered and re-raised for every
// later caller, mirroring the no-retry cache policy.
func (p *groupPart[K, V]) materialize() []Pair[K, []V] {
	p.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				p.failure = r
			}
		}()

		m := make(map[K][]V)
		var order []K
		it := p.parent.Iter()
		for kv, ok := it.Next(); ok; kv, ok = it.Next() {
			if _, seen := m[kv.Key]; !seen {
				order = append(order, kv.Key)
			}
			m[kv.Key] = append(m[kv.Key], kv.Value)
		}

		p.groups = make([]Pair[K, []V], len(order))
		for i, k := range order {
			p.groups[i] = Pair[K, []V]{Key: k, Value: m[k]}
		}
	})
	if p.failure != nil {
		panic(p.failure)
	}
	return p.groups
}

func (p *groupPart[K, V]) Iter() Iterator[Pair[K, []V]] {
	return iterate(&p.base, func() Iterator[Pair[K, []V]] {
		return newSliceIter(p.materialize())
	})
}

// GroupByKey groups the values of a key-value dataset by key, partition by
// partition. The input must already be partitioned by key (the output of
// PartitionByKey or an equivalent layout), otherwise the same key appears in
// several output partitions.
func GroupByKey[K comparable, V any](d *Dataset[Pair[K, V]]) *Dataset[Pair[K, []V]] {
	parts := make([]Partition[Pair[K, []V]], len(d.parts))
	for i, parent := range d.parts {
		parts[i] = &groupPart[K, V]{
			base:   newBase(d.ctx, parent.ID()),
			parent: parent,
		}
	}
	return newDataset(d.ctx, parts)
}
