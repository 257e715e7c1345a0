package dataset

import (
	"github.com/ValentinKolb/pRDD/lib/dataset/util"
	"github.com/ValentinKolb/pRDD/lib/engine"
)

// --------------------------------------------------------------------------
// PartitionByKey
// --------------------------------------------------------------------------

// DefaultHasher returns the hash function PartitionByKey uses when no
// partitioner is supplied: unseeded FNV-1a over the key, deterministic across
// runs.
func DefaultHasher[K comparable]() func(K) uint64 {
	return func(k K) uint64 {
		return util.HashKey(k, 0)
	}
}

// keyedPart is output partition i of a re-bucketing: a filter over the
// concatenation of every parent partition keeping the pairs whose key hashes
// to i. Nothing is materialized here; every output partition rescans every
// parent unless the parents are shared and therefore cached.
type keyedPart[K comparable, V any] struct {
	base
	parents []Partition[Pair[K, V]]
	hash    func(K) uint64
	index   uint64
	buckets uint64
}

func (p *keyedPart[K, V]) Iter() Iterator[Pair[K, V]] {
	return iterate(&p.base, func() Iterator[Pair[K, V]] {
		return &filterIter[Pair[K, V]]{
			inner: &concatIter[Pair[K, V]]{parents: p.parents},
			pred: func(kv Pair[K, V]) bool {
				return p.hash(kv.Key)%p.buckets == p.index
			},
		}
	})
}

// PartitionByKeyFunc re-buckets a key-value dataset with a user-supplied hash:
// pair (k, v) lands in output partition hash(k) mod N, where N is the
// context's parallel task number. Every output partition depends on every
// input partition. The hash function is called from arbitrary worker
// goroutines and must be safe for concurrent use.
func PartitionByKeyFunc[K comparable, V any](d *Dataset[Pair[K, V]], hash func(K) uint64) *Dataset[Pair[K, V]] {
	n := d.ctx.Config().ParallelTaskNum

	ids := make([]engine.PartitionID, len(d.parts))
	for i, parent := range d.parts {
		ids[i] = parent.ID()
	}

	parts := make([]Partition[Pair[K, V]], n)
	for i := 0; i < n; i++ {
		parts[i] = &keyedPart[K, V]{
			base:    newBase(d.ctx, ids...),
			parents: d.parts,
			hash:    hash,
			index:   uint64(i),
			buckets: uint64(n),
		}
	}
	return newDataset(d.ctx, parts)
}

// PartitionByKey re-buckets a key-value dataset with the default hasher.
func PartitionByKey[K comparable, V any](d *Dataset[Pair[K, V]]) *Dataset[Pair[K, V]] {
	return PartitionByKeyFunc(d, DefaultHasher[K]())
}
