package dataset

import (
	"fmt"

	"github.com/ValentinKolb/pRDD/lib/engine"
)

// --------------------------------------------------------------------------
// Base Partition
// --------------------------------------------------------------------------

// base carries the identity and dependency bookkeeping shared by every
// partition implementation. Dependency edges are registered with the context's
// reverse-index at construction and never change afterwards.
type base struct {
	id   engine.PartitionID
	ctx  *engine.Context
	deps []engine.PartitionID
}

// newBase allocates a fresh partition id and registers one dependency edge per
// parent.
func newBase(ctx *engine.Context, parents ...engine.PartitionID) base {
	id := ctx.NextPartitionID()
	for _, parent := range parents {
		ctx.MarkDependency(id, parent)
	}
	return base{id: id, ctx: ctx, deps: parents}
}

func (b *base) ID() engine.PartitionID {
	return b.id
}

func (b *base) Dependencies() []engine.PartitionID {
	return b.deps
}

// --------------------------------------------------------------------------
// Cache-Aware Iteration
// --------------------------------------------------------------------------

// iterate is the single place where partitions synchronize with the context
// cache. If the partition is not shared, it computes directly. If it is shared
// and already materialized, it iterates the cached vector. Otherwise it joins
// (or becomes) the single producer and then iterates the vector.
//
// A failed materialization surfaces as a panic carrying a *Error; the panic is
// recovered at the executor boundary and every waiter of the same partition
// receives the same failure.
func iterate[E any](b *base, compute func() Iterator[E]) Iterator[E] {
	if !b.ctx.ShouldCache(b.id) {
		return compute()
	}

	if data, ok := b.ctx.CachedData(b.id); ok {
		return newSliceIter(data.([]E))
	}

	data, err := b.ctx.MaterializeOrAwait(b.id, func() (interface{}, error) {
		return drain(compute()), nil
	})
	if err != nil {
		panic(NewError(RetCCacheProducer,
			fmt.Sprintf("partition %d: %v", b.id, err)))
	}
	return newSliceIter(data.([]E))
}

// drain consumes an iterator into a dense vector.
func drain[E any](it Iterator[E]) []E {
	var out []E
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// --------------------------------------------------------------------------
// Common Iterators
// --------------------------------------------------------------------------

// sliceIter iterates a materialized vector.
type sliceIter[E any] struct {
	data []E
	pos  int
}

func newSliceIter[E any](data []E) *sliceIter[E] {
	return &sliceIter[E]{data: data}
}

func (it *sliceIter[E]) Next() (E, bool) {
	if it.pos >= len(it.data) {
		var zero E
		return zero, false
	}
	v := it.data[it.pos]
	it.pos++
	return v, true
}

// funcIter produces n elements by applying f to 0..n-1.
type funcIter[E any] struct {
	f   func(int) E
	n   int
	pos int
}

func newFuncIter[E any](n int, f func(int) E) *funcIter[E] {
	return &funcIter[E]{f: f, n: n}
}

func (it *funcIter[E]) Next() (E, bool) {
	if it.pos >= it.n {
		var zero E
		return zero, false
	}
	v := it.f(it.pos)
	it.pos++
	return v, true
}
