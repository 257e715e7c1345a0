package dataset

import (
	"github.com/ValentinKolb/pRDD/lib/executor"
)

// --------------------------------------------------------------------------
// Action Skeleton
// --------------------------------------------------------------------------

// forEachPartition submits one task per partition and collects the partial
// results in partition index order. Every task runs to completion even after
// a failure; the error of the lowest-index failed partition is returned and
// the remaining results are discarded.
func forEachPartition[E, T any](d *Dataset[E], task func(Partition[E]) (T, error)) ([]T, error) {
	ex := d.ctx.Executor()
	log := d.ctx.Logger()
	log.Debugf("dataset %d: submitting %d tasks", d.id, len(d.parts))

	futures := make([]*executor.Future[T], len(d.parts))
	for i, part := range d.parts {
		part := part
		d.ctx.ObserveTaskSubmitted()
		futures[i] = executor.Run(ex, func() (T, error) {
			defer d.ctx.ObserveTaskCompleted()
			return task(part)
		})
	}

	partials := make([]T, len(futures))
	var firstErr error
	for i, future := range futures {
		v, err := future.Await()
		if err != nil && firstErr == nil {
			firstErr = taskError(err)
		}
		partials[i] = v
	}
	if firstErr != nil {
		log.Errorf("dataset %d: action failed: %v", d.id, firstErr)
		return nil, firstErr
	}
	return partials, nil
}

// --------------------------------------------------------------------------
// Reduce
// --------------------------------------------------------------------------

// Reduce folds the dataset with an associative operation. Each partition is
// folded locally starting from the zero value of E, and the partial results
// are folded in partition index order, so commutativity is not required. An
// empty partition contributes the zero value; the zero value must therefore
// be an identity of op.
func Reduce[E any](d *Dataset[E], op func(E, E) E) (E, error) {
	partials, err := forEachPartition(d, func(p Partition[E]) (E, error) {
		var acc E
		it := p.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			acc = op(acc, v)
		}
		return acc, nil
	})
	if err != nil {
		var zero E
		return zero, err
	}

	var acc E
	for _, partial := range partials {
		acc = op(acc, partial)
	}
	return acc, nil
}

// --------------------------------------------------------------------------
// Count
// --------------------------------------------------------------------------

// Count returns the total number of elements. Partitions that know their size
// (RandomAccess) report it directly; the rest are iterated.
func Count[E any](d *Dataset[E]) (uint64, error) {
	partials, err := forEachPartition(d, func(p Partition[E]) (uint64, error) {
		if ra, ok := p.(RandomAccess[E]); ok {
			return uint64(ra.Len()), nil
		}
		var n uint64
		it := p.Iter()
		for _, ok := it.Next(); ok; _, ok = it.Next() {
			n++
		}
		return n, nil
	})
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, partial := range partials {
		total += partial
	}
	return total, nil
}

// --------------------------------------------------------------------------
// Collect
// --------------------------------------------------------------------------

// Collect returns all elements as a dense slice, partitions concatenated in
// index order.
func Collect[E any](d *Dataset[E]) ([]E, error) {
	partials, err := forEachPartition(d, func(p Partition[E]) ([]E, error) {
		return drain(p.Iter()), nil
	})
	if err != nil {
		return nil, err
	}

	var out []E
	for _, partial := range partials {
		out = append(out, partial...)
	}
	return out, nil
}
