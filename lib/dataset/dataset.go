package dataset

import (
	"github.com/ValentinKolb/pRDD/lib/engine"
)

// --------------------------------------------------------------------------
// Dataset
// --------------------------------------------------------------------------

// Dataset is an ordered collection of partitions representing one logical
// collection. Datasets are effectively immutable after construction; copying
// a Dataset value shares its partitions (same ids, same parents), while a
// derived dataset owns fresh partitions with fresh ids.
type Dataset[E any] struct {
	id    engine.DatasetID
	ctx   *engine.Context
	parts []Partition[E]
}

// newDataset assembles a dataset from ready-made partitions and assigns it a
// fresh id.
func newDataset[E any](ctx *engine.Context, parts []Partition[E]) *Dataset[E] {
	return &Dataset[E]{
		id:    ctx.NextDatasetID(),
		ctx:   ctx,
		parts: parts,
	}
}

// ID returns the dataset id, unique within the execution context.
func (d *Dataset[E]) ID() engine.DatasetID {
	return d.id
}

// Context returns the execution context the dataset belongs to.
func (d *Dataset[E]) Context() *engine.Context {
	return d.ctx
}

// Partitions returns the dataset's partitions in index order. The returned
// slice must not be modified.
func (d *Dataset[E]) Partitions() []Partition[E] {
	return d.parts
}

// NumPartitions returns the dataset's degree of parallelism.
func (d *Dataset[E]) NumPartitions() int {
	return len(d.parts)
}
