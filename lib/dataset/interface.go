package dataset

import (
	"github.com/ValentinKolb/pRDD/lib/engine"
)

// --------------------------------------------------------------------------
// Interface Definitions
// --------------------------------------------------------------------------

// Iterator is a one-pass cursor over a partition's elements. Next returns the
// next element and true, or the zero value and false once the sequence is
// exhausted.
type Iterator[E any] interface {
	Next() (E, bool)
}

// Partition is a lazy, finite sequence of elements with an identity and a
// dependency list. The sequence is re-iterable: every call to Iter yields an
// equivalent sequence.
//
// A partition's element sequence is deterministic given the sequences of its
// dependencies (Sample partitions are deterministic only when the context
// carries a sample seed).
type Partition[E any] interface {
	// ID returns the partition id, unique within the execution context.
	ID() engine.PartitionID

	// Dependencies returns the ids of the parent partitions this one consumes,
	// in declaration order.
	Dependencies() []engine.PartitionID

	// Iter returns a fresh iterator over the partition's elements, consulting
	// the context's partition cache when the partition is shared.
	Iter() Iterator[E]
}

// RandomAccess is the capability interface of partitions whose elements can be
// addressed by position without iterating. Sources and maps over sources
// implement it; filters and other forward-only partitions do not. Consumers
// type-assert and fall back to forward iteration when the capability is
// absent.
type RandomAccess[E any] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at position i, 0 <= i < Len().
	At(i int) E
}

// --------------------------------------------------------------------------
// Element Types
// --------------------------------------------------------------------------

// Pair is the key-value element type consumed by PartitionByKey and
// GroupByKey.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Zipped is the element type produced by Zip.
type Zipped[A, B any] struct {
	First  A
	Second B
}
