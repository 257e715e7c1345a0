// Package dataset provides a lazy, composable pipeline of partitioned
// collections. Users build a dataset from a source (Range, FromSlice), chain
// transformations (Map, Filter, FlatMap, Sample, Union, Zip, Merge,
// PartitionByKey, GroupByKey) and finally invoke an action (Reduce, Count,
// Collect) that evaluates the pipeline in parallel.
//
// The package focuses on:
//   - Lazy evaluation: transformations only record lineage; no element is
//     produced before an action runs
//   - Partition-level parallelism: an action submits one task per partition
//     of the final dataset to the execution context's task executor
//   - Transparent caching: a partition consumed by two or more children is
//     materialized once and shared (see the engine package)
//
// Key Components:
//
//   - Partition Interface: A lazy, finite, re-iterable sequence of elements
//     with an identity and a dependency list. Partitions whose element count
//     is known without iterating additionally implement RandomAccess.
//
//   - Dataset: An ordered collection of partitions with an identity. Datasets
//     are values; a derived dataset owns fresh partitions with explicit
//     dependency edges to the parents' partitions.
//
//   - Error System: A structured error reporting mechanism using typed error
//     codes (configuration, shape mismatch, user-function failure, cache
//     producer failure). Actions surface errors synchronously; lazy
//     transformations never invoke user code.
//
// Transformations whose element type changes (Map, FlatMap, Zip, GroupByKey)
// or that need the key and value types of a Pair element (PartitionByKey) are
// free functions because Go methods cannot introduce type parameters; the
// other type-preserving transformations (Filter, Sample, Union, Merge) are
// methods on Dataset. Both styles chain naturally.
//
// User-supplied functions (map/filter/hash/reduce functions) are invoked from
// arbitrary worker goroutines, possibly concurrently with other invocations
// of themselves; they must be safe for concurrent use.
package dataset
