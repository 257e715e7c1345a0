// Package engine provides the execution context shared by a family of datasets:
// the configuration surface, the identity allocators for dataset and partition
// ids, the partition cache with its single-producer guarantee, and the handle to
// the task executor used by actions.
//
// The package focuses on:
//   - A process-local execution Context that outlives every dataset and partition
//     created from it
//   - Monotonic, thread-safe id allocation (uint32-wide, overflow is fatal)
//   - A dependency reverse-index deciding which partitions are worth caching
//   - Memoization of shared intermediate partitions with completion futures
//
// Key Components:
//
//   - Config: The recognized configuration options (parallel task number,
//     parallel policy, logger sink, debug name, sample seed). A Config is a
//     plain value with fluent setters; DefaultConfig returns the defaults
//     (hardware thread count, threaded policy, suppressed logging).
//
//   - Context: The execution context. It owns the id counters, the dependency
//     reverse-index, the cache store and the executor. Every dataset and
//     partition belongs to exactly one Context. Contexts are independent of
//     each other; a process may host any number of them.
//
//   - Cache: Entries are created lazily the first time a partition with
//     in-degree >= 2 is materialized, and persist for the lifetime of the
//     Context. At most one producer runs per partition id; all other callers
//     block until the producer publishes the materialized vector (or its
//     error). Failed entries are not retried.
//
// The cache maps and the reverse-index are backed by xsync.MapOf, so lookups
// and inserts take no context-wide lock; materialization itself always happens
// outside any map operation.
package engine
