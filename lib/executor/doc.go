// Package executor provides the pluggable task executor consumed by the
// dataset actions.
//
// The package focuses on:
//   - A minimal IExecutor interface (Submit a task, nothing more) so
//     alternative pools can be dropped in without touching the core
//   - A fixed-size worker pool for the threaded parallel policy
//   - A sequential executor that runs tasks inline on the calling goroutine,
//     used by the sequential parallel policy and handy in tests
//   - Typed futures (Run) that carry a task's result or error back to the
//     caller, converting task panics into errors on the way
//
// Submit never fails and never drops a task; the pool queues when all workers
// are busy. Exception propagation works through futures: a task created with
// Run that panics completes its future with a *PanicError instead of killing
// the worker.
package executor
