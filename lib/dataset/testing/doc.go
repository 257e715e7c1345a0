// Package testing provides a reusable invariant test-suite for the dataset
// package. The suite is factory-driven so the same checks run under every
// parallel policy: callers hand in a function producing a fresh execution
// context and the suite verifies identity uniqueness, partition counts,
// element coverage, action correctness, cache behaviour, key placement and
// sampling boundaries against it.
package testing
