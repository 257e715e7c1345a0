// Package util provides hashing and measurement helpers for the dataset
// package: a seeded FNV-1a hash used by key re-bucketing, seed generation for
// non-reproducible sampling, and distribution statistics used to judge how
// evenly a re-partitioning spread its keys.
package util
