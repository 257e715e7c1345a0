// Package cmd implements the pRDD command line interface. The CLI is a thin
// demonstration and measurement layer over the library: `run` executes small
// example pipelines, `perf` compares parallel evaluation against a sequential
// baseline. The library itself is embedded as an API and needs none of this.
package cmd
