// SPDX-License-Identifier: MPL-2.0

// Package benchmark holds benchmarks for the resolution hot paths:
//   - header scanning
//   - tree building over wide and deep asset graphs
//   - linearization
//   - concurrent resolution of several entry points
//
// Run them with:
//
//	go test -run '^$' -bench . ./internal/benchmark/
package benchmark
