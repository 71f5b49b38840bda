// Package cmd implements the command-line interface for the respv RESP3
// value toolkit. It provides commands for inspecting encoded value streams
// and for benchmarking the codec and hash operations.
//
// The package is organized into:
//
//   - inspect: Decode a RESP3 stream and report kind, encoded length and
//     structural hash per value
//   - bench: Micro-benchmarks over encode/decode/hash with latency histograms
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See respv -help for a list of all commands.
package cmd
