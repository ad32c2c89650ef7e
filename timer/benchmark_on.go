//go:build hppbenchmark

package timer

// BenchmarkEnabled reports whether the benchmark helpers are compiled in.
const BenchmarkEnabled = true
