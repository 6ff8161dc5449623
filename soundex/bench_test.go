package soundex

import (
	"strings"
	"testing"
)

// ============================================================
// Encoder Benchmarks
// ============================================================
//
// Run with:
//   go test -bench=. -benchmem ./soundex/
//
// For CPU profiling:
//   go test -bench=BenchmarkEncode -cpuprofile=cpu.out ./soundex/
//   go tool pprof -top cpu.out

// BenchmarkEncode_Short benchmarks a typical surname in default mode.
func BenchmarkEncode_Short(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Encode("Peterson")
	}
}

// BenchmarkEncode_MixedScript benchmarks early termination over input
// the reducer mostly skips.
func BenchmarkEncode_MixedScript(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Encode("bb你iiiffpvsgsslkfldsjfasdas")
	}
}

// BenchmarkEncodeFull_Long benchmarks the untruncated scan, which has
// no early exit.
func BenchmarkEncodeFull_Long(b *testing.B) {
	in := strings.Repeat("Schwarzenegger ", 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = EncodeFull(in)
	}
}

// BenchmarkEqual benchmarks the comparison path, two encodes per op.
func BenchmarkEqual(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Equal("Resnik", "Reznick")
	}
}

// BenchmarkFold benchmarks the accent-stripping transform chain.
func BenchmarkFold(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Fold("Gutiérrez")
	}
}
