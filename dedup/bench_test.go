package dedup_test

import (
	"testing"

	"github.com/katalvlaran/symseq/dedup"
	"github.com/katalvlaran/symseq/symbol"
)

// BenchmarkNoDuplicates_Modulo deduplicates 2048 constants drawn from 64 values.
func BenchmarkNoDuplicates_Modulo(b *testing.B) {
	const N, K = 2048, 64
	items := make([]symbol.Symbol, N)
	for i := range items {
		items[i] = symbol.Const(i % K)
	}
	seq := symbol.Of(items...)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dedup.NoDuplicates(seq)
	}
}

// BenchmarkNoDuplicates_Builtins deduplicates a repeated builtin universe.
func BenchmarkNoDuplicates_Builtins(b *testing.B) {
	parts := make([]symbol.Element, 32)
	for i := range parts {
		parts[i] = symbol.Builtins()
	}
	seq := symbol.Pack(parts...)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dedup.NoDuplicates(seq)
	}
}
