package callcount

import "testing"

func BenchmarkBuild(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Build()
	}
}

func BenchmarkLookup(b *testing.B) {
	table := Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = table.Lookup(i % TableSize)
	}
}

func BenchmarkTrace20(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Trace(20)
	}
}
