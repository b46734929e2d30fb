package levauto

import "testing"

// The benchmarks below measure parametric-table construction for n=1..3
// without transposition tracking and n=1 with it, plus DFA construction
// and evaluation at n=2 against the query "Levenshtein".

func benchmarkBuildParametricDFA(b *testing.B, maxDistance uint8, damerau bool) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := NewBuilder(maxDistance, damerau); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuildParametricDFA1(b *testing.B) { benchmarkBuildParametricDFA(b, 1, false) }
func BenchmarkBuildParametricDFA2(b *testing.B) { benchmarkBuildParametricDFA(b, 2, false) }
func BenchmarkBuildParametricDFA3(b *testing.B) { benchmarkBuildParametricDFA(b, 3, false) }
func BenchmarkBuildParametricDFADamerau1(b *testing.B) {
	benchmarkBuildParametricDFA(b, 1, true)
}

func BenchmarkBuildDFA(b *testing.B) {
	builder, err := NewBuilder(2, false)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		builder.BuildDFA("Levenshtein")
	}
}

func BenchmarkEval(b *testing.B) {
	builder, err := NewBuilder(2, false)
	if err != nil {
		b.Fatal(err)
	}
	d := builder.BuildDFA("Levenshtein")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.EvalString("Levenshtain")
	}
}
