package levauto

import (
	"testing"

	"github.com/agnivade/levenshtein"
)

// combinations generates every non-empty string of at most length
// characters drawn from alphabet.
func combinations(alphabet []rune, length int) []string {
	prev := []string{""}
	var result []string
	for i := 0; i < length; i++ {
		next := make([]string, 0, len(prev)*len(alphabet))
		for _, letter := range alphabet {
			for _, prefix := range prev {
				next = append(next, prefix+string(letter))
			}
		}
		prev = next
		result = append(result, next...)
	}
	return result
}

func makeDistance(n, maxDistance uint8) Distance {
	if n > maxDistance {
		return atLeast(maxDistance + 1)
	}
	return exact(n)
}

// TestExhaustiveLevenshteinDFA cross-checks every DFA built for max
// distances 0..3 against a reference Levenshtein distance implementation,
// over every pair of strings up to 4 characters drawn from a small
// alphabet. It mirrors the teacher corpus's #[ignore]-gated exhaustive
// suites: too slow for a normal test run, so it only runs under `go test`
// without -short.
func TestExhaustiveLevenshteinDFA(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive cross-check skipped in -short mode")
	}

	alphabet := []rune("abcdef")
	candidates := combinations(alphabet, 4)

	for m := uint8(0); m < 4; m++ {
		builder, err := NewBuilder(m, false)
		if err != nil {
			t.Fatalf("NewBuilder(%d): %v", m, err)
		}
		for _, query := range candidates {
			d := builder.BuildDFA(query)
			for _, candidate := range candidates {
				expected := makeDistance(uint8(levenshtein.ComputeDistance(query, candidate)), m)
				got := d.EvalString(candidate)
				if got != expected {
					t.Fatalf("m=%d query=%q candidate=%q: got %+v, want %+v", m, query, candidate, got, expected)
				}
			}
		}
	}
}

// TestExhaustiveParametricDFAMatchesDFA checks, over the same exhaustive
// sample, that ParametricDFA.ComputeDistance and a materialized DFA's Eval
// always agree — the two ways of running the same automaton must never
// diverge.
func TestExhaustiveParametricDFAMatchesDFA(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive cross-check skipped in -short mode")
	}

	alphabet := []rune("abcdef")
	candidates := combinations(alphabet, 4)

	for m := uint8(0); m < 4; m++ {
		builder, err := NewBuilder(m, false)
		if err != nil {
			t.Fatalf("NewBuilder(%d): %v", m, err)
		}
		for _, query := range candidates {
			d := builder.BuildDFA(query)
			for _, candidate := range candidates {
				viaDFA := d.EvalString(candidate)
				viaCompute := builder.ComputeDistance(query, candidate)
				if viaDFA != viaCompute {
					t.Fatalf("m=%d query=%q candidate=%q: DFA=%+v ComputeDistance=%+v", m, query, candidate, viaDFA, viaCompute)
				}
			}
		}
	}
}
