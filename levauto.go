// Package levauto builds Levenshtein and Damerau-Levenshtein edit-distance
// automata: given a query string and a maximum edit distance, it compiles
// a byte-level deterministic automaton that classifies any candidate
// string's edit distance to the query as either an exact value or a lower
// bound, in a single linear scan over the candidate's UTF-8 bytes.
//
// Building happens in three stages, matching the package layout: levnfa
// models the non-deterministic automaton abstractly, paramdfa enumerates
// its query-independent "shapes" once per (max distance, Damerau) pair,
// and dfa materializes a concrete byte-level automaton for one query by
// walking the parametric table. A Builder amortizes the middle stage: its
// ParametricDFA is built once and reused across every call to BuildDFA or
// BuildPrefixDFA.
//
// Basic usage:
//
//	b, err := levauto.NewBuilder(2, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d := b.BuildDFA("levenshtein")
//	dist := d.EvalString("levenshtain") // Exact(1)
package levauto

import (
	"github.com/coregx/levauto/dfa"
	"github.com/coregx/levauto/levnfa"
	"github.com/coregx/levauto/paramdfa"
)

// DFA is a concrete, immutable, byte-level edit-distance automaton for one
// query. Safe for concurrent use by multiple goroutines.
type DFA = dfa.DFA

// SinkState is the state id every DFA reserves for "no alignment within
// the configured distance is possible"; it is always 0.
const SinkState = dfa.SinkState

// DistanceKind distinguishes an exact edit distance from a lower bound.
type DistanceKind = levnfa.DistanceKind

// Exact and AtLeast are the two kinds a Distance can carry.
const (
	Exact   = levnfa.Exact
	AtLeast = levnfa.AtLeast
)

// Distance is the result of evaluating a DFA against a candidate string.
type Distance = levnfa.Distance

// Builder amortizes the query-independent part of automaton construction:
// create one Builder per (maxDistance, damerau) configuration and reuse it
// across every query.
type Builder struct {
	nfa  *levnfa.NFA
	pdfa *paramdfa.ParametricDFA
}

// NewBuilder creates a Builder tracking edit distance up to maxDistance,
// optionally (when damerau is true) counting an adjacent transposition as
// a single edit rather than two. It returns ErrMaxDistanceTooLarge wrapped
// in a ConfigError if maxDistance exceeds MaxSupportedDistance.
func NewBuilder(maxDistance uint8, damerau bool) (*Builder, error) {
	if maxDistance > MaxSupportedDistance {
		return nil, &ConfigError{MaxDistance: maxDistance, Err: ErrMaxDistanceTooLarge}
	}
	var nfa *levnfa.NFA
	if damerau {
		nfa = levnfa.NewDamerauLevenshtein(maxDistance)
	} else {
		nfa = levnfa.NewLevenshtein(maxDistance)
	}
	return &Builder{
		nfa:  nfa,
		pdfa: paramdfa.BuildFromNFA(nfa),
	}, nil
}

// MaxDistance returns the maximum edit distance b tracks exactly.
func (b *Builder) MaxDistance() uint8 { return b.nfa.MaxDistance() }

// Damerau reports whether b also tracks adjacent transpositions.
func (b *Builder) Damerau() bool { return b.nfa.Damerau() }

// BuildDFA compiles a whole-string matching automaton for query: the
// resulting DFA's Eval/EvalString report the exact edit distance between
// query and a fully-consumed candidate string, or a lower bound once that
// distance exceeds b's configured maximum.
func (b *Builder) BuildDFA(query string) *DFA {
	return b.pdfa.BuildDFA(query, false)
}

// BuildPrefixDFA compiles a prefix-matching automaton for query: its
// verdict is the edit distance between query and the closest prefix of the
// candidate. Once that distance is within b's configured maximum and no
// further bytes could improve on it, the verdict is locked in and further
// bytes cannot change it. This is the automaton to use for autocomplete
// and other scan-forward fuzzy-prefix matching.
func (b *Builder) BuildPrefixDFA(query string) *DFA {
	return b.pdfa.BuildDFA(query, true)
}

// ComputeDistance evaluates the edit distance between query and other
// directly against the parametric table, without materializing a
// byte-level DFA. It exists for testing and as a reference oracle;
// matching many candidates against the same query should use BuildDFA
// instead, which amortizes query compilation across every Eval call.
func (b *Builder) ComputeDistance(query, other string) Distance {
	return b.pdfa.ComputeDistance(query, other)
}
