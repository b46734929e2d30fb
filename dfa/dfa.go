// Package dfa materializes a byte-level deterministic automaton over UTF-8
// encoded text and runs it. Unlike the parametric layer above it, a DFA
// here is query-specific, immutable once built, and safe for concurrent
// use by multiple goroutines without synchronization — evaluating a string
// only ever reads the transition and distance tables.
package dfa

import "github.com/coregx/levauto/levnfa"

// SinkState is the id every materialized DFA reserves for its dead/no-match
// state: the state reached once no alignment of the remaining query can
// stay within the configured maximum edit distance. Every transition out of
// SinkState stays at SinkState, and it is always the first state allocated
// during a build, so its id is guaranteed to be 0 regardless of query.
const SinkState uint32 = 0

// DFA is a concrete, table-driven automaton: 256 transitions per state,
// one per possible byte value, plus a Distance per state describing the
// edit-distance verdict if the input ends there.
type DFA struct {
	transitions  [][256]uint32
	distances    []levnfa.Distance
	initialState uint32
}

// InitialState returns the state a fresh evaluation starts in.
func (d *DFA) InitialState() uint32 { return d.initialState }

// NumStates returns the number of states in the DFA, including the sink.
func (d *DFA) NumStates() int { return len(d.transitions) }

// Transition returns the state reached from state after consuming byte b.
func (d *DFA) Transition(state uint32, b byte) uint32 {
	return d.transitions[state][b]
}

// Distance returns the edit-distance verdict associated with state.
func (d *DFA) Distance(state uint32) levnfa.Distance {
	return d.distances[state]
}

// Eval runs the DFA over text from its initial state and returns the
// distance verdict for the state reached at the end of text.
func (d *DFA) Eval(text []byte) levnfa.Distance {
	state := d.initialState
	for _, b := range text {
		state = d.transitions[state][b]
	}
	return d.distances[state]
}

// EvalString is Eval for a string argument, avoiding a []byte conversion
// at call sites that already hold a string.
func (d *DFA) EvalString(s string) levnfa.Distance {
	state := d.initialState
	for i := 0; i < len(s); i++ {
		state = d.transitions[state][s[i]]
	}
	return d.distances[state]
}
