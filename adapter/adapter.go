// Package adapter exposes a levauto DFA through the narrow
// start/step/accept/can-match shape that byte-at-a-time automaton
// consumers (FST walkers, trie scanners, incremental search) expect,
// rather than the whole-string Eval API.
package adapter

import (
	"github.com/coregx/levauto/dfa"
	"github.com/coregx/levauto/levnfa"
)

// Automaton is the minimal interface an external searcher drives a byte
// automaton through: start a run, step it one byte at a time, and ask
// whether the current state is a match or could still become one.
type Automaton interface {
	Start() uint32
	Step(state uint32, b byte) uint32
	IsAccept(state uint32) bool
	CanMatch(state uint32) bool
}

// DFAAutomaton adapts a *dfa.DFA to the Automaton interface. A state is
// accepting when its Distance is Exact (the candidate consumed so far is
// within the configured edit distance); it can still lead to a match as
// long as it isn't the DFA's sink state, since the sink is the only state
// every query-independent distance transition maps back onto.
type DFAAutomaton struct {
	dfa *dfa.DFA
}

// FromDFA wraps d for byte-at-a-time traversal.
func FromDFA(d *dfa.DFA) *DFAAutomaton {
	return &DFAAutomaton{dfa: d}
}

// Start returns the DFA's initial state.
func (a *DFAAutomaton) Start() uint32 {
	return a.dfa.InitialState()
}

// Step advances state by one byte.
func (a *DFAAutomaton) Step(state uint32, b byte) uint32 {
	return a.dfa.Transition(state, b)
}

// IsAccept reports whether state's distance verdict is exact, i.e. the
// bytes consumed so far already match the query within the configured
// edit distance.
func (a *DFAAutomaton) IsAccept(state uint32) bool {
	return a.dfa.Distance(state).Kind == levnfa.Exact
}

// CanMatch reports whether state can still lead to an eventual match.
// Every DFA built by this module funnels every hopeless state into the
// shared sink (dfa.SinkState), so this is a single equality check rather
// than a distance-table lookup.
func (a *DFAAutomaton) CanMatch(state uint32) bool {
	return state != dfa.SinkState
}
