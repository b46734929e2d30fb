// Package levnfa implements the non-deterministic Levenshtein/Damerau
// automaton: the layer that tracks, state by state, every way the input
// read so far could align with a prefix of the query within the allowed
// number of edits.
package levnfa

import "github.com/coregx/levauto/alphabet"

// NFA is a Levenshtein (or Damerau-Levenshtein, when constructed via
// NewDamerauLevenshtein) automaton parameterized by a maximum edit
// distance. It holds no query: the same NFA value drives MultiState
// transitions for any query of the caller's choosing, which is what lets
// the parametric DFA builder enumerate shapes once per (maxDistance,
// damerau) pair and reuse them across queries.
type NFA struct {
	maxDistance uint8
	damerau     bool
}

// NewLevenshtein builds an NFA tracking ordinary Levenshtein distance
// (insertions, deletions, substitutions) up to maxDistance.
func NewLevenshtein(maxDistance uint8) *NFA {
	return &NFA{maxDistance: maxDistance}
}

// NewDamerauLevenshtein builds an NFA additionally tracking adjacent
// transpositions as a single edit, up to maxDistance.
func NewDamerauLevenshtein(maxDistance uint8) *NFA {
	return &NFA{maxDistance: maxDistance, damerau: true}
}

// MaxDistance returns the maximum edit distance this NFA tracks exactly.
func (n *NFA) MaxDistance() uint8 { return n.maxDistance }

// Damerau reports whether this NFA also tracks adjacent transpositions.
func (n *NFA) Damerau() bool { return n.damerau }

// MultistateDiameter is the width, in query positions, of the window
// around a state's offset that a single transition can ever need to
// inspect: 2*maxDistance + 1.
func (n *NFA) MultistateDiameter() uint8 {
	return 2*n.maxDistance + 1
}

// InitialStates returns the MultiState an NFA run starts in: a single
// state at offset 0 with zero edits consumed.
func (n *NFA) InitialStates() MultiState {
	var ms MultiState
	ms.AddState(NFAState{})
	return ms
}

func absDiffU32(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

// MultistateDistance computes the edit distance implied by multistate once
// the entire input has been consumed, given the query's length queryLen.
// Each live state contributes Distance plus however many insertions would
// be needed to reach the end of the query from its offset; the minimum
// over all live states that stays within maxDistance is the exact answer,
// otherwise the result is only known to be at least maxDistance+1.
func (n *NFA) MultistateDistance(multistate *MultiState, queryLen uint32) Distance {
	best := -1
	for _, s := range multistate.States() {
		total := int(s.Distance) + int(absDiffU32(queryLen, s.Offset))
		if total <= int(n.maxDistance) {
			if best == -1 || total < best {
				best = total
			}
		}
	}
	if best == -1 {
		return NewAtLeast(n.maxDistance + 1)
	}
	return NewExact(uint8(best))
}

func extractBit(bitset uint32, pos uint8) bool {
	return (bitset>>pos)&1 == 1
}

// simpleTransition expands a single NFAState across the characteristic
// window `symbol` (already shifted to state's offset and masked to the
// multistate diameter), adding every resulting state to dest.
func (n *NFA) simpleTransition(state NFAState, symbol uint32, dest *MultiState) {
	if state.Distance < n.maxDistance {
		// insertion
		dest.AddState(NFAState{Offset: state.Offset, Distance: state.Distance + 1})
		// substitution
		dest.AddState(NFAState{Offset: state.Offset + 1, Distance: state.Distance + 1})

		for d := uint8(1); d < n.maxDistance+1-state.Distance; d++ {
			if extractBit(symbol, d) {
				// d deletions followed by a character match
				dest.AddState(NFAState{Offset: state.Offset + 1 + uint32(d), Distance: state.Distance + d})
			}
		}

		if n.damerau && extractBit(symbol, 1) {
			// first half of a transposition begins
			dest.AddState(NFAState{Offset: state.Offset, Distance: state.Distance + 1, InTranspose: true})
		}
	}

	if extractBit(symbol, 0) {
		// match
		dest.AddState(NFAState{Offset: state.Offset + 1, Distance: state.Distance})
	}

	if state.InTranspose {
		if extractBit(symbol, 0) {
			// second half of a transposition completes
			dest.AddState(NFAState{Offset: state.Offset + 2, Distance: state.Distance})
		}
	}
}

// Transition computes the MultiState reached from current after consuming
// one input character whose characteristic vector (relative to the query)
// is chi, writing the result into dest. dest is cleared first; current and
// dest must not alias the same storage.
func (n *NFA) Transition(current *MultiState, dest *MultiState, chi alphabet.CharacteristicVector) {
	dest.Clear()
	diameter := n.MultistateDiameter()
	mask := uint32(1)<<uint(diameter) - 1
	for _, state := range current.States() {
		window := chi.ShiftAndMask(int(state.Offset), mask)
		n.simpleTransition(state, window, dest)
	}
}

// ComputeDistance evaluates the NFA directly against a concrete candidate
// string, without building any DFA. It exists for testing the NFA's
// transition rules in isolation and as a slow reference oracle; production
// matching always goes through a materialized DFA instead.
func (n *NFA) ComputeDistance(query, other string) Distance {
	queryChars := []rune(query)
	alph := alphabet.ForQueryChars(queryChars)
	vecByChar := make(map[rune]alphabet.CharacteristicVector, len(alph.Entries()))
	for _, e := range alph.Entries() {
		vecByChar[e.Char] = e.Vector
	}
	zero := alphabet.Vector64(0)

	current := n.InitialStates()
	var next MultiState
	for _, ch := range other {
		vec, ok := vecByChar[ch]
		if !ok {
			vec = zero
		}
		n.Transition(&current, &next, vec)
		current, next = next, current
	}
	return n.MultistateDistance(&current, uint32(len(queryChars)))
}
