// Package paramdfa builds the parametric DFA: a query-independent
// transition table over canonical NFA "shapes" and characteristic-vector
// windows, computed once per (max distance, Damerau) configuration and
// reused across every query built against it.
package paramdfa

import (
	"github.com/coregx/levauto/alphabet"
	"github.com/coregx/levauto/dfa"
	"github.com/coregx/levauto/internal/conv"
	"github.com/coregx/levauto/internal/index"
	"github.com/coregx/levauto/levnfa"
)

// ParametricState names a DFA state without reference to any particular
// query: ShapeID selects a canonical NFA MultiState shape, and Offset is
// how far into an as-yet-unspecified query this state's shape is anchored.
type ParametricState struct {
	ShapeID uint32
	Offset  uint32
}

// InitialState is the ParametricState every query's matching begins in.
func InitialState() ParametricState {
	return ParametricState{ShapeID: 1, Offset: 0}
}

// IsDeadEnd reports whether state can never lead to an accepting
// alignment, regardless of what follows in the input. Shape id 0 is
// reserved for exactly this: the empty MultiState, which every transition
// from a dead end maps back onto.
func (s ParametricState) IsDeadEnd() bool { return s.ShapeID == 0 }

// Transition is a query-independent edge in the parametric table: which
// shape to move to, and by how much the state's offset anchor advances.
type Transition struct {
	DestShapeID uint32
	DeltaOffset uint32
}

// Apply moves from to the state Transition describes.
func (t Transition) Apply(from ParametricState) ParametricState {
	return ParametricState{ShapeID: t.DestShapeID, Offset: from.Offset + t.DeltaOffset}
}

// canonicalizeDeadEnd collapses any dead-end state onto the single zero
// state, regardless of the offset it died at. A transition landing in the
// empty shape always carries DeltaOffset 0 (Normalize of an empty MultiState
// is 0), so Apply preserves whatever offset the state had before it died —
// two paths dying at different points in the query would otherwise produce
// distinct ParametricStates that behave identically (shape 0 self-loops at
// any offset) but materialize as separate, redundant DFA states.
func canonicalizeDeadEnd(s ParametricState) ParametricState {
	if s.IsDeadEnd() {
		return ParametricState{}
	}
	return s
}

// ParametricDFA is the query-independent transition and distance tables
// derived from a single levnfa.NFA configuration. Build it once per (max
// distance, Damerau) pair with BuildFromNFA and reuse it across every
// query via BuildDFA.
type ParametricDFA struct {
	distance         []uint8
	minPrefixAccept  []uint8
	transitions      []Transition
	maxDistance      uint8
	transitionStride int
	diameter         int
}

// NumStates returns the number of distinct shapes this table covers.
func (p *ParametricDFA) NumStates() int {
	return len(p.transitions) / p.transitionStride
}

// MaxDistance returns the maximum edit distance this table tracks exactly.
func (p *ParametricDFA) MaxDistance() uint8 { return p.maxDistance }

func (p *ParametricDFA) distanceForShape(shapeID uint32, remainingOffset int) levnfa.Distance {
	if shapeID == 0 || remainingOffset < 0 || remainingOffset >= p.diameter {
		return levnfa.NewAtLeast(p.maxDistance + 1)
	}
	d := p.distance[p.diameter*int(shapeID)+remainingOffset]
	if d > p.maxDistance {
		return levnfa.NewAtLeast(d)
	}
	return levnfa.NewExact(d)
}

// Distance returns the edit-distance verdict for state once a query of
// length queryLen has been fully consumed and the automaton sits in state.
func (p *ParametricDFA) Distance(state ParametricState, queryLen int) levnfa.Distance {
	return p.distanceForShape(state.ShapeID, queryLen-int(state.Offset))
}

// IsPrefixSink reports whether, once remaining characters of the query are
// left to match (remaining = queryLen - state.Offset), no continuation of
// the input could ever improve on the accept value already reached here:
// true for a dead end, or when remaining is within the tracked diameter and
// its accept value is both the minimum over every smaller remaining value
// and within the configured maximum distance. A prefix-matching DFA freezes
// a state once this holds, since every later byte could only add edits.
func (p *ParametricDFA) IsPrefixSink(shapeID uint32, remaining int) bool {
	if shapeID == 0 {
		return true
	}
	if remaining < 0 || remaining >= p.diameter {
		return false
	}
	idx := p.diameter*int(shapeID) + remaining
	d := p.distance[idx]
	return d <= p.maxDistance && d == p.minPrefixAccept[idx]
}

// Transition looks up the query-independent edge leaving state when the
// next input character's characteristic vector, relative to state's
// anchor and masked to this table's diameter, is chi.
func (p *ParametricDFA) Transition(state ParametricState, chi uint32) Transition {
	return p.transitions[p.transitionStride*int(state.ShapeID)+int(chi)]
}

// ComputeDistance evaluates the parametric table directly against a query
// and candidate string, without materializing a byte-level DFA. This is a
// debug/test oracle: production matching always goes through BuildDFA.
func (p *ParametricDFA) ComputeDistance(query, other string) levnfa.Distance {
	queryChars := []rune(query)
	alph := alphabet.ForQueryChars(queryChars)
	vecByChar := make(map[rune]alphabet.CharacteristicVector, len(alph.Entries()))
	for _, e := range alph.Entries() {
		vecByChar[e.Char] = e.Vector
	}
	zero := alphabet.Vector64(0)

	mask := uint32(1)<<uint(p.diameter) - 1
	state := InitialState()
	for _, ch := range other {
		vec, ok := vecByChar[ch]
		if !ok {
			vec = zero
		}
		chi := vec.ShiftAndMask(int(state.Offset), mask)
		state = p.Transition(state, chi).Apply(state)
		if state.IsDeadEnd() {
			return levnfa.NewAtLeast(p.maxDistance + 1)
		}
	}
	return p.Distance(state, len(queryChars))
}

func internMultiState(ix *index.Index[string], multistates *[]levnfa.MultiState, ms levnfa.MultiState) uint32 {
	key := ms.Key()
	if id, ok := ix.Lookup(key); ok {
		return id
	}
	id := ix.GetOrAllocate(key)
	*multistates = append(*multistates, ms.Clone())
	return id
}

// BuildFromNFA enumerates every canonical MultiState shape reachable from
// nfa's initial state, over every one of the 2^diameter possible
// characteristic-vector windows, and records the resulting shape table and
// per-shape distance table. This is the one O(2^(2n+1)) step in the whole
// pipeline; its cost depends only on nfa's max distance, never on any
// query, which is the entire point of the parametric layer.
func BuildFromNFA(nfa *levnfa.NFA) *ParametricDFA {
	ix := index.New[string]()
	var multistates []levnfa.MultiState

	var empty levnfa.MultiState
	internMultiState(ix, &multistates, empty)
	internMultiState(ix, &multistates, nfa.InitialStates())

	diameter := int(nfa.MultistateDiameter())
	numChi := 1 << uint(diameter)

	var transitions []Transition
	var dest levnfa.MultiState

	for stateID := uint32(0); int(stateID) < len(multistates); stateID++ {
		current := multistates[stateID]
		for chi := 0; chi < numChi; chi++ {
			nfa.Transition(&current, &dest, alphabet.Vector64(chi))
			deltaOffset := dest.Normalize()
			destID := internMultiState(ix, &multistates, dest)
			transitions = append(transitions, Transition{DestShapeID: destID, DeltaOffset: deltaOffset})
		}
	}

	numStates := len(multistates)
	distance := make([]uint8, 0, diameter*numStates)
	for stateID := 0; stateID < numStates; stateID++ {
		ms := multistates[stateID]
		for offset := 0; offset < diameter; offset++ {
			distance = append(distance, nfa.MultistateDistance(&ms, uint32(offset)).ToUint8())
		}
	}

	minPrefixAccept := make([]uint8, len(distance))
	for stateID := 0; stateID < numStates; stateID++ {
		base := diameter * stateID
		running := distance[base]
		minPrefixAccept[base] = running
		for offset := 1; offset < diameter; offset++ {
			if v := distance[base+offset]; v < running {
				running = v
			}
			minPrefixAccept[base+offset] = running
		}
	}

	return &ParametricDFA{
		transitionStride: numChi,
		distance:         distance,
		minPrefixAccept:  minPrefixAccept,
		maxDistance:      nfa.MaxDistance(),
		transitions:      transitions,
		diameter:         diameter,
	}
}

// BuildDFA materializes a byte-level dfa.DFA for a specific query. When
// isPrefix is false, the result matches query as a whole string; when
// true, the result reports the distance between query and the closest
// prefix of the input, and a state is frozen (subsequent bytes cannot
// change the verdict) once IsPrefixSink holds for it.
func (p *ParametricDFA) BuildDFA(query string, isPrefix bool) *dfa.DFA {
	queryChars := []rune(query)
	queryLen := conv.IntToUint32(len(queryChars))
	alph := alphabet.ForQueryChars(queryChars)

	estimatedStates := p.NumStates() * (len(queryChars) + 1)
	stateIx := index.WithCapacity[ParametricState](estimatedStates)

	stateIx.GetOrAllocate(ParametricState{})
	initialCallerID := stateIx.GetOrAllocate(InitialState())

	builder := dfa.NewBuilder(estimatedStates)
	mask := uint32(1)<<uint(p.diameter) - 1

	for stateID := uint32(0); int(stateID) < int(stateIx.Len()); stateID++ {
		state := stateIx.Get(stateID)

		remaining := int(queryLen) - int(state.Offset)
		if isPrefix && p.IsPrefixSink(state.ShapeID, remaining) {
			dist := p.distanceForShape(state.ShapeID, remaining)
			builder.AddPrefixSinkState(stateID, dist)
			continue
		}

		defaultSuccessor := canonicalizeDeadEnd(p.Transition(state, 0).Apply(state))
		defaultSuccessorID := stateIx.GetOrAllocate(defaultSuccessor)
		dist := p.Distance(state, int(queryLen))
		builder.AddState(stateID, dist, defaultSuccessorID)

		for _, e := range alph.Entries() {
			chi := e.Vector.ShiftAndMask(int(state.Offset), mask)
			destState := canonicalizeDeadEnd(p.Transition(state, chi).Apply(state))
			destID := stateIx.GetOrAllocate(destState)
			builder.AddTransition(stateID, e.Char, destID)
		}
	}

	return builder.Build(initialCallerID)
}
