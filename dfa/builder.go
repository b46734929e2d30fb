package dfa

import (
	"math/bits"
	"unicode/utf8"

	"github.com/coregx/levauto/internal/index"
	"github.com/coregx/levauto/internal/sparse"
	"github.com/coregx/levauto/levnfa"
)

// utf8StateKind distinguishes the three roles a Builder-internal state id
// can play while the byte-level automaton is being unrolled from the
// character-level one.
type utf8StateKind uint8

const (
	// kindOriginal identifies a state carried over directly from the
	// caller (the parametric layer's own state id space).
	kindOriginal utf8StateKind = iota
	// kindSuccessor identifies an intermediate state introduced mid-way
	// through a specific character's multi-byte encoding.
	kindSuccessor
	// kindPredecessor identifies a shared catch-all state used to consume
	// the remaining continuation bytes of an unrecognized multi-byte
	// sequence before reaching a default-transition target.
	kindPredecessor
)

// utf8State is the Builder's internal state key: a small sum type encoded
// as a plain comparable struct so it can key a generic index.Index.
type utf8State struct {
	kind utf8StateKind
	a    uint32
	b    uint8
}

// extractUTF8LenFromFirstByte returns how many bytes the UTF-8 encoding of
// a rune starting with leading byte b occupies (1-4), inferred from the
// byte's leading-one-bits count the same way a UTF-8 decoder classifies a
// lead byte.
func extractUTF8LenFromFirstByte(b byte) int {
	n := bits.LeadingZeros8(^b)
	switch {
	case n < 1:
		return 1
	case n > 4:
		return 4
	default:
		return n
	}
}

// pendingDefault is a (fromState, toState) default-transition wiring queued
// by AddState and resolved at Build time, once every character-specific
// AddTransition override for fromState is known.
type pendingDefault struct {
	fromID uint32
	toID   uint32
}

// Builder materializes a byte-level DFA state by state. Each state is
// identified, while building, by a utf8State key; once Build is called
// those keys collapse to plain sequential ids.
type Builder struct {
	index       *index.Index[utf8State]
	distances   []levnfa.Distance
	transitions [][256]uint32
	// overridden tracks, per state, which bytes AddTransition has already
	// claimed with a character-specific edge, so the deferred
	// default-transition pass in Build can skip them instead of clobbering
	// them with the fallback chain.
	overridden []*sparse.ByteSet
	defaults   []pendingDefault
}

// NewBuilder creates a Builder with its internal tables pre-sized for
// capacity states — purely an allocation hint, never a hard limit.
func NewBuilder(capacity int) *Builder {
	return &Builder{index: index.WithCapacity[utf8State](capacity)}
}

func (b *Builder) getOrAllocate(s utf8State) uint32 {
	id := b.index.GetOrAllocate(s)
	if int(id) >= len(b.distances) {
		b.transitions = append(b.transitions, [256]uint32{})
		b.distances = append(b.distances, levnfa.NewAtLeast(255))
		b.overridden = append(b.overridden, sparse.NewByteSet())
	}
	return id
}

func (b *Builder) setAllSuccessors(fromStateID, toStateID uint32) {
	row := &b.transitions[fromStateID]
	for i := range row {
		row[i] = toStateID
	}
}

func (b *Builder) addTransitionID(stateID uint32, byt byte, newStateID uint32) {
	b.transitions[stateID][byt] = newStateID
}

// AddTransition registers that, from the DFA state labeled fromState,
// reading the full UTF-8 encoding of chr leads to the state labeled
// toState, threading through as many intermediate byte states as chr's
// encoding requires.
func (b *Builder) AddTransition(fromState uint32, chr rune, toState uint32) {
	fromID := b.getOrAllocate(utf8State{kind: kindOriginal, a: fromState})

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], chr)
	encoded := buf[:n]

	for _, byt := range encoded[:len(encoded)-1] {
		nextID := b.getOrAllocate(utf8State{kind: kindSuccessor, a: fromID, b: byt})
		b.overridden[fromID].Insert(byt)
		b.addTransitionID(fromID, byt, nextID)
		fromID = nextID
	}
	toID := b.getOrAllocate(utf8State{kind: kindOriginal, a: toState})
	b.overridden[fromID].Insert(encoded[len(encoded)-1])
	b.addTransitionID(fromID, encoded[len(encoded)-1], toID)
}

// applyDefaultTransition wires fromID's fallback behavior for every byte not
// already claimed by a character-specific AddTransition (tracked in
// b.overridden). ASCII bytes (which are always complete 1-byte characters on
// their own) go straight to toID; a byte that looks like the lead byte of an
// N-byte sequence we have no specific transition for enters a shared chain
// of Predecessor states, keyed by (toID, remaining-bytes-owed), that
// consumes the remaining N-1 continuation bytes before landing on toID. The
// chain is shared across every fromState that defaults to the same toState,
// which is what keeps an unrecognized-character fallback from multiplying
// the state count per alphabet character. The Successor states that
// AddTransition left inside a multi-byte character get the same fallback
// for every byte no specific character claims, owing one byte fewer per
// level.
func (b *Builder) applyDefaultTransition(fromID, toID uint32) {
	var predForRemaining [4]uint32
	predForRemaining[0] = toID
	for remaining := 1; remaining < 4; remaining++ {
		predID := b.getOrAllocate(utf8State{kind: kindPredecessor, a: toID, b: uint8(remaining)})
		b.setAllSuccessors(predID, predForRemaining[remaining-1])
		predForRemaining[remaining] = predID
	}

	var fillSuccessor func(id uint32, owed int)
	fillSuccessor = func(id uint32, owed int) {
		for bi := 0; bi < 256; bi++ {
			if !b.overridden[id].Contains(byte(bi)) {
				b.transitions[id][bi] = predForRemaining[owed]
			} else if next, ok := b.index.Lookup(utf8State{kind: kindSuccessor, a: id, b: byte(bi)}); ok {
				fillSuccessor(next, owed-1)
			}
		}
	}

	overridden := b.overridden[fromID]
	row := &b.transitions[fromID]
	for bi := 0; bi < 256; bi++ {
		if overridden.Contains(byte(bi)) {
			if next, ok := b.index.Lookup(utf8State{kind: kindSuccessor, a: fromID, b: byte(bi)}); ok {
				fillSuccessor(next, extractUTF8LenFromFirstByte(byte(bi))-2)
			}
			continue
		}
		if bi < 0x80 {
			row[bi] = toID
			continue
		}
		totalBytes := extractUTF8LenFromFirstByte(byte(bi))
		row[bi] = predForRemaining[totalBytes-1]
	}
}

// AddState records state's distance verdict and queues its default
// (unrecognized-character) transition to defaultSuccessor. The default row
// is not written until Build, so that the character-specific overrides
// layered on afterwards with AddTransition are already known and never get
// clobbered by the fallback chain.
func (b *Builder) AddState(state uint32, dist levnfa.Distance, defaultSuccessor uint32) uint32 {
	stateID := b.getOrAllocate(utf8State{kind: kindOriginal, a: state})
	b.distances[stateID] = dist
	defaultSuccessorID := b.getOrAllocate(utf8State{kind: kindOriginal, a: defaultSuccessor})
	b.defaults = append(b.defaults, pendingDefault{fromID: stateID, toID: defaultSuccessorID})
	return stateID
}

// AddPrefixSinkState records state's distance verdict and freezes it: every
// byte, including every continuation byte of a multi-byte character, loops
// back to the same state. Used by prefix-mode DFAs once a state has
// consumed the whole query and locked in its best achievable prefix
// distance — nothing that follows in the input can change that verdict.
func (b *Builder) AddPrefixSinkState(state uint32, dist levnfa.Distance) uint32 {
	stateID := b.getOrAllocate(utf8State{kind: kindOriginal, a: state})
	b.distances[stateID] = dist
	b.setAllSuccessors(stateID, stateID)
	return stateID
}

// Build finalizes the Builder into an immutable DFA. initialState is the
// caller-space state id (as passed to AddState/AddPrefixSinkState) the
// automaton should start evaluation from.
func (b *Builder) Build(initialState uint32) *DFA {
	for _, pd := range b.defaults {
		b.applyDefaultTransition(pd.fromID, pd.toID)
	}
	initialID := b.getOrAllocate(utf8State{kind: kindOriginal, a: initialState})
	return &DFA{
		transitions:  b.transitions,
		distances:    b.distances,
		initialState: initialID,
	}
}
