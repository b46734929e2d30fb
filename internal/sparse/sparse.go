// Package sparse provides a bounded-universe membership set used while
// materializing a UTF-8 DFA state's 256-entry byte transition row.
//
// Most of a state's row points at a small number of shared default-chain
// intermediates (see the dfa package); only the bytes touched by a
// specific alphabet character diverge from that default. ByteSet tracks
// which of the 256 byte values have been overridden for the state
// currently being built, so the materializer can tell "already carries a
// character-specific transition" from "still pointing at the default
// chain" in O(1) without re-deriving it from the row contents.
package sparse

// ByteSet is a set of byte values (0–255) supporting O(1) insertion,
// membership testing, and clearing. It maintains both a sparse array
// (membership testing) and a dense array (iteration in insertion order),
// the classic Briggs–Torczon sparse set.
type ByteSet struct {
	sparse [256]uint8 // byte -> index into dense, meaningful only when < size
	dense  [256]byte  // the bytes inserted so far, in insertion order
	size   int
}

// NewByteSet creates an empty ByteSet.
func NewByteSet() *ByteSet {
	return &ByteSet{}
}

// Insert adds b to the set. A repeat insert is a no-op.
func (s *ByteSet) Insert(b byte) {
	if s.Contains(b) {
		return
	}
	s.dense[s.size] = b
	s.sparse[b] = uint8(s.size)
	s.size++
}

// Contains reports whether b has already been overridden for this state.
func (s *ByteSet) Contains(b byte) bool {
	idx := s.sparse[b]
	return int(idx) < s.size && s.dense[idx] == b
}

// Clear empties the set in O(1) time, ready for reuse on the next state.
func (s *ByteSet) Clear() {
	s.size = 0
}

// Values returns the overridden bytes in insertion order. The returned
// slice aliases the set's internal storage and is invalidated by the next
// Insert or Clear.
func (s *ByteSet) Values() []byte {
	return s.dense[:s.size]
}

// Len returns the number of distinct bytes currently in the set.
func (s *ByteSet) Len() int {
	return s.size
}
