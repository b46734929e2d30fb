package alphabet

import "testing"

func TestVector64ShiftAndMask(t *testing.T) {
	query := []rune("aabb")
	v, err := NewVector64(query, 'a')
	if err != nil {
		t.Fatalf("NewVector64: %v", err)
	}
	if got := v.ShiftAndMask(0, 0b1111); got != 0b0011 {
		t.Errorf("ShiftAndMask(0, 0b1111) = %b, want %b", got, 0b0011)
	}
	if got := v.ShiftAndMask(2, 0b11); got != 0 {
		t.Errorf("ShiftAndMask(2, 0b11) = %b, want 0", got)
	}
}

func TestVector64TooLong(t *testing.T) {
	query := make([]rune, Vector64Capacity+1)
	for i := range query {
		query[i] = 'x'
	}
	if _, err := NewVector64(query, 'x'); err == nil {
		t.Fatal("expected ErrQueryTooLong, got nil")
	}
}

func TestChunkedVectorMatchesVector64(t *testing.T) {
	query := []rune("levenshtein")
	for _, ch := range []rune{'l', 'e', 'z'} {
		v64, err := NewVector64(query, ch)
		if err != nil {
			t.Fatalf("NewVector64: %v", err)
		}
		chunked := NewChunkedVector(query, ch)
		for offset := 0; offset < len(query); offset++ {
			mask := uint32(0b111)
			if got, want := chunked.ShiftAndMask(offset, mask), v64.ShiftAndMask(offset, mask); got != want {
				t.Errorf("char %q offset %d: chunked = %b, vector64 = %b", ch, offset, got, want)
			}
		}
	}
}

func TestChunkedVectorAcrossBoundary(t *testing.T) {
	query := make([]rune, 130)
	for i := range query {
		query[i] = 'a'
	}
	query[63] = 'b'
	query[64] = 'b'
	query[65] = 'b'

	cv := NewChunkedVector(query, 'b')
	got := cv.ShiftAndMask(63, 0b111)
	want := uint32(0b111)
	if got != want {
		t.Errorf("ShiftAndMask straddling chunk boundary = %b, want %b", got, want)
	}
}

func TestForQueryCharsDeterministicOrder(t *testing.T) {
	a := ForQueryChars([]rune("banana"))
	entries := a.Entries()
	var chars []rune
	for _, e := range entries {
		chars = append(chars, e.Char)
	}
	want := []rune{'a', 'b', 'n'}
	if len(chars) != len(want) {
		t.Fatalf("Entries() = %q, want %q", chars, want)
	}
	for i := range want {
		if chars[i] != want[i] {
			t.Errorf("Entries()[%d].Char = %q, want %q", i, chars[i], want[i])
		}
	}
}

func TestForQueryCharsSelectsVector64(t *testing.T) {
	a := ForQueryChars([]rune("short"))
	for _, e := range a.Entries() {
		if _, ok := e.Vector.(Vector64); !ok {
			t.Errorf("char %q: Vector type = %T, want Vector64", e.Char, e.Vector)
		}
	}
}

func TestForQueryCharsSelectsChunkedVectorOverCapacity(t *testing.T) {
	query := make([]rune, Vector64Capacity+5)
	for i := range query {
		query[i] = rune('a' + i%3)
	}
	a := ForQueryChars(query)
	for _, e := range a.Entries() {
		if _, ok := e.Vector.(ChunkedVector); !ok {
			t.Errorf("char %q: Vector type = %T, want ChunkedVector", e.Char, e.Vector)
		}
	}
}

func TestForQueryCharsFixed64Fails(t *testing.T) {
	query := make([]rune, Vector64Capacity+1)
	for i := range query {
		query[i] = 'a'
	}
	if _, err := ForQueryCharsFixed64(query); err == nil {
		t.Fatal("expected ErrQueryTooLong, got nil")
	}
}
