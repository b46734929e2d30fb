// Package conv provides safe integer narrowing helpers for the automaton
// builders.
//
// Offsets, shape ids and byte counts all originate as ordinary ints (slice
// lengths, loop counters) but are stored compactly as uint32/uint8 in the
// parametric and byte-level tables. These helpers centralize the bounds
// check so a silently wrapped offset never corrupts a table.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32 — both indicate a programming error
// (a negative offset, or a query so large no table could have been sized).
func IntToUint32(n int) uint32 {
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: int value out of uint32 range")
	}
	return uint32(n)
}

// IntToUint8 safely converts an int to uint8.
// Panics if n < 0 or n > math.MaxUint8.
func IntToUint8(n int) uint8 {
	if n < 0 || n > math.MaxUint8 {
		panic("conv: int value out of uint8 range")
	}
	return uint8(n)
}
