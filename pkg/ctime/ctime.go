// Package ctime provides comparison and selection primitives whose control
// flow does not depend on the data being processed, for use on secret
// values where early-exit comparisons leak timing information.
//
// These functions guarantee data-independent control flow at the source
// level only. They cannot rule out timing variance introduced by the
// compiler or the CPU (caches, branch predictors); callers needing hardware
// guarantees must look elsewhere.
package ctime

import "crypto/subtle"

// Equal compares a and b without early exit. It iterates over the full
// common prefix, accumulating the OR of pairwise XOR differences, and folds
// a length mismatch into the accumulator, so unequal lengths compare false
// after the same amount of work.
func Equal(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	acc := uint32(len(a)) ^ uint32(len(b))
	for i := 0; i < n; i++ {
		acc |= uint32(a[i] ^ b[i])
	}
	return acc == 0
}

// EqualLen compares exactly n bytes of a and b without early exit. It
// panics if either slice is shorter than n; the declared length is part of
// the caller's contract, not a secret.
func EqualLen(a, b []byte, n int) bool {
	if len(a) < n || len(b) < n {
		panic("ctime: EqualLen length exceeds input")
	}
	var acc byte
	for i := 0; i < n; i++ {
		acc |= a[i] ^ b[i]
	}
	return acc == 0
}

// ConstantTimeCompare reports whether a and b are equal, delegating to
// crypto/subtle. Unlike Equal it requires the lengths to match up front and
// returns false immediately on a mismatch.
func ConstantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Select returns a when condition is 0 and b when 1, computed through an
// arithmetic bitmask rather than a branch. Conditions other than 0 or 1 are
// masked to their low bit.
func Select(condition, a, b uint32) uint32 {
	mask := uint32(0) - (condition & 1)
	return a ^ (mask & (a ^ b))
}

// SelectByte is Select for byte values.
func SelectByte(condition, a, b byte) byte {
	mask := byte(0) - (condition & 1)
	return a ^ (mask & (a ^ b))
}

// SelectBytes copies a into a fresh slice when condition is 0 and b when 1.
// Both inputs must have the same length; the copy loop reads both slices
// regardless of the condition.
func SelectBytes(condition uint32, a, b []byte) []byte {
	if len(a) != len(b) {
		panic("ctime: SelectBytes length mismatch")
	}
	mask := byte(uint32(0) - (condition & 1))
	out := make([]byte, len(a))
	for i := range out {
		out[i] = a[i] ^ (mask & (a[i] ^ b[i]))
	}
	return out
}

// AddMod returns (a + b) mod m without branching on the comparison against
// m. Both operands must already be reduced below m; the sum is conditionally
// reduced exactly once via a sign-derived mask.
func AddMod(a, b, m uint32) uint32 {
	s := uint64(a) + uint64(b)
	d := s - uint64(m)
	// d's top bit is set iff s < m; turn that into an all-ones keep mask.
	borrow := d >> 63
	mask := borrow - 1
	return uint32(s - (uint64(m) & mask))
}
