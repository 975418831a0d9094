// Package word implements fixed-precision unsigned integer arithmetic for
// 64, 128, 256 and 512-bit values represented as arrays of 32-bit words in
// big-endian word order (most-significant word first).
//
// All operations are performed modulo 2^W for the type's width W, so callers
// may rely on wrap-around semantics; overflow is never an error. Every
// operation is pure: operands are taken by value and a fresh result is
// returned, so no call ever mutates or aliases its inputs.
package word

// addWords computes dst = a + b modulo 2^(32*len) with explicit carry
// propagation from the least-significant word. All slices share one length.
func addWords(dst, a, b []uint32) {
	var carry uint64
	for i := len(a) - 1; i >= 0; i-- {
		s := uint64(a[i]) + uint64(b[i]) + carry
		dst[i] = uint32(s)
		carry = s >> 32
	}
}

// subWords computes dst = a - b modulo 2^(32*len) with explicit borrow
// propagation from the least-significant word.
func subWords(dst, a, b []uint32) {
	var borrow uint64
	for i := len(a) - 1; i >= 0; i-- {
		d := uint64(a[i]) - uint64(b[i]) - borrow
		dst[i] = uint32(d)
		borrow = (d >> 32) & 1
	}
}

// mulWords computes dst = a * b keeping only the low 32*len bits, using
// schoolbook multiplication over 32-bit limbs with 64-bit intermediates.
// The per-step sum a_i*b_j + dst + carry peaks at exactly 2^64-1, so the
// uint64 accumulator cannot overflow.
func mulWords(dst, a, b []uint32) {
	n := len(a)
	for i := range dst {
		dst[i] = 0
	}
	for i := 0; i < n; i++ {
		ai := uint64(a[n-1-i])
		if ai == 0 {
			continue
		}
		var carry uint64
		for j := 0; i+j < n; j++ {
			k := n - 1 - (i + j)
			cur := uint64(dst[k]) + ai*uint64(b[n-1-j]) + carry
			dst[k] = uint32(cur)
			carry = cur >> 32
		}
	}
}

// shlWords computes dst = a << s (logical). s must already be reduced below
// 32*len by the caller.
func shlWords(dst, a []uint32, s uint) {
	n := len(a)
	ws := int(s / 32)
	bs := s % 32
	for i := 0; i < n; i++ {
		src := i + ws
		var v uint32
		if src < n {
			v = a[src] << bs
			if bs > 0 && src+1 < n {
				v |= a[src+1] >> (32 - bs)
			}
		}
		dst[i] = v
	}
}

// shrWords computes dst = a >> s (logical). s must already be reduced below
// 32*len by the caller.
func shrWords(dst, a []uint32, s uint) {
	n := len(a)
	ws := int(s / 32)
	bs := s % 32
	for i := n - 1; i >= 0; i-- {
		src := i - ws
		var v uint32
		if src >= 0 {
			v = a[src] >> bs
			if bs > 0 && src-1 >= 0 {
				v |= a[src-1] << (32 - bs)
			}
		}
		dst[i] = v
	}
}

func equalWords(a, b []uint32) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func isZeroWords(a []uint32) bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}
	return true
}

// setBytesBE loads dst from a big-endian byte sequence. Short input is
// zero-padded on the left; input longer than the word array keeps only the
// least-significant bytes, matching the modular semantics of the type.
func setBytesBE(dst []uint32, b []byte) {
	for i := range dst {
		dst[i] = 0
	}
	if over := len(b) - len(dst)*4; over > 0 {
		b = b[over:]
	}
	// Fill from the least-significant end.
	wi := len(dst) - 1
	shift := uint(0)
	for i := len(b) - 1; i >= 0; i-- {
		dst[wi] |= uint32(b[i]) << shift
		shift += 8
		if shift == 32 {
			shift = 0
			wi--
		}
	}
}

func bytesBE(a []uint32) []byte {
	out := make([]byte, len(a)*4)
	for i, w := range a {
		out[i*4] = byte(w >> 24)
		out[i*4+1] = byte(w >> 16)
		out[i*4+2] = byte(w >> 8)
		out[i*4+3] = byte(w)
	}
	return out
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[i] = b[len(b)-1-i]
	}
	return out
}
