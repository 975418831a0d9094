package word

import "fmt"

// Uint64 is a 64-bit unsigned integer held as 2 32-bit words in
// big-endian word order.
type Uint64 [2]uint32

// Uint64FromUint32s builds a Uint64 from 2 words, most significant first.
func Uint64FromUint32s(words [2]uint32) Uint64 {
	return Uint64(words)
}

// Uint64FromBytesBE interprets b as a big-endian unsigned integer modulo
// 2^64. Short input is zero-padded on the left.
func Uint64FromBytesBE(b []byte) Uint64 {
	var u Uint64
	setBytesBE(u[:], b)
	return u
}

// Uint64FromBytesLE interprets b as a little-endian unsigned integer
// modulo 2^64. Short input is zero-padded (high bytes).
func Uint64FromBytesLE(b []byte) Uint64 {
	return Uint64FromBytesBE(reverseBytes(b))
}

// BytesBE returns the value as exactly 8 big-endian bytes.
func (u Uint64) BytesBE() []byte {
	return bytesBE(u[:])
}

// BytesLE returns the value as exactly 8 little-endian bytes.
func (u Uint64) BytesLE() []byte {
	return reverseBytes(bytesBE(u[:]))
}

// Words returns the underlying 32-bit words, most significant first.
func (u Uint64) Words() [2]uint32 {
	return [2]uint32(u)
}

// Uint64FromUint64 builds the value from a native uint64.
func Uint64FromUint64(v uint64) Uint64 {
	return Uint64{uint32(v >> 32), uint32(v)}
}

// Uint64 returns the value as a native uint64.
func (u Uint64) Uint64() uint64 {
	return uint64(u[0])<<32 | uint64(u[1])
}

// Add returns u + v modulo 2^64.
func (u Uint64) Add(v Uint64) Uint64 {
	var r Uint64
	addWords(r[:], u[:], v[:])
	return r
}

// Sub returns u - v modulo 2^64.
func (u Uint64) Sub(v Uint64) Uint64 {
	var r Uint64
	subWords(r[:], u[:], v[:])
	return r
}

// Mul returns the low 64 bits of u * v.
func (u Uint64) Mul(v Uint64) Uint64 {
	var r Uint64
	mulWords(r[:], u[:], v[:])
	return r
}

// Xor returns u ^ v.
func (u Uint64) Xor(v Uint64) Uint64 {
	var r Uint64
	for i := range r {
		r[i] = u[i] ^ v[i]
	}
	return r
}

// And returns u & v.
func (u Uint64) And(v Uint64) Uint64 {
	var r Uint64
	for i := range r {
		r[i] = u[i] & v[i]
	}
	return r
}

// Or returns u | v.
func (u Uint64) Or(v Uint64) Uint64 {
	var r Uint64
	for i := range r {
		r[i] = u[i] | v[i]
	}
	return r
}

// Not returns the bitwise complement of u.
func (u Uint64) Not() Uint64 {
	var r Uint64
	for i := range r {
		r[i] = ^u[i]
	}
	return r
}

// Shl returns u logically shifted left by s bits; s is reduced modulo 64.
func (u Uint64) Shl(s uint) Uint64 {
	var r Uint64
	shlWords(r[:], u[:], s%64)
	return r
}

// Shr returns u logically shifted right by s bits; s is reduced modulo 64.
func (u Uint64) Shr(s uint) Uint64 {
	var r Uint64
	shrWords(r[:], u[:], s%64)
	return r
}

// Rotl rotates u left by s bits; s is reduced modulo 64.
func (u Uint64) Rotl(s uint) Uint64 {
	s %= 64
	return u.Shl(s).Or(u.Shr((64 - s) % 64))
}

// Rotr rotates u right by s bits; s is reduced modulo 64.
func (u Uint64) Rotr(s uint) Uint64 {
	s %= 64
	return u.Shr(s).Or(u.Shl((64 - s) % 64))
}

// Equals reports whether u and v hold the same value.
func (u Uint64) Equals(v Uint64) bool {
	return equalWords(u[:], v[:])
}

// IsZero reports whether u is zero.
func (u Uint64) IsZero() bool {
	return isZeroWords(u[:])
}

// Clone returns a structurally independent copy of u.
func (u Uint64) Clone() Uint64 {
	return u
}

// String formats the value as 16 lowercase hex digits.
func (u Uint64) String() string {
	s := ""
	for _, w := range u {
		s += fmt.Sprintf("%08x", w)
	}
	return s
}
