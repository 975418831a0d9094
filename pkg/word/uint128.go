package word

import "fmt"

// Uint128 is a 128-bit unsigned integer held as 4 32-bit words in
// big-endian word order.
type Uint128 [4]uint32

// Uint128FromUint32s builds a Uint128 from 4 words, most significant first.
func Uint128FromUint32s(words [4]uint32) Uint128 {
	return Uint128(words)
}

// Uint128FromBytesBE interprets b as a big-endian unsigned integer modulo
// 2^128. Short input is zero-padded on the left.
func Uint128FromBytesBE(b []byte) Uint128 {
	var u Uint128
	setBytesBE(u[:], b)
	return u
}

// Uint128FromBytesLE interprets b as a little-endian unsigned integer
// modulo 2^128. Short input is zero-padded (high bytes).
func Uint128FromBytesLE(b []byte) Uint128 {
	return Uint128FromBytesBE(reverseBytes(b))
}

// Uint128FromHalves concatenates two 64-bit halves, hi first.
func Uint128FromHalves(hi, lo Uint64) Uint128 {
	var u Uint128
	copy(u[:2], hi[:])
	copy(u[2:], lo[:])
	return u
}

// Uint128FromUint64 zero-extends a 64-bit value to 128 bits.
func Uint128FromUint64(v Uint64) Uint128 {
	var u Uint128
	copy(u[2:], v[:])
	return u
}

// BytesBE returns the value as exactly 16 big-endian bytes.
func (u Uint128) BytesBE() []byte {
	return bytesBE(u[:])
}

// BytesLE returns the value as exactly 16 little-endian bytes.
func (u Uint128) BytesLE() []byte {
	return reverseBytes(bytesBE(u[:]))
}

// Words returns the underlying 32-bit words, most significant first.
func (u Uint128) Words() [4]uint32 {
	return [4]uint32(u)
}

// Hi returns the most significant half of u.
func (u Uint128) Hi() Uint64 {
	var r Uint64
	copy(r[:], u[:2])
	return r
}

// Lo returns the least significant half of u.
func (u Uint128) Lo() Uint64 {
	var r Uint64
	copy(r[:], u[2:])
	return r
}

// Add returns u + v modulo 2^128.
func (u Uint128) Add(v Uint128) Uint128 {
	var r Uint128
	addWords(r[:], u[:], v[:])
	return r
}

// Sub returns u - v modulo 2^128.
func (u Uint128) Sub(v Uint128) Uint128 {
	var r Uint128
	subWords(r[:], u[:], v[:])
	return r
}

// Mul returns the low 128 bits of u * v.
func (u Uint128) Mul(v Uint128) Uint128 {
	var r Uint128
	mulWords(r[:], u[:], v[:])
	return r
}

// Xor returns u ^ v.
func (u Uint128) Xor(v Uint128) Uint128 {
	var r Uint128
	for i := range r {
		r[i] = u[i] ^ v[i]
	}
	return r
}

// And returns u & v.
func (u Uint128) And(v Uint128) Uint128 {
	var r Uint128
	for i := range r {
		r[i] = u[i] & v[i]
	}
	return r
}

// Or returns u | v.
func (u Uint128) Or(v Uint128) Uint128 {
	var r Uint128
	for i := range r {
		r[i] = u[i] | v[i]
	}
	return r
}

// Not returns the bitwise complement of u.
func (u Uint128) Not() Uint128 {
	var r Uint128
	for i := range r {
		r[i] = ^u[i]
	}
	return r
}

// Shl returns u logically shifted left by s bits; s is reduced modulo 128.
func (u Uint128) Shl(s uint) Uint128 {
	var r Uint128
	shlWords(r[:], u[:], s%128)
	return r
}

// Shr returns u logically shifted right by s bits; s is reduced modulo 128.
func (u Uint128) Shr(s uint) Uint128 {
	var r Uint128
	shrWords(r[:], u[:], s%128)
	return r
}

// Rotl rotates u left by s bits; s is reduced modulo 128.
func (u Uint128) Rotl(s uint) Uint128 {
	s %= 128
	return u.Shl(s).Or(u.Shr((128 - s) % 128))
}

// Rotr rotates u right by s bits; s is reduced modulo 128.
func (u Uint128) Rotr(s uint) Uint128 {
	s %= 128
	return u.Shr(s).Or(u.Shl((128 - s) % 128))
}

// Equals reports whether u and v hold the same value.
func (u Uint128) Equals(v Uint128) bool {
	return equalWords(u[:], v[:])
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool {
	return isZeroWords(u[:])
}

// Clone returns a structurally independent copy of u.
func (u Uint128) Clone() Uint128 {
	return u
}

// String formats the value as 32 lowercase hex digits.
func (u Uint128) String() string {
	s := ""
	for _, w := range u {
		s += fmt.Sprintf("%08x", w)
	}
	return s
}
