package word

import "fmt"

// Uint512 is a 512-bit unsigned integer held as 16 32-bit words in
// big-endian word order.
type Uint512 [16]uint32

// Uint512FromUint32s builds a Uint512 from 16 words, most significant first.
func Uint512FromUint32s(words [16]uint32) Uint512 {
	return Uint512(words)
}

// Uint512FromBytesBE interprets b as a big-endian unsigned integer modulo
// 2^512. Short input is zero-padded on the left.
func Uint512FromBytesBE(b []byte) Uint512 {
	var u Uint512
	setBytesBE(u[:], b)
	return u
}

// Uint512FromBytesLE interprets b as a little-endian unsigned integer
// modulo 2^512. Short input is zero-padded (high bytes).
func Uint512FromBytesLE(b []byte) Uint512 {
	return Uint512FromBytesBE(reverseBytes(b))
}

// Uint512FromHalves concatenates two 256-bit halves, hi first.
func Uint512FromHalves(hi, lo Uint256) Uint512 {
	var u Uint512
	copy(u[:8], hi[:])
	copy(u[8:], lo[:])
	return u
}

// Uint512FromUint256 zero-extends a 256-bit value to 512 bits.
func Uint512FromUint256(v Uint256) Uint512 {
	var u Uint512
	copy(u[8:], v[:])
	return u
}

// BytesBE returns the value as exactly 64 big-endian bytes.
func (u Uint512) BytesBE() []byte {
	return bytesBE(u[:])
}

// BytesLE returns the value as exactly 64 little-endian bytes.
func (u Uint512) BytesLE() []byte {
	return reverseBytes(bytesBE(u[:]))
}

// Words returns the underlying 32-bit words, most significant first.
func (u Uint512) Words() [16]uint32 {
	return [16]uint32(u)
}

// Hi returns the most significant half of u.
func (u Uint512) Hi() Uint256 {
	var r Uint256
	copy(r[:], u[:8])
	return r
}

// Lo returns the least significant half of u.
func (u Uint512) Lo() Uint256 {
	var r Uint256
	copy(r[:], u[8:])
	return r
}

// Add returns u + v modulo 2^512.
func (u Uint512) Add(v Uint512) Uint512 {
	var r Uint512
	addWords(r[:], u[:], v[:])
	return r
}

// Sub returns u - v modulo 2^512.
func (u Uint512) Sub(v Uint512) Uint512 {
	var r Uint512
	subWords(r[:], u[:], v[:])
	return r
}

// Mul returns the low 512 bits of u * v.
func (u Uint512) Mul(v Uint512) Uint512 {
	var r Uint512
	mulWords(r[:], u[:], v[:])
	return r
}

// Xor returns u ^ v.
func (u Uint512) Xor(v Uint512) Uint512 {
	var r Uint512
	for i := range r {
		r[i] = u[i] ^ v[i]
	}
	return r
}

// And returns u & v.
func (u Uint512) And(v Uint512) Uint512 {
	var r Uint512
	for i := range r {
		r[i] = u[i] & v[i]
	}
	return r
}

// Or returns u | v.
func (u Uint512) Or(v Uint512) Uint512 {
	var r Uint512
	for i := range r {
		r[i] = u[i] | v[i]
	}
	return r
}

// Not returns the bitwise complement of u.
func (u Uint512) Not() Uint512 {
	var r Uint512
	for i := range r {
		r[i] = ^u[i]
	}
	return r
}

// Shl returns u logically shifted left by s bits; s is reduced modulo 512.
func (u Uint512) Shl(s uint) Uint512 {
	var r Uint512
	shlWords(r[:], u[:], s%512)
	return r
}

// Shr returns u logically shifted right by s bits; s is reduced modulo 512.
func (u Uint512) Shr(s uint) Uint512 {
	var r Uint512
	shrWords(r[:], u[:], s%512)
	return r
}

// Rotl rotates u left by s bits; s is reduced modulo 512.
func (u Uint512) Rotl(s uint) Uint512 {
	s %= 512
	return u.Shl(s).Or(u.Shr((512 - s) % 512))
}

// Rotr rotates u right by s bits; s is reduced modulo 512.
func (u Uint512) Rotr(s uint) Uint512 {
	s %= 512
	return u.Shr(s).Or(u.Shl((512 - s) % 512))
}

// Equals reports whether u and v hold the same value.
func (u Uint512) Equals(v Uint512) bool {
	return equalWords(u[:], v[:])
}

// IsZero reports whether u is zero.
func (u Uint512) IsZero() bool {
	return isZeroWords(u[:])
}

// Clone returns a structurally independent copy of u.
func (u Uint512) Clone() Uint512 {
	return u
}

// String formats the value as 128 lowercase hex digits.
func (u Uint512) String() string {
	s := ""
	for _, w := range u {
		s += fmt.Sprintf("%08x", w)
	}
	return s
}
