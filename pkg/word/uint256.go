package word

import "fmt"

// Uint256 is a 256-bit unsigned integer held as 8 32-bit words in
// big-endian word order.
type Uint256 [8]uint32

// Uint256FromUint32s builds a Uint256 from 8 words, most significant first.
func Uint256FromUint32s(words [8]uint32) Uint256 {
	return Uint256(words)
}

// Uint256FromBytesBE interprets b as a big-endian unsigned integer modulo
// 2^256. Short input is zero-padded on the left.
func Uint256FromBytesBE(b []byte) Uint256 {
	var u Uint256
	setBytesBE(u[:], b)
	return u
}

// Uint256FromBytesLE interprets b as a little-endian unsigned integer
// modulo 2^256. Short input is zero-padded (high bytes).
func Uint256FromBytesLE(b []byte) Uint256 {
	return Uint256FromBytesBE(reverseBytes(b))
}

// Uint256FromHalves concatenates two 128-bit halves, hi first.
func Uint256FromHalves(hi, lo Uint128) Uint256 {
	var u Uint256
	copy(u[:4], hi[:])
	copy(u[4:], lo[:])
	return u
}

// Uint256FromUint128 zero-extends a 128-bit value to 256 bits.
func Uint256FromUint128(v Uint128) Uint256 {
	var u Uint256
	copy(u[4:], v[:])
	return u
}

// BytesBE returns the value as exactly 32 big-endian bytes.
func (u Uint256) BytesBE() []byte {
	return bytesBE(u[:])
}

// BytesLE returns the value as exactly 32 little-endian bytes.
func (u Uint256) BytesLE() []byte {
	return reverseBytes(bytesBE(u[:]))
}

// Words returns the underlying 32-bit words, most significant first.
func (u Uint256) Words() [8]uint32 {
	return [8]uint32(u)
}

// Hi returns the most significant half of u.
func (u Uint256) Hi() Uint128 {
	var r Uint128
	copy(r[:], u[:4])
	return r
}

// Lo returns the least significant half of u.
func (u Uint256) Lo() Uint128 {
	var r Uint128
	copy(r[:], u[4:])
	return r
}

// Add returns u + v modulo 2^256.
func (u Uint256) Add(v Uint256) Uint256 {
	var r Uint256
	addWords(r[:], u[:], v[:])
	return r
}

// Sub returns u - v modulo 2^256.
func (u Uint256) Sub(v Uint256) Uint256 {
	var r Uint256
	subWords(r[:], u[:], v[:])
	return r
}

// Mul returns the low 256 bits of u * v.
func (u Uint256) Mul(v Uint256) Uint256 {
	var r Uint256
	mulWords(r[:], u[:], v[:])
	return r
}

// Xor returns u ^ v.
func (u Uint256) Xor(v Uint256) Uint256 {
	var r Uint256
	for i := range r {
		r[i] = u[i] ^ v[i]
	}
	return r
}

// And returns u & v.
func (u Uint256) And(v Uint256) Uint256 {
	var r Uint256
	for i := range r {
		r[i] = u[i] & v[i]
	}
	return r
}

// Or returns u | v.
func (u Uint256) Or(v Uint256) Uint256 {
	var r Uint256
	for i := range r {
		r[i] = u[i] | v[i]
	}
	return r
}

// Not returns the bitwise complement of u.
func (u Uint256) Not() Uint256 {
	var r Uint256
	for i := range r {
		r[i] = ^u[i]
	}
	return r
}

// Shl returns u logically shifted left by s bits; s is reduced modulo 256.
func (u Uint256) Shl(s uint) Uint256 {
	var r Uint256
	shlWords(r[:], u[:], s%256)
	return r
}

// Shr returns u logically shifted right by s bits; s is reduced modulo 256.
func (u Uint256) Shr(s uint) Uint256 {
	var r Uint256
	shrWords(r[:], u[:], s%256)
	return r
}

// Rotl rotates u left by s bits; s is reduced modulo 256.
func (u Uint256) Rotl(s uint) Uint256 {
	s %= 256
	return u.Shl(s).Or(u.Shr((256 - s) % 256))
}

// Rotr rotates u right by s bits; s is reduced modulo 256.
func (u Uint256) Rotr(s uint) Uint256 {
	s %= 256
	return u.Shr(s).Or(u.Shl((256 - s) % 256))
}

// Equals reports whether u and v hold the same value.
func (u Uint256) Equals(v Uint256) bool {
	return equalWords(u[:], v[:])
}

// IsZero reports whether u is zero.
func (u Uint256) IsZero() bool {
	return isZeroWords(u[:])
}

// Clone returns a structurally independent copy of u.
func (u Uint256) Clone() Uint256 {
	return u
}

// String formats the value as 64 lowercase hex digits.
func (u Uint256) String() string {
	s := ""
	for _, w := range u {
		s += fmt.Sprintf("%08x", w)
	}
	return s
}
