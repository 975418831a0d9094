// Package bits provides fixed-width rotate, shift, pack and unpack primitives
// for 8/16/32/64-bit words. Every operation masks its result to the declared
// width and reduces rotation counts modulo the width, so no input is ever
// rejected.
package bits

// BitMask returns a value with the low n bits set. n is clamped to 0..64.
func BitMask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}

// RotL8 rotates the low 8 bits of v left by positions.
func RotL8(v byte, positions uint) byte {
	positions &= 7
	return v<<positions | v>>(8-positions)
}

// RotR8 rotates the low 8 bits of v right by positions.
func RotR8(v byte, positions uint) byte {
	return RotL8(v, 8-(positions&7))
}

// RotL16 rotates the low 16 bits of v left by positions.
func RotL16(v uint16, positions uint) uint16 {
	positions &= 15
	return v<<positions | v>>(16-positions)
}

// RotR16 rotates the low 16 bits of v right by positions.
func RotR16(v uint16, positions uint) uint16 {
	return RotL16(v, 16-(positions&15))
}

// RotL32 rotates v left by positions.
func RotL32(v uint32, positions uint) uint32 {
	positions &= 31
	return v<<positions | v>>(32-positions)
}

// RotR32 rotates v right by positions.
func RotR32(v uint32, positions uint) uint32 {
	return RotL32(v, 32-(positions&31))
}

// RotL64 rotates v left by positions.
func RotL64(v uint64, positions uint) uint64 {
	positions &= 63
	return v<<positions | v>>(64-positions)
}

// RotR64 rotates v right by positions.
func RotR64(v uint64, positions uint) uint64 {
	return RotL64(v, 64-(positions&63))
}

// Pack16BE packs two bytes into a 16-bit word, b0 most significant.
func Pack16BE(b0, b1 byte) uint16 {
	return uint16(b0)<<8 | uint16(b1)
}

// Pack16LE packs two bytes into a 16-bit word, b0 least significant.
func Pack16LE(b0, b1 byte) uint16 {
	return uint16(b1)<<8 | uint16(b0)
}

// Pack32BE packs four bytes into a 32-bit word, b0 most significant.
func Pack32BE(b0, b1, b2, b3 byte) uint32 {
	return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
}

// Pack32LE packs four bytes into a 32-bit word, b0 least significant.
func Pack32LE(b0, b1, b2, b3 byte) uint32 {
	return uint32(b3)<<24 | uint32(b2)<<16 | uint32(b1)<<8 | uint32(b0)
}

// Pack64BE packs eight bytes into a 64-bit word, b0 most significant.
func Pack64BE(b0, b1, b2, b3, b4, b5, b6, b7 byte) uint64 {
	return uint64(Pack32BE(b0, b1, b2, b3))<<32 | uint64(Pack32BE(b4, b5, b6, b7))
}

// Pack64LE packs eight bytes into a 64-bit word, b0 least significant.
func Pack64LE(b0, b1, b2, b3, b4, b5, b6, b7 byte) uint64 {
	return uint64(Pack32LE(b4, b5, b6, b7))<<32 | uint64(Pack32LE(b0, b1, b2, b3))
}

// Unpack16BE splits a 16-bit word into two bytes, most significant first.
func Unpack16BE(v uint16) [2]byte {
	return [2]byte{byte(v >> 8), byte(v)}
}

// Unpack16LE splits a 16-bit word into two bytes, least significant first.
func Unpack16LE(v uint16) [2]byte {
	return [2]byte{byte(v), byte(v >> 8)}
}

// Unpack32BE splits a 32-bit word into four bytes, most significant first.
func Unpack32BE(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// Unpack32LE splits a 32-bit word into four bytes, least significant first.
func Unpack32LE(v uint32) [4]byte {
	return [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// Unpack64BE splits a 64-bit word into eight bytes, most significant first.
func Unpack64BE(v uint64) [8]byte {
	return [8]byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	}
}

// Unpack64LE splits a 64-bit word into eight bytes, least significant first.
func Unpack64LE(v uint64) [8]byte {
	return [8]byte{
		byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24),
		byte(v >> 32), byte(v >> 40), byte(v >> 48), byte(v >> 56),
	}
}

// GetByte extracts the byte at position pos (0 = least significant,
// 3 = most significant) from a 32-bit word. pos is reduced modulo 4.
func GetByte(v uint32, pos uint) byte {
	return byte(v >> ((pos & 3) * 8))
}

// SetByte returns a copy of v with the byte at position pos replaced.
// pos 0 is the least significant byte; pos is reduced modulo 4.
func SetByte(v uint32, pos uint, b byte) uint32 {
	shift := (pos & 3) * 8
	return v&^(uint32(0xFF)<<shift) | uint32(b)<<shift
}

// XORBytes XORs two byte slices pairwise up to the shorter length and
// returns a fresh slice; neither input is modified.
func XORBytes(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// BitPermutation reorders the bits of data according to a permutation table.
// Each table entry names the source bit index (msbFirst selects whether bit 0
// of a byte is the most or least significant bit). Entries outside the input
// produce zero bits. The result is packed back into bytes in the same bit
// order, zero-padded to a whole byte.
func BitPermutation(data []byte, table []int, msbFirst bool) []byte {
	bit := func(i int) byte {
		if i < 0 || i >= len(data)*8 {
			return 0
		}
		b := data[i/8]
		if msbFirst {
			return (b >> (7 - uint(i%8))) & 1
		}
		return (b >> uint(i%8)) & 1
	}

	out := make([]byte, (len(table)+7)/8)
	for i, src := range table {
		v := bit(src)
		if msbFirst {
			out[i/8] |= v << (7 - uint(i%8))
		} else {
			out[i/8] |= v << uint(i%8)
		}
	}
	return out
}
