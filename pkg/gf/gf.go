// Package gf implements Galois-Field arithmetic for block-cipher diffusion
// layers: GF(2^8) under the Rijndael irreducible polynomial
// x^8 + x^4 + x^3 + x + 1 (0x11B) as used by AES, and a generic GF(2^n)
// multiply for ciphers whose field differs.
package gf

import (
	"errors"
	"fmt"
	"sync"
)

const (
	// AESPoly is the Rijndael reduction polynomial x^8 + x^4 + x^3 + x + 1.
	AESPoly = 0x11B

	// MinWidth and MaxWidth bound the field width accepted by Mul.
	MinWidth = 2
	MaxWidth = 16
)

// ErrUnsupported is returned when a generic field operation is asked for a
// width outside MinWidth..MaxWidth.
var ErrUnsupported = errors.New("unsupported field width")

// Mul256 multiplies a and b in GF(2^8) under AESPoly using eight rounds of
// conditional XOR-accumulate with conditional reduction.
func Mul256(a, b byte) byte {
	var result byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			result ^= a
		}
		highBit := a & 0x80
		a <<= 1
		if highBit != 0 {
			a ^= byte(AESPoly & 0xFF)
		}
		b >>= 1
	}
	return result
}

// Mul multiplies a and b in GF(2^width) reduced by the given irreducible
// polynomial. The polynomial is passed in full form including the x^width
// term (e.g. 0x11B for GF(2^8)). Inputs are masked to the field width.
func Mul(a, b uint32, irreducible uint32, width uint) (uint32, error) {
	if width < MinWidth || width > MaxWidth {
		return 0, fmt.Errorf("field width %d: %w", width, ErrUnsupported)
	}

	mask := uint32(1)<<width - 1
	highBit := uint32(1) << (width - 1)
	a &= mask
	b &= mask

	var result uint32
	for i := uint(0); i < width; i++ {
		if b&1 != 0 {
			result ^= a
		}
		carry := a & highBit
		a = (a << 1) & mask
		if carry != 0 {
			a ^= irreducible & mask
		}
		b >>= 1
	}
	return result, nil
}

// Add performs addition in GF(2^n), which is XOR.
func Add(a, b byte) byte {
	return a ^ b
}

// fixedMultipliers are the MixColumns-style constants whose multiplication
// tables are precomputed on first use.
var fixedMultipliers = [6]byte{2, 3, 9, 11, 13, 14}

// tables holds the process-lifetime caches: one 256-entry table per fixed
// multiplier plus log/exp tables for inversion. Built exactly once.
var tables struct {
	once sync.Once
	mul  map[byte]*[256]byte
	exp  [256]byte
	log  [256]byte
}

func buildTables() {
	tables.mul = make(map[byte]*[256]byte, len(fixedMultipliers))
	for _, m := range fixedMultipliers {
		var t [256]byte
		for a := 0; a < 256; a++ {
			t[a] = Mul256(byte(a), m)
		}
		tables.mul[m] = &t
	}

	// exp/log tables via repeated multiplication by the generator 2.
	x := byte(1)
	for i := 0; i < 255; i++ {
		tables.exp[i] = x
		tables.log[x] = byte(i)
		x = Mul256(x, 2)
	}
	tables.exp[255] = 1
	tables.log[0] = 0 // log(0) is undefined; 0 keeps lookups in range
}

// MulBy multiplies a by m in GF(2^8), using the cached table when m is one
// of the fixed diffusion multipliers (2, 3, 9, 11, 13, 14) and falling back
// to Mul256 otherwise. Safe for concurrent use.
func MulBy(m, a byte) byte {
	tables.once.Do(buildTables)
	if t, ok := tables.mul[m]; ok {
		return t[a]
	}
	return Mul256(a, m)
}

// Inverse returns the multiplicative inverse of a in GF(2^8), or 0 for the
// (undefined) inverse of 0.
func Inverse(a byte) byte {
	if a == 0 {
		return 0
	}
	tables.once.Do(buildTables)
	return tables.exp[255-tables.log[a]]
}

// Div divides a by b in GF(2^8) using the log/exp tables.
func Div(a, b byte) (byte, error) {
	if b == 0 {
		return 0, errors.New("division by zero in GF(2^8)")
	}
	if a == 0 {
		return 0, nil
	}
	tables.once.Do(buildTables)
	logA := int(tables.log[a])
	logB := int(tables.log[b])
	return tables.exp[(logA-logB+255)%255], nil
}

// Pow raises a to the power e in GF(2^8).
func Pow(a, e byte) byte {
	if e == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	tables.once.Do(buildTables)
	return tables.exp[int(tables.log[a])*int(e)%255]
}
