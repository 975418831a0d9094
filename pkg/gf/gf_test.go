package gf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// xtime is the reference doubling in GF(2^8): left shift with conditional
// reduction by 0x1B.
func xtime(a byte) byte {
	if a&0x80 != 0 {
		return a<<1 ^ 0x1B
	}
	return a << 1
}

func TestMul256Identity(t *testing.T) {
	for a := 0; a < 256; a++ {
		assert.Equal(t, byte(a), Mul256(byte(a), 1), "a=%#x", a)
		assert.Equal(t, byte(a), Mul256(1, byte(a)), "a=%#x", a)
		assert.Equal(t, byte(0), Mul256(byte(a), 0))
	}
}

func TestMul256Commutative(t *testing.T) {
	for a := 0; a < 256; a += 3 {
		for b := 0; b < 256; b += 5 {
			assert.Equal(t, Mul256(byte(a), byte(b)), Mul256(byte(b), byte(a)),
				"a=%#x b=%#x", a, b)
		}
	}
}

func TestMul256DoublingMatchesReference(t *testing.T) {
	for a := 0; a < 256; a++ {
		assert.Equal(t, xtime(byte(a)), Mul256(byte(a), 2), "a=%#x", a)
	}
}

func TestMul256AESVector(t *testing.T) {
	// FIPS-197 worked example.
	assert.Equal(t, byte(0xC1), Mul256(0x57, 0x83))
	assert.Equal(t, byte(0xFE), Mul256(0x57, 0x13))
}

func TestMulGenericMatchesMul256(t *testing.T) {
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 11 {
			got, err := Mul(uint32(a), uint32(b), AESPoly, 8)
			require.NoError(t, err)
			assert.Equal(t, uint32(Mul256(byte(a), byte(b))), got)
		}
	}
}

func TestMulOtherFields(t *testing.T) {
	// GF(2^4) with x^4 + x + 1 (0x13): 0x6 * 0x7 = 0x8... verify via
	// identity and a hand computation: 6*7 = (x^2+x)(x^2+x+1)
	// = x^4+x = (x+1)+x = 1 mod (x^4+x+1).
	got, err := Mul(0x6, 0x7, 0x13, 4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1), got)

	// Identity holds in every supported width.
	for width := uint(MinWidth); width <= MaxWidth; width++ {
		// x^width + x + 1 is not irreducible for every width, but the
		// multiply-by-one path never triggers reduction.
		poly := uint32(1)<<width | 0x3
		for a := uint32(0); a < 1<<width && a < 64; a++ {
			got, err := Mul(a, 1, poly, width)
			require.NoError(t, err)
			assert.Equal(t, a, got, "width=%d a=%#x", width, a)
		}
	}
}

func TestMulUnsupportedWidth(t *testing.T) {
	_, err := Mul(1, 1, 0x3, 1)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Mul(1, 1, 0x11B, 17)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestMulInputMasking(t *testing.T) {
	// Inputs are masked to the field width before multiplying.
	got, err := Mul(0x157, 0x183, AESPoly, 8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xC1), got)
}

func TestMulByTables(t *testing.T) {
	for _, m := range []byte{2, 3, 9, 11, 13, 14} {
		for a := 0; a < 256; a++ {
			assert.Equal(t, Mul256(byte(a), m), MulBy(m, byte(a)),
				"m=%d a=%#x", m, a)
		}
	}

	// Non-cached multipliers fall back to the generic multiply.
	for a := 0; a < 256; a += 17 {
		assert.Equal(t, Mul256(byte(a), 0x57), MulBy(0x57, byte(a)))
	}
}

func TestInverse(t *testing.T) {
	assert.Equal(t, byte(0), Inverse(0))
	for a := 1; a < 256; a++ {
		inv := Inverse(byte(a))
		assert.Equal(t, byte(1), Mul256(byte(a), inv), "a=%#x inv=%#x", a, inv)
	}
}

func TestDiv(t *testing.T) {
	_, err := Div(1, 0)
	assert.Error(t, err)

	got, err := Div(0, 5)
	require.NoError(t, err)
	assert.Equal(t, byte(0), got)

	for a := 1; a < 256; a += 13 {
		for b := 1; b < 256; b += 19 {
			q, err := Div(Mul256(byte(a), byte(b)), byte(b))
			require.NoError(t, err)
			assert.Equal(t, byte(a), q, "a=%#x b=%#x", a, b)
		}
	}
}

func TestPow(t *testing.T) {
	assert.Equal(t, byte(1), Pow(0x53, 0))
	assert.Equal(t, byte(0), Pow(0, 5))

	for a := 1; a < 256; a += 29 {
		// a^3 computed directly.
		want := Mul256(Mul256(byte(a), byte(a)), byte(a))
		assert.Equal(t, want, Pow(byte(a), 3), "a=%#x", a)
	}
}

func TestAdd(t *testing.T) {
	assert.Equal(t, byte(0x31), Add(0x57, 0x66))
	assert.Equal(t, byte(0), Add(0xAB, 0xAB))
}

func TestTablesConcurrentInit(t *testing.T) {
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for a := 0; a < 256; a++ {
				_ = MulBy(3, byte(a))
				_ = Inverse(byte(a))
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func BenchmarkMul256(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Mul256(byte(i), byte(i>>8))
	}
}

func BenchmarkMulByTable(b *testing.B) {
	MulBy(2, 1) // force table build outside the loop
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MulBy(2, byte(i))
	}
}
