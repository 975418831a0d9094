package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitMask(t *testing.T) {
	assert.Equal(t, uint64(0), BitMask(0))
	assert.Equal(t, uint64(0xFF), BitMask(8))
	assert.Equal(t, uint64(0xFFFFFFFF), BitMask(32))
	assert.Equal(t, ^uint64(0), BitMask(64))
	assert.Equal(t, ^uint64(0), BitMask(100))
}

func TestRotateRoundTrip(t *testing.T) {
	values8 := []byte{0x00, 0x01, 0x80, 0xA5, 0xFF}
	for _, v := range values8 {
		for k := uint(0); k <= 16; k++ {
			assert.Equal(t, v, RotL8(RotR8(v, k), k), "8-bit v=%#x k=%d", v, k)
		}
		assert.Equal(t, v, RotL8(v, 0))
		assert.Equal(t, v, RotL8(v, 8))
		assert.Equal(t, v, RotR8(v, 8))
	}

	values16 := []uint16{0x0000, 0x0001, 0x8000, 0xBEEF, 0xFFFF}
	for _, v := range values16 {
		for k := uint(0); k <= 32; k++ {
			assert.Equal(t, v, RotL16(RotR16(v, k), k), "16-bit v=%#x k=%d", v, k)
		}
		assert.Equal(t, v, RotL16(v, 16))
	}

	values32 := []uint32{0, 1, 0x80000000, 0xDEADBEEF, 0xFFFFFFFF}
	for _, v := range values32 {
		for k := uint(0); k <= 64; k++ {
			assert.Equal(t, v, RotL32(RotR32(v, k), k), "32-bit v=%#x k=%d", v, k)
		}
		assert.Equal(t, v, RotL32(v, 32))
	}

	values64 := []uint64{0, 1, 0x8000000000000000, 0x0123456789ABCDEF, ^uint64(0)}
	for _, v := range values64 {
		for k := uint(0); k <= 128; k++ {
			assert.Equal(t, v, RotL64(RotR64(v, k), k), "64-bit v=%#x k=%d", v, k)
		}
		assert.Equal(t, v, RotL64(v, 64))
	}
}

func TestRotateKnownValues(t *testing.T) {
	assert.Equal(t, uint32(0x23456781), RotL32(0x12345678, 4))
	assert.Equal(t, uint32(0x81234567), RotR32(0x12345678, 4))
	assert.Equal(t, byte(0x4B), RotL8(0xA5, 1))
	assert.Equal(t, byte(0xD2), RotR8(0xA5, 1))
}

func TestPackUnpackRoundTrip(t *testing.T) {
	b := [8]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}

	assert.Equal(t, [2]byte{b[0], b[1]}, Unpack16BE(Pack16BE(b[0], b[1])))
	assert.Equal(t, [2]byte{b[0], b[1]}, Unpack16LE(Pack16LE(b[0], b[1])))
	assert.Equal(t, [4]byte{b[0], b[1], b[2], b[3]}, Unpack32BE(Pack32BE(b[0], b[1], b[2], b[3])))
	assert.Equal(t, [4]byte{b[0], b[1], b[2], b[3]}, Unpack32LE(Pack32LE(b[0], b[1], b[2], b[3])))
	assert.Equal(t, b, Unpack64BE(Pack64BE(b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7])))
	assert.Equal(t, b, Unpack64LE(Pack64LE(b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7])))
}

func TestPackKnownValues(t *testing.T) {
	assert.Equal(t, uint32(0x01234567), Pack32BE(0x01, 0x23, 0x45, 0x67))
	assert.Equal(t, uint32(0x67452301), Pack32LE(0x01, 0x23, 0x45, 0x67))
	assert.Equal(t, uint16(0x0123), Pack16BE(0x01, 0x23))
	assert.Equal(t, uint16(0x2301), Pack16LE(0x01, 0x23))
	assert.Equal(t, uint64(0x0123456789ABCDEF),
		Pack64BE(0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF))
}

func TestGetSetByte(t *testing.T) {
	v := uint32(0x01234567)

	assert.Equal(t, byte(0x67), GetByte(v, 0))
	assert.Equal(t, byte(0x45), GetByte(v, 1))
	assert.Equal(t, byte(0x23), GetByte(v, 2))
	assert.Equal(t, byte(0x01), GetByte(v, 3))
	// Position wraps modulo 4.
	assert.Equal(t, byte(0x67), GetByte(v, 4))

	assert.Equal(t, uint32(0x012345FF), SetByte(v, 0, 0xFF))
	assert.Equal(t, uint32(0x0123FF67), SetByte(v, 1, 0xFF))
	assert.Equal(t, uint32(0x01FF4567), SetByte(v, 2, 0xFF))
	assert.Equal(t, uint32(0xFF234567), SetByte(v, 3, 0xFF))
	// SetByte is pure.
	assert.Equal(t, uint32(0x01234567), v)
}

func TestXORBytes(t *testing.T) {
	tests := []struct {
		name string
		a, b []byte
		want []byte
	}{
		{"Equal length", []byte{0x0F, 0xF0}, []byte{0xFF, 0xFF}, []byte{0xF0, 0x0F}},
		{"A shorter", []byte{0x01}, []byte{0x01, 0x02}, []byte{0x00}},
		{"B shorter", []byte{0x01, 0x02}, []byte{0x03}, []byte{0x02}},
		{"Empty", []byte{}, []byte{0x01}, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := XORBytes(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
		})
	}

	// Inputs are not modified.
	a := []byte{0xAA}
	b := []byte{0x55}
	XORBytes(a, b)
	assert.Equal(t, []byte{0xAA}, a)
	assert.Equal(t, []byte{0x55}, b)
}

func TestBitPermutation(t *testing.T) {
	// Identity permutation, MSB-first indexing.
	identity := make([]int, 16)
	for i := range identity {
		identity[i] = i
	}
	data := []byte{0xA5, 0x3C}
	assert.Equal(t, data, BitPermutation(data, identity, true))

	// Reversal of a single byte.
	reverse := []int{7, 6, 5, 4, 3, 2, 1, 0}
	got := BitPermutation([]byte{0x01}, reverse, true)
	require.Len(t, got, 1)
	assert.Equal(t, byte(0x80), got[0])

	// Out-of-range source bits produce zeros.
	got = BitPermutation([]byte{0xFF}, []int{0, 100, -1, 7}, true)
	require.Len(t, got, 1)
	assert.Equal(t, byte(0x90), got[0])

	// LSB-first indexing selects from the other end of each byte.
	got = BitPermutation([]byte{0x01}, []int{0}, false)
	require.Len(t, got, 1)
	assert.Equal(t, byte(0x01), got[0])
}

func BenchmarkRotL32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RotL32(0xDEADBEEF, uint(i))
	}
}

func BenchmarkXORBytes(b *testing.B) {
	x := make([]byte, 1024)
	y := make([]byte, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		XORBytes(x, y)
	}
}
