package bitstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	type field struct {
		value uint32
		n     int
	}
	fields := []field{
		{0x1, 1}, {0x0, 1}, {0x5, 3}, {0xA5, 8}, {0x3FF, 10},
		{0x12345678, 32}, {0x7FFF, 15}, {0x1, 2}, {0xFFFFF, 20},
	}

	s := New()
	for _, f := range fields {
		require.NoError(t, s.WriteBits(f.value, f.n))
	}

	for _, f := range fields {
		got, err := s.ReadBits(f.n)
		require.NoError(t, err)
		assert.Equal(t, f.value, got, "%d-bit field", f.n)
	}
	assert.Zero(t, s.BitsRemaining())
}

func TestWriteBitsMasksValue(t *testing.T) {
	s := New()
	// Only the low 4 bits of the value are taken.
	require.NoError(t, s.WriteBits(0xFFFFFFF5, 4))
	got, err := s.ReadBits(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x5), got)
}

func TestWriteBitsRejectsBadCounts(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.WriteBits(0, 0), ErrUnsupported)
	assert.ErrorIs(t, s.WriteBits(0, 33), ErrUnsupported)
	assert.ErrorIs(t, s.WriteBits(0, -1), ErrUnsupported)

	_, err := s.PeekBits(0)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestFlushOrder(t *testing.T) {
	s := New()
	// 0xABC as 12 bits, then 4 more bits: bytes come out MSB-first.
	require.NoError(t, s.WriteBits(0xABC, 12))
	require.NoError(t, s.WriteBits(0xD, 4))
	assert.Equal(t, []byte{0xAB, 0xCD}, s.Bytes(false))
}

func TestConvenienceWriters(t *testing.T) {
	s := New()
	require.NoError(t, s.WriteByte(0x61))
	require.NoError(t, s.WriteUint16BE(0x6263))
	require.NoError(t, s.WriteUint16LE(0x6263))
	require.NoError(t, s.WriteUint32BE(0x01020304))
	require.NoError(t, s.WriteUint32LE(0x01020304))

	assert.Equal(t, []byte{
		0x61,
		0x62, 0x63,
		0x63, 0x62,
		0x01, 0x02, 0x03, 0x04,
		0x04, 0x03, 0x02, 0x01,
	}, s.Bytes(false))

	b, err := s.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x61), b)
}

func TestVarIntRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 0x7F, 0x80, 0x3FFF, 0x4000, 0x1FFFFF, 0x200000,
		0xFFFFFFF, 0x10000000, 0xFFFFFFFF}

	s := New()
	for _, v := range values {
		require.NoError(t, s.WriteVarInt(v))
	}
	for _, v := range values {
		got, err := s.ReadVarInt()
		require.NoError(t, err)
		assert.Equal(t, v, got, "varint %#x", v)
	}
}

func TestUnaryRoundTrip(t *testing.T) {
	counts := []int{0, 1, 2, 7, 8, 63, 200}

	s := New()
	for _, k := range counts {
		require.NoError(t, s.WriteUnary(k))
	}
	for _, k := range counts {
		got, err := s.ReadUnary()
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	assert.ErrorIs(t, New().WriteUnary(-1), ErrUnsupported)
}

func TestOutOfData(t *testing.T) {
	s := FromBytes([]byte{0xAB})

	_, err := s.ReadBits(9)
	assert.ErrorIs(t, err, ErrOutOfData)
	// The failed read consumed nothing.
	assert.Equal(t, 8, s.BitsRemaining())

	got, err := s.ReadBits(8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xAB), got)

	_, err = s.ReadBits(1)
	assert.ErrorIs(t, err, ErrOutOfData)

	// An interrupted varint read rewinds to its start.
	s2 := New()
	require.NoError(t, s2.WriteBits(1, 1)) // continuation bit without a group
	_, err = s2.ReadVarInt()
	assert.ErrorIs(t, err, ErrOutOfData)
	assert.Equal(t, 1, s2.BitsRemaining())
}

func TestPeekAndSeek(t *testing.T) {
	s := FromBytes([]byte{0xDE, 0xAD})

	v, err := s.PeekBits(8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDE), v)
	assert.Equal(t, 16, s.BitsRemaining())

	s.SkipBits(4)
	v, err = s.ReadBits(8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xEA), v)

	// Seeks clamp to the valid range.
	s.SeekBits(-5)
	assert.Equal(t, 16, s.BitsRemaining())
	s.SeekBits(1000)
	assert.Zero(t, s.BitsRemaining())
	s.SkipBits(-3)
	assert.Equal(t, 3, s.BitsRemaining())
}

func TestPendingBitsAreReadable(t *testing.T) {
	s := New()
	require.NoError(t, s.WriteBits(0x5, 3))

	v, err := s.ReadBits(3)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x5), v)

	// Bytes without padding exposes no partial byte.
	assert.Empty(t, s.Bytes(false))
	// With padding the pending bits are left-justified.
	assert.Equal(t, []byte{0xA0}, s.Bytes(true))
}

func TestAlignToByte(t *testing.T) {
	s := New()
	require.NoError(t, s.WriteBits(0x3, 2))
	s.AlignToByte()
	assert.Equal(t, 8, s.BitsWritten())
	assert.Equal(t, []byte{0xC0}, s.Bytes(false))

	// Aligning an aligned stream is a no-op.
	s.AlignToByte()
	assert.Equal(t, 8, s.BitsWritten())
}

func TestBytesReturnsCopy(t *testing.T) {
	s := FromBytes([]byte{0x01, 0x02})
	b := s.Bytes(false)
	b[0] = 0xFF

	again := s.Bytes(false)
	assert.Equal(t, byte(0x01), again[0])
}

func TestHexScenario(t *testing.T) {
	s := FromBytes([]byte{0x61, 0x62, 0x63})
	assert.Equal(t, 24, s.BitsWritten())

	v, err := s.ReadBits(24)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x616263), v)
}

func BenchmarkWriteBits(b *testing.B) {
	s := New()
	for i := 0; i < b.N; i++ {
		_ = s.WriteBits(uint32(i), 13)
	}
}

func BenchmarkReadBits(b *testing.B) {
	s := New()
	for i := 0; i < 100000; i++ {
		_ = s.WriteBits(uint32(i), 13)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.ReadBits(13); err != nil {
			s.SeekBits(0)
		}
	}
}
