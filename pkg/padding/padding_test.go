package padding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripAllSchemes(t *testing.T) {
	blockSizes := []int{1, 8, 16, 255}

	for _, name := range Names() {
		scheme, err := ByName(name)
		require.NoError(t, err)

		for _, bs := range blockSizes {
			for dataLen := 0; dataLen <= 2*bs+1; dataLen++ {
				// Non-zero data so zero padding stays unambiguous.
				data := bytes.Repeat([]byte{0xA7}, dataLen)

				if name == "none" && dataLen%bs != 0 {
					_, err := scheme.Apply(bs, dataLen)
					assert.ErrorIs(t, err, ErrInvalidPadding)
					continue
				}

				padded, err := Pad(scheme, data, bs)
				require.NoError(t, err, "%s bs=%d len=%d", name, bs, dataLen)
				assert.Zero(t, len(padded)%bs, "%s bs=%d len=%d", name, bs, dataLen)

				got, err := Unpad(scheme, padded)
				require.NoError(t, err, "%s bs=%d len=%d", name, bs, dataLen)
				assert.Equal(t, data, got, "%s bs=%d len=%d", name, bs, dataLen)
			}
		}
	}
}

func TestPKCS7KnownVector(t *testing.T) {
	// A 13-byte message with block size 16 gets three bytes of 0x03.
	pad, err := PKCS7{}.Apply(16, 13)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x03, 0x03}, pad)

	// Aligned data gets a full block of padding.
	pad, err = PKCS7{}.Apply(16, 32)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{16}, 16), pad)
}

func TestPKCS7RemoveRejectsCorruption(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"Empty input", []byte{}},
		{"Zero pad length", []byte{0x01, 0x00}},
		{"Pad length exceeds data", []byte{0x05}},
		{"Inconsistent pad bytes", []byte{0x01, 0x02, 0x03, 0x03, 0x02}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PKCS7{}.Remove(tt.input)
			assert.ErrorIs(t, err, ErrInvalidPadding)
		})
	}
}

func TestISO7816(t *testing.T) {
	pad, err := ISO7816{}.Apply(8, 5)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x00, 0x00}, pad)

	got, err := ISO7816{}.Remove([]byte{0xAA, 0xBB, 0x80, 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, got)

	// Non-zero byte before the marker.
	_, err = ISO7816{}.Remove([]byte{0xAA, 0x80, 0x01, 0x00})
	assert.ErrorIs(t, err, ErrInvalidPadding)

	// No marker at all.
	_, err = ISO7816{}.Remove([]byte{0x00, 0x00, 0x00})
	assert.ErrorIs(t, err, ErrInvalidPadding)
}

func TestANSIX923(t *testing.T) {
	pad, err := ANSIX923{}.Apply(8, 5)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x03}, pad)

	// Non-zero filler byte.
	_, err = ANSIX923{}.Remove([]byte{0xAA, 0x01, 0x00, 0x03})
	assert.ErrorIs(t, err, ErrInvalidPadding)

	_, err = ANSIX923{}.Remove([]byte{})
	assert.ErrorIs(t, err, ErrInvalidPadding)
}

func TestZeroPaddingAmbiguity(t *testing.T) {
	// Data ending in zero bytes loses them on removal; this lossiness is
	// part of the scheme's contract.
	data := []byte{0x01, 0x02, 0x00}
	padded, err := Pad(Zero{}, data, 8)
	require.NoError(t, err)

	got, err := Unpad(Zero{}, padded)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, got)

	// All-zero input strips to nothing.
	got, err = Zero{}.Remove([]byte{0x00, 0x00})
	require.NoError(t, err)
	assert.Empty(t, got)

	// Aligned data gets no padding at all.
	pad, err := Zero{}.Apply(8, 16)
	require.NoError(t, err)
	assert.Empty(t, pad)
}

func TestNone(t *testing.T) {
	pad, err := None{}.Apply(8, 16)
	require.NoError(t, err)
	assert.Empty(t, pad)

	_, err = None{}.Apply(8, 15)
	assert.ErrorIs(t, err, ErrInvalidPadding)

	data := []byte{1, 2, 3}
	got, err := None{}.Remove(data)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestInvalidBlockSize(t *testing.T) {
	for _, s := range []Scheme{PKCS7{}, ISO7816{}, ANSIX923{}, Zero{}, None{}} {
		for _, bs := range []int{0, -1, 256} {
			_, err := s.Apply(bs, 10)
			assert.ErrorIs(t, err, ErrInvalidBlockSize, "%s bs=%d", s.Name(), bs)
		}
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"pkcs7", "pkcs7"},
		{"pkcs5", "pkcs7"},
		{"iso7816", "iso7816"},
		{"ansix923", "ansix923"},
		{"x923", "ansix923"},
		{"zero", "zero"},
		{"none", "none"},
	}

	for _, tt := range tests {
		s, err := ByName(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, s.Name())
	}

	_, err := ByName("iso10126")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func BenchmarkPKCS7RoundTrip(b *testing.B) {
	data := bytes.Repeat([]byte{0x42}, 100)
	for i := 0; i < b.N; i++ {
		padded, err := Pad(PKCS7{}, data, 16)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := Unpad(PKCS7{}, padded); err != nil {
			b.Fatal(err)
		}
	}
}
