// Package conv provides the byte-sequence conversions shared by cipher and
// hash implementations: hex text to bytes and back, string to bytes, byte
// arrays to 32-bit word arrays, and S-box/P-box table ingestion.
//
// Hex decoding comes in a strict and a lenient ("clean") variant; consumers
// depend on both behaviors, so both are exported under distinct names
// rather than unified.
package conv

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidLength indicates input of the wrong fixed length, such as
	// an odd-length strict hex string or an S-box that is not the expected
	// number of entries.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidCharacter indicates a non-hex character in hex input.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidArgument indicates an input of the wrong kind, such as an
	// S-box entry that is neither a byte value nor a hex literal.
	ErrInvalidArgument = errors.New("invalid argument type")
)

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// HexToBytes decodes a hex string strictly: the input must have even length
// and contain only hex digits. Whitespace is an error.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("hex string of %d digits: %w", len(s), ErrInvalidLength)
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return nil, fmt.Errorf("hex string byte %q at %d: %w", s[i], i, ErrInvalidCharacter)
		}
	}
	return hex.DecodeString(s)
}

// CleanHexToBytes decodes a hex string leniently: ASCII whitespace is
// stripped first and odd-length input is zero-padded on the left. Non-hex,
// non-whitespace characters are still an error.
func CleanHexToBytes(s string) ([]byte, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			if !isHexDigit(c) {
				return nil, fmt.Errorf("hex string byte %q at %d: %w", c, i, ErrInvalidCharacter)
			}
			b.WriteByte(c)
		}
	}
	cleaned := b.String()
	if len(cleaned)%2 != 0 {
		cleaned = "0" + cleaned
	}
	return hex.DecodeString(cleaned)
}

// BytesToHex encodes b as lowercase hex, two digits per byte.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// StringToBytes returns the UTF-8 bytes of s as a fresh slice.
func StringToBytes(s string) []byte {
	return []byte(s)
}

// BytesToString interprets b as UTF-8 text.
func BytesToString(b []byte) string {
	return string(b)
}

// BytesToWords32BE packs b into 32-bit words, four bytes per word, most
// significant byte first. The length of b must be a multiple of 4.
func BytesToWords32BE(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("byte sequence of %d bytes is not word aligned: %w",
			len(b), ErrInvalidLength)
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4])<<24 | uint32(b[i*4+1])<<16 |
			uint32(b[i*4+2])<<8 | uint32(b[i*4+3])
	}
	return words, nil
}

// BytesToWords32LE packs b into 32-bit words, four bytes per word, least
// significant byte first. The length of b must be a multiple of 4.
func BytesToWords32LE(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("byte sequence of %d bytes is not word aligned: %w",
			len(b), ErrInvalidLength)
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return words, nil
}

// Words32ToBytesBE unpacks each word into four bytes, most significant
// first.
func Words32ToBytesBE(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		out[i*4] = byte(w >> 24)
		out[i*4+1] = byte(w >> 16)
		out[i*4+2] = byte(w >> 8)
		out[i*4+3] = byte(w)
	}
	return out
}

// Words32ToBytesLE unpacks each word into four bytes, least significant
// first.
func Words32ToBytesLE(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		out[i*4] = byte(w)
		out[i*4+1] = byte(w >> 8)
		out[i*4+2] = byte(w >> 16)
		out[i*4+3] = byte(w >> 24)
	}
	return out
}

// parseByteLiteral accepts the hex-constant notations found in cipher
// literature: "0x63", "63h", "$63", "16#63#", or a bare decimal/hex pair of
// digits.
func parseByteLiteral(s string) (byte, error) {
	orig := s
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		s = s[2:]
	case strings.HasPrefix(s, "$"):
		s = s[1:]
	case strings.HasPrefix(s, "16#") && strings.HasSuffix(s, "#"):
		s = s[3 : len(s)-1]
	case strings.HasSuffix(s, "h") || strings.HasSuffix(s, "H"):
		s = s[:len(s)-1]
	}
	if s == "" {
		return 0, fmt.Errorf("empty entry %q: %w", orig, ErrInvalidCharacter)
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("entry %q: %w", orig, ErrInvalidCharacter)
	}
	if v > 0xFF {
		return 0, fmt.Errorf("entry %q exceeds a byte: %w", orig, ErrInvalidLength)
	}
	return byte(v), nil
}

// ParseSBox parses an S-box or P-box definition into a byte table of
// exactly length entries. The definition is either a hex string of
// 2*length digits, a byte slice, or a slice whose elements are integers
// 0..255 or hex-constant strings ("0x63", "63h", "$63", "16#63#"). Any
// other kind of input, a wrong length, or a malformed entry is an error.
func ParseSBox(def any, length int) ([]byte, error) {
	switch d := def.(type) {
	case string:
		b, err := HexToBytes(d)
		if err != nil {
			return nil, fmt.Errorf("sbox hex: %w", err)
		}
		if len(b) != length {
			return nil, fmt.Errorf("sbox has %d entries, want %d: %w",
				len(b), length, ErrInvalidLength)
		}
		return b, nil

	case []byte:
		if len(d) != length {
			return nil, fmt.Errorf("sbox has %d entries, want %d: %w",
				len(d), length, ErrInvalidLength)
		}
		out := make([]byte, length)
		copy(out, d)
		return out, nil

	case []int:
		if len(d) != length {
			return nil, fmt.Errorf("sbox has %d entries, want %d: %w",
				len(d), length, ErrInvalidLength)
		}
		out := make([]byte, length)
		for i, v := range d {
			if v < 0 || v > 0xFF {
				return nil, fmt.Errorf("sbox entry %d = %d out of byte range: %w",
					i, v, ErrInvalidLength)
			}
			out[i] = byte(v)
		}
		return out, nil

	case []string:
		if len(d) != length {
			return nil, fmt.Errorf("sbox has %d entries, want %d: %w",
				len(d), length, ErrInvalidLength)
		}
		out := make([]byte, length)
		for i, s := range d {
			v, err := parseByteLiteral(s)
			if err != nil {
				return nil, fmt.Errorf("sbox entry %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil

	case []any:
		if len(d) != length {
			return nil, fmt.Errorf("sbox has %d entries, want %d: %w",
				len(d), length, ErrInvalidLength)
		}
		out := make([]byte, length)
		for i, e := range d {
			switch v := e.(type) {
			case int:
				if v < 0 || v > 0xFF {
					return nil, fmt.Errorf("sbox entry %d = %d out of byte range: %w",
						i, v, ErrInvalidLength)
				}
				out[i] = byte(v)
			case byte:
				out[i] = v
			case string:
				b, err := parseByteLiteral(v)
				if err != nil {
					return nil, fmt.Errorf("sbox entry %d: %w", i, err)
				}
				out[i] = b
			default:
				return nil, fmt.Errorf("sbox entry %d is %T: %w", i, e, ErrInvalidArgument)
			}
		}
		return out, nil

	default:
		return nil, fmt.Errorf("sbox definition is %T: %w", def, ErrInvalidArgument)
	}
}
