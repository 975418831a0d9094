// Package padding implements the block-cipher padding schemes PKCS#7,
// ISO/IEC 7816-4, ANSI X9.23, zero padding and the explicit "none" scheme.
//
// A scheme produces the bytes to append for a given block size and data
// length, and validates and strips them again after decryption. All schemes
// fail fast on malformed padding except zero padding, whose removal is
// inherently ambiguous and documented as such.
package padding

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPadding indicates padding bytes that fail the scheme's
	// validation rules.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrInvalidBlockSize indicates a block size outside 1..255.
	ErrInvalidBlockSize = errors.New("invalid block size")

	// ErrUnsupported indicates an unknown padding scheme name.
	ErrUnsupported = errors.New("unsupported padding scheme")
)

// Scheme produces and validates padding for one named padding algorithm.
type Scheme interface {
	// Name returns the canonical scheme name.
	Name() string

	// Apply returns the bytes to append to data of length dataLen so the
	// total becomes a multiple of blockSize.
	Apply(blockSize, dataLen int) ([]byte, error)

	// Remove validates the padding at the end of padded and returns the
	// data with the padding stripped.
	Remove(padded []byte) ([]byte, error)
}

func checkBlockSize(blockSize int) error {
	if blockSize < 1 || blockSize > 255 {
		return fmt.Errorf("block size %d must be 1..255: %w", blockSize, ErrInvalidBlockSize)
	}
	return nil
}

func checkDataLen(dataLen int) error {
	if dataLen < 0 {
		return fmt.Errorf("data length %d is negative: %w", dataLen, ErrInvalidBlockSize)
	}
	return nil
}

// PKCS7 implements PKCS#7 (and PKCS#5 for 8-byte blocks): N bytes of value
// N where N is the pad length 1..blockSize.
type PKCS7 struct{}

func (PKCS7) Name() string { return "pkcs7" }

func (PKCS7) Apply(blockSize, dataLen int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	if err := checkDataLen(dataLen); err != nil {
		return nil, err
	}
	n := blockSize - dataLen%blockSize
	pad := make([]byte, n)
	for i := range pad {
		pad[i] = byte(n)
	}
	return pad, nil
}

func (PKCS7) Remove(padded []byte) ([]byte, error) {
	if len(padded) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrInvalidPadding)
	}
	n := int(padded[len(padded)-1])
	if n == 0 || n > len(padded) {
		return nil, fmt.Errorf("pad length %d out of range: %w", n, ErrInvalidPadding)
	}
	for i := len(padded) - n; i < len(padded); i++ {
		if padded[i] != byte(n) {
			return nil, fmt.Errorf("inconsistent pad byte at %d: %w", i, ErrInvalidPadding)
		}
	}
	return padded[:len(padded)-n], nil
}

// ISO7816 implements ISO/IEC 7816-4 padding: a single 0x80 marker followed
// by zero bytes.
type ISO7816 struct{}

func (ISO7816) Name() string { return "iso7816" }

func (ISO7816) Apply(blockSize, dataLen int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	if err := checkDataLen(dataLen); err != nil {
		return nil, err
	}
	n := blockSize - dataLen%blockSize
	pad := make([]byte, n)
	pad[0] = 0x80
	return pad, nil
}

func (ISO7816) Remove(padded []byte) ([]byte, error) {
	for i := len(padded) - 1; i >= 0; i-- {
		switch padded[i] {
		case 0x00:
			continue
		case 0x80:
			return padded[:i], nil
		default:
			return nil, fmt.Errorf("byte 0x%02X before marker: %w", padded[i], ErrInvalidPadding)
		}
	}
	return nil, fmt.Errorf("no 0x80 marker found: %w", ErrInvalidPadding)
}

// ANSIX923 implements ANSI X9.23 padding: zero filler bytes followed by a
// single pad-length byte.
type ANSIX923 struct{}

func (ANSIX923) Name() string { return "ansix923" }

func (ANSIX923) Apply(blockSize, dataLen int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	if err := checkDataLen(dataLen); err != nil {
		return nil, err
	}
	n := blockSize - dataLen%blockSize
	pad := make([]byte, n)
	pad[n-1] = byte(n)
	return pad, nil
}

func (ANSIX923) Remove(padded []byte) ([]byte, error) {
	if len(padded) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrInvalidPadding)
	}
	n := int(padded[len(padded)-1])
	if n == 0 || n > len(padded) {
		return nil, fmt.Errorf("pad length %d out of range: %w", n, ErrInvalidPadding)
	}
	for i := len(padded) - n; i < len(padded)-1; i++ {
		if padded[i] != 0 {
			return nil, fmt.Errorf("non-zero filler byte at %d: %w", i, ErrInvalidPadding)
		}
	}
	return padded[:len(padded)-n], nil
}

// Zero implements zero padding: trailing zero bytes with no length prefix.
// Removal strips every trailing zero and is therefore lossy for plaintexts
// that legitimately end in zero bytes; do not use it for such data.
type Zero struct{}

func (Zero) Name() string { return "zero" }

func (Zero) Apply(blockSize, dataLen int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	if err := checkDataLen(dataLen); err != nil {
		return nil, err
	}
	if dataLen%blockSize == 0 {
		return []byte{}, nil
	}
	return make([]byte, blockSize-dataLen%blockSize), nil
}

func (Zero) Remove(padded []byte) ([]byte, error) {
	i := len(padded)
	for i > 0 && padded[i-1] == 0 {
		i--
	}
	return padded[:i], nil
}

// None implements the explicit no-padding scheme: the data must already be
// block aligned.
type None struct{}

func (None) Name() string { return "none" }

func (None) Apply(blockSize, dataLen int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	if err := checkDataLen(dataLen); err != nil {
		return nil, err
	}
	if dataLen%blockSize != 0 {
		return nil, fmt.Errorf("data length %d is not a multiple of block size %d: %w",
			dataLen, blockSize, ErrInvalidPadding)
	}
	return []byte{}, nil
}

func (None) Remove(padded []byte) ([]byte, error) {
	return padded, nil
}

// schemes maps every accepted name (including aliases) to its scheme.
var schemes = map[string]Scheme{
	"pkcs7":    PKCS7{},
	"pkcs5":    PKCS7{},
	"iso7816":  ISO7816{},
	"ansix923": ANSIX923{},
	"x923":     ANSIX923{},
	"zero":     Zero{},
	"none":     None{},
}

// ByName returns the scheme registered under name.
func ByName(name string) (Scheme, error) {
	s, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("scheme %q: %w", name, ErrUnsupported)
	}
	return s, nil
}

// Names returns the canonical scheme names.
func Names() []string {
	return []string{"pkcs7", "iso7816", "ansix923", "zero", "none"}
}

// Pad appends the scheme's padding to a copy of data.
func Pad(s Scheme, data []byte, blockSize int) ([]byte, error) {
	pad, err := s.Apply(blockSize, len(data))
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(data)+len(pad))
	out = append(out, data...)
	return append(out, pad...), nil
}

// Unpad validates and strips the scheme's padding, returning a copy.
func Unpad(s Scheme, padded []byte) ([]byte, error) {
	data, err := s.Remove(padded)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
