// Package bitstream implements a buffered bit-level codec: values are
// written and read at sub-byte granularity, most-significant bit first, with
// varint and unary encodings layered on top.
//
// A BitStream is caller-owned mutable state with no internal locking; it
// assumes exactly one logical owner performs all reads and writes
// sequentially. Concurrent use of one instance must be serialized by the
// caller.
package bitstream

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfData is returned when a read requests more bits than remain.
	// The cursor is left unchanged; a partial read is never zero-filled.
	ErrOutOfData = errors.New("out of data")

	// ErrUnsupported is returned for bit counts outside 1..32.
	ErrUnsupported = errors.New("unsupported bit count")
)

// BitStream buffers writes bit by bit, flushing whole bytes to a committed
// output sequence, and reads back from the committed bytes plus any pending
// bits. Pending writes never hold 8 or more bits: complete bytes are
// flushed immediately.
type BitStream struct {
	out     []byte // committed whole bytes
	pending uint64 // low `count` bits are buffered, most significant first
	count   uint   // pending bit count, always < 8 between calls
	cursor  int    // read position in bits
	written int    // total bits written
}

// New returns an empty BitStream.
func New() *BitStream {
	return &BitStream{}
}

// FromBytes returns a BitStream pre-loaded with b for reading; b is copied.
func FromBytes(b []byte) *BitStream {
	out := make([]byte, len(b))
	copy(out, b)
	return &BitStream{out: out, written: len(b) * 8}
}

// WriteBits appends the low n bits of value, most significant first.
// n must be 1..32.
func (s *BitStream) WriteBits(value uint32, n int) error {
	if n < 1 || n > 32 {
		return fmt.Errorf("write of %d bits: %w", n, ErrUnsupported)
	}
	v := uint64(value)
	if n < 32 {
		v &= (1 << uint(n)) - 1
	}
	s.pending = s.pending<<uint(n) | v
	s.count += uint(n)
	s.written += n
	for s.count >= 8 {
		s.out = append(s.out, byte(s.pending>>(s.count-8)))
		s.count -= 8
	}
	s.pending &= (1 << s.count) - 1
	return nil
}

// WriteByte appends one whole byte.
func (s *BitStream) WriteByte(b byte) error {
	return s.WriteBits(uint32(b), 8)
}

// WriteUint16BE appends a 16-bit value, most significant byte first.
func (s *BitStream) WriteUint16BE(v uint16) error {
	return s.WriteBits(uint32(v), 16)
}

// WriteUint16LE appends a 16-bit value, least significant byte first.
func (s *BitStream) WriteUint16LE(v uint16) error {
	if err := s.WriteBits(uint32(v)&0xFF, 8); err != nil {
		return err
	}
	return s.WriteBits(uint32(v)>>8, 8)
}

// WriteUint32BE appends a 32-bit value, most significant byte first.
func (s *BitStream) WriteUint32BE(v uint32) error {
	return s.WriteBits(v, 32)
}

// WriteUint32LE appends a 32-bit value, least significant byte first.
func (s *BitStream) WriteUint32LE(v uint32) error {
	for i := 0; i < 4; i++ {
		if err := s.WriteBits(v>>(8*uint(i))&0xFF, 8); err != nil {
			return err
		}
	}
	return nil
}

// WriteVarInt appends x in 7-bit groups, least significant group first,
// each group preceded by a continuation bit (1 = more groups follow).
func (s *BitStream) WriteVarInt(x uint32) error {
	for x >= 0x80 {
		if err := s.WriteBits(1, 1); err != nil {
			return err
		}
		if err := s.WriteBits(x&0x7F, 7); err != nil {
			return err
		}
		x >>= 7
	}
	if err := s.WriteBits(0, 1); err != nil {
		return err
	}
	return s.WriteBits(x, 7)
}

// WriteUnary appends k one-bits followed by a terminating zero bit.
func (s *BitStream) WriteUnary(k int) error {
	if k < 0 {
		return fmt.Errorf("unary count %d: %w", k, ErrUnsupported)
	}
	for i := 0; i < k; i++ {
		if err := s.WriteBits(1, 1); err != nil {
			return err
		}
	}
	return s.WriteBits(0, 1)
}

// AlignToByte pads the write side with zero bits up to the next byte
// boundary. Already-aligned streams are unchanged.
func (s *BitStream) AlignToByte() {
	if s.count > 0 {
		// Error is impossible: count is 1..7 here.
		_ = s.WriteBits(0, int(8-s.count))
	}
}

// bitAt returns bit i (0 = first bit written) from the committed bytes or
// the pending buffer.
func (s *BitStream) bitAt(i int) uint32 {
	if i < len(s.out)*8 {
		return uint32(s.out[i/8]>>(7-uint(i%8))) & 1
	}
	j := uint(i - len(s.out)*8)
	return uint32(s.pending>>(s.count-1-j)) & 1
}

// BitsWritten returns the total number of bits written (or loaded).
func (s *BitStream) BitsWritten() int {
	return s.written
}

// BitsRemaining returns the number of unread bits.
func (s *BitStream) BitsRemaining() int {
	return s.written - s.cursor
}

// ReadBits consumes n bits at the cursor, spanning byte boundaries as
// needed. n must be 1..32. If fewer than n bits remain the cursor is left
// where it was and ErrOutOfData is returned.
func (s *BitStream) ReadBits(n int) (uint32, error) {
	v, err := s.PeekBits(n)
	if err != nil {
		return 0, err
	}
	s.cursor += n
	return v, nil
}

// PeekBits reads n bits at the cursor without advancing it.
func (s *BitStream) PeekBits(n int) (uint32, error) {
	if n < 1 || n > 32 {
		return 0, fmt.Errorf("read of %d bits: %w", n, ErrUnsupported)
	}
	if n > s.BitsRemaining() {
		return 0, fmt.Errorf("read of %d bits with %d remaining: %w",
			n, s.BitsRemaining(), ErrOutOfData)
	}
	var v uint32
	for i := 0; i < n; i++ {
		v = v<<1 | s.bitAt(s.cursor+i)
	}
	return v, nil
}

// SkipBits advances the cursor by n bits, clamped to the valid range.
// Negative n moves backwards.
func (s *BitStream) SkipBits(n int) {
	s.SeekBits(s.cursor + n)
}

// SeekBits positions the cursor at the given absolute bit offset, clamped
// to [0, BitsWritten].
func (s *BitStream) SeekBits(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > s.written {
		pos = s.written
	}
	s.cursor = pos
}

// ReadByte consumes one whole byte.
func (s *BitStream) ReadByte() (byte, error) {
	v, err := s.ReadBits(8)
	return byte(v), err
}

// ReadVarInt consumes a value written by WriteVarInt.
func (s *BitStream) ReadVarInt() (uint32, error) {
	start := s.cursor
	var x uint32
	for shift := uint(0); ; shift += 7 {
		cont, err := s.ReadBits(1)
		if err != nil {
			s.cursor = start
			return 0, err
		}
		group, err := s.ReadBits(7)
		if err != nil {
			s.cursor = start
			return 0, err
		}
		x |= group << shift
		if cont == 0 {
			return x, nil
		}
		if shift >= 28 {
			s.cursor = start
			return 0, fmt.Errorf("varint exceeds 32 bits: %w", ErrUnsupported)
		}
	}
}

// ReadUnary consumes one-bits up to a terminating zero and returns their
// count.
func (s *BitStream) ReadUnary() (int, error) {
	start := s.cursor
	k := 0
	for {
		b, err := s.ReadBits(1)
		if err != nil {
			s.cursor = start
			return 0, err
		}
		if b == 0 {
			return k, nil
		}
		k++
	}
}

// Bytes returns a copy of the committed output. When padLastByte is true
// any pending bits are included left-justified in a final zero-padded byte;
// when false only whole bytes are returned.
func (s *BitStream) Bytes(padLastByte bool) []byte {
	out := make([]byte, len(s.out), len(s.out)+1)
	copy(out, s.out)
	if padLastByte && s.count > 0 {
		out = append(out, byte(s.pending<<(8-s.count)))
	}
	return out
}
