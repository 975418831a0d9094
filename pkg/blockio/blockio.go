// Package blockio implements the streaming consumer contract used by block
// cipher and hash implementations: a Feeder buffers arbitrary-length input
// until a block boundary, hands each complete block to a caller-supplied
// function, and pads the final partial block on Result.
package blockio

import (
	"errors"
	"fmt"

	"github.com/Davincible/cryptocore/pkg/padding"
)

// BlockFunc processes one complete block and returns the bytes to append
// to the stream's output. A nil return appends nothing, which suits
// consumers (such as hashes) that keep their own state.
type BlockFunc func(block []byte) ([]byte, error)

// Feeder is single-owner mutable state; calls on one instance must be
// sequential. After Result the feeder is finished and rejects further input.
type Feeder struct {
	blockSize int
	scheme    padding.Scheme
	fn        BlockFunc
	buf       []byte
	out       []byte
	done      bool
}

// ErrFinished is returned by Feed or Result after Result has been called.
var ErrFinished = errors.New("feeder already finished")

// NewFeeder builds a Feeder that cuts input into blockSize-byte blocks,
// calls fn on each, and pads the tail with scheme on Result.
func NewFeeder(blockSize int, scheme padding.Scheme, fn BlockFunc) (*Feeder, error) {
	if blockSize < 1 || blockSize > 255 {
		return nil, fmt.Errorf("block size %d must be 1..255: %w",
			blockSize, padding.ErrInvalidBlockSize)
	}
	if scheme == nil {
		return nil, errors.New("nil padding scheme")
	}
	if fn == nil {
		return nil, errors.New("nil block function")
	}
	return &Feeder{blockSize: blockSize, scheme: scheme, fn: fn}, nil
}

// Feed buffers p and processes every complete block it completes. The input
// slice is copied; the caller may reuse it.
func (f *Feeder) Feed(p []byte) error {
	if f.done {
		return ErrFinished
	}
	f.buf = append(f.buf, p...)
	for len(f.buf) >= f.blockSize {
		if err := f.process(f.buf[:f.blockSize]); err != nil {
			return err
		}
		f.buf = f.buf[f.blockSize:]
	}
	return nil
}

// Result pads the buffered tail, processes the final block(s), and returns
// the accumulated output. The feeder cannot be used afterwards.
func (f *Feeder) Result() ([]byte, error) {
	if f.done {
		return nil, ErrFinished
	}
	f.done = true

	tail, err := padding.Pad(f.scheme, f.buf, f.blockSize)
	if err != nil {
		return nil, fmt.Errorf("padding final block: %w", err)
	}
	for len(tail) > 0 {
		if err := f.process(tail[:f.blockSize]); err != nil {
			return nil, err
		}
		tail = tail[f.blockSize:]
	}
	out := make([]byte, len(f.out))
	copy(out, f.out)
	return out, nil
}

func (f *Feeder) process(block []byte) error {
	res, err := f.fn(block)
	if err != nil {
		return fmt.Errorf("block consumer: %w", err)
	}
	f.out = append(f.out, res...)
	return nil
}
