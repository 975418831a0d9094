// Package pool provides a small free-list of fixed-size byte buffers for
// callers that repeatedly need scratch space of one size. Buffers are
// zeroed when returned so stale key or state material never leaks into the
// next checkout.
package pool

import (
	"fmt"
	"sync"

	"github.com/Davincible/cryptocore/pkg/secure"
)

// Pool hands out buffers of one fixed size under a free-list discipline.
// A buffer is owned by exactly one caller between Get and Put.
type Pool struct {
	size    int
	maxIdle int
	mu      sync.Mutex
	free    [][]byte
}

// New returns a pool of size-byte buffers. maxIdle bounds how many returned
// buffers are retained; 0 means an unbounded free list.
func New(size, maxIdle int) (*Pool, error) {
	if size < 1 {
		return nil, fmt.Errorf("buffer size must be positive, got %d", size)
	}
	p := &Pool{size: size, maxIdle: maxIdle}
	if maxIdle > 0 {
		p.free = make([][]byte, 0, maxIdle)
	}
	return p, nil
}

// Size returns the fixed buffer size.
func (p *Pool) Size() int {
	return p.size
}

// Get returns a zeroed buffer, reusing a returned one when available.
func (p *Pool) Get() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.free); n > 0 {
		b := p.free[n-1]
		p.free = p.free[:n-1]
		return b
	}
	return make([]byte, p.size)
}

// Put zeroes b and returns it to the free list. Buffers of the wrong size
// or already on the free list are rejected so one buffer can never be
// checked out twice.
func (p *Pool) Put(b []byte) error {
	if len(b) != p.size {
		return fmt.Errorf("buffer of %d bytes does not belong to a %d-byte pool", len(b), p.size)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, f := range p.free {
		if &f[0] == &b[0] {
			return fmt.Errorf("buffer returned twice")
		}
	}
	secure.Zero(b)
	if p.maxIdle > 0 && len(p.free) >= p.maxIdle {
		return nil // free list full, let the GC take it
	}
	p.free = append(p.free, b)
	return nil
}

// Idle reports how many buffers are currently on the free list.
func (p *Pool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}
