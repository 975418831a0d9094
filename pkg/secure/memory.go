// Package secure holds the memory-hygiene helpers used by callers handling
// secret material: zeroing, random generation, and a wrapper that keeps a
// secret byte slice behind copy-on-read access.
package secure

import (
	"crypto/rand"
	"fmt"
	"runtime"
	"sync"

	"github.com/Davincible/cryptocore/pkg/ctime"
)

// Zero overwrites b with zero bytes.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// SecureRandom returns size cryptographically random bytes.
func SecureRandom(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid length: %d", size)
	}
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		Zero(b)
		return nil, fmt.Errorf("failed to generate secure random bytes: %w", err)
	}
	return b, nil
}

// ConstantTimeCompare reports whether x and y are equal without early-exit
// branching on the data.
func ConstantTimeCompare(x, y []byte) bool {
	return ctime.Equal(x, y)
}

// SecureBytes guards a secret byte slice: reads return copies and Clear
// wipes the backing storage.
type SecureBytes struct {
	data []byte
	mu   sync.RWMutex
}

// FromBytes copies data into a new SecureBytes.
func FromBytes(data []byte) *SecureBytes {
	sb := &SecureBytes{data: make([]byte, len(data))}
	copy(sb.data, data)
	return sb
}

// Get returns a copy of the secret.
func (sb *SecureBytes) Get() []byte {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	result := make([]byte, len(sb.data))
	copy(result, sb.data)
	return result
}

// Len returns the secret's length.
func (sb *SecureBytes) Len() int {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return len(sb.data)
}

// Clear wipes the backing storage.
func (sb *SecureBytes) Clear() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	Zero(sb.data)
}

// Destroy wipes and releases the backing storage.
func (sb *SecureBytes) Destroy() {
	sb.Clear()
	sb.data = nil
}
