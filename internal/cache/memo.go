// Package cache provides a small TTL memo used in front of slower key-value backends.
package cache

import (
	"sync"
	"time"
)

// slot stores a remembered lookup and its absolute expiration timestamp.
// present=false records that the backend had no value for the key.
type slot[V any] struct {
	value     V
	present   bool
	expiresAt time.Time // zero means no expiration
}

// Memo remembers lookups, including misses, for a fixed TTL. It is safe for concurrent use.
// Expired slots are ignored on read and dropped by Sweep; the owner decides when to sweep.
type Memo[K comparable, V any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[K]slot[V]
}

// NewMemo builds a memo. A ttl <= 0 keeps entries until they are forgotten.
func NewMemo[K comparable, V any](ttl time.Duration) *Memo[K, V] {
	return &Memo[K, V]{
		ttl:   ttl,
		items: make(map[K]slot[V]),
	}
}

// now is a small indirection to allow test stubbing.
var now = time.Now

func (m *Memo[K, V]) live(s slot[V]) bool {
	return s.expiresAt.IsZero() || now().Before(s.expiresAt)
}

// Lookup returns the remembered value. hit reports whether the memo knew the answer at all;
// present reports whether that answer was a value or a remembered miss.
func (m *Memo[K, V]) Lookup(key K) (value V, present bool, hit bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.items[key]
	if !ok || !m.live(s) {
		var zero V
		return zero, false, false
	}
	return s.value, s.present, true
}

// Remember stores a value for key.
func (m *Memo[K, V]) Remember(key K, value V) {
	m.put(key, slot[V]{value: value, present: true})
}

// RememberMissing records that key has no value.
func (m *Memo[K, V]) RememberMissing(key K) {
	m.put(key, slot[V]{})
}

func (m *Memo[K, V]) put(key K, s slot[V]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ttl > 0 {
		s.expiresAt = now().Add(m.ttl)
	}
	m.items[key] = s
}

// Forget drops key.
func (m *Memo[K, V]) Forget(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
}

// Len counts live entries, misses included.
func (m *Memo[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, s := range m.items {
		if m.live(s) {
			count++
		}
	}
	return count
}

// Sweep removes expired entries and returns how many were dropped.
func (m *Memo[K, V]) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	dropped := 0
	for k, s := range m.items {
		if !m.live(s) {
			delete(m.items, k)
			dropped++
		}
	}
	return dropped
}
