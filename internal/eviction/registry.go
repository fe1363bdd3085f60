// Package eviction keeps the node's auxiliary registries bounded. Entries are
// stamped with the block height they were created at and removed once the chain
// has moved far enough past it.
package eviction

import "sync"

// Entry is a registry value stamped with its creation height.
type Entry[V any] struct {
	Value     V
	CreatedAt uint64
}

// Registry is a map guarded by a single writer lock and shared reader locks.
type Registry[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]Entry[V]
}

func NewRegistry[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{entries: make(map[K]Entry[V])}
}

// Insert stores v under k, replacing any previous entry.
func (r *Registry[K, V]) Insert(k K, v V, height uint64) {
	r.mu.Lock()
	r.entries[k] = Entry[V]{Value: v, CreatedAt: height}
	r.mu.Unlock()
}

func (r *Registry[K, V]) Get(k K) (Entry[V], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[k]
	return e, ok
}

// Remove deletes k and reports whether it was present.
func (r *Registry[K, V]) Remove(k K) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[k]; !ok {
		return false
	}
	delete(r.entries, k)
	return true
}

func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Snapshot returns a copy of the current entries.
func (r *Registry[K, V]) Snapshot() map[K]Entry[V] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[K]Entry[V], len(r.entries))
	for k, e := range r.entries {
		out[k] = e
	}
	return out
}

// Evict removes every entry created more than threshold blocks before height
// and returns their keys. Entries stamped above height are kept.
func (r *Registry[K, V]) Evict(height, threshold uint64) []K {
	r.mu.Lock()
	defer r.mu.Unlock()

	var evicted []K
	for k, e := range r.entries {
		if expired(e.CreatedAt, height, threshold) {
			delete(r.entries, k)
			evicted = append(evicted, k)
		}
	}
	return evicted
}

func expired(created, height, threshold uint64) bool {
	return created < height && height-created > threshold
}
