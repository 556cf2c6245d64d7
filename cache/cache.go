// Package cache provides the read-through cache in front of catalog queries.
// There is no TTL: correctness relies on the write paths invalidating the
// affected keys before the write call returns.
package cache

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// LoaderFunc fetches the value for a key on a cache miss.
type LoaderFunc func() (interface{}, error)

// Layer is a read-through cache keyed by query shape.
type Layer interface {
	// GetOrLoad returns the cached value for key, or invokes load, stores the
	// result and returns it. Concurrent calls for the same key collapse into
	// a single underlying load.
	GetOrLoad(key string, load LoaderFunc) (interface{}, error)
	Invalidate(key string)
	InvalidateAll()
}

// Key builders shared by readers and invalidating writers.
func ProductsKey(restaurantID uint) string {
	return fmt.Sprintf("products:restaurant:%d", restaurantID)
}

func ActiveRestaurantsKey() string {
	return "restaurants:active"
}

// MemoryLayer is the process-wide in-memory Layer implementation.
//
// Every key carries a generation, bumped on invalidation. Loads capture the
// generation before fetching and only store the result if it is unchanged, so
// a load that was in flight when a write invalidated the key can never park a
// stale value in the cache. The generation is part of the single-flight key
// for the same reason: readers arriving after an invalidation must not join a
// pre-invalidation load.
type MemoryLayer struct {
	mu      sync.RWMutex
	entries map[string]interface{}
	gens    map[string]uint64
	global  uint64
	group   singleflight.Group
}

var _ Layer = (*MemoryLayer)(nil)

func NewMemoryLayer() *MemoryLayer {
	return &MemoryLayer{
		entries: make(map[string]interface{}),
		gens:    make(map[string]uint64),
	}
}

func (m *MemoryLayer) GetOrLoad(key string, load LoaderFunc) (interface{}, error) {
	m.mu.RLock()
	v, ok := m.entries[key]
	gen := m.gens[key]
	global := m.global
	m.mu.RUnlock()
	if ok {
		return v, nil
	}

	flightKey := fmt.Sprintf("%s#%d.%d", key, global, gen)
	v, err, _ := m.group.Do(flightKey, func() (interface{}, error) {
		// Re-check: a racing caller may have populated the entry between our
		// miss and the group admitting us.
		m.mu.RLock()
		cached, ok := m.entries[key]
		m.mu.RUnlock()
		if ok {
			return cached, nil
		}

		loaded, err := load()
		if err != nil {
			// Failed loads are never cached.
			return nil, err
		}

		m.mu.Lock()
		if m.gens[key] == gen && m.global == global {
			m.entries[key] = loaded
		}
		m.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (m *MemoryLayer) Invalidate(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.gens[key]++
	m.mu.Unlock()
}

func (m *MemoryLayer) InvalidateAll() {
	m.mu.Lock()
	m.entries = make(map[string]interface{})
	m.global++
	m.mu.Unlock()
}
