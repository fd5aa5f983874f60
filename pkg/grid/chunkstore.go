package grid

import "iter"

// CacheStats counts how a ChunkStore's cache slot has been used.
type CacheStats struct {
	Hits    uint64 // accesses answered by the slot without touching the map
	Swaps   uint64 // accesses that moved a different key into the slot
	Creates uint64 // payloads built by a GetOrCreate factory
}

// ChunkStore maps keys to heap-allocated payloads and keeps the most recently
// accessed key in a single slot outside the map, so runs of accesses to the
// same key cost one comparison.
//
// A payload lives either in the map or in the slot, never both. Payloads are
// stored by pointer, so a pointer returned earlier stays valid when its
// payload is later moved between the slot and the map.
//
// The slot starts out holding the zero key with no payload. The map can never
// hold a payload for whatever key currently sits in the slot, so a first
// access to the zero key reads as an ordinary miss.
type ChunkStore[K comparable, V any] struct {
	data  map[K]*V
	key   K
	value *V
	stats CacheStats
}

// NewChunkStore returns an empty store.
func NewChunkStore[K comparable, V any]() *ChunkStore[K, V] {
	return &ChunkStore[K, V]{data: make(map[K]*V)}
}

// swapIn makes key the cached key, moving its payload (if any) out of the map
// and the previously cached payload (if any) back into it.
func (s *ChunkStore[K, V]) swapIn(key K) {
	if s.key == key {
		s.stats.Hits++
		return
	}
	s.stats.Swaps++
	value, ok := s.data[key]
	if ok {
		delete(s.data, key)
	}
	if s.value != nil {
		s.data[s.key] = s.value
	}
	s.key, s.value = key, value
}

// Lookup returns the payload for key, or nil if none was ever created. It
// never allocates a payload, but it does move key into the cache slot.
func (s *ChunkStore[K, V]) Lookup(key K) *V {
	s.swapIn(key)
	return s.value
}

// GetOrCreate returns the payload for key, calling create to build it when
// the key has none yet.
func (s *ChunkStore[K, V]) GetOrCreate(key K, create func() *V) *V {
	s.swapIn(key)
	if s.value == nil {
		s.value = create()
		s.stats.Creates++
	}
	return s.value
}

// Len returns the number of keys holding a payload.
func (s *ChunkStore[K, V]) Len() int {
	n := len(s.data)
	if s.value != nil {
		n++
	}
	return n
}

// Keys yields every key holding a payload exactly once, in no particular
// order. The store must not be accessed while the sequence is running.
func (s *ChunkStore[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s.value != nil && !yield(s.key) {
			return
		}
		for k := range s.data {
			if !yield(k) {
				return
			}
		}
	}
}

// Stats returns the cache counters accumulated so far.
func (s *ChunkStore[K, V]) Stats() CacheStats { return s.stats }
