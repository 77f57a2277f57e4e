// Package dedup tracks already-processed message keys so duplicate
// deliveries of the same message do not produce duplicate replies.
package dedup

import "sync"

// MemorySet is a thread-safe bounded set of processed message keys.
// Growth is bounded by a full clear once the set exceeds its capacity:
// a crude guard against unbounded memory, not an LRU. After a clear,
// recently-seen messages can be processed again if redelivered.
type MemorySet struct {
	keys     map[string]struct{}
	capacity int
	mutex    sync.Mutex
}

// NewMemorySet creates a set that clears itself once size exceeds capacity
func NewMemorySet(capacity int) *MemorySet {
	if capacity <= 0 {
		capacity = 1000
	}
	return &MemorySet{
		keys:     make(map[string]struct{}),
		capacity: capacity,
	}
}

// MarkIfNew records the key and reports whether it had not been seen
// before. The overflow check happens after insertion, so a redelivery
// arriving right after a clear is treated as new.
func (s *MemorySet) MarkIfNew(key string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.keys[key]; exists {
		return false
	}

	s.keys[key] = struct{}{}
	if len(s.keys) > s.capacity {
		s.keys = make(map[string]struct{})
	}
	return true
}

// Size returns the current number of tracked keys (for debugging/monitoring)
func (s *MemorySet) Size() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.keys)
}
