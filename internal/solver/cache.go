package solver

import "sync"

// Stats tracks runtime cache statistics. Counters are cumulative for the
// lifetime of the cache.
type Stats struct {
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that found no entry.
	Misses uint64
	// Stores is the number of store operations, including duplicates.
	Stores uint64
	// DuplicateStores counts stores that overwrote an existing entry. A
	// non-zero value is evidence of the accepted recompute race, not of a
	// correctness problem: duplicates always carry the same value.
	DuplicateStores uint64
}

// Cache is the shared memoization table mapping a Fibonacci index to its
// value. A single exclusive mutex guards every lookup and store; the lock is
// never held while waiting on another goroutine, so no ordering hazards
// exist. Entries are never evicted or invalidated.
type Cache struct {
	mu    sync.Mutex
	data  map[int]int64
	stats Stats
}

// NewCache creates an empty memoization cache.
//
// Returns:
//   - *Cache: A ready-to-use cache instance.
func NewCache() *Cache {
	return &Cache{
		data: make(map[int]int64),
	}
}

// Lookup returns the cached value for n and whether it was present. The
// hit/miss statistics are updated under the same critical section as the
// lookup itself.
//
// Parameters:
//   - n: The Fibonacci index to look up.
//
// Returns:
//   - int64: The cached value, or 0 when absent.
//   - bool: true if an entry for n was present.
func (c *Cache) Lookup(n int) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[n]
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return v, ok
}

// Store records the value for n. Overwriting an existing entry is legal and
// counted as a duplicate store; callers only ever store the true Fibonacci
// value for n, so duplicates are harmless.
//
// Parameters:
//   - n: The Fibonacci index.
//   - value: The computed Fibonacci value for n.
func (c *Cache) Store(n int, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.data[n]; exists {
		c.stats.DuplicateStores++
	}
	c.stats.Stores++
	c.data[n] = value
}

// Len returns the number of entries currently in the cache.
//
// Returns:
//   - int: The entry count.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// Stats returns a snapshot of the cache statistics.
//
// Returns:
//   - Stats: A copy of the current counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
