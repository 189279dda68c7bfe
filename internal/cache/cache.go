// Package cache defines the eviction-policy contract used by the
// simulation engine, the built-in LRU/FIFO/LIFO policies, and adapters
// that plug third-party cache libraries into the same contract.
package cache

import "fmt"

// Cache is the capability set the evaluator drives. Implementations own
// their hit/miss counters: a Get on a present key counts a hit, an absent
// key counts a miss. Absence is an expected outcome, not an error. Put is
// never counted.
//
// Instances are single-owner: each trial constructs a fresh cache and no
// cache is shared between goroutines.
type Cache interface {
	Get(key int) (int, bool)
	Put(key, value int)
	Len() int
	Capacity() int
	Stats() Stats
	HitRatio() float64
	Name() string
	Close()
}

// Factory creates a cache instance with the given capacity.
// A capacity <= 0 is a configuration error reported at construction.
type Factory func(capacity int) (Cache, error)

// Stats holds the monotonic access counters. Hits+Misses equals the number
// of Get calls issued since construction.
type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}

// Ratio returns hits/(hits+misses). Before any Get has been issued it is
// exactly 0.0 by convention rather than a division error.
func (s Stats) Ratio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0.0
	}
	return float64(s.Hits) / float64(total)
}

// counters is embedded by every implementation in this package to satisfy
// the Stats/HitRatio half of the contract.
type counters struct {
	hits   uint64
	misses uint64
}

func (c *counters) record(hit bool) {
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}

func (c *counters) Stats() Stats {
	return Stats{Hits: c.hits, Misses: c.misses}
}

func (c *counters) HitRatio() float64 {
	return c.Stats().Ratio()
}

// entry is the key/value node stored by the list-backed policies.
type entry struct {
	key   int
	value int
}

func checkCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", capacity)
	}
	return nil
}
