// Package benchmark replays access sequences against cache policies and
// aggregates hit ratios over repeated trials.
package benchmark

import (
	"fmt"

	"github.com/cachesim/cachesim/internal/cache"
)

// Replay drives every key of the sequence through Get, inserting the key
// with a derived value on each miss, and returns the cache's hit ratio.
// The full sequence is always consumed in order.
//
// The cache contract is checked along the way: an implementation reporting
// more entries than its capacity, or counters that do not add up to the
// number of Gets issued, yields a contract-violation error for this trial
// only.
func Replay(c cache.Cache, keys []int) (float64, error) {
	capacity := c.Capacity()
	for i, key := range keys {
		if _, ok := c.Get(key); !ok {
			c.Put(key, key)
		}
		if n := c.Len(); n < 0 || n > capacity {
			return 0, fmt.Errorf("contract violation: %s reports size %d outside [0, %d] after %d accesses",
				c.Name(), n, capacity, i+1)
		}
	}
	stats := c.Stats()
	if total := stats.Hits + stats.Misses; total != uint64(len(keys)) {
		return 0, fmt.Errorf("contract violation: %s counted %d accesses, %d were issued",
			c.Name(), total, len(keys))
	}
	return c.HitRatio(), nil
}
