package cache

import (
	"strconv"

	"github.com/dgryski/go-s4lru"
)

type s4lruCache struct {
	counters
	capacity int
	c        *s4lru.Cache
	seen     map[int]struct{}
}

// NewS4LRU wraps a segmented LRU with four segments. The backend exposes
// no occupancy, so Len tracks an upper bound like the tinylfu adapter.
// Capacities below 4 leave some segments empty; the policy still works.
func NewS4LRU(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &s4lruCache{
		capacity: capacity,
		c:        s4lru.New(capacity),
		seen:     make(map[int]struct{}),
	}, nil
}

func (c *s4lruCache) Get(key int) (int, bool) {
	v, ok := c.c.Get(strconv.Itoa(key))
	if !ok {
		c.record(false)
		return 0, false
	}
	c.record(true)
	return v.(int), true
}

func (c *s4lruCache) Put(key, value int) {
	c.seen[key] = struct{}{}
	c.c.Set(strconv.Itoa(key), value)
}

func (c *s4lruCache) Len() int {
	if len(c.seen) > c.capacity {
		return c.capacity
	}
	return len(c.seen)
}

func (c *s4lruCache) Capacity() int {
	return c.capacity
}

func (*s4lruCache) Name() string {
	return "s4lru"
}

func (*s4lruCache) Close() {}
