package cache

import "github.com/maypok86/otter/v2"

type otterCache struct {
	counters
	capacity int
	c        *otter.Cache[int, int]
}

// NewOtter wraps the Otter cache (W-TinyLFU based).
func NewOtter(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	c := otter.Must(&otter.Options[int, int]{MaximumSize: capacity})
	return &otterCache{capacity: capacity, c: c}, nil
}

func (c *otterCache) Get(key int) (int, bool) {
	v, ok := c.c.GetIfPresent(key)
	c.record(ok)
	return v, ok
}

func (c *otterCache) Put(key, value int) {
	c.c.Set(key, value)
}

// Len reports Otter's size estimate, capped at capacity since the estimate
// can transiently overshoot while maintenance runs.
func (c *otterCache) Len() int {
	n := c.c.EstimatedSize()
	if n > c.capacity {
		n = c.capacity
	}
	return n
}

func (c *otterCache) Capacity() int {
	return c.capacity
}

func (*otterCache) Name() string {
	return "otter"
}

func (*otterCache) Close() {}
