package cache

import (
	"github.com/Code-Hex/go-generics-cache/policy/clock"
	"github.com/Code-Hex/go-generics-cache/policy/lfu"
)

type clockCache struct {
	counters
	capacity int
	c        *clock.Cache[int, int]
}

// NewClock wraps a clock (second-chance) cache, an LRU approximation.
func NewClock(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &clockCache{
		capacity: capacity,
		c:        clock.NewCache[int, int](clock.WithCapacity(capacity)),
	}, nil
}

func (c *clockCache) Get(key int) (int, bool) {
	v, ok := c.c.Get(key)
	c.record(ok)
	return v, ok
}

func (c *clockCache) Put(key, value int) {
	c.c.Set(key, value)
}

func (c *clockCache) Len() int {
	return c.c.Len()
}

func (c *clockCache) Capacity() int {
	return c.capacity
}

func (*clockCache) Name() string {
	return "clock"
}

func (*clockCache) Close() {}

type lfuCache struct {
	counters
	capacity int
	c        *lfu.Cache[int, int]
}

// NewLFU wraps a least-frequently-used cache, the frequency-based
// counterpart to the recency-based built-ins.
func NewLFU(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &lfuCache{
		capacity: capacity,
		c:        lfu.NewCache[int, int](lfu.WithCapacity(capacity)),
	}, nil
}

func (c *lfuCache) Get(key int) (int, bool) {
	v, ok := c.c.Get(key)
	c.record(ok)
	return v, ok
}

func (c *lfuCache) Put(key, value int) {
	c.c.Set(key, value)
}

func (c *lfuCache) Len() int {
	return c.c.Len()
}

func (c *lfuCache) Capacity() int {
	return c.capacity
}

func (*lfuCache) Name() string {
	return "lfu"
}

func (*lfuCache) Close() {}
