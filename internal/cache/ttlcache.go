package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

type ttlcacheCache struct {
	counters
	capacity int
	c        *ttlcache.Cache[int, int]
}

// NewTTLCache wraps jellydator's ttlcache with its capacity-based LRU
// eviction. The TTL is set long so capacity, not expiration, decides
// evictions.
func NewTTLCache(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	c := ttlcache.New[int, int](
		ttlcache.WithCapacity[int, int](uint64(capacity)),
		ttlcache.WithTTL[int, int](time.Hour),
	)
	go c.Start()
	return &ttlcacheCache{capacity: capacity, c: c}, nil
}

func (c *ttlcacheCache) Get(key int) (int, bool) {
	item := c.c.Get(key)
	if item == nil {
		c.record(false)
		return 0, false
	}
	c.record(true)
	return item.Value(), true
}

func (c *ttlcacheCache) Put(key, value int) {
	c.c.Set(key, value, ttlcache.DefaultTTL)
}

func (c *ttlcacheCache) Len() int {
	return c.c.Len()
}

func (c *ttlcacheCache) Capacity() int {
	return c.capacity
}

func (*ttlcacheCache) Name() string {
	return "ttlcache"
}

func (c *ttlcacheCache) Close() {
	c.c.Stop()
}
