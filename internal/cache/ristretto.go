package cache

import "github.com/dgraph-io/ristretto"

type ristrettoCache struct {
	counters
	capacity int
	c        *ristretto.Cache
}

// NewRistretto wraps Ristretto with unit entry costs. Writes are admitted
// asynchronously, so a Put may be dropped or deferred; that is part of the
// policy being measured.
func NewRistretto(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        int64(capacity) * 10,
		MaxCost:            int64(capacity),
		BufferItems:        64,
		IgnoreInternalCost: true,
		Metrics:            true,
	})
	if err != nil {
		return nil, err
	}
	return &ristrettoCache{capacity: capacity, c: c}, nil
}

func (c *ristrettoCache) Get(key int) (int, bool) {
	v, ok := c.c.Get(key)
	if !ok {
		c.record(false)
		return 0, false
	}
	c.record(true)
	return v.(int), true
}

func (c *ristrettoCache) Put(key, value int) {
	c.c.Set(key, value, 1)
}

// Len estimates occupancy from the admission metrics; Ristretto exposes no
// exact entry count.
func (c *ristrettoCache) Len() int {
	added := c.c.Metrics.KeysAdded()
	evicted := c.c.Metrics.KeysEvicted()
	n := 0
	if added > evicted {
		n = int(added - evicted)
	}
	if n > c.capacity {
		n = c.capacity
	}
	return n
}

func (c *ristrettoCache) Capacity() int {
	return c.capacity
}

func (*ristrettoCache) Name() string {
	return "ristretto"
}

func (c *ristrettoCache) Close() {
	c.c.Wait() // flush pending async writes
	c.c.Close()
}
