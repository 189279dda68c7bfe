package cache

import "github.com/Yiling-J/theine-go"

type theineCache struct {
	counters
	capacity int
	c        *theine.Cache[int, int]
}

// NewTheine wraps the Theine cache (adaptive W-TinyLFU).
func NewTheine(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	c, err := theine.NewBuilder[int, int](int64(capacity)).Build()
	if err != nil {
		return nil, err
	}
	return &theineCache{capacity: capacity, c: c}, nil
}

func (c *theineCache) Get(key int) (int, bool) {
	v, ok := c.c.Get(key)
	c.record(ok)
	return v, ok
}

func (c *theineCache) Put(key, value int) {
	c.c.Set(key, value, 1)
}

func (c *theineCache) Len() int {
	n := c.c.Len()
	if n > c.capacity {
		n = c.capacity
	}
	return n
}

func (c *theineCache) Capacity() int {
	return c.capacity
}

func (*theineCache) Name() string {
	return "theine"
}

func (c *theineCache) Close() {
	c.c.Close()
}
