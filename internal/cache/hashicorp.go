package cache

import lru "github.com/hashicorp/golang-lru/v2"

type hashicorpLRU struct {
	counters
	capacity int
	c        *lru.Cache[int, int]
}

// NewHashicorpLRU wraps hashicorp's LRU as an externally supplied policy,
// giving the built-in lru a production reference to compare against.
func NewHashicorpLRU(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	c, err := lru.New[int, int](capacity)
	if err != nil {
		return nil, err
	}
	return &hashicorpLRU{capacity: capacity, c: c}, nil
}

func (c *hashicorpLRU) Get(key int) (int, bool) {
	v, ok := c.c.Get(key)
	c.record(ok)
	return v, ok
}

func (c *hashicorpLRU) Put(key, value int) {
	c.c.Add(key, value)
}

func (c *hashicorpLRU) Len() int {
	return c.c.Len()
}

func (c *hashicorpLRU) Capacity() int {
	return c.capacity
}

func (*hashicorpLRU) Name() string {
	return "hashicorp-lru"
}

func (*hashicorpLRU) Close() {}

type twoQueueCache struct {
	counters
	capacity int
	c        *lru.TwoQueueCache[int, int]
}

// NewTwoQueue wraps hashicorp's 2Q cache, a recency+frequency hybrid.
func NewTwoQueue(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	c, err := lru.New2Q[int, int](capacity)
	if err != nil {
		return nil, err
	}
	return &twoQueueCache{capacity: capacity, c: c}, nil
}

func (c *twoQueueCache) Get(key int) (int, bool) {
	v, ok := c.c.Get(key)
	c.record(ok)
	return v, ok
}

func (c *twoQueueCache) Put(key, value int) {
	c.c.Add(key, value)
}

func (c *twoQueueCache) Len() int {
	return c.c.Len()
}

func (c *twoQueueCache) Capacity() int {
	return c.capacity
}

func (*twoQueueCache) Name() string {
	return "2q"
}

func (*twoQueueCache) Close() {}
