package cache

import (
	"strconv"

	"github.com/vmihailenco/go-tinylfu"
)

type tinyLFUCache struct {
	counters
	capacity int
	c        *tinylfu.T
	seen     map[int]struct{}
}

// NewTinyLFU wraps a TinyLFU cache. The backend exposes no occupancy, so
// Len tracks an upper bound: distinct keys inserted, capped at capacity.
func NewTinyLFU(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &tinyLFUCache{
		capacity: capacity,
		c:        tinylfu.New(capacity, capacity*10),
		seen:     make(map[int]struct{}),
	}, nil
}

func (c *tinyLFUCache) Get(key int) (int, bool) {
	v, ok := c.c.Get(strconv.Itoa(key))
	if !ok {
		c.record(false)
		return 0, false
	}
	c.record(true)
	return v.(int), true
}

func (c *tinyLFUCache) Put(key, value int) {
	c.seen[key] = struct{}{}
	c.c.Set(&tinylfu.Item{Key: strconv.Itoa(key), Value: value})
}

func (c *tinyLFUCache) Len() int {
	if len(c.seen) > c.capacity {
		return c.capacity
	}
	return len(c.seen)
}

func (c *tinyLFUCache) Capacity() int {
	return c.capacity
}

func (*tinyLFUCache) Name() string {
	return "tinylfu"
}

func (*tinyLFUCache) Close() {}
