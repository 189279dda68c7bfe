package cache

import (
	"encoding/binary"

	lru "github.com/elastic/go-freelru"
	"github.com/zeebo/xxh3"
)

func hashInt(key int) uint32 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(key))
	return uint32(xxh3.Hash(b[:]))
}

type freeLRUCache struct {
	counters
	capacity int
	c        *lru.LRU[int, int]
}

// NewFreeLRU wraps elastic's GC-friendly LRU. The single-owner variant is
// enough here; trials never share a cache.
func NewFreeLRU(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	c, err := lru.New[int, int](uint32(capacity), hashInt)
	if err != nil {
		return nil, err
	}
	return &freeLRUCache{capacity: capacity, c: c}, nil
}

func (c *freeLRUCache) Get(key int) (int, bool) {
	v, ok := c.c.Get(key)
	c.record(ok)
	return v, ok
}

func (c *freeLRUCache) Put(key, value int) {
	c.c.Add(key, value)
}

func (c *freeLRUCache) Len() int {
	return c.c.Len()
}

func (c *freeLRUCache) Capacity() int {
	return c.capacity
}

func (*freeLRUCache) Name() string {
	return "freelru"
}

func (*freeLRUCache) Close() {}
