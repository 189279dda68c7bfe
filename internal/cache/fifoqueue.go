package cache

import (
	"github.com/scalalang2/golang-fifo/s3fifo"
	"github.com/scalalang2/golang-fifo/sieve"
)

type sieveCache struct {
	counters
	capacity int
	c        *sieve.Sieve[int, int]
}

// NewSieve wraps the SIEVE eviction algorithm, a FIFO variant with lazy
// promotion.
func NewSieve(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &sieveCache{capacity: capacity, c: sieve.New[int, int](capacity, 0)}, nil
}

func (c *sieveCache) Get(key int) (int, bool) {
	v, ok := c.c.Get(key)
	c.record(ok)
	return v, ok
}

func (c *sieveCache) Put(key, value int) {
	c.c.Set(key, value)
}

func (c *sieveCache) Len() int {
	return c.c.Len()
}

func (c *sieveCache) Capacity() int {
	return c.capacity
}

func (*sieveCache) Name() string {
	return "sieve"
}

func (*sieveCache) Close() {}

type s3fifoCache struct {
	counters
	capacity int
	c        *s3fifo.S3FIFO[int, int]
}

// NewS3FIFO wraps the S3-FIFO eviction algorithm.
func NewS3FIFO(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &s3fifoCache{capacity: capacity, c: s3fifo.New[int, int](capacity, 0)}, nil
}

func (c *s3fifoCache) Get(key int) (int, bool) {
	v, ok := c.c.Get(key)
	c.record(ok)
	return v, ok
}

func (c *s3fifoCache) Put(key, value int) {
	c.c.Set(key, value)
}

func (c *s3fifoCache) Len() int {
	return c.c.Len()
}

func (c *s3fifoCache) Capacity() int {
	return c.capacity
}

func (*s3fifoCache) Name() string {
	return "s3-fifo"
}

func (*s3fifoCache) Close() {}
