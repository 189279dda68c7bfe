package cache

// lifoCache keeps a key stack alongside the value map. Eviction pops the
// top of the stack, so the newest insertion is discarded first. This is a
// deliberately adversarial baseline, not an optimized policy.
type lifoCache struct {
	counters
	capacity int
	values   map[int]int
	stack    []int // insertion order, top is the last element
}

// NewLIFO creates a last-in-first-out cache. A Get never reorders;
// overwriting an existing key re-pushes it to the top of the stack.
func NewLIFO(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &lifoCache{
		capacity: capacity,
		values:   make(map[int]int, capacity),
		stack:    make([]int, 0, capacity),
	}, nil
}

func (c *lifoCache) Get(key int) (int, bool) {
	value, ok := c.values[key]
	c.record(ok)
	return value, ok
}

func (c *lifoCache) Put(key, value int) {
	if _, ok := c.values[key]; ok {
		c.values[key] = value
		c.remove(key)
		c.stack = append(c.stack, key)
		return
	}
	if len(c.values) >= c.capacity {
		top := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		delete(c.values, top)
	}
	c.values[key] = value
	c.stack = append(c.stack, key)
}

func (c *lifoCache) remove(key int) {
	for i, k := range c.stack {
		if k == key {
			c.stack = append(c.stack[:i], c.stack[i+1:]...)
			return
		}
	}
}

func (c *lifoCache) Len() int {
	return len(c.values)
}

func (c *lifoCache) Capacity() int {
	return c.capacity
}

func (*lifoCache) Name() string {
	return "lifo"
}

func (*lifoCache) Close() {}
