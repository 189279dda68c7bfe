package cache

import "container/list"

// fifoCache keeps strict insertion order: new keys go to the back, eviction
// removes the front. Gets and overwrites never move a key.
type fifoCache struct {
	counters
	capacity int
	items    map[int]*list.Element
	order    *list.List
}

// NewFIFO creates a first-in-first-out cache. Eviction always removes the
// earliest-inserted key still present, regardless of access history.
func NewFIFO(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &fifoCache{
		capacity: capacity,
		items:    make(map[int]*list.Element, capacity),
		order:    list.New(),
	}, nil
}

func (c *fifoCache) Get(key int) (int, bool) {
	elem, ok := c.items[key]
	if !ok {
		c.record(false)
		return 0, false
	}
	c.record(true)
	return elem.Value.(*entry).value, true
}

func (c *fifoCache) Put(key, value int) {
	if elem, ok := c.items[key]; ok {
		// Overwrite keeps the key's original queue position.
		elem.Value.(*entry).value = value
		return
	}
	if len(c.items) >= c.capacity {
		victim := c.order.Front()
		delete(c.items, victim.Value.(*entry).key)
		c.order.Remove(victim)
	}
	c.items[key] = c.order.PushBack(&entry{key: key, value: value})
}

func (c *fifoCache) Len() int {
	return len(c.items)
}

func (c *fifoCache) Capacity() int {
	return c.capacity
}

func (*fifoCache) Name() string {
	return "fifo"
}

func (*fifoCache) Close() {}
