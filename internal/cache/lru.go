package cache

import "container/list"

// lruCache pairs a key->element map with a recency list. The front of the
// list is the most-recently-used end; eviction removes the back.
type lruCache struct {
	counters
	capacity int
	items    map[int]*list.Element
	order    *list.List
}

// NewLRU creates a least-recently-used cache. Both Get hits and Puts
// (including overwrites) refresh a key's recency.
func NewLRU(capacity int) (Cache, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &lruCache{
		capacity: capacity,
		items:    make(map[int]*list.Element, capacity),
		order:    list.New(),
	}, nil
}

func (c *lruCache) Get(key int) (int, bool) {
	elem, ok := c.items[key]
	if !ok {
		c.record(false)
		return 0, false
	}
	c.order.MoveToFront(elem)
	c.record(true)
	return elem.Value.(*entry).value, true
}

func (c *lruCache) Put(key, value int) {
	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry).value = value
		c.order.MoveToFront(elem)
		return
	}
	if len(c.items) >= c.capacity {
		victim := c.order.Back()
		delete(c.items, victim.Value.(*entry).key)
		c.order.Remove(victim)
	}
	c.items[key] = c.order.PushFront(&entry{key: key, value: value})
}

func (c *lruCache) Len() int {
	return len(c.items)
}

func (c *lruCache) Capacity() int {
	return c.capacity
}

func (*lruCache) Name() string {
	return "lru"
}

func (*lruCache) Close() {}
