package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fetch replays a single access the way the evaluator does: Get, and Put
// on a miss.
func fetch(c Cache, key int) bool {
	if _, ok := c.Get(key); ok {
		return true
	}
	c.Put(key, key)
	return false
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	c, err := NewLRU(2)
	require.NoError(t, err)

	assert.False(t, fetch(c, 1)) // miss, insert 1
	assert.False(t, fetch(c, 2)) // miss, insert 2
	assert.True(t, fetch(c, 1))  // hit, refreshes 1
	assert.False(t, fetch(c, 3)) // miss, must evict 2

	_, ok := c.Get(1)
	assert.True(t, ok, "key 1 was recently used and must survive")
	_, ok = c.Get(2)
	assert.False(t, ok, "key 2 was least recently used and must be evicted")
	_, ok = c.Get(3)
	assert.True(t, ok)
}

func TestLRUOverwriteRefreshesRecency(t *testing.T) {
	c, err := NewLRU(2)
	require.NoError(t, err)

	c.Put(1, 10)
	c.Put(2, 20)
	c.Put(1, 11) // overwrite refreshes 1, making 2 the LRU
	c.Put(3, 30) // evicts 2

	v, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 11, v)
	_, ok = c.Get(2)
	assert.False(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
}

func TestFIFOEvictsOldestDespiteHit(t *testing.T) {
	c, err := NewFIFO(2)
	require.NoError(t, err)

	assert.False(t, fetch(c, 1))
	assert.False(t, fetch(c, 2))
	assert.True(t, fetch(c, 1))  // hit must not reorder
	assert.False(t, fetch(c, 3)) // evicts 1, the earliest insert

	_, ok := c.Get(1)
	assert.False(t, ok, "FIFO ignores the intervening hit on key 1")
	_, ok = c.Get(2)
	assert.True(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
}

func TestFIFOOverwriteKeepsPosition(t *testing.T) {
	c, err := NewFIFO(2)
	require.NoError(t, err)

	c.Put(1, 10)
	c.Put(2, 20)
	c.Put(1, 11) // overwrite, 1 stays at the front of the queue

	v, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 11, v)

	c.Put(3, 30) // still evicts 1
	_, ok = c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(2)
	assert.True(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
}

func TestLIFOEvictsNewest(t *testing.T) {
	c, err := NewLIFO(2)
	require.NoError(t, err)

	c.Put(1, 10)
	c.Put(2, 20)
	c.Put(3, 30) // evicts 2, the most recent insert

	_, ok := c.Get(1)
	assert.True(t, ok)
	_, ok = c.Get(2)
	assert.False(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
}

func TestLIFOOverwriteMovesToTop(t *testing.T) {
	c, err := NewLIFO(2)
	require.NoError(t, err)

	c.Put(1, 10)
	c.Put(2, 20)
	c.Put(1, 11) // re-pushed, 1 is now the top of the stack
	c.Put(3, 30) // evicts 1

	_, ok := c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(2)
	assert.True(t, ok)
	v, ok := c.Get(3)
	require.True(t, ok)
	assert.Equal(t, 30, v)
}

func TestCountersAndHitRatio(t *testing.T) {
	c, err := NewLRU(4)
	require.NoError(t, err)

	assert.Equal(t, 0.0, c.HitRatio(), "hit ratio is 0.0 before any access")
	assert.Equal(t, Stats{}, c.Stats())

	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0.0, c.HitRatio())

	c.Put(1, 1)
	_, ok = c.Get(1)
	assert.True(t, ok)

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 0.5, c.HitRatio())
}

func TestBuiltinSizeNeverExceedsCapacity(t *testing.T) {
	factories := map[string]Factory{
		"lru":  NewLRU,
		"fifo": NewFIFO,
		"lifo": NewLIFO,
	}
	for name, factory := range factories {
		t.Run(name, func(t *testing.T) {
			c, err := factory(8)
			require.NoError(t, err)
			defer c.Close()

			for i := range 200 {
				fetch(c, i%30)
				n := c.Len()
				assert.GreaterOrEqual(t, n, 0)
				assert.LessOrEqual(t, n, 8)
			}
		})
	}
}

func TestCapacityMustBePositive(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := NewLRU(capacity)
		assert.Error(t, err)
		_, err = NewFIFO(capacity)
		assert.Error(t, err)
		_, err = NewLIFO(capacity)
		assert.Error(t, err)
	}
}
