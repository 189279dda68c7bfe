package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesIncludeBuiltins(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "lru")
	assert.Contains(t, names, "fifo")
	assert.Contains(t, names, "lifo")
	for _, name := range names {
		assert.True(t, Known(name))
	}
}

func TestNewUnknownPolicy(t *testing.T) {
	_, err := New("no-such-policy", 8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-policy")
}

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	for _, name := range Names() {
		_, err := New(name, 0)
		assert.Error(t, err, "policy %s must reject capacity 0", name)
		_, err = New(name, -3)
		assert.Error(t, err, "policy %s must reject negative capacity", name)
	}
}

// TestAllPoliciesHonorContract drives every registered policy through a
// mixed workload and checks the invariants the evaluator relies on. Hit
// behavior is policy-specific (and asynchronous for some backends), so
// only the contract is asserted, not hit counts.
func TestAllPoliciesHonorContract(t *testing.T) {
	const capacity = 32
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, err := New(name, capacity)
			require.NoError(t, err)
			defer c.Close()

			assert.Equal(t, name, c.Name())
			assert.Equal(t, capacity, c.Capacity())
			assert.Equal(t, 0.0, c.HitRatio())

			gets := 0
			for i := range 500 {
				key := (i * 7) % 64
				if _, ok := c.Get(key); !ok {
					c.Put(key, key)
				}
				gets++

				n := c.Len()
				require.GreaterOrEqual(t, n, 0)
				require.LessOrEqual(t, n, capacity)
			}

			stats := c.Stats()
			assert.Equal(t, uint64(gets), stats.Hits+stats.Misses)
			assert.GreaterOrEqual(t, c.HitRatio(), 0.0)
			assert.LessOrEqual(t, c.HitRatio(), 1.0)
		})
	}
}

// nullCache is a minimal external implementation used to exercise the
// registration seam.
type nullCache struct {
	counters
	capacity int
}

func (c *nullCache) Get(int) (int, bool) { c.record(false); return 0, false }
func (*nullCache) Put(int, int)          {}
func (*nullCache) Len() int              { return 0 }
func (c *nullCache) Capacity() int       { return c.capacity }
func (*nullCache) Name() string          { return "null" }
func (*nullCache) Close()                {}

func TestRegisterExternalImplementation(t *testing.T) {
	Register("null", func(capacity int) (Cache, error) {
		if err := checkCapacity(capacity); err != nil {
			return nil, err
		}
		return &nullCache{capacity: capacity}, nil
	})

	require.True(t, Known("null"))
	assert.Contains(t, Names(), "null")

	c, err := New("null", 4)
	require.NoError(t, err)
	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, uint64(1), c.Stats().Misses)
}
