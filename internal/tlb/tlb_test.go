package tlb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wechicken456/vmsim/internal/store"
	"github.com/wechicken456/vmsim/internal/tlb"
)

func frameWith(b byte) store.Frame {
	var f store.Frame
	f[0] = b
	return f
}

func TestLookupMissThenHit(t *testing.T) {
	c := tlb.New()
	_, _, ok := c.Lookup(5)
	require.False(t, ok)

	c.Insert(5, 2, frameWith(0xAB))
	fn, f, ok := c.Lookup(5)
	require.True(t, ok)
	assert.Equal(t, 2, fn)
	assert.Equal(t, byte(0xAB), f[0])
}

func TestFIFOEvictionAtCapacity(t *testing.T) {
	c := tlb.New()
	for i := 0; i < tlb.Capacity; i++ {
		c.Insert(i, i, store.Frame{})
	}
	// all 16 present
	for i := 0; i < tlb.Capacity; i++ {
		_, _, ok := c.Lookup(i)
		require.True(t, ok)
	}

	c.Insert(100, 100, store.Frame{})
	_, _, ok := c.Lookup(0)
	assert.False(t, ok, "oldest entry must be evicted once capacity is exceeded")
	_, _, ok = c.Lookup(100)
	assert.True(t, ok)
}

func TestLookupHitDoesNotReorderFIFO(t *testing.T) {
	c := tlb.New()
	c.Insert(1, 1, store.Frame{})
	c.Insert(2, 2, store.Frame{})
	for i := 0; i < tlb.Capacity-2; i++ {
		c.Insert(10+i, 10+i, store.Frame{})
	}
	// touch page 1 repeatedly; a lookup hit must not protect it from FIFO eviction
	c.Lookup(1)
	c.Lookup(1)
	c.Insert(999, 999, store.Frame{})

	_, _, ok := c.Lookup(1)
	assert.False(t, ok, "FIFO eviction must ignore lookup hits")
}

func TestInsertRefreshesExistingEntryToTail(t *testing.T) {
	c := tlb.New()
	c.Insert(1, 1, store.Frame{})
	c.Insert(2, 2, store.Frame{})
	c.Insert(1, 1, store.Frame{}) // refresh: page 1 moves to tail

	for i := 0; i < tlb.Capacity-2; i++ {
		c.Insert(10+i, 10+i, store.Frame{})
	}
	// queue should now be full with 1 at the tail-most position; one more
	// insert evicts the new head, which is page 2 (refreshed 1 moved back).
	c.Insert(999, 999, store.Frame{})
	_, _, ok := c.Lookup(2)
	assert.False(t, ok, "page 2 should now be the oldest and get evicted")
	_, _, ok = c.Lookup(1)
	assert.True(t, ok, "refreshed page 1 should have survived")
}

func TestInvalidate(t *testing.T) {
	c := tlb.New()
	c.Insert(1, 1, store.Frame{})
	c.Invalidate(1)
	_, _, ok := c.Lookup(1)
	assert.False(t, ok)

	// invalidating a non-present page is a no-op, not an error
	c.Invalidate(42)
}
