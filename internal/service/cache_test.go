package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/discount-service/internal/domain/model"
)

func TestNewShardedCache(t *testing.T) {
	tests := []struct {
		name       string
		capacity   int
		ttl        time.Duration
		numShards  int
		wantShards int
	}{
		{name: "default shards when zero", capacity: 100, ttl: time.Minute, numShards: 0, wantShards: 16},
		{name: "default shards when negative", capacity: 100, ttl: time.Minute, numShards: -1, wantShards: 16},
		{name: "rounds up to power of two", capacity: 100, ttl: time.Minute, numShards: 5, wantShards: 8},
		{name: "exact power of two kept", capacity: 100, ttl: time.Minute, numShards: 4, wantShards: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewShardedCache[model.OperationsResult](tt.capacity, tt.ttl, tt.numShards)
			defer c.Stop()
			assert.Equal(t, tt.wantShards, c.numShards)
			assert.Len(t, c.shards, tt.wantShards)
		})
	}
}

func TestShardedCache_GetSet(t *testing.T) {
	c := NewShardedCache[model.OperationsResult](64, time.Minute, 4)
	defer c.Stop()

	result := model.OperationsResult{
		Operations: []model.Operation{
			{ProductDiscountsAdd: model.ProductDiscountsAdd{SelectionStrategy: model.SelectionStrategyAll}},
		},
	}

	_, ok := c.Get(42)
	assert.False(t, ok)

	c.Set(42, result)
	got, ok := c.Get(42)
	require.True(t, ok)
	assert.Equal(t, result, got)

	// Keys land on different shards but remain independently retrievable
	for key := uint64(0); key < 32; key++ {
		c.Set(key, model.OperationsResult{})
	}
	for key := uint64(0); key < 32; key++ {
		_, ok := c.Get(key)
		assert.True(t, ok, "key %d", key)
	}
}

func TestShardedCache_Expiration(t *testing.T) {
	c := NewShardedCache[model.DiscountsResult](16, 10*time.Millisecond, 2)
	defer c.Stop()

	c.Set(1, model.DiscountsResult{DiscountApplicationStrategy: model.ApplicationStrategyMaximum})
	_, ok := c.Get(1)
	assert.True(t, ok)

	time.Sleep(150 * time.Millisecond)

	_, ok = c.Get(1)
	assert.False(t, ok)
}

func TestShardedCache_Invalidate(t *testing.T) {
	c := NewShardedCache[model.OperationsResult](16, time.Minute, 2)
	defer c.Stop()

	c.Set(7, model.OperationsResult{})
	c.Invalidate(7)
	_, ok := c.Get(7)
	assert.False(t, ok)

	// Invalidating a missing key is a no-op
	c.Invalidate(99)
}

func TestShardedCache_Clear(t *testing.T) {
	c := NewShardedCache[model.OperationsResult](16, time.Minute, 2)
	defer c.Stop()

	for key := uint64(0); key < 8; key++ {
		c.Set(key, model.OperationsResult{})
	}
	c.Clear()

	for key := uint64(0); key < 8; key++ {
		_, ok := c.Get(key)
		assert.False(t, ok)
	}
	assert.Equal(t, 0, c.Metrics().Size)
}

func TestShardedCache_LRUEviction(t *testing.T) {
	// Single shard with capacity 2 so eviction order is deterministic
	c := NewShardedCache[model.OperationsResult](2, time.Minute, 1)
	defer c.Stop()

	c.Set(1, model.OperationsResult{})
	c.Set(2, model.OperationsResult{})

	// Touch key 1 so key 2 becomes least recently used
	_, ok := c.Get(1)
	require.True(t, ok)

	c.Set(3, model.OperationsResult{})

	_, ok = c.Get(2)
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = c.Get(1)
	assert.True(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
}

func TestShardedCache_Metrics(t *testing.T) {
	c := NewShardedCache[model.OperationsResult](16, time.Minute, 2)
	defer c.Stop()

	c.Set(1, model.OperationsResult{})
	c.Get(1)
	c.Get(2)

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
	assert.Equal(t, 16, m.Capacity)
}
