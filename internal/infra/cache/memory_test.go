package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClockedCache(t *testing.T) (*memoryCache, *time.Time) {
	t.Helper()

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	cache := &memoryCache{
		entries: make(map[string]memoryEntry),
		now:     func() time.Time { return now },
	}

	return cache, &now
}

func TestMemoryCacheHitWithinTTL(t *testing.T) {
	t.Parallel()

	cache, _ := newClockedCache(t)
	ctx := context.Background()

	cache.Set(ctx, "events:k", []byte(`[]`), 100*time.Second)

	value, ok := cache.Get(ctx, "events:k")
	require.True(t, ok)
	assert.Equal(t, []byte(`[]`), value)
}

func TestMemoryCacheExpiry(t *testing.T) {
	t.Parallel()

	cache, now := newClockedCache(t)
	ctx := context.Background()

	cache.Set(ctx, "events:k", []byte(`[]`), 100*time.Second)
	*now = now.Add(101 * time.Second)

	_, ok := cache.Get(ctx, "events:k")
	assert.False(t, ok)

	cache.mu.RLock()
	_, stillStored := cache.entries["events:k"]
	cache.mu.RUnlock()
	assert.False(t, stillStored, "expired entry is dropped on read")
}

func TestMemoryCacheLastWriterWins(t *testing.T) {
	t.Parallel()

	cache, _ := newClockedCache(t)
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("first"), time.Minute)
	cache.Set(ctx, "k", []byte("second"), time.Minute)

	value, ok := cache.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("second"), value)
}

func TestMemoryCacheReset(t *testing.T) {
	t.Parallel()

	cache, _ := newClockedCache(t)
	ctx := context.Background()

	cache.Set(ctx, "a", []byte("1"), time.Minute)
	cache.Set(ctx, "b", []byte("2"), time.Minute)
	cache.Reset(ctx)

	_, okA := cache.Get(ctx, "a")
	_, okB := cache.Get(ctx, "b")
	assert.False(t, okA)
	assert.False(t, okB)
}

func TestMemoryCacheDelete(t *testing.T) {
	t.Parallel()

	cache, _ := newClockedCache(t)
	ctx := context.Background()

	cache.Set(ctx, "a", []byte("1"), time.Minute)
	cache.Delete(ctx, "a")

	_, ok := cache.Get(ctx, "a")
	assert.False(t, ok)
}
