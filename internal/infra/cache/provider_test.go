package cache

import (
	"io"
	"log/slog"
	"testing"

	"happnings/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderDefaultsToMemory(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("empty backend", func(t *testing.T) {
		t.Parallel()

		backend, err := NewProvider(Params{
			Config: &config.Config{Cache: &config.CacheConfig{}},
			Logger: logger,
		})
		require.NoError(t, err)
		assert.IsType(t, &memoryCache{}, backend)
	})

	t.Run("missing cache section", func(t *testing.T) {
		t.Parallel()

		backend, err := NewProvider(Params{
			Config: &config.Config{},
			Logger: logger,
		})
		require.NoError(t, err)
		assert.IsType(t, &memoryCache{}, backend)
	})
}

func TestNewProviderUnknownBackend(t *testing.T) {
	t.Parallel()

	backend, err := NewProvider(Params{
		Config: &config.Config{Cache: &config.CacheConfig{Backend: "memcached"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.Error(t, err)
	assert.Nil(t, backend)
	assert.Contains(t, err.Error(), "unknown cache backend")
}
