package cache

import (
	"io"
	"log/slog"

	"happnings/config"
	"happnings/internal/domain/constants"
	"happnings/internal/domain/service"
	"happnings/internal/errors"

	"go.uber.org/fx"
)

// Params defines the parameters required for the cache provider
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

// NewProvider selects the cache backend from config. Unset backend defaults
// to the in-process cache.
func NewProvider(params Params) (service.Cache, error) {
	cfg := params.Config.Cache
	if cfg == nil {
		cfg = &config.CacheConfig{}
	}

	switch cfg.Backend {
	case constants.CacheBackendMemory, "":
		params.Logger.Info("using in-memory cache backend")

		return NewMemory(), nil
	case constants.CacheBackendRedis:
		params.Logger.Info("using redis cache backend", slog.String("addr", cfg.RedisAddr))

		backend, err := NewRedis(cfg, params.Logger)
		if err != nil {
			return nil, err
		}

		if closer, ok := backend.(io.Closer); ok {
			params.Lifecycle.Append(fx.StopHook(closer.Close))
		}

		return backend, nil
	default:
		return nil, errors.Errorf("unknown cache backend: %s", cfg.Backend)
	}
}
