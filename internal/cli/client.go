package cli

import (
	"context"
	"time"

	"github.com/vehiclekit/vpic/pkg/cache"
	"github.com/vehiclekit/vpic/pkg/vpic"
)

// rootFlags are the persistent flags shared by every command, merged
// over the config file.
type rootFlags struct {
	configFile string
	verbose    bool
	jsonOut    bool
	rawNames   bool
	baseURL    string
	timeout    time.Duration
	cacheMode  string
	cacheTTL   time.Duration
	redisAddr  string
}

// buildClient assembles a record client from flags and config. The
// returned closer releases the cache backend, if any.
func (f *rootFlags) buildClient(ctx context.Context) (*vpic.Client, func(), error) {
	cfg, err := loadConfig(f.configFile)
	if err != nil {
		return nil, nil, err
	}

	var opts []vpic.Option
	switch {
	case f.baseURL != "":
		opts = append(opts, vpic.WithBaseURL(f.baseURL))
	case cfg.BaseURL != "":
		opts = append(opts, vpic.WithBaseURL(cfg.BaseURL))
	}
	switch {
	case f.timeout > 0:
		opts = append(opts, vpic.WithTimeout(f.timeout))
	case cfg.TimeoutSeconds > 0:
		opts = append(opts, vpic.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, vpic.WithUserAgent(cfg.UserAgent))
	}
	if f.rawNames || cfg.RawNames {
		opts = append(opts, vpic.WithRawNames())
	}

	backend, closer, err := f.buildCache(ctx, cfg.Cache)
	if err != nil {
		return nil, nil, err
	}
	if backend != nil {
		ttl := f.cacheTTL
		if ttl == 0 && cfg.Cache.TTLHours > 0 {
			ttl = time.Duration(cfg.Cache.TTLHours) * time.Hour
		}
		opts = append(opts, vpic.WithCache(backend, ttl))
	}

	client, err := vpic.New(opts...)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return client, closer, nil
}

// buildCache picks a cache backend. The flag wins over the config;
// both default to no caching.
func (f *rootFlags) buildCache(ctx context.Context, cfg CacheConfig) (cache.Cache, func(), error) {
	noop := func() {}
	mode := f.cacheMode
	if mode == "" {
		mode = cfg.Backend
	}
	switch mode {
	case "", "off":
		return nil, noop, nil
	case "file":
		dir, err := cacheDir(cfg)
		if err != nil {
			return nil, nil, err
		}
		backend, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, nil, err
		}
		return backend, func() { _ = backend.Close() }, nil
	case "redis":
		addr := f.redisAddr
		if addr == "" {
			addr = cfg.RedisAddr
		}
		if addr == "" {
			addr = "localhost:6379"
		}
		backend, err := cache.NewRedisCache(ctx, addr)
		if err != nil {
			return nil, nil, err
		}
		return backend, func() { _ = backend.Close() }, nil
	default:
		return nil, nil, errUnknownCacheMode(mode)
	}
}

type unknownCacheModeError string

func errUnknownCacheMode(mode string) error {
	return unknownCacheModeError(mode)
}

func (e unknownCacheModeError) Error() string {
	return "unknown cache backend " + string(e) + " (want file, redis or off)"
}
