// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for the transport, logger and cache backends

package client

import (
	"context"
	"time"

	"articles-app-client/core/interfaces"
	"articles-app-client/infrastructure/cache/memory"
	"articles-app-client/infrastructure/cache/redis"
	"articles-app-client/infrastructure/cache/sqlite"
	httpInfra "articles-app-client/infrastructure/http/standard"
	loggerInfra "articles-app-client/infrastructure/logger/standard"
	"articles-app-client/pkg/config"
	"articles-app-client/pkg/featureflags"
)

// DefaultHTTPClient creates the standard transport from API settings
func DefaultHTTPClient(api config.APIConfig, logger interfaces.Logger) interfaces.HTTPClient {
	return newHTTPClient(api, featureflags.NewStaticManager(featureflags.Defaults), logger)
}

func newHTTPClient(api config.APIConfig, flags featureflags.Manager, logger interfaces.Logger) *httpInfra.StandardHTTPClient {
	ctx := context.Background()
	opts := []httpInfra.Option{
		httpInfra.WithToken(api.Token),
		httpInfra.WithLogger(logger),
	}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		opts = append(opts, httpInfra.WithRateLimit(api.RateLimit, api.RateBurst))
	}
	if api.HTTP2 || flags.IsEnabled(ctx, featureflags.HTTP2Enabled) {
		opts = append(opts, httpInfra.WithHTTP2())
	}
	return httpInfra.NewStandardHTTPClient(api.RequestTimeout(), opts...)
}

// DefaultLogger creates a logrus-backed logger writing to stderr, or to a
// rotating file when log.File is set
func DefaultLogger(log config.LogConfig) interfaces.Logger {
	if log.File != "" {
		return loggerInfra.NewRotatingLogger(loggerInfra.RotationConfig{
			Filename:   log.File,
			MaxSizeMB:  log.MaxSizeMB,
			MaxBackups: log.MaxBackups,
			MaxAgeDays: log.MaxAgeDays,
		}, log.Level, log.Format)
	}
	return loggerInfra.NewStandardLogger(log.Level, log.Format)
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return loggerInfra.QuietLogger{}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// WithCacheOption selects a cache backend by settings instead of an instance
func WithCacheOption(settings config.CacheConfig) Option {
	return func(c *Config) error {
		c.CacheSettings = settings
		if settings.TTL > 0 {
			c.CacheTTL = time.Duration(settings.TTL) * time.Second
		}
		return nil
	}
}

// newCache builds the backend named by settings.Type; "none" yields nil
func newCache(settings config.CacheConfig) (interfaces.Cache, error) {
	ttl := time.Duration(settings.TTL) * time.Second

	switch settings.Type {
	case "", config.CacheNone:
		return nil, nil
	case config.CacheMemory:
		cleanup := time.Duration(settings.Memory.CleanupInterval) * time.Second
		return memory.NewMemoryCache(ttl, cleanup), nil
	case config.CacheRedis:
		cache, err := redis.NewRedisCache(settings.Redis, ttl)
		if err != nil {
			return nil, err
		}
		return cache, nil
	case config.CacheSQLite:
		cache, err := sqlite.NewSQLiteCache(settings.SQLite.Path, ttl)
		if err != nil {
			return nil, err
		}
		return cache, nil
	default:
		return nil, NewError(ErrorTypeConfiguration, "invalid cache type").
			WithContext("type", settings.Type)
	}
}
