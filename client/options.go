// ABOUTME: Configuration options for the articles library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package client

import (
	"strings"
	"time"

	"articles-app-client/core/interfaces"
	"articles-app-client/pkg/config"
	"articles-app-client/pkg/featureflags"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	// API configures the default transport; ignored when HTTPClient is set
	API config.APIConfig

	// Log configures the default logger; ignored when Logger is set
	Log config.LogConfig

	// CacheSettings selects the default cache backend; ignored when Cache is set
	CacheSettings config.CacheConfig

	// CacheTTL is how long GET responses stay cached
	CacheTTL time.Duration

	HTTPClient interfaces.HTTPClient
	Cache      interfaces.Cache
	Logger     interfaces.Logger

	// Flags toggles optional behaviour; defaults to the FEATURE_ env manager
	Flags featureflags.Manager
}

// WithConfig applies a loaded application configuration
func WithConfig(cfg *config.Config) Option {
	return func(c *Config) error {
		if cfg == nil {
			return NewError(ErrorTypeConfiguration, "config is nil")
		}
		if err := cfg.Validate(); err != nil {
			return NewError(ErrorTypeConfiguration, "invalid config").WithCause(err)
		}
		c.API = cfg.API
		c.Log = cfg.Log
		c.CacheSettings = cfg.Cache
		c.CacheTTL = cfg.CacheTTL()
		return nil
	}
}

// WithBaseURL sets the REST API root
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		c.API.BaseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithToken sets the API token sent by the default transport
func WithToken(token string) Option {
	return func(c *Config) error {
		c.API.Token = token
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithCache sets a custom cache implementation and its TTL
func WithCache(cache interfaces.Cache, ttl time.Duration) Option {
	return func(c *Config) error {
		c.Cache = cache
		c.CacheTTL = ttl
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithFeatureFlags sets the feature flag manager
func WithFeatureFlags(flags featureflags.Manager) Option {
	return func(c *Config) error {
		c.Flags = flags
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		API: config.APIConfig{
			BaseURL:   "http://localhost:3000/api",
			Timeout:   30,
			RateBurst: 5,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "text",
		},
		CacheSettings: config.CacheConfig{
			Type: config.CacheNone,
			TTL:  60,
			Memory: config.MemoryConfig{
				CleanupInterval: 600,
			},
			SQLite: config.SQLiteConfig{
				Path: "articles_cache.db",
			},
		},
		CacheTTL: time.Minute,
	}
}

// validateConfig validates the client configuration
func validateConfig(c *Config) error {
	if c.API.BaseURL == "" {
		return NewError(ErrorTypeConfiguration, "base URL is required")
	}

	if c.HTTPClient == nil && c.API.Timeout < 1 {
		return NewError(ErrorTypeConfiguration, "timeout must be at least 1 second").
			WithContext("timeout", c.API.Timeout)
	}

	if c.CacheTTL < 0 {
		return NewError(ErrorTypeConfiguration, "cache TTL cannot be negative")
	}

	return nil
}
