// ABOUTME: Configuration management for the articles client with environment variable support
// ABOUTME: Defines configuration structures for the API transport, logging and response cache

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache backend names accepted by CACHE_TYPE
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheSQLite = "sqlite"
)

// Config holds all application configuration
type Config struct {
	// API contains backend transport configuration
	API APIConfig

	// Log contains logger configuration
	Log LogConfig

	// Cache contains response cache configuration
	Cache CacheConfig
}

// APIConfig holds backend API configuration
type APIConfig struct {
	// BaseURL is the root of the REST API, e.g. http://localhost:3000/api
	BaseURL string

	// Token is sent as "Authorization: Token <token>" when set
	Token string

	// Timeout is the per-request timeout in seconds
	Timeout int

	// HTTP2 enables the HTTP/2 transport
	HTTP2 bool

	// RateLimit is the maximum requests per second, 0 disables limiting
	RateLimit float64

	// RateBurst is the limiter burst size
	RateBurst int
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string

	// File switches output from stderr to a rotating file
	File string

	// MaxSizeMB, MaxBackups and MaxAgeDays bound the rotated files
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (none/memory/redis/sqlite)
	Type string

	// TTL is the lifetime of cached responses in seconds
	TTL int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// JSON stores entries as RedisJSON documents
	JSON bool
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged, in seconds
	CleanupInterval int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path string
}

// Load reads an optional .env file and then the environment
func Load(files ...string) (*Config, error) {
	// A missing .env is normal outside development
	_ = godotenv.Load(files...)
	return LoadFromEnv()
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL:   strings.TrimRight(getEnvOrDefault("API_BASE_URL", "http://localhost:3000/api"), "/"),
			Token:     getEnvOrDefault("API_TOKEN", ""),
			Timeout:   getEnvAsIntOrDefault("HTTP_TIMEOUT", 30),
			HTTP2:     getEnvAsBoolOrDefault("HTTP2", false),
			RateLimit: getEnvAsFloatOrDefault("RATE_LIMIT", 0),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 5),
		},
		Log: LogConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
			File:       getEnvOrDefault("LOG_FILE", ""),
			MaxSizeMB:  getEnvAsIntOrDefault("LOG_MAX_SIZE", 100),
			MaxBackups: getEnvAsIntOrDefault("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvAsIntOrDefault("LOG_MAX_AGE", 28),
		},
		Cache: CacheConfig{
			Type: strings.ToLower(getEnvOrDefault("CACHE_TYPE", CacheNone)),
			TTL:  getEnvAsIntOrDefault("CACHE_TTL", 60),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
				JSON:     getEnvAsBoolOrDefault("REDIS_JSON", false),
			},
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP", 600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "articles_cache.db"),
			},
		},
	}

	return cfg, nil
}

// RequestTimeout returns the API timeout as a duration
func (a APIConfig) RequestTimeout() time.Duration {
	return time.Duration(a.Timeout) * time.Second
}

// CacheTTL returns the cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTL) * time.Second
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api base url cannot be empty")
	}

	if c.API.Timeout < 1 {
		return errors.New("http timeout must be at least 1 second")
	}

	if c.API.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.Log.File != "" && c.Log.MaxSizeMB < 1 {
		return errors.New("log max size must be at least 1 MB")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("log format must be 'text' or 'json'")
	}

	switch c.Cache.Type {
	case CacheNone, CacheMemory, CacheRedis, CacheSQLite:
	default:
		return errors.New("cache type must be 'none', 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == CacheRedis && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	return nil
}
