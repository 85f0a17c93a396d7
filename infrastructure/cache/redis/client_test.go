package redis

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"articles-app-client/core/interfaces"
	"articles-app-client/pkg/config"
)

// These are integration tests that need a Redis instance.
// Run them with REDIS_TEST=1 and optionally REDIS_TEST_ADDRESS.

var _ interfaces.Cache = (*RedisCache)(nil)

func testConfig(t *testing.T) config.RedisConfig {
	t.Helper()

	if os.Getenv("REDIS_TEST") != "1" {
		t.Skip("Skipping Redis integration tests - set REDIS_TEST=1 to run")
	}

	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		addr = "localhost:6379"
	}
	return config.RedisConfig{Address: addr}
}

func TestNewRedisCache_InvalidAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: ""}, time.Minute)

	if err == nil {
		t.Error("NewRedisCache should return error for empty address")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache for invalid config")
	}
}

func TestRedisCache_RoundTrip(t *testing.T) {
	cfg := testConfig(t)

	cache, err := NewRedisCache(cfg, time.Minute)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer cache.Close()

	ctx := context.Background()
	key := "articles-client-test:roundtrip"
	value := []byte(`{"comments":[]}`)

	if err := cache.Set(ctx, key, value, time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", got, value)
	}

	if err := cache.Delete(ctx, key); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, key); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get after Delete error = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCache_MissingKey(t *testing.T) {
	cfg := testConfig(t)

	cache, err := NewRedisCache(cfg, time.Minute)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer cache.Close()

	got, err := cache.Get(context.Background(), "articles-client-test:missing")
	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
	if got != nil {
		t.Error("Get should return nil value for missing key")
	}
}

func TestRedisCache_Expiration(t *testing.T) {
	cfg := testConfig(t)

	cache, err := NewRedisCache(cfg, time.Minute)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer cache.Close()

	ctx := context.Background()
	key := "articles-client-test:ttl"
	if err := cache.Set(ctx, key, []byte(`{}`), 100*time.Millisecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	if _, err := cache.Get(ctx, key); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get after expiry error = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCache_JSONModeRejectsInvalidJSON(t *testing.T) {
	cfg := testConfig(t)
	if os.Getenv("REDIS_TEST_JSON") != "1" {
		t.Skip("Skipping RedisJSON test - set REDIS_TEST_JSON=1 when the module is loaded")
	}
	cfg.JSON = true

	cache, err := NewRedisCache(cfg, time.Minute)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer cache.Close()

	ctx := context.Background()
	if err := cache.Set(ctx, "articles-client-test:bad", []byte("not json"), time.Minute); err == nil {
		t.Error("Set should reject invalid JSON in JSON mode")
	}

	key := "articles-client-test:json"
	value := []byte(`{"images":[{"url":"https://img.example.com/1.png"}]}`)
	if err := cache.Set(ctx, key, value, time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	defer cache.Delete(ctx, key)

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", got, value)
	}
}
