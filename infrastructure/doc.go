// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as the REST backend, response caching, HTTP transport and logging.
//
// The infrastructure package is organized by technical concern:
//
// - api/rest: Article, comment, image and favorite services over REST
// - cache/memory: In-memory cache backed by go-cache
// - cache/redis: Redis cache, optionally storing RedisJSON documents
// - cache/sqlite: SQLite cache that survives restarts
// - http/standard: HTTP client with auth, retries, rate limiting and HTTP/2
// - logger/standard: Structured logger backed by logrus
//
// # REST services
//
//	httpClient := standard.NewStandardHTTPClient(30*time.Second, standard.WithToken(token))
//	api := rest.NewClient(httpClient, "http://localhost:3000/api",
//	    rest.WithCache(memory.NewMemoryCache(time.Minute, 10*time.Minute), time.Minute),
//	)
//	article, err := api.Articles().Get(ctx, "how-to-train-your-dragon")
//
// Non-2xx responses come back as the core error types, so callers can
// branch with errors.IsNotFound, errors.IsValidation and friends.
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Minute, 10*time.Minute)
//	err := cache.Set(ctx, "article:dragons", body, 0)
//	value, err := cache.Get(ctx, "article:dragons")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	    JSON:    true,
//	}, time.Minute)
//
// # Logger
//
//	logger := standard.NewStandardLogger("debug", "json")
//	logger.Info("Fetched article", map[string]interface{}{
//	    "slug": "how-to-train-your-dragon",
//	})
package infrastructure
