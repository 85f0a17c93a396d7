// ABOUTME: Main client for the articles library wiring transport, cache and the article store
// ABOUTME: Offers a clean API for driving the single-article view without touching infrastructure

package client

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"articles-app-client/core/article"
	"articles-app-client/core/articlelist"
	"articles-app-client/core/domain"
	"articles-app-client/core/interfaces"
	"articles-app-client/infrastructure/api/rest"
	"articles-app-client/pkg/featureflags"
)

// Client is the main entry point for the articles library
type Client struct {
	store    *article.Store
	list     *articlelist.Store
	articles *rest.ArticleService

	logger  interfaces.Logger
	closers []io.Closer
}

// ArticleView is everything the single-article page shows
type ArticleView struct {
	Article  domain.Article   `json:"article"`
	Comments []domain.Comment `json:"comments"`
	Images   []domain.Image   `json:"images"`
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	cfg := defaultConfig()

	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	if cfg.Flags == nil {
		cfg.Flags = featureflags.NewEnvManager("")
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger(cfg.Log)
	}

	c := &Client{logger: cfg.Logger}

	if cfg.HTTPClient == nil {
		cfg.HTTPClient = newHTTPClient(cfg.API, cfg.Flags, cfg.Logger)
	}

	ctx := context.Background()
	restOpts := []rest.Option{rest.WithLogger(cfg.Logger)}
	if cfg.Flags.IsEnabled(ctx, featureflags.ResponseCache) {
		if cfg.Cache == nil {
			cache, err := newCache(cfg.CacheSettings)
			if err != nil {
				return nil, NewError(ErrorTypeConfiguration, "failed to create response cache").
					WithCause(err).
					WithContext("type", cfg.CacheSettings.Type)
			}
			cfg.Cache = cache
		}
		if cfg.Cache != nil {
			restOpts = append(restOpts, rest.WithCache(cfg.Cache, cfg.CacheTTL))
			if closer, ok := cfg.Cache.(io.Closer); ok {
				c.closers = append(c.closers, closer)
			}
		}
	}

	api := rest.NewClient(cfg.HTTPClient, cfg.API.BaseURL, restOpts...)

	c.articles = api.Articles()
	c.list = articlelist.NewStore()
	c.store = article.NewStore(interfaces.Dependencies{
		Articles:  c.articles,
		Comments:  api.Comments(),
		Images:    api.Images(),
		Favorites: api.Favorites(),
		List:      c.list,
		Logger:    cfg.Logger,
	})

	return c, nil
}

// Close releases the cache backend, if it holds connections or files
func (c *Client) Close() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}

// Store returns the single-article view store
func (c *Client) Store() *article.Store {
	return c.store
}

// List returns the article list the favorite actions keep in sync
func (c *Client) List() *articlelist.Store {
	return c.list
}

// LoadFeed fetches a page of the global feed into the article list
func (c *Client) LoadFeed(ctx context.Context, limit, offset int) ([]domain.Article, error) {
	feed, err := c.articles.List(ctx, limit, offset)
	if err != nil {
		c.logger.Error("Failed to load article feed", map[string]interface{}{
			"limit":  limit,
			"offset": offset,
			"error":  err.Error(),
		})
		return nil, err
	}

	c.list.SetArticles(feed.Articles, feed.ArticlesCount)
	return c.list.Articles(), nil
}

// Open loads the article at slug and then its comments and images in
// parallel, the way the article page does on entry
func (c *Client) Open(ctx context.Context, slug string) (*ArticleView, error) {
	if _, err := c.store.FetchArticle(ctx, slug, c.cachedListArticle(slug)); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := c.store.FetchComments(gctx, slug)
		return err
	})
	g.Go(func() error {
		_, err := c.store.FetchImages(gctx, slug)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	state := c.store.State()
	return &ArticleView{
		Article:  state.Article,
		Comments: state.Comments,
		Images:   state.Images,
	}, nil
}

// cachedListArticle returns the list's copy of slug so opening an article
// from the feed skips the network fetch
func (c *Client) cachedListArticle(slug string) *domain.Article {
	for _, a := range c.list.Articles() {
		if a.Slug == slug {
			found := a
			return &found
		}
	}
	return nil
}
