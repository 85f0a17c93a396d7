// ABOUTME: REST implementation of the favorite toggle
// ABOUTME: POST favorites an article, DELETE unfavorites it; both return the updated article

package rest

import (
	"context"
	"net/http"

	"articles-app-client/core/domain"
	"articles-app-client/core/interfaces"
)

var _ interfaces.FavoriteService = (*FavoriteService)(nil)

// FavoriteService implements interfaces.FavoriteService over REST
type FavoriteService struct {
	c *Client
}

// Add favorites the article at slug
func (s *FavoriteService) Add(ctx context.Context, slug string) (*domain.Article, error) {
	return s.toggle(ctx, http.MethodPost, slug)
}

// Remove unfavorites the article at slug
func (s *FavoriteService) Remove(ctx context.Context, slug string) (*domain.Article, error) {
	return s.toggle(ctx, http.MethodDelete, slug)
}

func (s *FavoriteService) toggle(ctx context.Context, method, slug string) (*domain.Article, error) {
	var env articleEnvelope
	target := resource{kind: "article", id: slug}
	if err := s.c.send(ctx, method, s.c.endpoint("articles", slug, "favorite"), nil, &env, target); err != nil {
		return nil, err
	}
	s.c.invalidate(ctx, articleKey(slug))

	article := env.Article.Normalize()
	return &article, nil
}
