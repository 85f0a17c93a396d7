// ABOUTME: Backend service contracts consumed by the article store
// ABOUTME: One interface per REST resource: articles, comments, images, favorites

package interfaces

import (
	"context"

	"articles-app-client/core/domain"
)

// ArticleService reaches the backend's article resource
type ArticleService interface {
	Get(ctx context.Context, slug string) (*domain.Article, error)
	Create(ctx context.Context, article domain.Article) (*domain.Article, error)
	Update(ctx context.Context, slug string, article domain.Article) (*domain.Article, error)
	Destroy(ctx context.Context, slug string) error
}

// CommentService reaches the comments nested under an article
type CommentService interface {
	Get(ctx context.Context, slug string) ([]domain.Comment, error)
	Post(ctx context.Context, slug string, comment domain.NewComment) error
	Destroy(ctx context.Context, slug string, commentID int64) error
}

// ImageService reaches the generated images of an article
type ImageService interface {
	Get(ctx context.Context, slug string) ([]domain.Image, error)
	Generate(ctx context.Context, articleID int64, slug, body string) ([]domain.Image, error)
}

// FavoriteService toggles the current user's favorite on an article.
// Both calls return the article as the backend sees it afterwards.
type FavoriteService interface {
	Add(ctx context.Context, slug string) (*domain.Article, error)
	Remove(ctx context.Context, slug string) (*domain.Article, error)
}

// ArticleListUpdater receives an article whose copy in a list view must be
// replaced, e.g. after a favorite toggle on the single-article page
type ArticleListUpdater interface {
	UpdateArticleInList(article domain.Article)
}
