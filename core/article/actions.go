// ABOUTME: Actions map each article page request to one backend call plus a state update
// ABOUTME: Errors from the backend are returned unchanged and leave the state untouched

package article

import (
	"context"

	"articles-app-client/core/domain"
	coreerrors "articles-app-client/core/errors"
)

// resolveArticle decides between a known article and a backend fetch.
// It returns the article to use and true when no fetch is needed.
func resolveArticle(prev *domain.Article) (domain.Article, bool) {
	if prev == nil {
		return domain.Article{}, false
	}
	return prev.Clone().Normalize(), true
}

// FetchArticle loads the article identified by slug into the state.
// When prev is non-nil it is used as-is and the backend is not called.
func (s *Store) FetchArticle(ctx context.Context, slug string, prev *domain.Article) (domain.Article, error) {
	if article, ok := resolveArticle(prev); ok {
		s.Commit(SetArticle{Article: article})
		return article.Clone(), nil
	}

	if err := requireSlug(slug); err != nil {
		return domain.Article{}, err
	}

	s.logger.Debug("Fetching article", map[string]interface{}{"slug": slug})

	article, err := s.articles.Get(ctx, slug)
	if err != nil {
		s.logFailure(NameFetchArticle, slug, err)
		return domain.Article{}, err
	}
	if article == nil {
		return domain.Article{}, &coreerrors.NotFoundError{Resource: "article", ID: slug}
	}

	s.Commit(SetArticle{Article: *article})
	return article.Clone().Normalize(), nil
}

// FetchComments loads the article's comments into the state
func (s *Store) FetchComments(ctx context.Context, slug string) ([]domain.Comment, error) {
	if err := requireSlug(slug); err != nil {
		return nil, err
	}

	comments, err := s.comments.Get(ctx, slug)
	if err != nil {
		s.logFailure(NameFetchComments, slug, err)
		return nil, err
	}

	s.Commit(SetComments{Comments: comments})
	return domain.CloneComments(comments), nil
}

// FetchImages loads the article's generated images into the state
func (s *Store) FetchImages(ctx context.Context, slug string) ([]domain.Image, error) {
	if err := requireSlug(slug); err != nil {
		return nil, err
	}

	images, err := s.images.Get(ctx, slug)
	if err != nil {
		s.logFailure(NameFetchImages, slug, err)
		return nil, err
	}

	s.Commit(SetImages{Images: images})
	return domain.CloneImages(images), nil
}

// GenerateImages asks the backend to generate images from the article body
// and replaces the state's images with the result
func (s *Store) GenerateImages(ctx context.Context, articleID int64, slug, body string) ([]domain.Image, error) {
	if err := requireSlug(slug); err != nil {
		return nil, err
	}

	s.logger.Info("Generating images", map[string]interface{}{
		"slug":       slug,
		"article_id": articleID,
	})

	images, err := s.images.Generate(ctx, articleID, slug, body)
	if err != nil {
		s.logFailure(NameGenerateImages, slug, err)
		return nil, err
	}

	s.Commit(SetImages{Images: images})
	return domain.CloneImages(images), nil
}

// CreateComment posts a comment and then re-fetches the comment list.
// The new comment is never inserted locally.
func (s *Store) CreateComment(ctx context.Context, slug string, comment domain.NewComment) error {
	if err := requireSlug(slug); err != nil {
		return err
	}

	if err := s.comments.Post(ctx, slug, comment); err != nil {
		s.logFailure(NameCreateComment, slug, err)
		return err
	}

	_, err := s.FetchComments(ctx, slug)
	return err
}

// DestroyComment deletes a comment and then re-fetches the comment list
func (s *Store) DestroyComment(ctx context.Context, slug string, commentID int64) error {
	if err := requireSlug(slug); err != nil {
		return err
	}

	if err := s.comments.Destroy(ctx, slug, commentID); err != nil {
		s.logger.Error("Action failed", map[string]interface{}{
			"action":     NameDestroyComment,
			"slug":       slug,
			"comment_id": commentID,
			"error":      err.Error(),
		})
		return err
	}

	_, err := s.FetchComments(ctx, slug)
	return err
}

// AddFavorite favorites the article and pushes the result to both the list
// view and the single-article state
func (s *Store) AddFavorite(ctx context.Context, slug string) (domain.Article, error) {
	return s.toggleFavorite(ctx, NameAddFavorite, slug, s.favorites.Add)
}

// RemoveFavorite unfavorites the article; see AddFavorite
func (s *Store) RemoveFavorite(ctx context.Context, slug string) (domain.Article, error) {
	return s.toggleFavorite(ctx, NameRemoveFavorite, slug, s.favorites.Remove)
}

func (s *Store) toggleFavorite(
	ctx context.Context,
	action string,
	slug string,
	call func(context.Context, string) (*domain.Article, error),
) (domain.Article, error) {
	if err := requireSlug(slug); err != nil {
		return domain.Article{}, err
	}

	article, err := call(ctx, slug)
	if err != nil {
		s.logFailure(action, slug, err)
		return domain.Article{}, err
	}
	if article == nil {
		return domain.Article{}, &coreerrors.NotFoundError{Resource: "article", ID: slug}
	}

	updated := article.Clone().Normalize()
	if s.list != nil {
		s.list.UpdateArticleInList(updated.Clone())
	}
	s.Commit(SetArticle{Article: updated})

	return updated, nil
}

// PublishArticle creates the in-progress article on the backend.
// The state is not changed; the created article is returned.
func (s *Store) PublishArticle(ctx context.Context) (*domain.Article, error) {
	draft := s.Article()

	created, err := s.articles.Create(ctx, draft)
	if err != nil {
		s.logFailure(NamePublishArticle, draft.Slug, err)
		return nil, err
	}
	return created, nil
}

// EditArticle sends the in-progress article to the backend under its slug
func (s *Store) EditArticle(ctx context.Context) (*domain.Article, error) {
	draft := s.Article()
	if err := requireSlug(draft.Slug); err != nil {
		return nil, err
	}

	updated, err := s.articles.Update(ctx, draft.Slug, draft)
	if err != nil {
		s.logFailure(NameEditArticle, draft.Slug, err)
		return nil, err
	}
	return updated, nil
}

// DeleteArticle removes the article from the backend
func (s *Store) DeleteArticle(ctx context.Context, slug string) error {
	if err := requireSlug(slug); err != nil {
		return err
	}

	if err := s.articles.Destroy(ctx, slug); err != nil {
		s.logFailure(NameDeleteArticle, slug, err)
		return err
	}
	return nil
}

// SetArticleDraft seeds the in-progress article, e.g. when an editor opens
func (s *Store) SetArticleDraft(article domain.Article) {
	s.Commit(SetArticle{Article: article})
}

// AddTag appends a tag to the in-progress article
func (s *Store) AddTag(tag string) {
	s.Commit(AddTag{Tag: tag})
}

// RemoveTag removes every occurrence of tag from the in-progress article
func (s *Store) RemoveTag(tag string) {
	s.Commit(RemoveTag{Tag: tag})
}

// Reset restores the default state
func (s *Store) Reset() {
	s.Commit(ResetState{})
}

func requireSlug(slug string) error {
	if slug == "" {
		return &coreerrors.ValidationError{Field: "slug", Message: "cannot be empty"}
	}
	return nil
}

func (s *Store) logFailure(action, slug string, err error) {
	s.logger.Error("Action failed", map[string]interface{}{
		"action": action,
		"slug":   slug,
		"error":  err.Error(),
	})
}
