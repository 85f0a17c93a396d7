// ABOUTME: Command variants let callers queue store actions as values
// ABOUTME: Dispatch runs one command and returns the action's result

package article

import (
	"context"
	"fmt"

	"articles-app-client/core/domain"
	coreerrors "articles-app-client/core/errors"
)

// Action names, used in logs and by Command.Name
const (
	NameFetchArticle    = "article/fetch"
	NameFetchComments   = "comments/fetch"
	NameFetchImages     = "images/fetch"
	NameGenerateImages  = "images/generate"
	NameCreateComment   = "comment/create"
	NameDestroyComment  = "comment/destroy"
	NameAddFavorite     = "favorite/add"
	NameRemoveFavorite  = "favorite/remove"
	NamePublishArticle  = "article/publish"
	NameEditArticle     = "article/edit"
	NameDeleteArticle   = "article/delete"
	NameSetArticleDraft = "article/set-draft"
	NameAddTag          = "article/tag-add"
	NameRemoveTag       = "article/tag-remove"
	NameReset           = "article/reset"
)

// Command is a store action captured as a value
type Command interface {
	Name() string
	isCommand()
}

// FetchArticleCommand runs FetchArticle
type FetchArticleCommand struct {
	Slug string
	// Prev skips the network call when set
	Prev *domain.Article
}

// FetchCommentsCommand runs FetchComments
type FetchCommentsCommand struct{ Slug string }

// FetchImagesCommand runs FetchImages
type FetchImagesCommand struct{ Slug string }

// GenerateImagesCommand asks the backend for images generated from Body
type GenerateImagesCommand struct {
	ArticleID int64
	Slug      string
	Body      string
}

// CreateCommentCommand posts Comment and re-fetches the comments
type CreateCommentCommand struct {
	Slug    string
	Comment domain.NewComment
}

// DestroyCommentCommand deletes one comment and re-fetches the comments
type DestroyCommentCommand struct {
	Slug      string
	CommentID int64
}

// AddFavoriteCommand favorites the article at Slug
type AddFavoriteCommand struct{ Slug string }

// RemoveFavoriteCommand unfavorites the article at Slug
type RemoveFavoriteCommand struct{ Slug string }

// PublishArticleCommand creates the in-progress article on the backend
type PublishArticleCommand struct{}

// EditArticleCommand saves the in-progress article under its slug
type EditArticleCommand struct{}

// DeleteArticleCommand removes the article at Slug from the backend
type DeleteArticleCommand struct{ Slug string }

// SetArticleDraftCommand replaces the in-progress article; no network call
type SetArticleDraftCommand struct{ Article domain.Article }

// AddTagCommand appends Tag to the in-progress article
type AddTagCommand struct{ Tag string }

// RemoveTagCommand drops every occurrence of Tag
type RemoveTagCommand struct{ Tag string }

// ResetCommand restores the default state
type ResetCommand struct{}

func (FetchArticleCommand) Name() string    { return NameFetchArticle }
func (FetchCommentsCommand) Name() string   { return NameFetchComments }
func (FetchImagesCommand) Name() string     { return NameFetchImages }
func (GenerateImagesCommand) Name() string  { return NameGenerateImages }
func (CreateCommentCommand) Name() string   { return NameCreateComment }
func (DestroyCommentCommand) Name() string  { return NameDestroyComment }
func (AddFavoriteCommand) Name() string     { return NameAddFavorite }
func (RemoveFavoriteCommand) Name() string  { return NameRemoveFavorite }
func (PublishArticleCommand) Name() string  { return NamePublishArticle }
func (EditArticleCommand) Name() string     { return NameEditArticle }
func (DeleteArticleCommand) Name() string   { return NameDeleteArticle }
func (SetArticleDraftCommand) Name() string { return NameSetArticleDraft }
func (AddTagCommand) Name() string          { return NameAddTag }
func (RemoveTagCommand) Name() string       { return NameRemoveTag }
func (ResetCommand) Name() string           { return NameReset }

func (FetchArticleCommand) isCommand()    {}
func (FetchCommentsCommand) isCommand()   {}
func (FetchImagesCommand) isCommand()     {}
func (GenerateImagesCommand) isCommand()  {}
func (CreateCommentCommand) isCommand()   {}
func (DestroyCommentCommand) isCommand()  {}
func (AddFavoriteCommand) isCommand()     {}
func (RemoveFavoriteCommand) isCommand()  {}
func (PublishArticleCommand) isCommand()  {}
func (EditArticleCommand) isCommand()     {}
func (DeleteArticleCommand) isCommand()   {}
func (SetArticleDraftCommand) isCommand() {}
func (AddTagCommand) isCommand()          {}
func (RemoveTagCommand) isCommand()       {}
func (ResetCommand) isCommand()           {}

// Dispatch runs cmd against the store.
//
// The result is the action's payload: domain.Article for fetch and favorite
// commands, *domain.Article for publish and edit, []domain.Comment for the
// comment fetch, []domain.Image for the image commands, and nil otherwise.
func (s *Store) Dispatch(ctx context.Context, cmd Command) (interface{}, error) {
	if cmd == nil {
		return nil, &coreerrors.ValidationError{Field: "command", Message: "cannot be nil"}
	}

	s.logger.Debug("Dispatching action", map[string]interface{}{
		"action": cmd.Name(),
	})

	switch c := cmd.(type) {
	case FetchArticleCommand:
		return s.FetchArticle(ctx, c.Slug, c.Prev)
	case FetchCommentsCommand:
		return s.FetchComments(ctx, c.Slug)
	case FetchImagesCommand:
		return s.FetchImages(ctx, c.Slug)
	case GenerateImagesCommand:
		return s.GenerateImages(ctx, c.ArticleID, c.Slug, c.Body)
	case CreateCommentCommand:
		return nil, s.CreateComment(ctx, c.Slug, c.Comment)
	case DestroyCommentCommand:
		return nil, s.DestroyComment(ctx, c.Slug, c.CommentID)
	case AddFavoriteCommand:
		return s.AddFavorite(ctx, c.Slug)
	case RemoveFavoriteCommand:
		return s.RemoveFavorite(ctx, c.Slug)
	case PublishArticleCommand:
		created, err := s.PublishArticle(ctx)
		if err != nil {
			return nil, err
		}
		return created, nil
	case EditArticleCommand:
		updated, err := s.EditArticle(ctx)
		if err != nil {
			return nil, err
		}
		return updated, nil
	case DeleteArticleCommand:
		return nil, s.DeleteArticle(ctx, c.Slug)
	case SetArticleDraftCommand:
		s.SetArticleDraft(c.Article)
		return nil, nil
	case AddTagCommand:
		s.AddTag(c.Tag)
		return nil, nil
	case RemoveTagCommand:
		s.RemoveTag(c.Tag)
		return nil, nil
	case ResetCommand:
		s.Reset()
		return nil, nil
	default:
		return nil, &coreerrors.ValidationError{
			Field:   "command",
			Message: fmt.Sprintf("unsupported command %T", cmd),
		}
	}
}
