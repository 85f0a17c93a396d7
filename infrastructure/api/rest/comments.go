// ABOUTME: REST implementation of the comments nested under an article
// ABOUTME: Lists, posts and destroys comments; writes invalidate the cached list

package rest

import (
	"context"
	"net/http"
	"strconv"

	"articles-app-client/core/domain"
	"articles-app-client/core/interfaces"
)

var _ interfaces.CommentService = (*CommentService)(nil)

// CommentService implements interfaces.CommentService over REST
type CommentService struct {
	c *Client
}

type commentsEnvelope struct {
	Comments []domain.Comment `json:"comments"`
}

type commentEnvelope struct {
	Comment domain.NewComment `json:"comment"`
}

// Get lists the comments of the article at slug
func (s *CommentService) Get(ctx context.Context, slug string) ([]domain.Comment, error) {
	var env commentsEnvelope
	target := resource{kind: "comments", id: slug}
	if err := s.c.getJSON(ctx, s.c.endpoint("articles", slug, "comments"), commentsKey(slug), target, &env); err != nil {
		return nil, err
	}
	return domain.CloneComments(env.Comments), nil
}

// Post adds a comment to the article at slug
func (s *CommentService) Post(ctx context.Context, slug string, comment domain.NewComment) error {
	target := resource{kind: "comment", id: slug}
	if err := s.c.send(ctx, http.MethodPost, s.c.endpoint("articles", slug, "comments"), commentEnvelope{Comment: comment}, nil, target); err != nil {
		return err
	}
	s.c.invalidate(ctx, commentsKey(slug))
	return nil
}

// Destroy removes one comment from the article at slug
func (s *CommentService) Destroy(ctx context.Context, slug string, commentID int64) error {
	id := strconv.FormatInt(commentID, 10)
	target := resource{kind: "comment", id: id}
	if err := s.c.send(ctx, http.MethodDelete, s.c.endpoint("articles", slug, "comments", id), nil, nil, target); err != nil {
		return err
	}
	s.c.invalidate(ctx, commentsKey(slug))
	return nil
}
