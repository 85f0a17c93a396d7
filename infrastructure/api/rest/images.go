// ABOUTME: REST implementation of the generated images attached to an article
// ABOUTME: Lists images and asks the backend to generate new ones from the article body

package rest

import (
	"context"
	"net/http"

	"articles-app-client/core/domain"
	"articles-app-client/core/interfaces"
)

var _ interfaces.ImageService = (*ImageService)(nil)

// ImageService implements interfaces.ImageService over REST
type ImageService struct {
	c *Client
}

type imagesEnvelope struct {
	Images []domain.Image `json:"images"`
}

// Get lists the images of the article at slug
func (s *ImageService) Get(ctx context.Context, slug string) ([]domain.Image, error) {
	var env imagesEnvelope
	target := resource{kind: "images", id: slug}
	if err := s.c.getJSON(ctx, s.c.endpoint("articles", slug, "images"), imagesKey(slug), target, &env); err != nil {
		return nil, err
	}
	return domain.CloneImages(env.Images), nil
}

// Generate asks the backend to create images for the article and returns
// the article's full image set afterwards
func (s *ImageService) Generate(ctx context.Context, articleID int64, slug, body string) ([]domain.Image, error) {
	payload := domain.GenerateImagesRequest{
		ArticleID: articleID,
		Slug:      slug,
		Body:      body,
	}

	var env imagesEnvelope
	target := resource{kind: "images", id: slug}
	if err := s.c.send(ctx, http.MethodPost, s.c.endpoint("articles", slug, "images"), payload, &env, target); err != nil {
		return nil, err
	}
	s.c.invalidate(ctx, imagesKey(slug))
	return domain.CloneImages(env.Images), nil
}
