// ABOUTME: REST implementation of the article resource
// ABOUTME: Get, list, create, update and destroy articles through the {"article": ...} envelope

package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"articles-app-client/core/domain"
	"articles-app-client/core/interfaces"
)

var _ interfaces.ArticleService = (*ArticleService)(nil)

// ArticleService implements interfaces.ArticleService over REST
type ArticleService struct {
	c *Client
}

type articleEnvelope struct {
	Article domain.Article `json:"article"`
}

// articleInput is the subset of an article the backend accepts on writes
type articleInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList"`
}

type articleInputEnvelope struct {
	Article articleInput `json:"article"`
}

func newArticleInput(a domain.Article) articleInputEnvelope {
	tags := a.TagList
	if tags == nil {
		tags = []string{}
	}
	return articleInputEnvelope{Article: articleInput{
		Title:       a.Title,
		Description: a.Description,
		Body:        a.Body,
		TagList:     tags,
	}}
}

// Get fetches a single article by slug
func (s *ArticleService) Get(ctx context.Context, slug string) (*domain.Article, error) {
	var env articleEnvelope
	target := resource{kind: "article", id: slug}
	if err := s.c.getJSON(ctx, s.c.endpoint("articles", slug), articleKey(slug), target, &env); err != nil {
		return nil, err
	}
	article := env.Article.Normalize()
	return &article, nil
}

// List fetches a page of the global article feed
func (s *ArticleService) List(ctx context.Context, limit, offset int) (*domain.ArticleList, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	rawURL := s.c.endpoint("articles")
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	var list domain.ArticleList
	if err := s.c.getJSON(ctx, rawURL, "", resource{kind: "articles", id: "feed"}, &list); err != nil {
		return nil, err
	}
	for i := range list.Articles {
		list.Articles[i] = list.Articles[i].Normalize()
	}
	if list.Articles == nil {
		list.Articles = []domain.Article{}
	}
	return &list, nil
}

// Create publishes a new article
func (s *ArticleService) Create(ctx context.Context, article domain.Article) (*domain.Article, error) {
	var env articleEnvelope
	target := resource{kind: "article", id: article.Title}
	if err := s.c.send(ctx, http.MethodPost, s.c.endpoint("articles"), newArticleInput(article), &env, target); err != nil {
		return nil, err
	}
	created := env.Article.Normalize()
	return &created, nil
}

// Update replaces the editable fields of the article at slug
func (s *ArticleService) Update(ctx context.Context, slug string, article domain.Article) (*domain.Article, error) {
	var env articleEnvelope
	target := resource{kind: "article", id: slug}
	if err := s.c.send(ctx, http.MethodPut, s.c.endpoint("articles", slug), newArticleInput(article), &env, target); err != nil {
		return nil, err
	}

	updated := env.Article.Normalize()
	// A title change can move the article to a new slug
	s.c.invalidate(ctx, articleKey(slug), articleKey(updated.Slug))
	return &updated, nil
}

// Destroy deletes the article at slug
func (s *ArticleService) Destroy(ctx context.Context, slug string) error {
	if err := s.c.send(ctx, http.MethodDelete, s.c.endpoint("articles", slug), nil, nil, resource{kind: "article", id: slug}); err != nil {
		return err
	}
	s.c.invalidate(ctx, articleKey(slug), commentsKey(slug), imagesKey(slug))
	return nil
}
