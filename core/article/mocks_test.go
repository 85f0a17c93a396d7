package article

import (
	"context"

	"articles-app-client/core/domain"
)

// mockArticleService is a mock implementation of the ArticleService interface
type mockArticleService struct {
	getFunc     func(ctx context.Context, slug string) (*domain.Article, error)
	createFunc  func(ctx context.Context, article domain.Article) (*domain.Article, error)
	updateFunc  func(ctx context.Context, slug string, article domain.Article) (*domain.Article, error)
	destroyFunc func(ctx context.Context, slug string) error

	getCalls int
}

func (m *mockArticleService) Get(ctx context.Context, slug string) (*domain.Article, error) {
	m.getCalls++
	if m.getFunc != nil {
		return m.getFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockArticleService) Create(ctx context.Context, article domain.Article) (*domain.Article, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, article)
	}
	return &article, nil
}

func (m *mockArticleService) Update(ctx context.Context, slug string, article domain.Article) (*domain.Article, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, slug, article)
	}
	return &article, nil
}

func (m *mockArticleService) Destroy(ctx context.Context, slug string) error {
	if m.destroyFunc != nil {
		return m.destroyFunc(ctx, slug)
	}
	return nil
}

// mockCommentService is a mock implementation of the CommentService interface
type mockCommentService struct {
	getFunc     func(ctx context.Context, slug string) ([]domain.Comment, error)
	postFunc    func(ctx context.Context, slug string, comment domain.NewComment) error
	destroyFunc func(ctx context.Context, slug string, commentID int64) error

	getCalls int
}

func (m *mockCommentService) Get(ctx context.Context, slug string) ([]domain.Comment, error) {
	m.getCalls++
	if m.getFunc != nil {
		return m.getFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockCommentService) Post(ctx context.Context, slug string, comment domain.NewComment) error {
	if m.postFunc != nil {
		return m.postFunc(ctx, slug, comment)
	}
	return nil
}

func (m *mockCommentService) Destroy(ctx context.Context, slug string, commentID int64) error {
	if m.destroyFunc != nil {
		return m.destroyFunc(ctx, slug, commentID)
	}
	return nil
}

// mockImageService is a mock implementation of the ImageService interface
type mockImageService struct {
	getFunc      func(ctx context.Context, slug string) ([]domain.Image, error)
	generateFunc func(ctx context.Context, articleID int64, slug, body string) ([]domain.Image, error)
}

func (m *mockImageService) Get(ctx context.Context, slug string) ([]domain.Image, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockImageService) Generate(ctx context.Context, articleID int64, slug, body string) ([]domain.Image, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, articleID, slug, body)
	}
	return nil, nil
}

// mockFavoriteService is a mock implementation of the FavoriteService interface
type mockFavoriteService struct {
	addFunc    func(ctx context.Context, slug string) (*domain.Article, error)
	removeFunc func(ctx context.Context, slug string) (*domain.Article, error)
}

func (m *mockFavoriteService) Add(ctx context.Context, slug string) (*domain.Article, error) {
	if m.addFunc != nil {
		return m.addFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockFavoriteService) Remove(ctx context.Context, slug string) (*domain.Article, error) {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, slug)
	}
	return nil, nil
}

// mockListUpdater records every article pushed to the list view
type mockListUpdater struct {
	updates []domain.Article
}

func (m *mockListUpdater) UpdateArticleInList(article domain.Article) {
	m.updates = append(m.updates, article)
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	errors []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if action, ok := fields["action"].(string); ok {
		m.errors = append(m.errors, action)
	}
}
