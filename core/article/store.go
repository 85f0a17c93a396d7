// ABOUTME: Store owns the article page's ViewState and exposes read accessors
// ABOUTME: Mutations are committed under a lock; readers always receive copies

package article

import (
	"sync"

	"articles-app-client/core/domain"
	"articles-app-client/core/interfaces"
)

// Store holds the article, its comments and its images, and performs the
// backend calls that keep them current
type Store struct {
	mu    sync.RWMutex
	state domain.ViewState

	articles  interfaces.ArticleService
	comments  interfaces.CommentService
	images    interfaces.ImageService
	favorites interfaces.FavoriteService
	list      interfaces.ArticleListUpdater
	logger    interfaces.Logger
}

// NewStore creates a store with default state
func NewStore(deps interfaces.Dependencies) *Store {
	logger := deps.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	return &Store{
		state:     domain.NewViewState(),
		articles:  deps.Articles,
		comments:  deps.Comments,
		images:    deps.Images,
		favorites: deps.Favorites,
		list:      deps.List,
		logger:    logger,
	}
}

// Article returns the current article
func (s *Store) Article() domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Article.Clone()
}

// Comments returns the current comments in backend order
func (s *Store) Comments() []domain.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneComments(s.state.Comments)
}

// Images returns the current images in backend order
func (s *Store) Images() []domain.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneImages(s.state.Images)
}

// State returns a snapshot of the whole view state
func (s *Store) State() domain.ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Commit applies a mutation to the state
func (s *Store) Commit(m Mutation) {
	s.mu.Lock()
	s.state = Apply(s.state, m)
	s.mu.Unlock()

	s.logger.Debug("Committed mutation", map[string]interface{}{
		"mutation": m.Name(),
	})
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
