// ABOUTME: List store backs collection views such as the home feed
// ABOUTME: Implements ArticleListUpdater so the article store can patch favorites in place

package articlelist

import (
	"sync"

	"articles-app-client/core/domain"
)

// Store holds the articles currently shown in a list view
type Store struct {
	mu   sync.RWMutex
	list domain.ArticleList
}

// NewStore creates an empty list store
func NewStore() *Store {
	return &Store{
		list: domain.ArticleList{Articles: []domain.Article{}},
	}
}

// SetArticles replaces the list wholesale
func (s *Store) SetArticles(articles []domain.Article, count int) {
	copied := make([]domain.Article, len(articles))
	for i, a := range articles {
		copied[i] = a.Clone().Normalize()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = domain.ArticleList{Articles: copied, ArticlesCount: count}
}

// UpdateArticleInList replaces the entry with the same slug.
// Articles not in the list are ignored.
func (s *Store) UpdateArticleInList(article domain.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.list.IndexOf(article.Slug); i >= 0 {
		s.list.Articles[i] = article.Clone().Normalize()
	}
}

// Articles returns a copy of the listed articles in order
func (s *Store) Articles() []domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Article, len(s.list.Articles))
	for i, a := range s.list.Articles {
		out[i] = a.Clone()
	}
	return out
}

// Count returns the total reported by the backend for this list
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.ArticlesCount
}
