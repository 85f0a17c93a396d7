package rest

import (
	"context"
	"sync"
	"time"

	"articles-app-client/core/interfaces"
)

// mapCache is an in-memory Cache that records deletes and can be forced to fail
type mapCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
	getErr  error
	setErr  error
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte)}
}

func (m *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	return v, nil
}

func (m *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *mapCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, key)
	delete(m.data, key)
	return nil
}

func (m *mapCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

// mockLogger captures warn messages
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Warn(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}
func (l *mockLogger) Error(msg string, fields map[string]interface{}) {}
