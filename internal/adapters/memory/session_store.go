package memory

import (
	"context"
	"sync"

	"enquete/internal/domain"
)

// SessionStore keeps token storage items per session in process memory.
type SessionStore struct {
	mu    sync.RWMutex
	items map[string]map[string]string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{items: make(map[string]map[string]string)}
}

func (s *SessionStore) Bind(sessionID string) domain.Storage {
	return &sessionStorage{store: s, sessionID: sessionID}
}

func (s *SessionStore) GetItem(_ context.Context, sessionID, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[sessionID][key]
	return v, ok
}

func (s *SessionStore) set(sessionID, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items[sessionID] == nil {
		s.items[sessionID] = make(map[string]string)
	}
	s.items[sessionID][key] = value
}

type sessionStorage struct {
	store     *SessionStore
	sessionID string
}

func (s *sessionStorage) SetItem(_ context.Context, key, value string) error {
	s.store.set(s.sessionID, key, value)
	return nil
}
