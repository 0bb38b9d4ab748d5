// Package redis
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"enquete/internal/domain"

	"github.com/redis/go-redis/v9"
)

type SessionStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewSessionStore(r *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{redis: r, ttl: ttl}
}

func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis parse url failed: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func (s *SessionStore) Bind(sessionID string) domain.Storage {
	return &sessionStorage{store: s, sessionID: sessionID}
}

func (s *SessionStore) GetItem(ctx context.Context, sessionID, key string) (string, bool, error) {
	v, err := s.redis.Get(ctx, itemKey(sessionID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session get failed: %w", err)
	}
	return v, true, nil
}

func (s *SessionStore) setItem(ctx context.Context, sessionID, key, value string) error {
	if err := s.redis.Set(ctx, itemKey(sessionID, key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("session set failed: %w", err)
	}
	return nil
}

func itemKey(sessionID, key string) string {
	return "session:" + sessionID + ":" + key
}

type sessionStorage struct {
	store     *SessionStore
	sessionID string
}

func (s *sessionStorage) SetItem(ctx context.Context, key, value string) error {
	return s.store.setItem(ctx, s.sessionID, key, value)
}
