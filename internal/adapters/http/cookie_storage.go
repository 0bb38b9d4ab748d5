package http

import (
	"context"
	"net/http"
	"time"

	"enquete/internal/domain"
)

// CookieStorage keeps items on the client as HttpOnly cookies set on the
// current response.
type CookieStorage struct {
	w      http.ResponseWriter
	ttl    time.Duration
	secure bool
}

func NewCookieStorage(w http.ResponseWriter, ttl time.Duration, secure bool) *CookieStorage {
	return &CookieStorage{w: w, ttl: ttl, secure: secure}
}

func (c *CookieStorage) SetItem(_ context.Context, key, value string) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(c.ttl),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

type SessionBinder interface {
	Bind(sessionID string) domain.Storage
}

// StorageProvider returns the token storage for the session of one request.
type StorageProvider func(w http.ResponseWriter, sessionID string) domain.Storage

func SessionStorage(b SessionBinder) StorageProvider {
	return func(_ http.ResponseWriter, sessionID string) domain.Storage {
		return b.Bind(sessionID)
	}
}

func CookieStorageProvider(ttl time.Duration, secure bool) StorageProvider {
	return func(w http.ResponseWriter, _ string) domain.Storage {
		return NewCookieStorage(w, ttl, secure)
	}
}
