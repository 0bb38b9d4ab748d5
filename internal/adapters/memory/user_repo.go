// Package memory
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"enquete/internal/domain"
)

type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

// Create inserts the user or replaces the stored password and name when the
// email already exists.
func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if existing, ok := r.users[key]; ok {
		existing.Name = user.Name
		existing.Password = user.Password
		user.ID = existing.ID
		return nil
	}

	r.nextID++
	user.ID = r.nextID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	cp := *user
	r.users[key] = &cp
	return nil
}
