package memory

import (
	"context"
	"testing"

	"enquete/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.GetByEmail(ctx, "john@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	user := &domain.User{Name: "John", Email: "John@Example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, int64(1), user.ID)

	got, err := repo.GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "John", got.Name)

	require.NoError(t, repo.Create(ctx, &domain.User{Name: "Johnny", Email: "john@example.com", Password: "hash2"}))
	got, err = repo.GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "hash2", got.Password)
}

func TestSessionStoreScopesBySession(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	require.NoError(t, store.Bind("a").SetItem(ctx, domain.AccessTokenKey, "token-a"))
	require.NoError(t, store.Bind("b").SetItem(ctx, domain.AccessTokenKey, "token-b"))

	v, ok := store.GetItem(ctx, "a", domain.AccessTokenKey)
	assert.True(t, ok)
	assert.Equal(t, "token-a", v)

	v, ok = store.GetItem(ctx, "b", domain.AccessTokenKey)
	assert.True(t, ok)
	assert.Equal(t, "token-b", v)

	_, ok = store.GetItem(ctx, "c", domain.AccessTokenKey)
	assert.False(t, ok)
}
