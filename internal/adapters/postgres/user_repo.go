// Package postgres
package postgres

import (
	"context"
	"errors"
	"fmt"

	"enquete/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password, created_at
		FROM users
		WHERE lower(email) = lower($1) AND deleted_at IS NULL
	`

	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// upsertUserQuery conflicts on the lower(email) unique index, so emails
// differing only in case address one row.
const upsertUserQuery = `
	INSERT INTO users (name, email, password)
	VALUES ($1, $2, $3)
	ON CONFLICT ((lower(email))) DO UPDATE SET name = excluded.name, password = excluded.password, updated_at = now()
	RETURNING id, created_at
`

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.db.QueryRow(ctx, upsertUserQuery, user.Name, user.Email, user.Password).Scan(&user.ID, &user.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}
