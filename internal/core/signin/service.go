// Package signin issues access tokens for the remote authentication endpoint.
package signin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"enquete/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	repo        domain.UserRepository
	jwtSecret   []byte
	tokenExpiry time.Duration
	now         func() time.Time
}

func NewService(repo domain.UserRepository, secret string, expiry time.Duration) domain.SignInService {
	return &service{
		repo:        repo,
		jwtSecret:   []byte(secret),
		tokenExpiry: expiry,
		now:         time.Now,
	}
}

func (s *service) Login(ctx context.Context, params domain.AuthenticationParams) (*domain.AccountModel, error) {
	user, err := s.repo.GetByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(params.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(user.ID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(s.now().Add(s.tokenExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		Email:            user.Email,
		RegisteredClaims: claims,
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &domain.AccountModel{
		AccessToken: tokenString,
		Name:        user.Name,
	}, nil
}

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ParseToken verifies an HS256 access token and returns the email it was
// issued for.
func ParseToken(tokenString, secret string) (string, error) {
	var claims accessClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	return claims.Email, nil
}

// Register stores a user with a bcrypt hash of password. An existing user with
// the same email gets the new name and password.
func Register(ctx context.Context, repo domain.UserRepository, name, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{Name: name, Email: email, Password: string(hashed)}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
