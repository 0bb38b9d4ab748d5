// Package domain
package domain

import "context"

type AuthenticationParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

type AccountModel struct {
	AccessToken string `json:"accessToken"`
	Name        string `json:"name,omitempty"`
}

type Authentication interface {
	Auth(ctx context.Context, params AuthenticationParams) (*AccountModel, error)
}
