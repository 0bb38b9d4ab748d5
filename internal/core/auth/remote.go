// Package auth
package auth

import (
	"context"
	"fmt"

	"enquete/internal/domain"
)

type AccountPostClient = domain.HTTPPostClient[domain.AuthenticationParams, domain.AccountModel]

type RemoteAuthentication struct {
	url    string
	client AccountPostClient
}

var _ domain.Authentication = (*RemoteAuthentication)(nil)

func NewRemoteAuthentication(url string, client AccountPostClient) *RemoteAuthentication {
	return &RemoteAuthentication{url: url, client: client}
}

// Auth posts the credentials once. No retry is attempted on any outcome.
func (a *RemoteAuthentication) Auth(ctx context.Context, params domain.AuthenticationParams) (*domain.AccountModel, error) {
	res, err := a.client.Post(ctx, domain.HTTPPostParams[domain.AuthenticationParams]{
		URL:  a.url,
		Body: &params,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnexpected, err)
	}
	if res == nil {
		return nil, domain.ErrUnexpected
	}

	switch res.StatusCode {
	case domain.StatusOK:
		return res.Body, nil
	case domain.StatusUnauthorized:
		return nil, domain.ErrInvalidCredentials
	default:
		return nil, domain.ErrUnexpected
	}
}
