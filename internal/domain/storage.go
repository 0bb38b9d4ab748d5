package domain

import "context"

const AccessTokenKey = "accessToken"

type Storage interface {
	SetItem(ctx context.Context, key, value string) error
}
