package domain

import "context"

type HTTPStatusCode int

const (
	StatusOK           HTTPStatusCode = 200
	StatusNoContent    HTTPStatusCode = 204
	StatusBadRequest   HTTPStatusCode = 400
	StatusUnauthorized HTTPStatusCode = 401
	StatusNotFound     HTTPStatusCode = 404
	StatusServerError  HTTPStatusCode = 500
)

type HTTPPostParams[T any] struct {
	URL  string
	Body *T
}

type HTTPResponse[R any] struct {
	StatusCode HTTPStatusCode
	Body       *R
}

// HTTPPostClient performs a single POST. A non-nil error means the exchange
// never produced a status code.
type HTTPPostClient[T, R any] interface {
	Post(ctx context.Context, params HTTPPostParams[T]) (*HTTPResponse[R], error)
}
