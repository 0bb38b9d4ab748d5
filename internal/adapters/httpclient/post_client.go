// Package httpclient
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"enquete/internal/domain"
)

// PostClient sends JSON bodies and decodes JSON responses. Any status code
// is a valid outcome; only failures to complete the exchange are errors.
type PostClient[T, R any] struct {
	client *http.Client
}

func NewPostClient[T, R any](client *http.Client) *PostClient[T, R] {
	if client == nil {
		client = http.DefaultClient
	}
	return &PostClient[T, R]{client: client}
}

func (c *PostClient[T, R]) Post(ctx context.Context, params domain.HTTPPostParams[T]) (*domain.HTTPResponse[R], error) {
	var reqBody io.Reader = http.NoBody
	if params.Body != nil {
		payload, err := json.Marshal(params.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, params.URL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	out := &domain.HTTPResponse[R]{StatusCode: domain.HTTPStatusCode(resp.StatusCode)}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return out, nil
	}

	var body R
	if err := json.Unmarshal(respBody, &body); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}
		return out, nil
	}
	out.Body = &body

	return out, nil
}
