package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"enquete/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountClient = PostClient[domain.AuthenticationParams, domain.AccountModel]

func newAccountClient() *accountClient {
	return NewPostClient[domain.AuthenticationParams, domain.AccountModel](nil)
}

func TestPostSendsJSONAndDecodes(t *testing.T) {
	params := domain.AuthenticationParams{Email: "john@example.com", Password: "secret123"}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got domain.AuthenticationParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, params, got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken":"any_token","name":"John"}`))
	}))
	defer server.Close()

	res, err := newAccountClient().Post(context.Background(), domain.HTTPPostParams[domain.AuthenticationParams]{
		URL:  server.URL + "/api/login",
		Body: &params,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusOK, res.StatusCode)
	require.NotNil(t, res.Body)
	assert.Equal(t, "any_token", res.Body.AccessToken)
	assert.Equal(t, "John", res.Body.Name)
}

func TestPostNon2xxIsNotAnError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "unauthorized with text body", status: http.StatusUnauthorized, body: "invalid credentials"},
		{name: "server error empty", status: http.StatusInternalServerError, body: ""},
		{name: "not found json", status: http.StatusNotFound, body: `{"message":"missing"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			res, err := newAccountClient().Post(context.Background(), domain.HTTPPostParams[domain.AuthenticationParams]{
				URL:  server.URL,
				Body: &domain.AuthenticationParams{},
			})

			require.NoError(t, err)
			assert.Equal(t, domain.HTTPStatusCode(tt.status), res.StatusCode)
		})
	}
}

func TestPostMalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	_, err := newAccountClient().Post(context.Background(), domain.HTTPPostParams[domain.AuthenticationParams]{URL: server.URL})

	assert.Error(t, err)
}

func TestPostTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newAccountClient().Post(context.Background(), domain.HTTPPostParams[domain.AuthenticationParams]{URL: url})

	assert.Error(t, err)
}
