package middleware

import (
	"net/http"
	"slices"

	"enquete/internal/config"

	"github.com/go-chi/cors"
)

// CORS allows only the configured origins. An empty list denies every
// cross-origin request, and a "*" entry never carries credentials.
func CORS(cfg *config.Config) Middleware {
	opts := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: !slices.Contains(cfg.AllowedOrigins, "*"),
		MaxAge:           300,
	}
	if len(cfg.AllowedOrigins) == 0 {
		opts.AllowOriginFunc = func(*http.Request, string) bool { return false }
	}
	return cors.Handler(opts)
}
