// Package http
package http

import (
	"encoding/json"
	"net/http"

	"enquete/internal/adapters/http/middleware"
	"enquete/internal/config"
	"enquete/internal/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	Login  *LoginHandler
	SignIn *SignInHandler

	Registry *prometheus.Registry
	Log      logger.Logger
}

// NewLoginRouter serves the login page API.
func NewLoginRouter(cfg *config.Config, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()
	registerCommon(mux, deps)

	mux.HandleFunc("GET /api/login", deps.Login.State)
	mux.HandleFunc("POST /api/login/validate", deps.Login.Validate)
	mux.HandleFunc("POST /api/login", deps.Login.Login)

	return globalStack(cfg, deps, "login").Apply(mux)
}

// NewAuthAPIRouter serves the remote authentication endpoint.
func NewAuthAPIRouter(cfg *config.Config, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()
	registerCommon(mux, deps)

	mux.HandleFunc("POST /api/login", deps.SignIn.Login)

	return globalStack(cfg, deps, "auth-api").Apply(mux)
}

func registerCommon(mux *http.ServeMux, deps *RouterDeps) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func globalStack(cfg *config.Config, deps *RouterDeps, service string) *middleware.Chain {
	globalMw := middleware.New()
	globalMw.Use(middleware.RequestID)
	globalMw.Use(middleware.Logger(deps.Log))
	globalMw.Use(middleware.NewMetrics(deps.Registry, service).Middleware)
	globalMw.Use(middleware.CORS(cfg))
	return globalMw
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
