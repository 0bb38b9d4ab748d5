package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpadapter "enquete/internal/adapters/http"
	"enquete/internal/adapters/http/request"
	"enquete/internal/adapters/http/response"
	"enquete/internal/adapters/httpclient"
	"enquete/internal/adapters/memory"
	"enquete/internal/adapters/redis"
	"enquete/internal/config"
	"enquete/internal/core/auth"
	"enquete/internal/core/login"
	"enquete/internal/domain"
	"enquete/internal/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg)

	storage, closeStorage, err := newStorage(ctx, cfg, log)
	if err != nil {
		log.Error("failed to init token storage", "driver", cfg.TokenStorage, "error", err)
		return
	}
	defer closeStorage()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	remoteAuth := auth.NewRemoteAuthentication(
		cfg.AuthAPIURL,
		httpclient.NewPostClient[domain.AuthenticationParams, domain.AccountModel](&http.Client{}),
	)

	loginHandler := httpadapter.NewLoginHandler(cfg, log, httpadapter.LoginHandlerDeps{
		Validation:     login.NewLoginValidation(),
		Authentication: remoteAuth,
		Storage:        storage,
		Metrics:        httpadapter.NewLoginMetrics(registry),
		Decoder:        request.NewJSONDecoder(),
		Writer:         response.NewJSONWriter(),
	})

	router := httpadapter.NewLoginRouter(cfg, &httpadapter.RouterDeps{
		Login:    loginHandler,
		Registry: registry,
		Log:      log,
	})

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http: starting server", "address", cfg.Address, "auth_api", cfg.AuthAPIURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("http: server error", "error", err)
	}

	log.Info("server stopped")
}

func newStorage(ctx context.Context, cfg *config.Config, log logger.Logger) (httpadapter.StorageProvider, func(), error) {
	switch cfg.TokenStorage {
	case "redis":
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("token storage: redis", "ttl", cfg.SessionTTL)
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Warn("redis: close failed", "error", err)
			}
		}
		return httpadapter.SessionStorage(redis.NewSessionStore(client, cfg.SessionTTL)), closeFn, nil
	case "cookie":
		log.Info("token storage: cookie")
		return httpadapter.CookieStorageProvider(cfg.SessionTTL, cfg.CookieSecure), func() {}, nil
	default:
		log.Info("token storage: memory")
		return httpadapter.SessionStorage(memory.NewSessionStore()), func() {}, nil
	}
}
