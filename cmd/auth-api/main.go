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
	"enquete/internal/adapters/http/validator"
	"enquete/internal/adapters/memory"
	"enquete/internal/adapters/postgres"
	"enquete/internal/config"
	"enquete/internal/core/signin"
	"enquete/internal/domain"
	"enquete/internal/logger"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg)

	if cfg.JWTSecret == "" {
		panic("FATAL: JWT_SECRET is mandatory for auth-api!")
	}

	var userRepo domain.UserRepository
	if cfg.DatabaseURL != "" {
		dbPool, err := postgres.InitDB(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Error("failed to init DB", "error", err)
			return
		}
		defer dbPool.Close()
		userRepo = postgres.NewUserRepository(dbPool)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory users")
		memRepo := memory.NewUserRepository()
		if _, err := signin.Register(ctx, memRepo, "Admin", cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Error("failed to seed in-memory user", "error", err)
			return
		}
		userRepo = memRepo
	}

	registry := prometheus.NewRegistry()

	signInHandler := httpadapter.NewSignInHandler(
		signin.NewService(userRepo, cfg.JWTSecret, cfg.JWTExpiry),
		log,
		request.NewJSONDecoder(),
		response.NewJSONWriter(),
		validator.New(),
	)

	router := httpadapter.NewAuthAPIRouter(cfg, &httpadapter.RouterDeps{
		SignIn:   signInHandler,
		Registry: registry,
		Log:      log,
	})

	srv := &http.Server{
		Addr:              cfg.AuthAPIAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http: starting auth api", "address", cfg.AuthAPIAddress)
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
		log.Error("http: auth api error", "error", err)
	}

	log.Info("auth api stopped")
}
