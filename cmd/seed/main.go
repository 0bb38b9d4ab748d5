package main

import (
	"context"
	"flag"
	"os"

	"enquete/internal/adapters/postgres"
	"enquete/internal/config"
	"enquete/internal/core/signin"
	"enquete/internal/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg)

	dsn := flag.String("dsn", cfg.DatabaseURL, "database url")
	name := flag.String("name", "Admin", "display name of the seeded user")
	flag.Parse()

	if *dsn == "" {
		log.Error("DSN required via flag -dsn or DATABASE_URL env")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.InitDB(ctx, *dsn, log)
	if err != nil {
		log.Error("failed to init DB", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	user, err := signin.Register(ctx, postgres.NewUserRepository(pool), *name, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Error("failed to seed user", "error", err)
		return
	}

	log.Info("user seeded", "id", user.ID, "email", user.Email)
}
