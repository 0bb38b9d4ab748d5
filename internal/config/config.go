// Package config
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Address        string
	AllowedOrigins []string
	LogLevel       string
	LogFormat      string

	// BFF
	AuthAPIURL   string
	TokenStorage string
	RedisURL     string
	SessionTTL   time.Duration
	CookieSecure bool

	// Auth API
	AuthAPIAddress string
	DatabaseURL    string
	JWTSecret      string
	JWTExpiry      time.Duration

	// Seeded admin
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	_ = godotenv.Load()

	// Logs
	logLevel := getEnv("LOG_LEVEL", "info")
	logFormat := getEnv("LOG_FORMAT", "text")

	// Server HTTP Address
	addr := getEnv("HTTP_ADDR", ":3000")
	authAPIAddr := getEnv("AUTH_API_ADDR", ":5050")

	// Server Allowed Origins
	var origins []string
	rawOrigins := os.Getenv("ALLOWED_ORIGINS")
	if rawOrigins != "" {
		parts := strings.SplitSeq(rawOrigins, ",")
		for o := range parts {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	// Remote authentication endpoint
	authAPIURL := getEnv("AUTH_API_URL", "http://localhost:5050/api/login")

	// Token storage
	tokenStorage := strings.ToLower(getEnv("TOKEN_STORAGE", "memory"))
	redisURL := getEnv("REDIS_URL", "redis://localhost:6379/0")
	sessionTTL := getDuration("SESSION_TTL", 24*time.Hour)
	cookieSecure := getBool("COOKIE_SECURE", true)

	// Database URL
	databaseURL := getEnv("DATABASE_URL", "")

	// JWT Secret and Expiry
	jwtSecret := getEnv("JWT_SECRET", "")
	jwtExpiry := getDuration("JWT_EXPIRY", 24*time.Hour)

	// Seeded admin
	adminEmail := getEnv("DB_ADMIN_EMAIL", "admin@enquete.local")
	adminPassword := getEnv("DB_ADMIN_PASSWORD", "password")

	return &Config{
		LogLevel:  logLevel,
		LogFormat: logFormat,

		Address:        addr,
		AllowedOrigins: origins,

		AuthAPIURL:   authAPIURL,
		TokenStorage: tokenStorage,
		RedisURL:     redisURL,
		SessionTTL:   sessionTTL,
		CookieSecure: cookieSecure,

		AuthAPIAddress: authAPIAddr,
		DatabaseURL:    databaseURL,
		JWTSecret:      jwtSecret,
		JWTExpiry:      jwtExpiry,

		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if duration, err := time.ParseDuration(raw); err == nil && duration > 0 {
			return duration
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}
	return fallback
}
