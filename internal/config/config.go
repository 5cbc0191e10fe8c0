package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	RedisURL  string
	JWTSecret string

	RateLimitReaction time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		RedisURL:  os.Getenv("REDIS_URL"),
		JWTSecret: getEnv("JWT_SECRET", "12345"),
	}

	var err error
	cfg.RateLimitReaction, err = time.ParseDuration(getEnv("RATE_LIMIT_REACTION", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REACTION: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
