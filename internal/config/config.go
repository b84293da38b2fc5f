package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort int
	AppEnv     string // "development" or "production"
	CORSOrigin string

	JWTSecret       string
	SessionLifetime time.Duration

	BcryptCost        int
	MinPasswordLength int

	AuditSweepSchedule string // standard cron expression or @hourly/@daily
	AuditRetention     time.Duration
}

const devSecret = "dev-insecure-secret"

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	cost, err := getEnvInt("BCRYPT_COST", 10)
	if err != nil {
		return nil, err
	}

	minPassword, err := getEnvInt("MIN_PASSWORD_LENGTH", 6)
	if err != nil {
		return nil, err
	}

	lifetime, err := getEnvDuration("SESSION_LIFETIME", 30*24*time.Hour)
	if err != nil {
		return nil, err
	}

	retention, err := getEnvDuration("AUDIT_RETENTION", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:         port,
		AppEnv:             getEnv("APP_ENV", "development"),
		CORSOrigin:         getEnv("CORS_ORIGIN", "http://localhost:3000"),
		JWTSecret:          getEnv("JWT_SECRET", devSecret),
		SessionLifetime:    lifetime,
		BcryptCost:         cost,
		MinPasswordLength:  minPassword,
		AuditSweepSchedule: getEnv("AUDIT_SWEEP_SCHEDULE", "@hourly"),
		AuditRetention:     retention,
	}

	// A guessable signing key in production makes every session forgeable.
	if cfg.AppEnv == "production" && cfg.JWTSecret == devSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set when APP_ENV=production")
	}

	return cfg, nil
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
