package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the application configuration.
type Config struct {
	ServerPort      int
	DatabasePath    string
	JWTSecret       string
	SessionTokenTTL time.Duration
	RefreshTokenTTL time.Duration
	BcryptCost      int
}

// Load loads configuration from the environment (and an optional .env file)
// and validates it. JWT_SECRET has no default; startup fails without it.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	sessionTTL, err := getDuration("SESSION_TOKEN_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshTTL, err := getDuration("REFRESH_TOKEN_TTL", 60*time.Second)
	if err != nil {
		return nil, err
	}
	if sessionTTL <= 0 || refreshTTL <= 0 {
		return nil, fmt.Errorf("token TTLs must be positive")
	}
	// The refresh token is a short-lived, lower-trust credential; it must
	// never outlive a session token.
	if refreshTTL >= sessionTTL {
		return nil, fmt.Errorf("REFRESH_TOKEN_TTL (%s) must be shorter than SESSION_TOKEN_TTL (%s)", refreshTTL, sessionTTL)
	}

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST %d outside valid range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &Config{
		ServerPort:      port,
		DatabasePath:    getEnv("DATABASE_PATH", "./accounts.db"),
		JWTSecret:       secret,
		SessionTokenTTL: sessionTTL,
		RefreshTokenTTL: refreshTTL,
		BcryptCost:      cost,
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
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
