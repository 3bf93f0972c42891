package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// App
	Env string // dev / staging / prod
	// HTTP
	HTTPAddr string
	// Auth / Security
	JWTSecret      string
	AccessTokenTTL time.Duration
	BcryptCost     int

	// Infrastructure
	DatabaseURL string
	RedisAddr   string // optional; listing cache disabled when empty
	DBDebug     bool

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadDotenv loads an optional .env file. Safe to call multiple times.
func LoadDotenv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
	}

	// required values
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required env var: JWT_SECRET")
	}

	// The connection string must use TLS; enforce sslmode when the caller
	// did not set one explicitly.
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("missing required env var: DATABASE_URL")
	}
	if !strings.Contains(cfg.DatabaseURL, "sslmode=") {
		sep := "?"
		if strings.Contains(cfg.DatabaseURL, "?") {
			sep = "&"
		}
		cfg.DatabaseURL += sep + "sslmode=require"
	}

	// optional with defaults
	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.DBDebug = getEnv("DB_DEBUG", "") == "true"

	ttl, err := getDuration("ACCESS_TOKEN_TTL", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.AccessTokenTTL = ttl

	cost, err := getInt("BCRYPT_COST", 10)
	if err != nil {
		return nil, err
	}
	if cost < 4 || cost > 31 {
		return nil, fmt.Errorf("BCRYPT_COST out of range: %d", cost)
	}
	cfg.BcryptCost = cost

	rt, err := getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPReadTimeout = rt

	wt, err := getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPWriteTimeout = wt

	it, err := getDuration("HTTP_IDLE_TIMEOUT", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.HTTPIdleTimeout = it

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %q: %w", key, v, err)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q: %w", key, v, err)
	}
	return d, nil
}
