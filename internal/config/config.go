package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the whole gateway configuration.
type Config struct {
	Port string // server port (8080)

	OrderAPIBaseURL string        // storefront order API base URL
	OrderAPIToken   string        // service token, fallback when no operator token is forwarded
	OrderAPITimeout time.Duration // outbound request timeout
	DefaultPageSize int           // list page size when the UI sends none

	JWTSecret string // HS256 secret shared with the auth service

	GoEnv string // dev/prod
	FEURL string // operator UI origin, for CORS
}

// Load reads the environment. Missing required vars fail fast.
func Load() (Config, error) {
	timeoutSec, err := atoiDefault("ORDER_API_TIMEOUT_SECONDS", 15)
	if err != nil {
		return Config{}, err
	}
	pageSize, err := atoiDefault("DEFAULT_PAGE_SIZE", 10)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		OrderAPIBaseURL: os.Getenv("ORDER_API_BASE_URL"),
		OrderAPIToken:   os.Getenv("ORDER_API_TOKEN"),
		OrderAPITimeout: time.Duration(timeoutSec) * time.Second,
		DefaultPageSize: pageSize,

		JWTSecret: os.Getenv("JWT_SECRET"),

		GoEnv: os.Getenv("GO_ENV"),
		FEURL: os.Getenv("FE_URL"),
	}

	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.OrderAPIBaseURL == "" {
		return Config{}, fmt.Errorf("ORDER_API_BASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.FEURL == "" {
		return Config{}, fmt.Errorf("FE_URL is required")
	}
	if cfg.DefaultPageSize < 1 || cfg.DefaultPageSize > 100 {
		return Config{}, fmt.Errorf("DEFAULT_PAGE_SIZE must be 1..100")
	}

	return cfg, nil
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
