package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	CORS    CORSConfig
	Latency latency.Simulator
}

// AppConfig holds application configuration
type AppConfig struct {
	Port         int
	Env          string
	LogLevel     string
	SeedDemoData bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from the environment, after applying a .env
// file when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	seed, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DEMO_DATA: %w", err)
	}

	config.App = AppConfig{
		Port:         appPort,
		Env:          getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		SeedDemoData: seed,
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	// Simulated backend latency
	defaults := latency.Default()
	if config.Latency.Fetch, err = getEnvDuration("LATENCY_FETCH", defaults.Fetch); err != nil {
		return nil, err
	}
	if config.Latency.List, err = getEnvDuration("LATENCY_LIST", defaults.List); err != nil {
		return nil, err
	}
	if config.Latency.Mutation, err = getEnvDuration("LATENCY_MUTATION", defaults.Mutation); err != nil {
		return nil, err
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port < 1 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Latency.Fetch < 0 || c.Latency.List < 0 || c.Latency.Mutation < 0 {
		return fmt.Errorf("LATENCY_* must not be negative")
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS is required")
	}
	return nil
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return level, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
