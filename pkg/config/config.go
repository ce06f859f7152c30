package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// All environment variables are read here and nowhere else.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Upstream market data provider
	Provider ProviderConfig

	// On-disk financial data cache
	Cache CacheConfig

	// Screening engine
	Screener ScreenerConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// ProviderConfig holds settings for the TCBS public data API.
type ProviderConfig struct {
	BaseURL string
	Timeout time.Duration

	// Requests per second allowed against the provider. The public API
	// throttles aggressively, so stay polite.
	RateLimit float64
	Burst     int

	// Retry policy applied by the fetch gateway.
	MaxRetries  int
	BackoffStep time.Duration
	JitterFloor time.Duration
	JitterCeil  time.Duration
}

// CacheConfig holds settings for the file-backed financial snapshot cache.
type CacheConfig struct {
	Dir string
	TTL time.Duration
}

// ScreenerConfig holds settings for the screening orchestrator.
type ScreenerConfig struct {
	Workers      int
	DefaultLimit int
	LookbackDays int
}

// Load reads configuration from environment variables.
// This is the only function that calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		Provider: ProviderConfig{
			BaseURL:     getEnv("TCBS_BASE_URL", "https://apipubaws.tcbs.com.vn"),
			Timeout:     getEnvAsDuration("TCBS_TIMEOUT", "20s"),
			RateLimit:   getEnvAsFloat("TCBS_RATE_LIMIT", 5.0),
			Burst:       getEnvAsInt("TCBS_RATE_BURST", 2),
			MaxRetries:  getEnvAsInt("TCBS_MAX_RETRIES", 3),
			BackoffStep: getEnvAsDuration("TCBS_BACKOFF_STEP", "500ms"),
			JitterFloor: getEnvAsDuration("TCBS_JITTER_FLOOR", "50ms"),
			JitterCeil:  getEnvAsDuration("TCBS_JITTER_CEIL", "250ms"),
		},

		Cache: CacheConfig{
			Dir: getEnv("CACHE_DIR", filepath.Join(os.TempDir(), "vnscreener-cache")),
			TTL: getEnvAsDuration("CACHE_TTL", "6h"),
		},

		Screener: ScreenerConfig{
			Workers:      getEnvAsInt("SCREENER_WORKERS", 6),
			DefaultLimit: getEnvAsInt("SCREENER_DEFAULT_LIMIT", 20),
			LookbackDays: getEnvAsInt("SCREENER_LOOKBACK_DAYS", 365),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Provider.BaseURL == "" {
		return fmt.Errorf("TCBS_BASE_URL is required")
	}

	if c.Screener.Workers <= 0 {
		return fmt.Errorf("SCREENER_WORKERS must be positive")
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	if c.Provider.JitterCeil < c.Provider.JitterFloor {
		return fmt.Errorf("TCBS_JITTER_CEIL must not be below TCBS_JITTER_FLOOR")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
