// Package config resolves process-wide configuration once at startup.
// All values are environment-driven, with a .env file honored when present.
// Core packages never read the environment themselves; they receive values
// from here as parameters.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults mirror the deployment the scraper was built for.
const (
	defaultBaseURL      = "https://fragment.dev/docs"
	defaultBucket       = "fragment-docs-data"
	defaultObjectPrefix = "scraped_docs"
	defaultHashTable    = "fragment_docs_hashes"
	defaultHashDBPath   = "./docscrape.db"
	defaultListenAddr   = ":8000"
	defaultFetchTimeout = 15 * time.Second
	defaultLogLevel     = "info"
)

// Config holds all application configuration.
type Config struct {
	BaseURL      string
	Bucket       string
	ObjectPrefix string
	HashTable    string
	HashDBPath   string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOSecure    bool

	FetchTimeout time.Duration
	ListenAddr   string
	LogLevel     string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if one exists.
func Load() (Config, error) {
	// Ignore a missing .env; system environment still applies.
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:        getEnv("DOCS_BASE_URL", defaultBaseURL),
		Bucket:         getEnv("BLOB_BUCKET", defaultBucket),
		ObjectPrefix:   getEnv("BLOB_OBJECT_PREFIX", defaultObjectPrefix),
		HashTable:      getEnv("HASH_TABLE", defaultHashTable),
		HashDBPath:     getEnv("HASH_DB_PATH", defaultHashDBPath),
		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinIOSecure:    getEnvBool("MINIO_SECURE", false),
		ListenAddr:     getEnv("LISTEN_ADDR", defaultListenAddr),
		LogLevel:       getEnv("LOG_LEVEL", defaultLogLevel),
	}

	timeout, err := getEnvDuration("FETCH_TIMEOUT", defaultFetchTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.FetchTimeout = timeout

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.MinIOEndpoint == "" {
		return fmt.Errorf("MINIO_ENDPOINT is required")
	}
	if c.Bucket == "" {
		return fmt.Errorf("BLOB_BUCKET must not be empty")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", c.FetchTimeout)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return parsed, nil
}
