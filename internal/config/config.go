// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings of the client and demo stub.
type Config struct {
	APIBaseURL   string
	Token        string
	PollInterval time.Duration
	HTTPTimeout  time.Duration
	StubPort     string
	DatabasePath string
	Logger       LoggerConfig
}

// LoggerConfig mirrors logging.Config without importing it here.
type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads the environment (after best-effort .env loading) and applies
// defaults for anything unset.
func Load() Config {
	// Missing .env is fine; real environments set vars directly.
	_ = godotenv.Load()

	return Config{
		APIBaseURL:   getEnv("FAMILYBOARD_API_URL", "http://localhost:8008"),
		Token:        getEnv("FAMILYBOARD_TOKEN", ""),
		PollInterval: getDuration("FAMILYBOARD_POLL_INTERVAL", 30*time.Second),
		HTTPTimeout:  getDuration("FAMILYBOARD_HTTP_TIMEOUT", 10*time.Second),
		StubPort:     getEnv("FAMILYBOARD_STUB_PORT", "8008"),
		DatabasePath: getEnv("FAMILYBOARD_DB_PATH", "familyboard.db"),
		Logger: LoggerConfig{
			Level:    getEnv("FAMILYBOARD_LOG_LEVEL", "info"),
			Encoding: getEnv("FAMILYBOARD_LOG_ENCODING", "json"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
