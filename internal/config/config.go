package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	applog "ledger/internal/log"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendPebble = "pebble"
)

var validBackends = []string{BackendMemory, BackendFile, BackendSQLite, BackendPebble}

type Config struct {
	// Storage
	Backend    string
	DataDir    string
	StorageKey string

	// SQLite
	SQLiteDBPath string

	// Pebble
	PebbleDir     string
	PebbleCacheMB int

	// AMQP change events (disabled when AMQPURL is empty)
	AMQPURL            string
	AMQPExchange       string
	AMQPQueue          string
	AMQPPublishTimeout time.Duration
	AMQPDialAttempts   int

	// Presentation
	LogLevel string
	Currency string
}

// LoadEnvFile loads a .env file for local development. A missing default
// .env is not an error; an explicitly requested file must exist.
func LoadEnvFile(path string) error {
	if path == "" {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func Load() *Config {
	return &Config{
		Backend:    getEnv("LEDGER_BACKEND", BackendFile),
		DataDir:    getEnv("LEDGER_DATA_DIR", "./data"),
		StorageKey: getEnv("LEDGER_STORAGE_KEY", "expense_tracker_transactions_v1"),

		SQLiteDBPath:  getEnv("SQLITE_DB_PATH", "./data/ledger.db"),
		PebbleDir:     getEnv("PEBBLE_DIR", "./data/pebble"),
		PebbleCacheMB: getEnvInt("PEBBLE_CACHE_MB", 8),

		AMQPURL:            getEnv("AMQP_URL", ""),
		AMQPExchange:       getEnv("AMQP_EXCHANGE", "ledger"),
		AMQPQueue:          getEnv("AMQP_QUEUE", "ledger_events"),
		AMQPPublishTimeout: getEnvDuration("AMQP_PUBLISH_TIMEOUT", 5*time.Second),
		AMQPDialAttempts:   getEnvInt("AMQP_DIAL_ATTEMPTS", 1),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		Currency: getEnv("LEDGER_CURRENCY", "₹"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	isValidBackend := false
	for _, backend := range validBackends {
		if c.Backend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, validBackends))
	}

	switch c.Backend {
	case BackendFile:
		if c.DataDir == "" {
			errors = append(errors, "data directory cannot be empty when using file backend")
		}
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		}
	case BackendPebble:
		if c.PebbleDir == "" {
			errors = append(errors, "Pebble directory cannot be empty when using pebble backend")
		}
		if c.PebbleCacheMB < 1 {
			errors = append(errors, fmt.Sprintf("invalid pebble cache size %d: must be at least 1 MB", c.PebbleCacheMB))
		}
	}

	if strings.TrimSpace(c.StorageKey) == "" {
		errors = append(errors, "storage key cannot be empty")
	}

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPPublishTimeout <= 0 {
			errors = append(errors, fmt.Sprintf("invalid AMQP publish timeout %v: must be positive", c.AMQPPublishTimeout))
		}
		if c.AMQPDialAttempts < 1 {
			errors = append(errors, fmt.Sprintf("invalid AMQP dial attempts %d: must be at least 1", c.AMQPDialAttempts))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// AMQPEnabled reports whether change events should be published
func (c *Config) AMQPEnabled() bool {
	return c.AMQPURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
