// Package config loads CLI configuration from flags, environment variables and a .env file.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Store  StoreConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level  string
	Format string // json, pretty, or empty for auto
}

// StoreConfig selects and addresses the persistence backend.
type StoreConfig struct {
	Backend   string
	DBPath    string
	RedisAddr string
	Key       string
}

// Flags carries command-line overrides. Empty fields fall through to the
// environment, then the .env file, then defaults.
type Flags struct {
	Env       string
	LogLevel  string
	LogFormat string
	Store     string
	DBPath    string
	RedisAddr string
	StoreKey  string
	EnvFile   string
}

// Load builds a Config with precedence flag > env var > .env file > default.
func Load(flags Flags) (*Config, error) {
	envFile := flags.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := loadEnvFile(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(flags.Env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level:  getConfigValue(flags.LogLevel, "LOG_LEVEL", "info"),
			Format: getConfigValue(flags.LogFormat, "LOG_FORMAT", ""),
		},
		Store: StoreConfig{
			Backend:   getConfigValue(flags.Store, "LIBRARY_STORE", StoreSQLite),
			DBPath:    getConfigValue(flags.DBPath, "LIBRARY_DB_PATH", "library.db"),
			RedisAddr: getConfigValue(flags.RedisAddr, "REDIS_ADDR", "localhost:6379"),
			Key:       getConfigValue(flags.StoreKey, "LIBRARY_STORE_KEY", "LIB_STORE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that all config values are present and valid.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %q (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	switch c.Logger.Format {
	case "", "json", "pretty":
	default:
		return fmt.Errorf("invalid log format: %s (must be json or pretty)", c.Logger.Format)
	}

	switch c.Store.Backend {
	case StoreSQLite:
		if c.Store.DBPath == "" {
			return errors.New("LIBRARY_DB_PATH cannot be empty for the sqlite store")
		}
	case StoreRedis:
		if c.Store.RedisAddr == "" {
			return errors.New("REDIS_ADDR cannot be empty for the redis store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("invalid store: %s (must be sqlite, redis, or memory)", c.Store.Backend)
	}

	if c.Store.Key == "" {
		return errors.New("LIBRARY_STORE_KEY cannot be empty")
	}
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- config file path comes from the user
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		// Real environment variables win over the file.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
