package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the vocablo web service.
type Config struct {
	// Server
	Port        string `yaml:"port"`
	Host        string `yaml:"host"`
	LogLevel    string `yaml:"log_level"`
	Environment string `yaml:"environment"`

	// Database (application-owned profile rows)
	DatabaseURL      string `yaml:"database_url"`
	DatabaseHost     string `yaml:"db_host"`
	DatabasePort     string `yaml:"db_port"`
	DatabaseName     string `yaml:"db_name"`
	DatabaseUser     string `yaml:"db_user"`
	DatabasePassword string `yaml:"db_password"`
	DatabaseSSLMode  string `yaml:"db_ssl_mode"`

	// Remote auth provider
	SupabaseURL        string `yaml:"supabase_url"`
	SupabaseAnonKey    string `yaml:"supabase_anon_key"`
	SupabaseServiceKey string `yaml:"supabase_service_key"`

	// Local key-value store; empty address selects the in-memory store
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`

	// Sessions
	CookieMaxAge      time.Duration `yaml:"cookie_max_age"`
	EnableAutoRefresh bool          `yaml:"enable_auto_refresh"`
	SessionStorageTTL time.Duration `yaml:"session_storage_ttl"`
}

// Load reads configuration from the environment, optionally overlaid on a
// YAML file named by CONFIG_FILE. Environment variables win over file values.
func Load() (*Config, error) {
	config := &Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, err
		}
	}

	// Server configuration
	config.Port = envOrKeep(config.Port, "PORT", "8080")
	config.Host = envOrKeep(config.Host, "HOST", "0.0.0.0")
	config.LogLevel = envOrKeep(config.LogLevel, "LOG_LEVEL", "info")
	config.Environment = envOrKeep(config.Environment, "GO_ENV", "development")

	// Database configuration
	config.DatabaseURL = envOrKeep(config.DatabaseURL, "DATABASE_URL", "")
	config.DatabaseHost = envOrKeep(config.DatabaseHost, "DB_HOST", "localhost")
	config.DatabasePort = envOrKeep(config.DatabasePort, "DB_PORT", "5432")
	config.DatabaseName = envOrKeep(config.DatabaseName, "DB_NAME", "vocablo")
	config.DatabaseUser = envOrKeep(config.DatabaseUser, "DB_USER", "vocablo")
	config.DatabasePassword = envOrKeep(config.DatabasePassword, "DB_PASSWORD", "")
	config.DatabaseSSLMode = envOrKeep(config.DatabaseSSLMode, "DB_SSL_MODE", "disable")

	// Provider configuration
	config.SupabaseURL = envOrKeep(config.SupabaseURL, "SUPABASE_URL", "")
	if config.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	config.SupabaseAnonKey = envOrKeep(config.SupabaseAnonKey, "SUPABASE_ANON_KEY", "")
	if config.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY is required")
	}
	config.SupabaseServiceKey = envOrKeep(config.SupabaseServiceKey, "SUPABASE_SERVICE_KEY", "")

	// Store configuration
	config.RedisAddr = envOrKeep(config.RedisAddr, "REDIS_ADDR", "")
	config.RedisPassword = envOrKeep(config.RedisPassword, "REDIS_PASSWORD", "")

	// Session configuration
	var err error
	if config.CookieMaxAge == 0 {
		config.CookieMaxAge, err = time.ParseDuration(envOrKeep("", "COOKIE_MAX_AGE", "168h"))
		if err != nil {
			return nil, fmt.Errorf("invalid COOKIE_MAX_AGE: %w", err)
		}
	}
	if config.SessionStorageTTL == 0 {
		config.SessionStorageTTL, err = time.ParseDuration(envOrKeep("", "SESSION_STORAGE_TTL", "720h"))
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_STORAGE_TTL: %w", err)
		}
	}
	config.EnableAutoRefresh = boolEnv("ENABLE_AUTO_REFRESH", true)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFile overlays values from a YAML configuration file.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.CookieMaxAge < time.Minute {
		return fmt.Errorf("cookie max age must be at least 1 minute, got: %v", c.CookieMaxAge)
	}

	return nil
}

// IsProduction reports whether the service runs with production hardening
// (secure, http-only cookies).
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Environment)
	return env == "production" || env == "prod"
}

// DSN builds the Postgres connection string, preferring DATABASE_URL.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// Helper functions

func envOrKeep(current, key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if current != "" {
		return current
	}
	return defaultValue
}

func boolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
