package integration_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"vocablo/app/config"
	"vocablo/app/driver/postgres"
	"vocablo/app/driver/supabase"
	"vocablo/app/utils/logger"
)

const (
	// Test environment configuration
	TestPostgresHost     = "localhost"
	TestPostgresPort     = "5433"
	TestPostgresDB       = "vocablo_test"
	TestPostgresUser     = "vocablo_test"
	TestPostgresPassword = "test_password"
	TestPostgresSSLMode  = "disable"

	// Local GoTrue instance (supabase start exposes it on 54321)
	TestSupabaseURL        = "http://localhost:54321"
	TestSupabaseAnonKey    = "test-anon-key"
	TestSupabaseServiceKey = "test-service-key"
)

// TestConfig creates a configuration for integration tests.
func TestConfig() *config.Config {
	return &config.Config{
		Port:        "8080",
		Host:        "0.0.0.0",
		LogLevel:    "debug",
		Environment: "development",

		DatabaseURL: fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s",
			TestPostgresUser, TestPostgresPassword,
			TestPostgresHost, TestPostgresPort,
			TestPostgresDB, TestPostgresSSLMode,
		),
		DatabaseHost:     TestPostgresHost,
		DatabasePort:     TestPostgresPort,
		DatabaseName:     TestPostgresDB,
		DatabaseUser:     TestPostgresUser,
		DatabasePassword: TestPostgresPassword,
		DatabaseSSLMode:  TestPostgresSSLMode,

		SupabaseURL:        TestSupabaseURL,
		SupabaseAnonKey:    TestSupabaseAnonKey,
		SupabaseServiceKey: TestSupabaseServiceKey,

		CookieMaxAge:      168 * time.Hour,
		SessionStorageTTL: 720 * time.Hour,
		EnableAutoRefresh: false,
	}
}

// TestDatabaseConnection creates a database connection for integration tests.
func TestDatabaseConnection() (*pgxpool.Pool, error) {
	cfg := TestConfig()

	testLogger, err := logger.New("debug")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := postgres.NewConnection(cfg, testLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	return db.Pool(), nil
}

// TestProviderClient creates an auth provider client for integration tests.
func TestProviderClient() (*supabase.Client, error) {
	testLogger, err := logger.New("debug")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return supabase.NewClient(TestConfig(), testLogger)
}

// WaitForService polls a health check until it passes or the timeout expires.
func WaitForService(ctx context.Context, healthCheck func(context.Context) error, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	var lastErr error

	for time.Now().Before(deadline) {
		if lastErr = healthCheck(ctx); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}

	return fmt.Errorf("service not ready after %v: %w", timeout, lastErr)
}

// WaitForDatabase waits for the test database to be ready.
func WaitForDatabase(ctx context.Context) error {
	return WaitForService(ctx, func(ctx context.Context) error {
		pool, err := TestDatabaseConnection()
		if err != nil {
			return err
		}
		defer pool.Close()
		return pool.Ping(ctx)
	}, 30*time.Second)
}

// WaitForProvider waits for the auth provider to be ready.
func WaitForProvider(ctx context.Context) error {
	return WaitForService(ctx, func(ctx context.Context) error {
		client, err := TestProviderClient()
		if err != nil {
			return err
		}
		return client.HealthCheck(ctx)
	}, 30*time.Second)
}
