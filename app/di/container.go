package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"vocablo/app/config"
	"vocablo/app/driver/memory"
	"vocablo/app/driver/postgres"
	"vocablo/app/driver/redis"
	"vocablo/app/driver/supabase"
	"vocablo/app/gateway"
	"vocablo/app/port"
	"vocablo/app/rest"
	"vocablo/app/rest/cookies"
	"vocablo/app/rest/handlers"
	"vocablo/app/usecase"
)

// Container wires the full dependency stack.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB             *postgres.DB
	SupabaseClient *supabase.Client
	Provider       *supabase.Adapter
	RedisStore     *redis.Store

	// Gateways and repositories
	AuthGateway port.AuthGateway
	Profiles    port.ProfileRepository
	Store       port.KVStore

	// Usecases
	AuthUsecase port.AuthUsecase
	Preferences port.PreferencesCache
}

// NewContainer creates and initializes the dependency container.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.SupabaseClient, err = supabase.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth provider client: %w", err)
	}
	container.Provider = supabase.NewAdapter(container.SupabaseClient, logger)
	if cfg.EnableAutoRefresh {
		container.Provider.StartAutoRefresh()
	}

	// The redis store is optional; without an address the in-memory store
	// backs the caches.
	if cfg.RedisAddr != "" {
		container.RedisStore, err = redis.NewStore(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis store: %w", err)
		}
		container.Store = container.RedisStore
	} else {
		logger.Info("no redis address configured, using in-memory store")
		container.Store = memory.NewStore()
	}

	container.Profiles = gateway.NewUserGateway(
		postgres.NewProfileRepository(container.DB.Pool(), logger),
		logger,
	)
	container.AuthGateway = gateway.NewAuthGateway(container.Provider, logger)

	container.AuthUsecase = usecase.NewAuthUseCase(container.AuthGateway, container.Profiles, logger)
	container.Preferences = usecase.NewPreferencesUseCase(container.Store, logger)

	logger.Info("container initialized")
	return container, nil
}

// CreateRouter creates the fully configured Echo router.
func (c *Container) CreateRouter() (*echo.Echo, error) {
	checkers := map[string]handlers.HealthChecker{
		"database":      c.DB,
		"auth_provider": c.SupabaseClient,
	}
	if c.RedisStore != nil {
		checkers["redis"] = c.RedisStore
	}

	return rest.NewRouter(rest.RouterConfig{
		Logger:      c.Logger,
		AuthUsecase: c.AuthUsecase,
		Preferences: c.Preferences,
		Cookies:     cookies.NewManager(c.Config.CookieMaxAge, c.Config.IsProduction()),
		Checkers:    checkers,
		EnableDebug: c.Config.LogLevel == "debug",
	})
}

// Close releases every held resource.
func (c *Container) Close() {
	if c.Provider != nil {
		c.Provider.Close()
	}
	if c.RedisStore != nil {
		if err := c.RedisStore.Close(); err != nil {
			c.Logger.Warn("failed to close redis store", "error", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
