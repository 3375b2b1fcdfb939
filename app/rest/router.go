package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"vocablo/app/port"
	"vocablo/app/rest/cookies"
	"vocablo/app/rest/handlers"
	custommw "vocablo/app/rest/middleware"
)

// RouterConfig holds everything the router needs.
type RouterConfig struct {
	Logger      *slog.Logger
	AuthUsecase port.AuthUsecase
	Preferences port.PreferencesCache
	Cookies     *cookies.Manager
	Checkers    map[string]handlers.HealthChecker
	EnableDebug bool
}

// NewRouter creates and configures the Echo router.
func NewRouter(config RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Debug = config.EnableDebug

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Cookies, config.Logger)
	pageHandler := handlers.NewPageHandler(config.Preferences, config.Logger)
	onboardingHandler := handlers.NewOnboardingHandler(config.Preferences, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Checkers, config.Logger)

	authMiddleware := custommw.NewAuthMiddleware(config.AuthUsecase, config.Cookies, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(echomw.LoggerWithConfig(echomw.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// Health endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/ready", healthHandler.ReadinessCheck)
	e.GET("/live", healthHandler.LivenessCheck)

	// Public pages
	e.GET("/", pageHandler.Home, authMiddleware.OptionalAuth())
	e.GET("/signin", pageHandler.SignInPage)
	e.GET("/register", pageHandler.RegisterPage)

	// Auth form endpoints
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/signin", authHandler.SignIn)
	auth.POST("/signout", authHandler.SignOut)
	// Plain link fallback for clients without JS.
	auth.GET("/signout", authHandler.SignOut)

	// Pages behind authentication
	private := e.Group("")
	private.Use(authMiddleware.RequireAuth())
	private.GET("/onboarding/level", pageHandler.OnboardingLevelPage)
	private.GET("/onboarding/topic", pageHandler.OnboardingTopicPage)
	private.GET("/profile", pageHandler.ProfilePage)
	private.POST("/onboarding/level", onboardingHandler.ChooseLevel)
	private.POST("/onboarding/topic", onboardingHandler.ChooseTopic)

	return e, nil
}
