package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"vocablo/app/domain"
	"vocablo/app/port"
	"vocablo/app/rest/middleware"
)

// PageHandler renders the server-side pages. Flash text arrives through the
// query string set by the form handlers' redirects.
type PageHandler struct {
	preferences port.PreferencesCache
	logger      *slog.Logger
}

func NewPageHandler(preferences port.PreferencesCache, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		preferences: preferences,
		logger:      logger.With("component", "page_handler"),
	}
}

type levelOption struct {
	Value    domain.ProficiencyLevel
	Label    string
	Selected bool
}

var levelLabels = map[domain.ProficiencyLevel]string{
	domain.LevelBeginner:     "Principiante",
	domain.LevelElementary:   "Elemental",
	domain.LevelIntermediate: "Intermedio",
	domain.LevelAdvanced:     "Avanzado",
}

// Home handles GET /. Authenticated users land on their profile.
func (h *PageHandler) Home(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/profile")
	}
	return c.Redirect(http.StatusFound, "/signin")
}

// SignInPage handles GET /signin.
func (h *PageHandler) SignInPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signin.html", map[string]interface{}{
		"Error":   c.QueryParam("error"),
		"Message": c.QueryParam("message"),
	})
}

// RegisterPage handles GET /register.
func (h *PageHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", map[string]interface{}{
		"Error": c.QueryParam("error"),
	})
}

// OnboardingLevelPage handles GET /onboarding/level.
func (h *PageHandler) OnboardingLevelPage(c echo.Context) error {
	user := middleware.CurrentUser(c)

	current := h.preferences.Current(c.Request().Context(), user.ID)
	options := make([]levelOption, 0, len(domain.ValidLevels))
	for _, level := range domain.ValidLevels {
		options = append(options, levelOption{
			Value:    level,
			Label:    levelLabels[level],
			Selected: current != nil && current.Level == level,
		})
	}

	return c.Render(http.StatusOK, "onboarding_level.html", map[string]interface{}{
		"User":   user,
		"Levels": options,
		"Error":  c.QueryParam("error"),
	})
}

// OnboardingTopicPage handles GET /onboarding/topic.
func (h *PageHandler) OnboardingTopicPage(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var topic string
	if current := h.preferences.Current(c.Request().Context(), user.ID); current != nil {
		topic = current.Topic
	}

	return c.Render(http.StatusOK, "onboarding_topic.html", map[string]interface{}{
		"Topic": topic,
		"Error": c.QueryParam("error"),
	})
}

// ProfilePage handles GET /profile.
func (h *PageHandler) ProfilePage(c echo.Context) error {
	user := middleware.CurrentUser(c)
	prefs := h.preferences.Current(c.Request().Context(), user.ID)

	return c.Render(http.StatusOK, "profile.html", map[string]interface{}{
		"User":           user,
		"Preferences":    prefs,
		"OnboardingDone": prefs != nil && prefs.CompletedOnboarding,
	})
}
