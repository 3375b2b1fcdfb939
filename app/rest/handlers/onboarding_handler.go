package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"vocablo/app/domain"
	"vocablo/app/port"
	"vocablo/app/rest/middleware"
)

const (
	msgInvalidLevel = "Selecciona un nivel válido"
	msgInvalidTopic = "Escribe un tema (máximo 100 caracteres)"
)

// OnboardingHandler records the level and topic selections.
type OnboardingHandler struct {
	preferences port.PreferencesCache
	logger      *slog.Logger
}

func NewOnboardingHandler(preferences port.PreferencesCache, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		preferences: preferences,
		logger:      logger.With("component", "onboarding_handler"),
	}
}

// ChooseLevel handles POST /onboarding/level.
func (h *OnboardingHandler) ChooseLevel(c echo.Context) error {
	level := domain.ProficiencyLevel(c.FormValue("level"))
	if !level.IsValid() {
		return redirectWithError(c, "/onboarding/level", msgInvalidLevel)
	}

	user := middleware.CurrentUser(c)
	if err := h.preferences.SetLevel(c.Request().Context(), user.ID, level); err != nil {
		h.logger.Warn("failed to record level selection", "level", level, "error", err)
		return redirectWithError(c, "/onboarding/level", msgInternalError)
	}

	return c.Redirect(http.StatusFound, "/onboarding/topic")
}

// ChooseTopic handles POST /onboarding/topic. A valid topic completes
// onboarding in the same request.
func (h *OnboardingHandler) ChooseTopic(c echo.Context) error {
	topic := c.FormValue("topic")
	if topic == "" || len(topic) > 100 {
		return redirectWithError(c, "/onboarding/topic", msgInvalidTopic)
	}

	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)
	if err := h.preferences.SetTopic(ctx, user.ID, topic); err != nil {
		h.logger.Warn("failed to record topic selection", "error", err)
		return redirectWithError(c, "/onboarding/topic", msgInvalidTopic)
	}

	if err := h.preferences.CompleteOnboarding(ctx, user.ID); err != nil {
		// Level was skipped; send the user back to pick one.
		return redirectWithError(c, "/onboarding/level", msgInvalidLevel)
	}

	return c.Redirect(http.StatusFound, "/profile")
}
