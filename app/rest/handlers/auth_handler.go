package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"vocablo/app/domain"
	"vocablo/app/port"
	"vocablo/app/rest/cookies"
)

// User-facing messages, carried to the page through the redirect query
// string. The UI is Spanish-language.
const (
	msgPasswordMismatch   = "Las contraseñas no coinciden"
	msgInvalidCredentials = "Credenciales inválidas. Verifica tu email y contraseña."
	msgEmailNotConfirmed  = "Por favor, verifica tu email antes de iniciar sesión."
	msgUserAlreadyExists  = "Este email ya está registrado. Inicia sesión o usa otro email."
	msgRateLimited        = "Demasiados intentos. Espera unos minutos antes de intentar nuevamente."
	msgProfileLoadFailed  = "Error al obtener los datos del usuario"
	msgInternalError      = "Error interno del servidor"
	msgRegistrationOK     = "Registro exitoso. Por favor, verifica tu email antes de iniciar sesión."
	msgInvalidForm        = "Datos del formulario inválidos"
)

// AuthHandler handles the authentication form posts. Every outcome is a 302
// redirect; errors travel as a query parameter the target page renders.
type AuthHandler struct {
	authUsecase port.AuthUsecase
	cookies     *cookies.Manager
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase port.AuthUsecase, cookies *cookies.Manager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		cookies:     cookies,
		logger:      logger.With("component", "auth_handler"),
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var form domain.Registration
	if err := c.Bind(&form); err != nil {
		return redirectWithError(c, "/register", msgInvalidForm)
	}

	// Checked before anything leaves the server, so a mismatch never causes
	// a provider round trip.
	if form.Password != form.ConfirmPassword {
		return redirectWithError(c, "/register", msgPasswordMismatch)
	}

	result, err := h.authUsecase.Register(c.Request().Context(), form)
	if err != nil {
		h.logger.Warn("registration failed", "email", form.Email, "error", err)
		return redirectWithError(c, "/register", registerMessage(err))
	}

	if result.PendingConfirmation {
		return redirectWithMessage(c, "/signin", msgRegistrationOK)
	}

	h.cookies.SetTokens(c, result.Session)
	return c.Redirect(http.StatusFound, "/onboarding/level")
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var form domain.Credentials
	if err := c.Bind(&form); err != nil {
		return redirectWithError(c, "/signin", msgInvalidForm)
	}

	session, _, err := h.authUsecase.SignIn(c.Request().Context(), form)
	if err != nil {
		h.logger.Warn("sign in failed", "email", form.Email, "error", err)
		return redirectWithError(c, "/signin", signInMessage(err))
	}

	h.cookies.SetTokens(c, &session.Session)
	return c.Redirect(http.StatusFound, "/onboarding/level")
}

// SignOut handles POST and GET /auth/signout. The provider call is
// best-effort; the cookies are cleared no matter what.
func (h *AuthHandler) SignOut(c echo.Context) error {
	accessToken, _ := h.cookies.GetTokens(c)

	if err := h.authUsecase.SignOut(c.Request().Context(), accessToken); err != nil {
		h.logger.Warn("provider sign out failed, clearing cookies anyway", "error", err)
	}

	h.cookies.ClearTokens(c)
	return c.Redirect(http.StatusFound, "/signin")
}

// signInMessage maps a sign-in failure to its user-facing Spanish message.
func signInMessage(err error) string {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return msgInvalidCredentials
	}

	var rErr *domain.RemoteAuthError
	if errors.As(err, &rErr) {
		switch rErr.Code {
		case domain.ErrCodeInvalidCredentials:
			return msgInvalidCredentials
		case domain.ErrCodeEmailNotConfirmed:
			return msgEmailNotConfirmed
		case domain.ErrCodeRateLimit:
			return msgRateLimited
		}
	}

	var pErr *domain.ProfileStoreError
	if errors.As(err, &pErr) {
		return msgProfileLoadFailed
	}

	return msgInternalError
}

// registerMessage maps a registration failure to its user-facing message.
func registerMessage(err error) string {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		// The validator reports json-tag field names.
		if vErr.Field == "confirmPassword" {
			return msgPasswordMismatch
		}
		return msgInvalidForm
	}

	var rErr *domain.RemoteAuthError
	if errors.As(err, &rErr) {
		switch rErr.Code {
		case domain.ErrCodeUserAlreadyExists:
			return msgUserAlreadyExists
		case domain.ErrCodeRateLimit:
			return msgRateLimited
		}
	}

	var pErr *domain.ProfileStoreError
	if errors.As(err, &pErr) {
		return msgInternalError
	}

	return msgInternalError
}

func redirectWithError(c echo.Context, path, message string) error {
	return c.Redirect(http.StatusFound, path+"?error="+url.QueryEscape(message))
}

func redirectWithMessage(c echo.Context, path, message string) error {
	return c.Redirect(http.StatusFound, path+"?message="+url.QueryEscape(message))
}
