package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"vocablo/app/domain"
	"vocablo/app/port"
	"vocablo/app/rest/cookies"
)

// ContextUserKey is where the resolved identity is stored on the request
// context.
const ContextUserKey = "current_user"

// AuthMiddleware resolves the request's identity from the token cookies.
// Identity is re-derived on every request; nothing is cached server-side.
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	cookies     *cookies.Manager
	logger      *slog.Logger
}

func NewAuthMiddleware(authUsecase port.AuthUsecase, cookies *cookies.Manager, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		cookies:     cookies,
		logger:      logger.With("component", "auth_middleware"),
	}
}

// RequireAuth fails closed: an absent, unverifiable or orphaned token clears
// the cookies and redirects to the sign-in page.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			accessToken, _ := m.cookies.GetTokens(c)

			user, err := m.authUsecase.IdentityFromToken(c.Request().Context(), accessToken)
			if err != nil {
				// Stale cookies would redirect here forever; drop them.
				m.cookies.ClearTokens(c)
				return c.Redirect(http.StatusFound, "/signin")
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// OptionalAuth resolves the identity when possible but never blocks the
// request. Used by the public pages to vary their navigation.
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			accessToken, _ := m.cookies.GetTokens(c)
			if accessToken != "" {
				if user, err := m.authUsecase.IdentityFromToken(c.Request().Context(), accessToken); err == nil {
					c.Set(ContextUserKey, user)
				}
			}
			return next(c)
		}
	}
}

// CurrentUser returns the identity resolved by the middleware, or nil.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(ContextUserKey).(*domain.User)
	return user
}
