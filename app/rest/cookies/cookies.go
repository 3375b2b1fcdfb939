// Package cookies maps session tokens to and from the HTTP cookie pair.
// It sits below the handlers and middleware so both can share one manager.
package cookies

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"vocablo/app/domain"
)

// Token cookie names. The remote provider's JS client uses the same names,
// which keeps a server-set session readable on the client side.
const (
	AccessTokenCookie  = "sb-access-token"
	RefreshTokenCookie = "sb-refresh-token"
)

// DefaultMaxAge matches the provider's refresh-token lifetime.
const DefaultMaxAge = 7 * 24 * time.Hour

// Manager writes and clears the token cookie pair. Secure is set in
// production only so local development over plain HTTP still works.
type Manager struct {
	maxAge time.Duration
	secure bool
}

func NewManager(maxAge time.Duration, secure bool) *Manager {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Manager{maxAge: maxAge, secure: secure}
}

// SetTokens writes both token cookies for the given session.
func (m *Manager) SetTokens(c echo.Context, session *domain.Session) {
	m.set(c, AccessTokenCookie, session.AccessToken)
	m.set(c, RefreshTokenCookie, session.RefreshToken)
}

// GetTokens reads the token pair from the request. Either value may be empty.
func (m *Manager) GetTokens(c echo.Context) (accessToken, refreshToken string) {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		accessToken = cookie.Value
	}
	if cookie, err := c.Cookie(RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}
	return accessToken, refreshToken
}

// ClearTokens expires both cookies. Attributes must match the ones used when
// setting, or browsers keep the originals.
func (m *Manager) ClearTokens(c echo.Context) {
	m.expire(c, AccessTokenCookie)
	m.expire(c, RefreshTokenCookie)
}

func (m *Manager) set(c echo.Context, name, value string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) expire(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
