package cookies

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocablo/app/domain"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestManager_SetTokens(t *testing.T) {
	c, rec := newTestContext()

	m := NewManager(time.Hour, true)
	m.SetTokens(c, &domain.Session{AccessToken: "access", RefreshToken: "refresh"})

	access := responseCookie(rec, AccessTokenCookie)
	require.NotNil(t, access)
	assert.Equal(t, "access", access.Value)
	assert.Equal(t, "/", access.Path)
	assert.Equal(t, 3600, access.MaxAge)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteLaxMode, access.SameSite)

	refresh := responseCookie(rec, RefreshTokenCookie)
	require.NotNil(t, refresh)
	assert.Equal(t, "refresh", refresh.Value)
}

func TestManager_GetTokens(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "access"})
	req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "refresh"})
	c := e.NewContext(req, httptest.NewRecorder())

	m := NewManager(0, false)

	access, refresh := m.GetTokens(c)
	assert.Equal(t, "access", access)
	assert.Equal(t, "refresh", refresh)
}

func TestManager_GetTokens_MissingCookies(t *testing.T) {
	c, _ := newTestContext()

	m := NewManager(0, false)

	access, refresh := m.GetTokens(c)
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}

func TestManager_ClearTokens(t *testing.T) {
	c, rec := newTestContext()

	m := NewManager(time.Hour, false)
	m.ClearTokens(c)

	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		cookie := responseCookie(rec, name)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
		assert.Equal(t, "/", cookie.Path)
	}
}

func TestNewManager_DefaultMaxAge(t *testing.T) {
	c, rec := newTestContext()

	m := NewManager(0, false)
	m.SetTokens(c, &domain.Session{AccessToken: "a", RefreshToken: "r"})

	access := responseCookie(rec, AccessTokenCookie)
	require.NotNil(t, access)
	assert.Equal(t, int(DefaultMaxAge.Seconds()), access.MaxAge)
	assert.False(t, access.Secure)
}
