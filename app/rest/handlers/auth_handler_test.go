package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vocablo/app/domain"
	mock_port "vocablo/app/mocks"
	"vocablo/app/rest/cookies"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFormContext(t *testing.T, method, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func cookieValue(rec *httptest.ResponseRecorder, name string) (string, bool) {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie.Value, true
		}
	}
	return "", false
}

func testProviderSession(userID uuid.UUID) *domain.ProviderSession {
	return &domain.ProviderSession{
		Session: domain.Session{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			ExpiresAt:    time.Now().Add(time.Hour),
		},
		UserID: userID,
	}
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: a mismatch must never reach the usecase.
	mockUsecase := mock_port.NewMockAuthUsecase(ctrl)
	handler := NewAuthHandler(mockUsecase, cookies.NewManager(0, false), testLogger())

	form := url.Values{
		"name":            {"Ana"},
		"email":           {"ana@example.com"},
		"password":        {"secret123"},
		"confirmPassword": {"different"},
	}
	c, rec := newFormContext(t, http.MethodPost, "/auth/register", form)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusFound, rec.Code)

	location := rec.Header().Get(echo.HeaderLocation)
	assert.True(t, strings.HasPrefix(location, "/register?error="))
	decoded, err := url.QueryUnescape(location)
	require.NoError(t, err)
	assert.Contains(t, decoded, "Las contraseñas no coinciden")
}

func TestAuthHandler_Register_ImmediateSessionSetsCookies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user, err := domain.NewUser(userID, "ana@example.com", "Ana")
	require.NoError(t, err)

	session := testProviderSession(userID).Session
	mockUsecase := mock_port.NewMockAuthUsecase(ctrl)
	mockUsecase.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(&domain.RegisterResult{User: user, Session: &session}, nil)

	handler := NewAuthHandler(mockUsecase, cookies.NewManager(0, false), testLogger())

	form := url.Values{
		"name":            {"Ana"},
		"email":           {"ana@example.com"},
		"password":        {"secret123"},
		"confirmPassword": {"secret123"},
	}
	c, rec := newFormContext(t, http.MethodPost, "/auth/register", form)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/onboarding/level", rec.Header().Get(echo.HeaderLocation))

	access, ok := cookieValue(rec, cookies.AccessTokenCookie)
	require.True(t, ok)
	assert.Equal(t, "access-token", access)
	refresh, ok := cookieValue(rec, cookies.RefreshTokenCookie)
	require.True(t, ok)
	assert.Equal(t, "refresh-token", refresh)
}

func TestAuthHandler_Register_PendingConfirmationRedirectsToSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user, err := domain.NewUser(userID, "ana@example.com", "Ana")
	require.NoError(t, err)

	mockUsecase := mock_port.NewMockAuthUsecase(ctrl)
	mockUsecase.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(&domain.RegisterResult{User: user, PendingConfirmation: true}, nil)

	handler := NewAuthHandler(mockUsecase, cookies.NewManager(0, false), testLogger())

	form := url.Values{
		"name":            {"Ana"},
		"email":           {"ana@example.com"},
		"password":        {"secret123"},
		"confirmPassword": {"secret123"},
	}
	c, rec := newFormContext(t, http.MethodPost, "/auth/register", form)

	require.NoError(t, handler.Register(c))

	location := rec.Header().Get(echo.HeaderLocation)
	assert.True(t, strings.HasPrefix(location, "/signin?message="))
	decoded, err := url.QueryUnescape(location)
	require.NoError(t, err)
	assert.Contains(t, decoded, "Registro exitoso")

	// No tokens were issued, so no cookies either.
	_, ok := cookieValue(rec, cookies.AccessTokenCookie)
	assert.False(t, ok)
}

func TestAuthHandler_Register_UsecaseConfirmMismatchMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The usecase validates the bound form again and reports fields under
	// their json-tag names.
	mockUsecase := mock_port.NewMockAuthUsecase(ctrl)
	mockUsecase.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewValidationError("confirmPassword", "confirmPassword does not match"))

	handler := NewAuthHandler(mockUsecase, cookies.NewManager(0, false), testLogger())

	form := url.Values{
		"name":            {"Ana"},
		"email":           {"ana@example.com"},
		"password":        {"secret123"},
		"confirmPassword": {"secret123"},
	}
	c, rec := newFormContext(t, http.MethodPost, "/auth/register", form)

	require.NoError(t, handler.Register(c))
	decoded, err := url.QueryUnescape(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	assert.Contains(t, decoded, "Las contraseñas no coinciden")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_port.NewMockAuthUsecase(ctrl)
	mockUsecase.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewRemoteAuthError(domain.ErrCodeUserAlreadyExists, "user already registered"))

	handler := NewAuthHandler(mockUsecase, cookies.NewManager(0, false), testLogger())

	form := url.Values{
		"name":            {"Ana"},
		"email":           {"ana@example.com"},
		"password":        {"secret123"},
		"confirmPassword": {"secret123"},
	}
	c, rec := newFormContext(t, http.MethodPost, "/auth/register", form)

	require.NoError(t, handler.Register(c))
	decoded, err := url.QueryUnescape(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	assert.Contains(t, decoded, "ya está registrado")
}

func TestAuthHandler_SignIn(t *testing.T) {
	userID := uuid.New()
	user, uerr := domain.NewUser(userID, "ana@example.com", "Ana")
	require.NoError(t, uerr)

	tests := []struct {
		name         string
		setupMock    func(*mock_port.MockAuthUsecase)
		wantLocation string
		wantInBody   string
		wantCookies  bool
	}{
		{
			name: "successful sign in sets cookies and redirects",
			setupMock: func(m *mock_port.MockAuthUsecase) {
				m.EXPECT().SignIn(gomock.Any(), gomock.Any()).
					Return(testProviderSession(userID), user, nil)
			},
			wantLocation: "/onboarding/level",
			wantCookies:  true,
		},
		{
			name: "invalid credentials",
			setupMock: func(m *mock_port.MockAuthUsecase) {
				m.EXPECT().SignIn(gomock.Any(), gomock.Any()).
					Return(nil, nil, domain.NewRemoteAuthError(domain.ErrCodeInvalidCredentials, "invalid login credentials"))
			},
			wantInBody: "Credenciales inválidas. Verifica tu email y contraseña.",
		},
		{
			name: "unconfirmed email",
			setupMock: func(m *mock_port.MockAuthUsecase) {
				m.EXPECT().SignIn(gomock.Any(), gomock.Any()).
					Return(nil, nil, domain.NewRemoteAuthError(domain.ErrCodeEmailNotConfirmed, "email not confirmed"))
			},
			wantInBody: "Por favor, verifica tu email antes de iniciar sesión.",
		},
		{
			name: "provider rate limit",
			setupMock: func(m *mock_port.MockAuthUsecase) {
				m.EXPECT().SignIn(gomock.Any(), gomock.Any()).
					Return(nil, nil, domain.NewRemoteAuthError(domain.ErrCodeRateLimit, "over request rate limit"))
			},
			wantInBody: "Demasiados intentos. Espera unos minutos antes de intentar nuevamente.",
		},
		{
			name: "missing profile row leaves no cookies",
			setupMock: func(m *mock_port.MockAuthUsecase) {
				m.EXPECT().SignIn(gomock.Any(), gomock.Any()).
					Return(nil, nil, domain.NewProfileStoreError("load profile", domain.ErrProfileNotFound))
			},
			wantInBody: "Error al obtener los datos del usuario",
		},
		{
			name: "transport failure maps to generic error",
			setupMock: func(m *mock_port.MockAuthUsecase) {
				m.EXPECT().SignIn(gomock.Any(), gomock.Any()).
					Return(nil, nil, domain.NewTransportError("sign in", assert.AnError))
			},
			wantInBody: "Error interno del servidor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsecase := mock_port.NewMockAuthUsecase(ctrl)
			tt.setupMock(mockUsecase)

			handler := NewAuthHandler(mockUsecase, cookies.NewManager(0, false), testLogger())

			form := url.Values{
				"email":    {"ana@example.com"},
				"password": {"secret123"},
			}
			c, rec := newFormContext(t, http.MethodPost, "/auth/signin", form)

			require.NoError(t, handler.SignIn(c))
			assert.Equal(t, http.StatusFound, rec.Code)

			location := rec.Header().Get(echo.HeaderLocation)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, location)
			}
			if tt.wantInBody != "" {
				decoded, err := url.QueryUnescape(location)
				require.NoError(t, err)
				assert.Contains(t, decoded, tt.wantInBody)
			}

			_, gotAccess := cookieValue(rec, cookies.AccessTokenCookie)
			assert.Equal(t, tt.wantCookies, gotAccess)
		})
	}
}

func TestAuthHandler_SignOut_AlwaysClearsCookies(t *testing.T) {
	tests := []struct {
		name       string
		signOutErr error
	}{
		{name: "provider revoke succeeds"},
		{name: "provider revoke fails", signOutErr: domain.NewTransportError("sign out", assert.AnError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsecase := mock_port.NewMockAuthUsecase(ctrl)
			mockUsecase.EXPECT().SignOut(gomock.Any(), "stored-token").Return(tt.signOutErr)

			handler := NewAuthHandler(mockUsecase, cookies.NewManager(0, false), testLogger())

			c, rec := newFormContext(t, http.MethodPost, "/auth/signout", url.Values{})
			c.Request().AddCookie(&http.Cookie{Name: cookies.AccessTokenCookie, Value: "stored-token"})
			c.Request().AddCookie(&http.Cookie{Name: cookies.RefreshTokenCookie, Value: "stored-refresh"})

			require.NoError(t, handler.SignOut(c))
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/signin", rec.Header().Get(echo.HeaderLocation))

			// Both cookies expired regardless of the provider outcome.
			for _, name := range []string{cookies.AccessTokenCookie, cookies.RefreshTokenCookie} {
				found := false
				for _, cookie := range rec.Result().Cookies() {
					if cookie.Name == name {
						found = true
						assert.Empty(t, cookie.Value)
						assert.Negative(t, cookie.MaxAge)
					}
				}
				assert.True(t, found, "expected %s to be cleared", name)
			}
		})
	}
}
