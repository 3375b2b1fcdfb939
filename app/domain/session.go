package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is the token pair issued by the remote provider. ExpiresAt is zero
// when the provider did not report an expiry.
type Session struct {
	AccessToken  string    `json:"access_token" validate:"required"`
	RefreshToken string    `json:"refresh_token" validate:"required"`
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
}

// NewSession creates a session with validation.
func NewSession(accessToken, refreshToken string, expiresAt time.Time) (*Session, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required")
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// IsExpired returns true if the session has a known expiry in the past.
func (s *Session) IsExpired() bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(s.ExpiresAt)
}

// IsValid returns true if the session carries both tokens and has not expired.
func (s *Session) IsValid() bool {
	return s.AccessToken != "" && s.RefreshToken != "" && !s.IsExpired()
}

// RemainingTime returns the time until expiry, or zero when expired or unknown.
func (s *Session) RemainingTime() time.Duration {
	if s.ExpiresAt.IsZero() || s.IsExpired() {
		return 0
	}
	return time.Until(s.ExpiresAt)
}

// ProviderSession is a live session as reported by the remote provider: the
// token pair plus the identity it belongs to.
type ProviderSession struct {
	Session Session
	UserID  uuid.UUID
	Email   string
}

// AuthEventType identifies an out-of-band state change pushed by the provider.
type AuthEventType string

const (
	AuthEventSignedIn       AuthEventType = "signed_in"
	AuthEventSignedOut      AuthEventType = "signed_out"
	AuthEventTokenRefreshed AuthEventType = "token_refreshed"
)

// AuthEvent is a change-of-state notification from the remote provider.
// Session is nil for signed_out events.
type AuthEvent struct {
	Type    AuthEventType
	Session *ProviderSession
}
