package gateway

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"vocablo/app/domain"
	"vocablo/app/port"
)

// AuthGateway adapts the provider driver for the usecase layer. Failures
// crossing this boundary are always one of the domain's tagged kinds
// (RemoteAuthError, TransportError) or a domain sentinel; callers switch on
// kind, never on message text.
type AuthGateway struct {
	provider port.AuthProvider
	logger   *slog.Logger
}

// NewAuthGateway creates a new auth gateway.
func NewAuthGateway(provider port.AuthProvider, logger *slog.Logger) port.AuthGateway {
	return &AuthGateway{
		provider: provider,
		logger:   logger.With("component", "auth_gateway"),
	}
}

// SignUp registers a new provider account.
func (g *AuthGateway) SignUp(ctx context.Context, email, password string) (*domain.SignUpResult, error) {
	result, err := g.provider.SignUp(ctx, email, password)
	if err != nil {
		g.logger.Error("provider sign up failed", "error", err)
		return nil, g.fold(err, "sign up")
	}

	g.logger.Info("provider sign up completed",
		"user_id", result.UserID,
		"pending_confirmation", result.Session == nil)
	return result, nil
}

// SignInWithPassword exchanges credentials for a live session.
func (g *AuthGateway) SignInWithPassword(ctx context.Context, email, password string) (*domain.ProviderSession, error) {
	session, err := g.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		g.logger.Warn("provider sign in failed", "error", err)
		return nil, g.fold(err, "sign in")
	}

	g.logger.Info("provider sign in completed", "user_id", session.UserID)
	return session, nil
}

// SignOut revokes a session with the provider.
func (g *AuthGateway) SignOut(ctx context.Context, accessToken string) error {
	if err := g.provider.SignOut(ctx, accessToken); err != nil {
		g.logger.Warn("provider sign out failed", "error", err)
		return g.fold(err, "sign out")
	}
	return nil
}

// GetSession returns the provider's current live session.
func (g *AuthGateway) GetSession(ctx context.Context) (*domain.ProviderSession, error) {
	session, err := g.provider.GetSession(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return nil, domain.ErrNoSession
		}
		g.logger.Warn("provider get session failed", "error", err)
		return nil, g.fold(err, "get session")
	}
	return session, nil
}

// RefreshSession exchanges a refresh token for a fresh token pair.
func (g *AuthGateway) RefreshSession(ctx context.Context, refreshToken string) (*domain.ProviderSession, error) {
	session, err := g.provider.RefreshSession(ctx, refreshToken)
	if err != nil {
		g.logger.Warn("provider session refresh failed", "error", err)
		return nil, g.fold(err, "refresh session")
	}
	return session, nil
}

// GetUser verifies an access token with the provider.
func (g *AuthGateway) GetUser(ctx context.Context, accessToken string) (*domain.ProviderUser, error) {
	user, err := g.provider.GetUser(ctx, accessToken)
	if err != nil {
		g.logger.Warn("provider get user failed", "error", err)
		return nil, g.fold(err, "get user")
	}
	return user, nil
}

// OnAuthStateChange registers a callback for provider auth-change events.
func (g *AuthGateway) OnAuthStateChange(fn func(domain.AuthEvent)) func() {
	return g.provider.OnAuthStateChange(fn)
}

// AdminDeleteUser removes a provider account (sign-up compensation).
func (g *AuthGateway) AdminDeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := g.provider.AdminDeleteUser(ctx, userID); err != nil {
		g.logger.Error("provider account deletion failed", "user_id", userID, "error", err)
		return g.fold(err, "admin delete user")
	}

	g.logger.Info("provider account deleted", "user_id", userID)
	return nil
}

// fold guarantees a tagged error kind crosses the gateway boundary.
func (g *AuthGateway) fold(err error, op string) error {
	var remoteErr *domain.RemoteAuthError
	var transportErr *domain.TransportError
	switch {
	case errors.As(err, &remoteErr), errors.As(err, &transportErr):
		return err
	case errors.Is(err, domain.ErrNoSession):
		return err
	default:
		return domain.NewTransportError(op, err)
	}
}
