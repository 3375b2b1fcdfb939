package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"

	"github.com/google/uuid"

	"vocablo/app/domain"
)

// AuthProvider is the minimum contract consumed from the hosted auth backend.
// Implemented by the supabase driver; the provider's internals (password
// hashing, token signing, row-level security) are opaque.
type AuthProvider interface {
	SignUp(ctx context.Context, email, password string) (*domain.SignUpResult, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.ProviderSession, error)
	SignOut(ctx context.Context, accessToken string) error
	GetSession(ctx context.Context) (*domain.ProviderSession, error)
	RefreshSession(ctx context.Context, refreshToken string) (*domain.ProviderSession, error)
	GetUser(ctx context.Context, accessToken string) (*domain.ProviderUser, error)

	// OnAuthStateChange registers a callback for out-of-band session changes
	// (signed in elsewhere, silent refresh, signed out). Returns an
	// unsubscribe function.
	OnAuthStateChange(fn func(domain.AuthEvent)) func()

	// AdminDeleteUser removes a provider account. Best-effort compensation
	// for a failed profile insert after sign-up.
	AdminDeleteUser(ctx context.Context, userID uuid.UUID) error
}

// AuthGateway adapts the provider driver for the usecase layer, folding
// provider failures into the domain's tagged error set.
type AuthGateway interface {
	SignUp(ctx context.Context, email, password string) (*domain.SignUpResult, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.ProviderSession, error)
	SignOut(ctx context.Context, accessToken string) error
	GetSession(ctx context.Context) (*domain.ProviderSession, error)
	RefreshSession(ctx context.Context, refreshToken string) (*domain.ProviderSession, error)
	GetUser(ctx context.Context, accessToken string) (*domain.ProviderUser, error)
	OnAuthStateChange(fn func(domain.AuthEvent)) func()
	AdminDeleteUser(ctx context.Context, userID uuid.UUID) error
}

// AuthUsecase is the server-side authentication surface consumed by the
// request handlers. Stateless across requests; identity is re-derived from
// cookies on every request.
type AuthUsecase interface {
	SignIn(ctx context.Context, creds domain.Credentials) (*domain.ProviderSession, *domain.User, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.RegisterResult, error)
	SignOut(ctx context.Context, accessToken string) error

	// IdentityFromToken verifies an access token with the provider and loads
	// the matching profile row. Fails closed when the row is missing.
	IdentityFromToken(ctx context.Context, accessToken string) (*domain.User, error)
}
