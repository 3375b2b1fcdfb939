package port

//go:generate mockgen -source=cache_port.go -destination=../mocks/mock_cache_port.go

import (
	"context"

	"github.com/google/uuid"

	"vocablo/app/domain"
)

// SessionCache is the single source of truth for "is someone logged in, and
// as whom" inside one client process. It mediates between local persistent
// storage, the provider's live session and any observer of the state.
type SessionCache interface {
	// Initialize restores persisted state and consults the provider's live
	// session. Idempotent: once a run has completed, further calls are
	// no-ops; concurrent calls coalesce on the in-flight run.
	Initialize(ctx context.Context) error

	Login(ctx context.Context, creds domain.Credentials) (*domain.User, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.RegisterResult, error)
	Logout(ctx context.Context) error
	RefreshSession(ctx context.Context) error

	// Direct mutators used by the auth-change subscriber. Each recomputes
	// the authenticated flag from the new value.
	SetUser(user *domain.User)
	SetSession(session *domain.Session)

	CurrentUser() *domain.User
	CurrentSession() *domain.Session
	IsAuthenticated() bool
	IsLoading() bool

	// Subscribe attaches the cache to the provider's auth-change stream.
	// Idempotent per instance. Close detaches and releases the cache.
	Subscribe()
	Close()
}

// PreferencesCache caches the learner's onboarding selections with the same
// persistence discipline as the session cache. One instance serves every
// request, so all state is keyed by the user's provider identifier.
type PreferencesCache interface {
	Initialize(ctx context.Context, userID uuid.UUID) error
	Current(ctx context.Context, userID uuid.UUID) *domain.UserPreferences
	SetLevel(ctx context.Context, userID uuid.UUID, level domain.ProficiencyLevel) error
	SetTopic(ctx context.Context, userID uuid.UUID, topic string) error
	SetPreferences(ctx context.Context, userID uuid.UUID, patch domain.PreferencesPatch) error
	CompleteOnboarding(ctx context.Context, userID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}
