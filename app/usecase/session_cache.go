package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"vocablo/app/domain"
	"vocablo/app/port"
	"vocablo/app/utils/validator"
)

// Fixed local-storage key for the session snapshot.
const sessionStorageKey = "auth-user"

// Timeout for reactions to provider notifications, which arrive without a
// caller-supplied context.
const notificationTimeout = 15 * time.Second

// persistedSession is the snapshot written to local storage. Only fully
// validated snapshots are ever persisted; anything that fails validation on
// load is discarded.
type persistedSession struct {
	User    *domain.User    `json:"user" validate:"required"`
	Session *domain.Session `json:"session,omitempty"`
}

// SessionCacheUseCase is the single source of truth for the current
// authentication state inside one client process. It mediates between local
// persistent storage, the remote provider's live session and the provider's
// out-of-band auth-change notifications.
//
// Every mutation runs behind one mutex, so a notification callback racing an
// explicit Login or Initialize is serialized instead of interleaving
// half-applied states.
type SessionCacheUseCase struct {
	gateway  port.AuthGateway
	profiles port.ProfileRepository
	store    port.KVStore
	validate *validator.Validator
	logger   *slog.Logger

	mu      sync.Mutex
	user    *domain.User
	session *domain.Session
	loading bool

	initDone bool
	initWait chan struct{}

	subscribed  bool
	unsubscribe func()
}

// NewSessionCache creates an empty, unauthenticated session cache. Callers
// own the instance lifecycle: Subscribe to attach it to the provider's
// notification stream, Close to release it.
func NewSessionCache(gateway port.AuthGateway, profiles port.ProfileRepository, store port.KVStore, logger *slog.Logger) *SessionCacheUseCase {
	return &SessionCacheUseCase{
		gateway:  gateway,
		profiles: profiles,
		store:    store,
		validate: validator.New(),
		logger:   logger.With("component", "session_cache"),
	}
}

var _ port.SessionCache = (*SessionCacheUseCase)(nil)

// Initialize restores persisted state and consults the provider's live
// session. Idempotent: once a run has completed it never runs again, and
// concurrent callers coalesce on the in-flight run, so the provider sees at
// most one session fetch.
func (c *SessionCacheUseCase) Initialize(ctx context.Context) error {
	c.mu.Lock()
	if c.initDone {
		c.mu.Unlock()
		return nil
	}
	if c.initWait != nil {
		wait := c.initWait
		c.mu.Unlock()
		select {
		case <-wait:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	wait := make(chan struct{})
	c.initWait = wait
	c.loading = true
	c.mu.Unlock()

	c.runInitialize(ctx)

	c.mu.Lock()
	c.loading = false
	c.initDone = true
	c.initWait = nil
	c.mu.Unlock()
	close(wait)

	return nil
}

// runInitialize performs the actual restore. All failure paths fail closed
// to unauthenticated; none of them are surfaced as errors.
func (c *SessionCacheUseCase) runInitialize(ctx context.Context) {
	snapshot := c.loadSnapshot(ctx)

	live, err := c.gateway.GetSession(ctx)
	if errors.Is(err, domain.ErrNoSession) && snapshot != nil && snapshot.Session != nil {
		// No live session on the client, but the persisted refresh token may
		// still revive one.
		live, err = c.gateway.RefreshSession(ctx, snapshot.Session.RefreshToken)
	}
	if err != nil {
		if !errors.Is(err, domain.ErrNoSession) {
			c.logger.Warn("initialization could not obtain a live session", "error", err)
		}
		c.clearState(ctx)
		return
	}

	profile, err := c.profiles.GetByID(ctx, live.UserID)
	if err != nil {
		// A session without a matching profile row is treated as invalid.
		c.logger.Warn("live session has no matching profile row, failing closed",
			"user_id", live.UserID, "error", err)
		c.clearState(ctx)
		return
	}

	c.commit(ctx, profile, &live.Session)
	c.logger.Info("session restored", "user_id", profile.ID)
}

// Login validates credentials, signs in with the provider, loads the profile
// row and commits the authenticated state. Malformed credentials never reach
// the provider.
func (c *SessionCacheUseCase) Login(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	if err := c.validate.Validate(creds); err != nil {
		return nil, err
	}

	c.setLoading(true)
	defer c.setLoading(false)

	live, err := c.gateway.SignInWithPassword(ctx, creds.Email, creds.Password)
	if err != nil {
		return nil, err
	}

	profile, err := c.profiles.GetByID(ctx, live.UserID)
	if err != nil {
		return nil, domain.NewProfileStoreError("load profile after sign in", err)
	}

	c.commit(ctx, profile, &live.Session)
	c.logger.Info("login committed", "user_id", profile.ID)

	return profile, nil
}

// Register validates input, creates the provider account and inserts the
// profile row. When the row insert fails the just-created provider account is
// deleted best-effort before the failure is surfaced; the compensation's own
// outcome is logged but does not change the returned error.
func (c *SessionCacheUseCase) Register(ctx context.Context, reg domain.Registration) (*domain.RegisterResult, error) {
	if err := c.validate.Validate(reg); err != nil {
		return nil, err
	}

	c.setLoading(true)
	defer c.setLoading(false)

	signUp, err := c.gateway.SignUp(ctx, reg.Email, reg.Password)
	if err != nil {
		return nil, err
	}

	profile, err := domain.NewUser(signUp.UserID, reg.Email, reg.Name)
	if err != nil {
		return nil, domain.NewValidationError("name", err.Error())
	}

	if err := c.profiles.Insert(ctx, profile); err != nil {
		if delErr := c.gateway.AdminDeleteUser(ctx, signUp.UserID); delErr != nil {
			c.logger.Error("compensating account deletion failed; provider account orphaned",
				"user_id", signUp.UserID, "error", delErr)
		}
		return nil, domain.NewProfileStoreError("insert profile after sign up", err)
	}

	result := &domain.RegisterResult{
		User:                profile,
		Session:             signUp.Session,
		PendingConfirmation: signUp.Session == nil,
	}

	if signUp.Session != nil {
		c.commit(ctx, profile, signUp.Session)
		c.logger.Info("registration committed", "user_id", profile.ID)
	} else {
		c.logger.Info("registration pending email confirmation", "user_id", profile.ID)
	}

	return result, nil
}

// Logout signs out with the provider best-effort and unconditionally clears
// local state, regardless of the call's outcome.
func (c *SessionCacheUseCase) Logout(ctx context.Context) error {
	c.mu.Lock()
	var accessToken string
	if c.session != nil {
		accessToken = c.session.AccessToken
	}
	c.mu.Unlock()

	if err := c.gateway.SignOut(ctx, accessToken); err != nil {
		c.logger.Warn("provider sign out failed, clearing local state anyway", "error", err)
	}

	c.clearState(ctx)
	c.logger.Info("logged out")
	return nil
}

// RefreshSession exchanges the current refresh token for a fresh pair. On
// failure the cache clears to unauthenticated; on success only the tokens are
// replaced, the profile is untouched.
func (c *SessionCacheUseCase) RefreshSession(ctx context.Context) error {
	c.mu.Lock()
	var refreshToken string
	if c.session != nil {
		refreshToken = c.session.RefreshToken
	}
	c.mu.Unlock()

	if refreshToken == "" {
		c.clearState(ctx)
		return domain.ErrNoSession
	}

	live, err := c.gateway.RefreshSession(ctx, refreshToken)
	if err != nil {
		c.logger.Warn("session refresh failed, clearing state", "error", err)
		c.clearState(ctx)
		return err
	}

	c.SetSession(&live.Session)
	return nil
}

// SetUser replaces the cached profile. The authenticated flag is derived, so
// it follows automatically. Passing nil clears the persisted snapshot.
func (c *SessionCacheUseCase) SetUser(user *domain.User) {
	ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
	defer cancel()

	c.mu.Lock()
	c.user = user
	session := c.session
	c.mu.Unlock()

	if user == nil {
		c.removeSnapshot(ctx)
		return
	}
	c.persistSnapshot(ctx, user, session)
}

// SetSession replaces the cached token pair only.
func (c *SessionCacheUseCase) SetSession(session *domain.Session) {
	ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
	defer cancel()

	c.mu.Lock()
	c.session = session
	user := c.user
	c.mu.Unlock()

	if user != nil {
		c.persistSnapshot(ctx, user, session)
	}
}

// CurrentUser returns a copy of the cached profile, or nil.
func (c *SessionCacheUseCase) CurrentUser() *domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	copied := *c.user
	return &copied
}

// CurrentSession returns a copy of the cached token pair, or nil.
func (c *SessionCacheUseCase) CurrentSession() *domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	copied := *c.session
	return &copied
}

// IsAuthenticated is derived, never stored: true iff a profile and a valid
// session are both present.
func (c *SessionCacheUseCase) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user != nil && c.session != nil && c.session.IsValid()
}

// IsLoading reports whether an initialization or auth operation is in flight.
func (c *SessionCacheUseCase) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Subscribe attaches the cache to the provider's auth-change stream.
// Idempotent per instance.
func (c *SessionCacheUseCase) Subscribe() {
	c.mu.Lock()
	if c.subscribed {
		c.mu.Unlock()
		return
	}
	c.subscribed = true
	c.mu.Unlock()

	c.unsubscribe = c.gateway.OnAuthStateChange(c.handleAuthEvent)
	c.logger.Debug("subscribed to provider auth changes")
}

// Close detaches the cache from the provider's notification stream.
func (c *SessionCacheUseCase) Close() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.subscribed = false
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// handleAuthEvent reacts to provider notifications. signed_out clears
// synchronously with no remote call; token_refreshed replaces tokens only;
// signed_in performs a full profile reload.
func (c *SessionCacheUseCase) handleAuthEvent(ev domain.AuthEvent) {
	switch ev.Type {
	case domain.AuthEventSignedOut:
		ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		defer cancel()
		c.clearState(ctx)
		c.logger.Info("cleared state on signed_out notification")

	case domain.AuthEventTokenRefreshed:
		if ev.Session != nil {
			session := ev.Session.Session
			c.SetSession(&session)
			c.logger.Debug("tokens replaced on token_refreshed notification")
		}

	case domain.AuthEventSignedIn:
		if ev.Session == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		defer cancel()

		profile, err := c.profiles.GetByID(ctx, ev.Session.UserID)
		if err != nil {
			c.logger.Warn("signed_in notification without matching profile row, failing closed",
				"user_id", ev.Session.UserID, "error", err)
			c.clearState(ctx)
			return
		}
		c.commit(ctx, profile, &ev.Session.Session)
		c.logger.Info("state reloaded on signed_in notification", "user_id", profile.ID)
	}
}

// commit installs an authenticated state and mirrors it to local storage.
func (c *SessionCacheUseCase) commit(ctx context.Context, user *domain.User, session *domain.Session) {
	c.mu.Lock()
	c.user = user
	c.session = session
	c.mu.Unlock()

	c.persistSnapshot(ctx, user, session)
}

// clearState resets to unauthenticated and removes the persisted snapshot.
func (c *SessionCacheUseCase) clearState(ctx context.Context) {
	c.mu.Lock()
	c.user = nil
	c.session = nil
	c.mu.Unlock()

	c.removeSnapshot(ctx)
}

func (c *SessionCacheUseCase) setLoading(loading bool) {
	c.mu.Lock()
	c.loading = loading
	c.mu.Unlock()
}

// loadSnapshot reads and validates the persisted session. Corrupted or
// schema-invalid data is discarded and the stored entry removed, so a later
// call starts clean.
func (c *SessionCacheUseCase) loadSnapshot(ctx context.Context) *persistedSession {
	data, err := c.store.Get(ctx, sessionStorageKey)
	if err != nil {
		if !errors.Is(err, port.ErrKeyNotFound) {
			c.logger.Warn("failed to read persisted session", "error", err)
		}
		return nil
	}

	var snapshot persistedSession
	if err := json.Unmarshal(data, &snapshot); err != nil {
		c.logger.Warn("persisted session is corrupt, discarding", "error", err)
		c.removeSnapshot(ctx)
		return nil
	}
	if err := c.validate.Validate(&snapshot); err != nil {
		c.logger.Warn("persisted session failed validation, discarding", "error", err)
		c.removeSnapshot(ctx)
		return nil
	}
	if snapshot.User != nil {
		if err := c.validate.Validate(snapshot.User); err != nil {
			c.logger.Warn("persisted user failed validation, discarding", "error", err)
			c.removeSnapshot(ctx)
			return nil
		}
	}

	return &snapshot
}

// persistSnapshot mirrors a fully validated state to local storage. Never
// writes partial snapshots.
func (c *SessionCacheUseCase) persistSnapshot(ctx context.Context, user *domain.User, session *domain.Session) {
	snapshot := persistedSession{User: user, Session: session}
	if err := c.validate.Validate(&snapshot); err != nil {
		c.logger.Error("refusing to persist invalid snapshot", "error", err)
		return
	}

	data, err := json.Marshal(&snapshot)
	if err != nil {
		c.logger.Error("failed to serialize session snapshot", "error", err)
		return
	}
	if err := c.store.Set(ctx, sessionStorageKey, data); err != nil {
		c.logger.Warn("failed to persist session snapshot", "error", err)
	}
}

func (c *SessionCacheUseCase) removeSnapshot(ctx context.Context) {
	if err := c.store.Delete(ctx, sessionStorageKey); err != nil {
		c.logger.Warn("failed to remove persisted session", "error", err)
	}
}
