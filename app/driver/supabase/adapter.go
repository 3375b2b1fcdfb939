package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"vocablo/app/domain"
	"vocablo/app/port"
)

// Minimum wake-up margin before token expiry for the auto-refresh loop.
const refreshMargin = 30 * time.Second

// Adapter implements port.AuthProvider against the hosted auth REST API.
// Like the official provider SDKs it keeps the current session client-local
// and emits auth-change events from its own operations and from the
// background refresh loop.
type Adapter struct {
	client *Client
	logger *slog.Logger

	mu      sync.Mutex
	current *domain.ProviderSession

	events *eventBus

	stopOnce    sync.Once
	stopRefresh chan struct{}
}

// NewAdapter creates an auth provider adapter over the given client.
func NewAdapter(client *Client, logger *slog.Logger) *Adapter {
	return &Adapter{
		client:      client,
		logger:      logger.With("component", "supabase_adapter"),
		events:      newEventBus(),
		stopRefresh: make(chan struct{}),
	}
}

var _ port.AuthProvider = (*Adapter)(nil)

// Wire payloads.

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type tokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         *userPayload `json:"user"`

	// Top-level identity fields, present when sign-up returns a bare user
	// pending email confirmation instead of a session.
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SignUp registers a new provider account. The result carries a session only
// when the provider auto-confirms the account.
func (a *Adapter) SignUp(ctx context.Context, email, password string) (*domain.SignUpResult, error) {
	body := map[string]string{"email": email, "password": password}

	var resp tokenResponse
	if err := a.doJSON(ctx, http.MethodPost, "/auth/v1/signup", "", body, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken == "" {
		// Confirmation required: bare user object, no tokens yet.
		userID, err := uuid.Parse(resp.ID)
		if err != nil {
			return nil, domain.NewTransportError("sign up", fmt.Errorf("invalid user id %q: %w", resp.ID, err))
		}
		a.logger.Info("sign up pending email confirmation", "user_id", userID)
		return &domain.SignUpResult{UserID: userID, Email: resp.Email}, nil
	}

	session, err := a.sessionFromToken(&resp, "sign up")
	if err != nil {
		return nil, err
	}

	a.setCurrent(session)
	a.events.emit(domain.AuthEvent{Type: domain.AuthEventSignedIn, Session: session})

	return &domain.SignUpResult{
		UserID:  session.UserID,
		Email:   session.Email,
		Session: &session.Session,
	}, nil
}

// SignInWithPassword exchanges credentials for a token pair.
func (a *Adapter) SignInWithPassword(ctx context.Context, email, password string) (*domain.ProviderSession, error) {
	body := map[string]string{"email": email, "password": password}

	var resp tokenResponse
	if err := a.doJSON(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", body, &resp); err != nil {
		return nil, err
	}

	session, err := a.sessionFromToken(&resp, "sign in")
	if err != nil {
		return nil, err
	}

	a.setCurrent(session)
	a.events.emit(domain.AuthEvent{Type: domain.AuthEventSignedIn, Session: session})

	return session, nil
}

// SignOut revokes the token with the provider. The local session is dropped
// and a signed_out event emitted regardless of the call's outcome, matching
// the provider SDK behavior.
func (a *Adapter) SignOut(ctx context.Context, accessToken string) error {
	err := a.doJSON(ctx, http.MethodPost, "/auth/v1/logout", accessToken, nil, nil)

	a.setCurrent(nil)
	a.events.emit(domain.AuthEvent{Type: domain.AuthEventSignedOut})

	if err != nil {
		return err
	}
	return nil
}

// GetSession returns the client-local live session, refreshing it first when
// expired. Returns domain.ErrNoSession when no session is held.
func (a *Adapter) GetSession(ctx context.Context) (*domain.ProviderSession, error) {
	a.mu.Lock()
	current := a.current
	a.mu.Unlock()

	if current == nil {
		return nil, domain.ErrNoSession
	}

	if current.Session.IsExpired() {
		refreshed, err := a.RefreshSession(ctx, current.Session.RefreshToken)
		if err != nil {
			return nil, err
		}
		return refreshed, nil
	}

	copied := *current
	return &copied, nil
}

// RefreshSession exchanges a refresh token for a fresh token pair and emits a
// token_refreshed event.
func (a *Adapter) RefreshSession(ctx context.Context, refreshToken string) (*domain.ProviderSession, error) {
	if refreshToken == "" {
		return nil, domain.ErrNoSession
	}

	body := map[string]string{"refresh_token": refreshToken}

	var resp tokenResponse
	if err := a.doJSON(ctx, http.MethodPost, "/auth/v1/token?grant_type=refresh_token", "", body, &resp); err != nil {
		return nil, err
	}

	session, err := a.sessionFromToken(&resp, "refresh session")
	if err != nil {
		return nil, err
	}

	a.setCurrent(session)
	a.events.emit(domain.AuthEvent{Type: domain.AuthEventTokenRefreshed, Session: session})

	return session, nil
}

// GetUser verifies an access token and returns the identity it belongs to.
func (a *Adapter) GetUser(ctx context.Context, accessToken string) (*domain.ProviderUser, error) {
	var resp userPayload
	if err := a.doJSON(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, &resp); err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(resp.ID)
	if err != nil {
		return nil, domain.NewTransportError("get user", fmt.Errorf("invalid user id %q: %w", resp.ID, err))
	}

	return &domain.ProviderUser{ID: userID, Email: resp.Email}, nil
}

// AdminDeleteUser removes a provider account via the admin surface.
func (a *Adapter) AdminDeleteUser(ctx context.Context, userID uuid.UUID) error {
	if a.client.serviceKey == "" {
		return fmt.Errorf("admin operations require a service key")
	}

	path := "/auth/v1/admin/users/" + userID.String()
	return a.doAdmin(ctx, http.MethodDelete, path)
}

// OnAuthStateChange registers a callback for auth-change events. The callback
// runs synchronously in the emitting goroutine; it may arrive concurrently
// with explicit calls on the adapter.
func (a *Adapter) OnAuthStateChange(fn func(domain.AuthEvent)) func() {
	return a.events.subscribe(fn)
}

// StartAutoRefresh launches the silent token refresh loop. A refresh failure
// reported by the provider drops the session and emits signed_out.
func (a *Adapter) StartAutoRefresh() {
	go a.refreshLoop()
}

// Close stops the auto-refresh loop and drops all event subscribers.
func (a *Adapter) Close() {
	a.stopOnce.Do(func() {
		close(a.stopRefresh)
	})
	a.events.clear()
}

func (a *Adapter) refreshLoop() {
	ticker := time.NewTicker(refreshMargin)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopRefresh:
			return
		case <-ticker.C:
		}

		a.mu.Lock()
		current := a.current
		a.mu.Unlock()

		if current == nil || current.Session.ExpiresAt.IsZero() {
			continue
		}
		if current.Session.RemainingTime() > 2*refreshMargin {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		_, err := a.RefreshSession(ctx, current.Session.RefreshToken)
		cancel()

		if err != nil {
			var remoteErr *domain.RemoteAuthError
			if errors.As(err, &remoteErr) {
				a.logger.Warn("silent refresh rejected, dropping session", "code", remoteErr.Code)
				a.setCurrent(nil)
				a.events.emit(domain.AuthEvent{Type: domain.AuthEventSignedOut})
				continue
			}
			// Transport hiccup: keep the session, retry on the next tick.
			a.logger.Warn("silent refresh failed", "error", err)
		}
	}
}

func (a *Adapter) setCurrent(session *domain.ProviderSession) {
	a.mu.Lock()
	a.current = session
	a.mu.Unlock()
}

func (a *Adapter) sessionFromToken(resp *tokenResponse, op string) (*domain.ProviderSession, error) {
	if resp.User == nil {
		return nil, domain.NewTransportError(op, fmt.Errorf("response carries no user"))
	}

	userID, err := uuid.Parse(resp.User.ID)
	if err != nil {
		return nil, domain.NewTransportError(op, fmt.Errorf("invalid user id %q: %w", resp.User.ID, err))
	}

	var expiresAt time.Time
	if resp.ExpiresIn > 0 {
		expiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}

	session, err := domain.NewSession(resp.AccessToken, resp.RefreshToken, expiresAt)
	if err != nil {
		return nil, domain.NewTransportError(op, err)
	}

	return &domain.ProviderSession{
		Session: *session,
		UserID:  userID,
		Email:   resp.User.Email,
	}, nil
}

// doJSON executes a provider API call. bearer overrides the anon key as the
// Authorization token when non-empty. out may be nil for calls whose body is
// irrelevant.
func (a *Adapter) doJSON(ctx context.Context, method, path, bearer string, in, out interface{}) error {
	var reqBody *bytes.Buffer
	if in != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(in); err != nil {
			return domain.NewTransportError(method+" "+path, err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, a.client.baseURL+path, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, a.client.baseURL+path, nil)
	}
	if err != nil {
		return domain.NewTransportError(method+" "+path, err)
	}

	req.Header.Set("apikey", a.client.anonKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	} else {
		req.Header.Set("Authorization", "Bearer "+a.client.anonKey)
	}

	resp, err := a.client.httpClient.Do(req)
	if err != nil {
		return domain.NewTransportError(method+" "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return domain.NewTransportError(method+" "+path, err)
		}
	}
	return nil
}

func (a *Adapter) doAdmin(ctx context.Context, method, path string) error {
	req, err := http.NewRequestWithContext(ctx, method, a.client.baseURL+path, nil)
	if err != nil {
		return domain.NewTransportError(method+" "+path, err)
	}

	req.Header.Set("apikey", a.client.serviceKey)
	req.Header.Set("Authorization", "Bearer "+a.client.serviceKey)

	resp, err := a.client.httpClient.Do(req)
	if err != nil {
		return domain.NewTransportError(method+" "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	return nil
}
