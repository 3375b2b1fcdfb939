package domain

import "github.com/google/uuid"

// ProviderUser is the identity record the remote provider returns for a
// bearer token. Distinct from the application-owned profile row.
type ProviderUser struct {
	ID    uuid.UUID
	Email string
}

// SignUpResult is the outcome of a provider sign-up call. Session is nil when
// the provider requires email confirmation before issuing tokens.
type SignUpResult struct {
	UserID  uuid.UUID
	Email   string
	Session *Session
}

// RegisterResult is the outcome of a completed registration: the created
// profile row plus the session, if one was issued immediately.
type RegisterResult struct {
	User                *User
	Session             *Session
	PendingConfirmation bool
}
