package domain

import "errors"

// Sentinel errors shared across layers.
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrRateLimited        = errors.New("too many requests")

	// Session errors
	ErrNoSession      = errors.New("no active session")
	ErrSessionExpired = errors.New("session expired")
	ErrInvalidSession = errors.New("invalid session")

	// Profile errors
	ErrProfileNotFound = errors.New("profile row not found")

	// General errors
	ErrInternal = errors.New("internal error")
)

// Remote provider error codes. The gateway folds the provider's structured
// error body into these; handler logic switches on code, never on message
// substrings.
const (
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeEmailNotConfirmed  = "email_not_confirmed"
	ErrCodeUserAlreadyExists  = "user_already_exists"
	ErrCodeRateLimit          = "over_request_rate_limit"
	ErrCodeSessionNotFound    = "session_not_found"
	ErrCodeBadJWT             = "bad_jwt"
	ErrCodeUnknown            = "unknown"
)

// ValidationError reports a schema rejection for a single form field. It is
// surfaced to the user and never reaches the remote provider.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// RemoteAuthError is a failure reported by the hosted auth provider, carrying
// the provider's structured error code and raw message.
type RemoteAuthError struct {
	Code    string
	Message string
}

func (e *RemoteAuthError) Error() string {
	return "remote auth error (" + e.Code + "): " + e.Message
}

// NewRemoteAuthError creates a provider failure with a structured code.
func NewRemoteAuthError(code, message string) *RemoteAuthError {
	if code == "" {
		code = ErrCodeUnknown
	}
	return &RemoteAuthError{Code: code, Message: message}
}

// ProfileStoreError is a failure reading or writing the application-owned
// profile rows. Fatal to the operation that hit it.
type ProfileStoreError struct {
	Op    string
	Cause error
}

func (e *ProfileStoreError) Error() string {
	if e.Cause != nil {
		return "profile store: " + e.Op + ": " + e.Cause.Error()
	}
	return "profile store: " + e.Op
}

func (e *ProfileStoreError) Unwrap() error {
	return e.Cause
}

// NewProfileStoreError wraps a profile row failure.
func NewProfileStoreError(op string, cause error) *ProfileStoreError {
	return &ProfileStoreError{Op: op, Cause: cause}
}

// TransportError is a network-level failure talking to an external
// collaborator, before any structured response was decoded.
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return "transport: " + e.Op + ": " + e.Cause.Error()
	}
	return "transport: " + e.Op
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// NewTransportError wraps a network failure.
func NewTransportError(op string, cause error) *TransportError {
	return &TransportError{Op: op, Cause: cause}
}
