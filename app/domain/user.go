package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

const maxNameLength = 100

// User represents the application-owned profile row for a provider identity.
// The remote provider owns credentials and session issuance; this record only
// holds the display data keyed by the provider's user identifier.
type User struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Email     *string   `json:"email,omitempty" validate:"omitempty,email"`
	Name      string    `json:"name" validate:"required,min=1,max=100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a profile row for a provider user id with validation.
func NewUser(id uuid.UUID, email, name string) (*User, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if len(name) > maxNameLength {
		return nil, fmt.Errorf("name must be at most %d characters", maxNameLength)
	}

	var emailPtr *string
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("invalid email format: %w", err)
		}
		emailPtr = &email
	}

	now := time.Now()

	return &User{
		ID:        id,
		Email:     emailPtr,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// EmailOrEmpty returns the email address or an empty string.
func (u *User) EmailOrEmpty() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}

// Rename updates the display name.
func (u *User) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name must be at most %d characters", maxNameLength)
	}
	u.Name = name
	u.UpdatedAt = time.Now()
	return nil
}

// Credentials is the sign-in form input.
type Credentials struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

// Registration is the sign-up form input.
type Registration struct {
	Name            string `json:"name" form:"name" validate:"required,min=1,max=100"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password"`
}
