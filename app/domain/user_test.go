package domain_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocablo/app/domain"
)

func TestUser_NewUser(t *testing.T) {
	validID := uuid.New()

	tests := []struct {
		name      string
		id        uuid.UUID
		email     string
		userName  string
		wantErr   bool
		wantEmail bool
	}{
		{
			name:      "valid user with email",
			id:        validID,
			email:     "ana@example.com",
			userName:  "Ana",
			wantErr:   false,
			wantEmail: true,
		},
		{
			name:     "valid user without email",
			id:       validID,
			userName: "Ana",
			wantErr:  false,
		},
		{
			name:     "nil provider id",
			id:       uuid.Nil,
			email:    "ana@example.com",
			userName: "Ana",
			wantErr:  true,
		},
		{
			name:    "empty name",
			id:      validID,
			email:   "ana@example.com",
			wantErr: true,
		},
		{
			name:     "name too long",
			id:       validID,
			email:    "ana@example.com",
			userName: strings.Repeat("a", 101),
			wantErr:  true,
		},
		{
			name:     "malformed email",
			id:       validID,
			email:    "not-an-email",
			userName: "Ana",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := domain.NewUser(tt.id, tt.email, tt.userName)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.id, user.ID)
			assert.Equal(t, tt.userName, user.Name)
			assert.False(t, user.CreatedAt.IsZero())
			assert.False(t, user.UpdatedAt.IsZero())

			if tt.wantEmail {
				require.NotNil(t, user.Email)
				assert.Equal(t, tt.email, *user.Email)
			} else {
				assert.Nil(t, user.Email)
			}
		})
	}
}

func TestUser_EmailOrEmpty(t *testing.T) {
	withEmail, err := domain.NewUser(uuid.New(), "ana@example.com", "Ana")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", withEmail.EmailOrEmpty())

	withoutEmail, err := domain.NewUser(uuid.New(), "", "Ana")
	require.NoError(t, err)
	assert.Equal(t, "", withoutEmail.EmailOrEmpty())
}

func TestUser_Rename(t *testing.T) {
	user, err := domain.NewUser(uuid.New(), "ana@example.com", "Ana")
	require.NoError(t, err)
	before := user.UpdatedAt

	require.NoError(t, user.Rename("Ana María"))
	assert.Equal(t, "Ana María", user.Name)
	assert.True(t, !user.UpdatedAt.Before(before))

	assert.Error(t, user.Rename(""))
	assert.Error(t, user.Rename(strings.Repeat("a", 101)))
	assert.Equal(t, "Ana María", user.Name)
}
