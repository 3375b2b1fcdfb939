package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProficiencyLevel_IsValid(t *testing.T) {
	assert.True(t, LevelBeginner.IsValid())
	assert.True(t, LevelElementary.IsValid())
	assert.True(t, LevelIntermediate.IsValid())
	assert.True(t, LevelAdvanced.IsValid())
	assert.False(t, ProficiencyLevel("expert").IsValid())
	assert.False(t, ProficiencyLevel("").IsValid())
}

func TestUserPreferences_Validate(t *testing.T) {
	tests := []struct {
		name    string
		prefs   UserPreferences
		wantErr bool
	}{
		{
			name: "complete preferences",
			prefs: UserPreferences{
				Level:     LevelBeginner,
				Topic:     "viajes",
				CreatedAt: time.Now(),
			},
			wantErr: false,
		},
		{
			name: "unknown level",
			prefs: UserPreferences{
				Level:     "expert",
				Topic:     "viajes",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing topic",
			prefs: UserPreferences{
				Level:     LevelBeginner,
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "topic too long",
			prefs: UserPreferences{
				Level:     LevelBeginner,
				Topic:     strings.Repeat("a", 101),
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "topic with control characters",
			prefs: UserPreferences{
				Level:     LevelElementary,
				Topic:     "via\njes",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing created_at",
			prefs: UserPreferences{
				Level: LevelBeginner,
				Topic: "viajes",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prefs.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserPreferences_Merge(t *testing.T) {
	level := LevelIntermediate
	topic := "comida"
	done := true

	t.Run("patch overrides only the provided fields", func(t *testing.T) {
		current := UserPreferences{
			Level:     LevelBeginner,
			Topic:     "viajes",
			CreatedAt: time.Now().Add(-time.Hour),
		}

		merged := current.Merge(PreferencesPatch{Level: &level})

		assert.Equal(t, LevelIntermediate, merged.Level)
		assert.Equal(t, "viajes", merged.Topic)
		assert.False(t, merged.CompletedOnboarding)
		assert.Equal(t, current.CreatedAt, merged.CreatedAt)
		assert.True(t, merged.UpdatedAt.After(current.CreatedAt))

		// Receiver stays untouched.
		assert.Equal(t, LevelBeginner, current.Level)
	})

	t.Run("full patch", func(t *testing.T) {
		current := UserPreferences{}

		merged := current.Merge(PreferencesPatch{
			Level:               &level,
			Topic:               &topic,
			CompletedOnboarding: &done,
		})

		assert.Equal(t, LevelIntermediate, merged.Level)
		assert.Equal(t, "comida", merged.Topic)
		assert.True(t, merged.CompletedOnboarding)
		assert.False(t, merged.CreatedAt.IsZero())
	})

	t.Run("empty patch still stamps UpdatedAt", func(t *testing.T) {
		current := UserPreferences{Level: LevelBeginner, Topic: "viajes"}

		merged := current.Merge(PreferencesPatch{})

		assert.Equal(t, current.Level, merged.Level)
		assert.Equal(t, current.Topic, merged.Topic)
		assert.False(t, merged.UpdatedAt.IsZero())
	})
}

func TestUserPreferences_CanCompleteOnboarding(t *testing.T) {
	assert.False(t, (&UserPreferences{}).CanCompleteOnboarding())
	assert.False(t, (&UserPreferences{Level: LevelBeginner}).CanCompleteOnboarding())
	assert.False(t, (&UserPreferences{Topic: "viajes"}).CanCompleteOnboarding())
	assert.True(t, (&UserPreferences{Level: LevelBeginner, Topic: "viajes"}).CanCompleteOnboarding())
}
