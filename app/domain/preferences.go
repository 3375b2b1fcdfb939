package domain

import (
	"fmt"
	"time"
)

// ProficiencyLevel is the learner's self-reported tier.
type ProficiencyLevel string

const (
	LevelBeginner     ProficiencyLevel = "beginner"
	LevelElementary   ProficiencyLevel = "elementary"
	LevelIntermediate ProficiencyLevel = "intermediate"
	LevelAdvanced     ProficiencyLevel = "advanced"
)

// ValidLevels lists the accepted proficiency tiers in ascending order.
var ValidLevels = []ProficiencyLevel{LevelBeginner, LevelElementary, LevelIntermediate, LevelAdvanced}

// IsValid reports whether the level is one of the accepted tiers.
func (l ProficiencyLevel) IsValid() bool {
	for _, v := range ValidLevels {
		if l == v {
			return true
		}
	}
	return false
}

// UserPreferences holds the onboarding selections. Persisted with the same
// validate-before-trust discipline as the session snapshot.
type UserPreferences struct {
	Level               ProficiencyLevel `json:"level" validate:"required,proficiency_level"`
	Topic               string           `json:"topic" validate:"required,topic"`
	CompletedOnboarding bool             `json:"completed_onboarding"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// PreferencesPatch is a partial update merged with the current cached value
// before validation.
type PreferencesPatch struct {
	Level               *ProficiencyLevel
	Topic               *string
	CompletedOnboarding *bool
}

// Validate checks that the preferences are complete and consistent.
func (p *UserPreferences) Validate() error {
	if !p.Level.IsValid() {
		return fmt.Errorf("invalid proficiency level: %q", p.Level)
	}
	if p.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	if len(p.Topic) > 100 {
		return fmt.Errorf("topic must be at most 100 characters")
	}
	for _, r := range p.Topic {
		if r < 0x20 {
			return fmt.Errorf("topic must not contain control characters")
		}
	}
	if p.CreatedAt.IsZero() {
		return fmt.Errorf("created_at is required")
	}
	return nil
}

// Merge applies a partial update on top of the current preferences and stamps
// UpdatedAt. The receiver is not modified.
func (p *UserPreferences) Merge(patch PreferencesPatch) UserPreferences {
	merged := *p
	if patch.Level != nil {
		merged.Level = *patch.Level
	}
	if patch.Topic != nil {
		merged.Topic = *patch.Topic
	}
	if patch.CompletedOnboarding != nil {
		merged.CompletedOnboarding = *patch.CompletedOnboarding
	}
	if merged.CreatedAt.IsZero() {
		merged.CreatedAt = time.Now()
	}
	merged.UpdatedAt = time.Now()
	return merged
}

// CanCompleteOnboarding reports whether both selections were made.
func (p *UserPreferences) CanCompleteOnboarding() bool {
	return p.Level.IsValid() && p.Topic != ""
}
