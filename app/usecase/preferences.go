package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"vocablo/app/domain"
	"vocablo/app/port"
)

// Prefix for the per-user preferences snapshot key.
const preferencesStoragePrefix = "user-preferences:"

// PreferencesUseCase caches onboarding selections per user. One instance is
// shared across requests; every lookup and snapshot is keyed by the user's
// provider identifier so identities never observe each other's state.
// Updates are merge-then-validate: a partial patch is applied on top of the
// current value, the merged result is validated as a whole, and only a valid
// result is committed and persisted.
type PreferencesUseCase struct {
	store  port.KVStore
	logger *slog.Logger

	mu      sync.Mutex
	entries map[uuid.UUID]*preferencesEntry
}

type preferencesEntry struct {
	prefs *domain.UserPreferences
}

func NewPreferencesUseCase(store port.KVStore, logger *slog.Logger) *PreferencesUseCase {
	return &PreferencesUseCase{
		store:   store,
		logger:  logger.With("component", "preferences_cache"),
		entries: make(map[uuid.UUID]*preferencesEntry),
	}
}

var _ port.PreferencesCache = (*PreferencesUseCase)(nil)

// Initialize loads the user's persisted preferences. Corrupt or invalid data
// is discarded and the stored entry removed. Idempotent per user.
func (p *PreferencesUseCase) Initialize(ctx context.Context, userID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.entryLocked(ctx, userID)
	return nil
}

// Current returns a copy of the user's cached preferences, or nil when none
// are set.
func (p *PreferencesUseCase) Current(ctx context.Context, userID uuid.UUID) *domain.UserPreferences {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry := p.entryLocked(ctx, userID)
	if entry.prefs == nil {
		return nil
	}
	copied := *entry.prefs
	return &copied
}

// SetLevel records the proficiency selection.
func (p *PreferencesUseCase) SetLevel(ctx context.Context, userID uuid.UUID, level domain.ProficiencyLevel) error {
	return p.SetPreferences(ctx, userID, domain.PreferencesPatch{Level: &level})
}

// SetTopic records the topic selection.
func (p *PreferencesUseCase) SetTopic(ctx context.Context, userID uuid.UUID, topic string) error {
	return p.SetPreferences(ctx, userID, domain.PreferencesPatch{Topic: &topic})
}

// SetPreferences merges a partial update, validates the merged whole and, if
// valid, commits and persists it. An invalid merge leaves the cached value
// untouched.
func (p *PreferencesUseCase) SetPreferences(ctx context.Context, userID uuid.UUID, patch domain.PreferencesPatch) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry := p.entryLocked(ctx, userID)
	base := entry.prefs
	if base == nil {
		base = &domain.UserPreferences{CreatedAt: time.Now()}
	}

	merged := base.Merge(patch)

	// A fresh cache legitimately has only one of the two selections until
	// onboarding finishes, so validation of the merged whole is deferred
	// until both are present.
	if merged.Level != "" && !merged.Level.IsValid() {
		return domain.NewValidationError("level", "invalid proficiency level")
	}
	if len(merged.Topic) > 100 {
		return domain.NewValidationError("topic", "topic must be at most 100 characters")
	}
	if merged.Level != "" && merged.Topic != "" {
		if err := merged.Validate(); err != nil {
			return domain.NewValidationError("preferences", err.Error())
		}
	}

	entry.prefs = &merged
	p.persistLocked(ctx, userID, &merged)
	return nil
}

// CompleteOnboarding marks onboarding as finished. Requires both selections.
func (p *PreferencesUseCase) CompleteOnboarding(ctx context.Context, userID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry := p.entryLocked(ctx, userID)
	if entry.prefs == nil || !entry.prefs.CanCompleteOnboarding() {
		return domain.NewValidationError("preferences", "level and topic must be chosen before completing onboarding")
	}

	completed := true
	merged := entry.prefs.Merge(domain.PreferencesPatch{CompletedOnboarding: &completed})
	entry.prefs = &merged
	p.persistLocked(ctx, userID, &merged)

	p.logger.Info("onboarding completed", "user_id", userID, "level", merged.Level, "topic", merged.Topic)
	return nil
}

// Clear drops the user's cached value and persisted entry. Called on logout.
func (p *PreferencesUseCase) Clear(ctx context.Context, userID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.entries, userID)
	p.removeLocked(ctx, userID)
	return nil
}

// entryLocked returns the user's cache entry, loading the persisted snapshot
// on first touch. Corrupt or invalid data is discarded and removed.
func (p *PreferencesUseCase) entryLocked(ctx context.Context, userID uuid.UUID) *preferencesEntry {
	if entry, ok := p.entries[userID]; ok {
		return entry
	}

	entry := &preferencesEntry{}
	p.entries[userID] = entry

	data, err := p.store.Get(ctx, preferencesKey(userID))
	if err != nil {
		if !errors.Is(err, port.ErrKeyNotFound) {
			p.logger.Warn("failed to read persisted preferences", "user_id", userID, "error", err)
		}
		return entry
	}

	var prefs domain.UserPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		p.logger.Warn("persisted preferences are corrupt, discarding", "user_id", userID, "error", err)
		p.removeLocked(ctx, userID)
		return entry
	}
	if err := prefs.Validate(); err != nil {
		p.logger.Warn("persisted preferences failed validation, discarding", "user_id", userID, "error", err)
		p.removeLocked(ctx, userID)
		return entry
	}

	entry.prefs = &prefs
	return entry
}

func (p *PreferencesUseCase) persistLocked(ctx context.Context, userID uuid.UUID, prefs *domain.UserPreferences) {
	data, err := json.Marshal(prefs)
	if err != nil {
		p.logger.Error("failed to serialize preferences", "user_id", userID, "error", err)
		return
	}
	if err := p.store.Set(ctx, preferencesKey(userID), data); err != nil {
		p.logger.Warn("failed to persist preferences", "user_id", userID, "error", err)
	}
}

func (p *PreferencesUseCase) removeLocked(ctx context.Context, userID uuid.UUID) {
	if err := p.store.Delete(ctx, preferencesKey(userID)); err != nil && !errors.Is(err, port.ErrKeyNotFound) {
		p.logger.Warn("failed to remove persisted preferences", "user_id", userID, "error", err)
	}
}

func preferencesKey(userID uuid.UUID) string {
	return preferencesStoragePrefix + userID.String()
}
