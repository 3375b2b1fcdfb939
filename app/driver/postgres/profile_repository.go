package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"vocablo/app/domain"
	"vocablo/app/port"
)

// ProfileRepository implements port.ProfileRepository for PostgreSQL.
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository.
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// GetByID loads a profile row by the provider's user identifier.
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, email, name, created_at, updated_at
		FROM users
		WHERE id = $1`

	user := &domain.User{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to get profile row", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to get profile row: %w", err)
	}

	return user, nil
}

// Insert stores a new profile row.
func (r *ProfileRepository) Insert(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert profile row", "user_id", user.ID, "error", err)
		return fmt.Errorf("failed to insert profile row: %w", err)
	}

	r.logger.Info("profile row created", "user_id", user.ID)
	return nil
}

// Update replaces the mutable fields of a profile row.
func (r *ProfileRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET email = $2, name = $3, updated_at = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to update profile row", "user_id", user.ID, "error", err)
		return fmt.Errorf("failed to update profile row: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}

// Delete removes a profile row.
func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete profile row", "user_id", id, "error", err)
		return fmt.Errorf("failed to delete profile row: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	r.logger.Info("profile row deleted", "user_id", id)
	return nil
}
