package gateway

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"vocablo/app/domain"
	"vocablo/app/port"
)

// UserGateway wraps the profile repository for the usecase layer: it logs row
// access and folds driver failures into ProfileStoreError, keeping the
// ErrProfileNotFound sentinel intact.
type UserGateway struct {
	profiles port.ProfileRepository
	logger   *slog.Logger
}

func NewUserGateway(profiles port.ProfileRepository, logger *slog.Logger) port.ProfileRepository {
	return &UserGateway{
		profiles: profiles,
		logger:   logger.With("component", "user_gateway"),
	}
}

func (g *UserGateway) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := g.profiles.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			g.logger.Error("failed to load profile row", "user_id", id, "error", err)
		}
		return nil, g.fold(err, "get profile")
	}
	return user, nil
}

func (g *UserGateway) Insert(ctx context.Context, user *domain.User) error {
	if err := g.profiles.Insert(ctx, user); err != nil {
		g.logger.Error("failed to insert profile row", "user_id", user.ID, "error", err)
		return g.fold(err, "insert profile")
	}
	g.logger.Info("profile row created", "user_id", user.ID)
	return nil
}

func (g *UserGateway) Update(ctx context.Context, user *domain.User) error {
	if err := g.profiles.Update(ctx, user); err != nil {
		g.logger.Error("failed to update profile row", "user_id", user.ID, "error", err)
		return g.fold(err, "update profile")
	}
	return nil
}

func (g *UserGateway) Delete(ctx context.Context, id uuid.UUID) error {
	if err := g.profiles.Delete(ctx, id); err != nil {
		g.logger.Error("failed to delete profile row", "user_id", id, "error", err)
		return g.fold(err, "delete profile")
	}
	return nil
}

// fold keeps sentinel and already-tagged errors intact and wraps everything
// else as a profile store failure.
func (g *UserGateway) fold(err error, op string) error {
	if errors.Is(err, domain.ErrProfileNotFound) {
		return err
	}
	var sErr *domain.ProfileStoreError
	if errors.As(err, &sErr) {
		return err
	}
	return domain.NewProfileStoreError(op, err)
}
