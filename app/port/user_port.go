package port

//go:generate mockgen -source=user_port.go -destination=../mocks/mock_user_port.go

import (
	"context"

	"github.com/google/uuid"

	"vocablo/app/domain"
)

// ProfileRepository is row access to the application-owned users table,
// keyed by the provider's user identifier.
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
