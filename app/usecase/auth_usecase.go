package usecase

import (
	"context"
	"log/slog"

	"vocablo/app/domain"
	"vocablo/app/port"
	"vocablo/app/utils/validator"
)

// AuthUseCase is the server-side authentication surface behind the request
// handlers. It holds no per-user state: identity is re-derived from the
// request's cookies on every call.
type AuthUseCase struct {
	gateway  port.AuthGateway
	profiles port.ProfileRepository
	validate *validator.Validator
	logger   *slog.Logger
}

func NewAuthUseCase(gateway port.AuthGateway, profiles port.ProfileRepository, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{
		gateway:  gateway,
		profiles: profiles,
		validate: validator.New(),
		logger:   logger.With("component", "auth_usecase"),
	}
}

var _ port.AuthUsecase = (*AuthUseCase)(nil)

// SignIn authenticates the credentials with the provider and loads the
// profile row. A session whose profile row is missing is rejected outright;
// no tokens should be handed to the caller in that case.
func (u *AuthUseCase) SignIn(ctx context.Context, creds domain.Credentials) (*domain.ProviderSession, *domain.User, error) {
	if err := u.validate.Validate(creds); err != nil {
		return nil, nil, err
	}

	live, err := u.gateway.SignInWithPassword(ctx, creds.Email, creds.Password)
	if err != nil {
		return nil, nil, err
	}

	profile, err := u.profiles.GetByID(ctx, live.UserID)
	if err != nil {
		u.logger.Warn("sign in succeeded but profile row is missing",
			"user_id", live.UserID, "error", err)
		return nil, nil, domain.NewProfileStoreError("load profile after sign in", err)
	}

	u.logger.Info("user signed in", "user_id", profile.ID)
	return live, profile, nil
}

// Register creates the provider account and the matching profile row. If the
// row insert fails, the just-created account is deleted best-effort so the
// two stores do not drift apart.
func (u *AuthUseCase) Register(ctx context.Context, reg domain.Registration) (*domain.RegisterResult, error) {
	if err := u.validate.Validate(reg); err != nil {
		return nil, err
	}

	signUp, err := u.gateway.SignUp(ctx, reg.Email, reg.Password)
	if err != nil {
		return nil, err
	}

	profile, err := domain.NewUser(signUp.UserID, reg.Email, reg.Name)
	if err != nil {
		return nil, domain.NewValidationError("name", err.Error())
	}

	if err := u.profiles.Insert(ctx, profile); err != nil {
		if delErr := u.gateway.AdminDeleteUser(ctx, signUp.UserID); delErr != nil {
			u.logger.Error("compensating account deletion failed; provider account orphaned",
				"user_id", signUp.UserID, "error", delErr)
		}
		return nil, domain.NewProfileStoreError("insert profile after sign up", err)
	}

	u.logger.Info("user registered",
		"user_id", profile.ID, "pending_confirmation", signUp.Session == nil)

	return &domain.RegisterResult{
		User:                profile,
		Session:             signUp.Session,
		PendingConfirmation: signUp.Session == nil,
	}, nil
}

// SignOut revokes the access token with the provider. Failures are reported
// but callers are expected to clear their own cookies regardless.
func (u *AuthUseCase) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}
	if err := u.gateway.SignOut(ctx, accessToken); err != nil {
		u.logger.Warn("provider sign out failed", "error", err)
		return err
	}
	return nil
}

// IdentityFromToken verifies the access token with the provider and loads the
// matching profile row. Fails closed: an unverifiable token or a missing row
// yields no identity.
func (u *AuthUseCase) IdentityFromToken(ctx context.Context, accessToken string) (*domain.User, error) {
	if accessToken == "" {
		return nil, domain.ErrNoSession
	}

	remote, err := u.gateway.GetUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	profile, err := u.profiles.GetByID(ctx, remote.ID)
	if err != nil {
		u.logger.Warn("token verified but profile row is missing",
			"user_id", remote.ID, "error", err)
		return nil, err
	}

	return profile, nil
}
