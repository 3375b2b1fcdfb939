package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vocablo/app/domain"
	mock_port "vocablo/app/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthGateway_PassesTaggedErrorsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := domain.NewRemoteAuthError(domain.ErrCodeInvalidCredentials, "invalid login credentials")

	mockProvider := mock_port.NewMockAuthProvider(ctrl)
	mockProvider.EXPECT().SignInWithPassword(gomock.Any(), "ana@example.com", "pw").
		Return(nil, remote)

	g := NewAuthGateway(mockProvider, testLogger())

	_, err := g.SignInWithPassword(context.Background(), "ana@example.com", "pw")
	require.Error(t, err)

	var rErr *domain.RemoteAuthError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, domain.ErrCodeInvalidCredentials, rErr.Code)
}

func TestAuthGateway_FoldsUntaggedErrorsIntoTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mock_port.NewMockAuthProvider(ctrl)
	mockProvider.EXPECT().SignUp(gomock.Any(), "ana@example.com", "pw").
		Return(nil, errors.New("connection reset"))

	g := NewAuthGateway(mockProvider, testLogger())

	_, err := g.SignUp(context.Background(), "ana@example.com", "pw")
	require.Error(t, err)

	var tErr *domain.TransportError
	assert.ErrorAs(t, err, &tErr)
}

func TestAuthGateway_PreservesNoSessionSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mock_port.NewMockAuthProvider(ctrl)
	mockProvider.EXPECT().GetSession(gomock.Any()).Return(nil, domain.ErrNoSession)

	g := NewAuthGateway(mockProvider, testLogger())

	_, err := g.GetSession(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestAuthGateway_ForwardsSuccesses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	live := &domain.ProviderSession{
		Session: domain.Session{AccessToken: "a", RefreshToken: "r"},
		UserID:  userID,
	}

	mockProvider := mock_port.NewMockAuthProvider(ctrl)
	mockProvider.EXPECT().SignInWithPassword(gomock.Any(), "ana@example.com", "pw").Return(live, nil)
	mockProvider.EXPECT().GetUser(gomock.Any(), "tok").
		Return(&domain.ProviderUser{ID: userID}, nil)
	mockProvider.EXPECT().AdminDeleteUser(gomock.Any(), userID).Return(nil)

	g := NewAuthGateway(mockProvider, testLogger())

	session, err := g.SignInWithPassword(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)

	user, err := g.GetUser(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)

	assert.NoError(t, g.AdminDeleteUser(context.Background(), userID))
}

func TestAuthGateway_ForwardsSubscriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unsubscribed := false
	mockProvider := mock_port.NewMockAuthProvider(ctrl)
	mockProvider.EXPECT().OnAuthStateChange(gomock.Any()).
		Return(func() { unsubscribed = true })

	g := NewAuthGateway(mockProvider, testLogger())

	unsubscribe := g.OnAuthStateChange(func(domain.AuthEvent) {})
	unsubscribe()
	assert.True(t, unsubscribed)
}
