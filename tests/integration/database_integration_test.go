package integration_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocablo/app/domain"
	"vocablo/app/driver/postgres"
	"vocablo/app/utils/logger"
)

func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	require.NoError(t, pool.Ping(ctx), "Should ping database successfully")

	var result int
	err = pool.QueryRow(ctx, "SELECT 1").Scan(&result)
	require.NoError(t, err, "Should execute simple query")
	assert.Equal(t, 1, result)
}

func TestProfileRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	testLogger, err := logger.New("debug")
	require.NoError(t, err, "Should create logger")

	repo := postgres.NewProfileRepository(pool, testLogger)

	t.Run("profile CRUD operations", func(t *testing.T) {
		userID := uuid.New()
		email := fmt.Sprintf("integration-%s@example.com", userID)

		user, err := domain.NewUser(userID, email, "Integration Tester")
		require.NoError(t, err, "Should create user domain object")

		require.NoError(t, repo.Insert(ctx, user), "Should insert profile row")

		t.Cleanup(func() {
			cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = repo.Delete(cleanupCtx, userID)
		})

		retrieved, err := repo.GetByID(ctx, userID)
		require.NoError(t, err, "Should retrieve profile row")
		assert.Equal(t, user.ID, retrieved.ID)
		assert.Equal(t, user.Name, retrieved.Name)
		require.NotNil(t, retrieved.Email)
		assert.Equal(t, email, *retrieved.Email)

		require.NoError(t, retrieved.Rename("Renamed Tester"))
		require.NoError(t, repo.Update(ctx, retrieved), "Should update profile row")

		renamed, err := repo.GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed Tester", renamed.Name)

		require.NoError(t, repo.Delete(ctx, userID), "Should delete profile row")

		_, err = repo.GetByID(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrProfileNotFound, "Deleted profile should be gone")
	})
}
