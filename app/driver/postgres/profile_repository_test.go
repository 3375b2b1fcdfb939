package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocablo/app/domain"
	"vocablo/app/utils/logger"
)

func createTestRepository(t *testing.T) (*ProfileRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewProfileRepository(mockDB, testLogger).(*ProfileRepository)
	return repo, mockDB
}

func createTestProfile(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser(uuid.New(), "ana@example.com", "Ana")
	require.NoError(t, err)
	return user
}

func TestProfileRepository_GetByID(t *testing.T) {
	t.Run("existing row", func(t *testing.T) {
		repo, mockDB := createTestRepository(t)
		user := createTestProfile(t)
		now := time.Now()

		rows := pgxmock.NewRows([]string{"id", "email", "name", "created_at", "updated_at"}).
			AddRow(user.ID, user.Email, user.Name, now, now)
		mockDB.ExpectQuery(`SELECT id, email, name, created_at, updated_at`).
			WithArgs(user.ID).
			WillReturnRows(rows)

		got, err := repo.GetByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.Name, got.Name)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("missing row maps to ErrProfileNotFound", func(t *testing.T) {
		repo, mockDB := createTestRepository(t)
		id := uuid.New()

		mockDB.ExpectQuery(`SELECT id, email, name, created_at, updated_at`).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestProfileRepository_Insert(t *testing.T) {
	repo, mockDB := createTestRepository(t)
	user := createTestProfile(t)

	mockDB.ExpectExec(`INSERT INTO users`).
		WithArgs(user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Insert(context.Background(), user))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestProfileRepository_Update(t *testing.T) {
	t.Run("existing row", func(t *testing.T) {
		repo, mockDB := createTestRepository(t)
		user := createTestProfile(t)

		mockDB.ExpectExec(`UPDATE users`).
			WithArgs(user.ID, user.Email, user.Name, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.Update(context.Background(), user))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mockDB := createTestRepository(t)
		user := createTestProfile(t)

		mockDB.ExpectExec(`UPDATE users`).
			WithArgs(user.ID, user.Email, user.Name, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.Update(context.Background(), user), domain.ErrProfileNotFound)
	})
}

func TestProfileRepository_Delete(t *testing.T) {
	t.Run("existing row", func(t *testing.T) {
		repo, mockDB := createTestRepository(t)
		id := uuid.New()

		mockDB.ExpectExec(`DELETE FROM users`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.Delete(context.Background(), id))
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mockDB := createTestRepository(t)
		id := uuid.New()

		mockDB.ExpectExec(`DELETE FROM users`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), id), domain.ErrProfileNotFound)
	})
}
