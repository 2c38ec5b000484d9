package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockRepo(t *testing.T) (IdeaRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewIdeaRepository(db), mock
}

func TestGormIdeaRepository_FindByID(t *testing.T) {
	repo, mock := setupMockRepo(t)

	ownerID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "description", "tags", "category", "status", "created_at", "updated_at"}).
		AddRow(1, ownerID.String(), "Test Idea", "Description", "a,b", "Application", "OPEN", now, now)

	mock.ExpectQuery(`SELECT (.+) FROM "ideas"`).WillReturnRows(rows)

	idea, err := repo.FindByID(1)
	require.NoError(t, err)
	require.EqualValues(t, 1, idea.ID)
	require.Equal(t, ownerID, idea.OwnerID)
	require.Equal(t, []string{"a", "b"}, []string(idea.Tags))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormIdeaRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := setupMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "description", "tags", "category", "status", "created_at", "updated_at"})
	mock.ExpectQuery(`SELECT (.+) FROM "ideas"`).WillReturnRows(rows)

	_, err := repo.FindByID(42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormIdeaRepository_Delete(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "ideas"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := repo.Delete(1)
	require.NoError(t, err)
	require.True(t, deleted)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormIdeaRepository_Delete_Missing(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "ideas"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	deleted, err := repo.Delete(42)
	require.NoError(t, err)
	require.False(t, deleted)

	require.NoError(t, mock.ExpectationsWereMet())
}
