package auth_test

import (
	"context"
	"regexp"
	"testing"

	"go-inova/internal/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("nullifies references in one transaction", func(t *testing.T) {
		gdb, mock := setupGorm(t)
		repo := auth.NewRepository(gdb)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE news SET owner_id = NULL")).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE form_links SET updated_by = NULL")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE startups SET created_by = NULL")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE projects SET coordinator_id = NULL WHERE coordinator_id IN (SELECT id FROM administrators WHERE user_id = $1)")).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM administrators")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Delete(ctx, id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user rolls back", func(t *testing.T) {
		gdb, mock := setupGorm(t)
		repo := auth.NewRepository(gdb)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE news").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("UPDATE form_links").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("UPDATE startups").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("UPDATE projects").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM administrators").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM users").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
