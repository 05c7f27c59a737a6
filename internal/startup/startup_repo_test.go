package startup_test

import (
	"context"
	"regexp"
	"testing"

	"go-inova/internal/startup"

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

func TestRepository_Delete_CascadesOwnedRows(t *testing.T) {
	gdb, mock := setupGorm(t)
	repo := startup.NewRepository(gdb)
	id := uuid.New()

	mock.ExpectBegin()
	for _, stmt := range []string{
		"DELETE FROM project_members WHERE project_id IN",
		"DELETE FROM projects WHERE startup_id",
		"DELETE FROM members WHERE startup_id",
		"DELETE FROM social_links WHERE startup_id",
		"DELETE FROM contact_infos WHERE startup_id",
		"DELETE FROM administrators WHERE startup_id",
	} {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM startups WHERE id")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_Missing(t *testing.T) {
	gdb, mock := setupGorm(t)
	repo := startup.NewRepository(gdb)

	mock.ExpectBegin()
	for i := 0; i < 6; i++ {
		mock.ExpectExec("DELETE FROM").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec("DELETE FROM startups").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), gorm.ErrRecordNotFound)
}

func TestRepository_Update_RowGone(t *testing.T) {
	gdb, mock := setupGorm(t)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "startups" SET .+ WHERE "id" = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := startup.NewRepository(gdb).Update(context.Background(), &startup.Startup{ID: uuid.New(), Name: "Acme"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
