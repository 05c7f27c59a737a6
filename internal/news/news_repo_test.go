package news_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-inova/internal/news"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestRepository_FindOldest_OrdersByID(t *testing.T) {
	gdb, mock := setupGorm(t)
	repo := news.NewRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "news" ORDER BY id ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(3, "oldest"))

	n, err := repo.FindOldest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		gdb, mock := setupGorm(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM news WHERE id = $1")).
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := news.NewRepository(gdb).DeleteByID(ctx, 4)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("already gone", func(t *testing.T) {
		gdb, mock := setupGorm(t)
		mock.ExpectExec("DELETE FROM news").WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := news.NewRepository(gdb).DeleteByID(ctx, 4)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_Count(t *testing.T) {
	gdb, mock := setupGorm(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "news"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	total, err := news.NewRepository(gdb).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	article := func() *news.News {
		return &news.News{ID: 1, Title: "Edital", Body: "...", Category: news.CategoryOutros, PublishedAt: time.Now()}
	}

	t.Run("existing row", func(t *testing.T) {
		gdb, mock := setupGorm(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "news" SET .+ WHERE "id" = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, news.NewRepository(gdb).Update(ctx, article()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("row removed concurrently is not re-inserted", func(t *testing.T) {
		gdb, mock := setupGorm(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "news" SET .+ WHERE "id" = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := news.NewRepository(gdb).Update(ctx, article())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
