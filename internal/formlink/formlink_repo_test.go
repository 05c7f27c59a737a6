package formlink_test

import (
	"context"
	"regexp"
	"testing"

	"go-inova/internal/formlink"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_Current_MostRecentlyUpdated(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "form_links" ORDER BY updated_at DESC LIMIT`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "url"}).AddRow(id.String(), "https://forms.example.com/new"))

	f, err := formlink.NewRepository(gdb).Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, f.ID)
	assert.Equal(t, "https://forms.example.com/new", f.URL)
	assert.NoError(t, mock.ExpectationsWereMet())
}
