package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-catalog/internal/query"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db), mock
}

func TestQueryReturnsOrderedRows(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("FROM actors").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(2), []byte("Ann")).
			AddRow(int64(1), nil))

	rows, err := store.Query(context.Background(), query.ListActors())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"id", "name"}, rows[0].Columns())
	assert.Equal(t, "2", rows[0].Text("id"))
	name, ok := rows[0].Value("name")
	assert.True(t, ok)
	assert.Equal(t, "Ann", name, "raw bytes are normalized to string")

	assert.Equal(t, "", rows[1].Text("name"))
	_, ok = rows[1].Value("missing")
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryBindsArguments(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`WHERE movies\.id = \?`).
		WithArgs("9").
		WillReturnRows(sqlmock.NewRows([]string{"title"}))

	rows, err := store.Query(context.Background(), query.MovieDetail("9"))
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryPropagatesErrors(t *testing.T) {
	store, mock := newMockStore(t)

	boom := errors.New("connection refused")
	mock.ExpectQuery("FROM actors").WillReturnError(boom)

	rows, err := store.Query(context.Background(), query.ListActors())
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryPropagatesRowErrors(t *testing.T) {
	store, mock := newMockStore(t)

	boom := errors.New("lost connection")
	mock.ExpectQuery("FROM actors").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Ann").
			RowError(0, boom))

	_, err := store.Query(context.Background(), query.ListActors())
	assert.ErrorIs(t, err, boom)
}

func TestDSN(t *testing.T) {
	dsn := DSN("app", "secret", "db.local", "3306", "movies")
	assert.Contains(t, dsn, "app:secret@tcp(db.local:3306)/movies")
	assert.Contains(t, dsn, "charset=utf8mb4")

	assert.Contains(t, DSN("app", "", "127.0.0.1", "3306", "movies"), "app@tcp(127.0.0.1:3306)/movies")
}
