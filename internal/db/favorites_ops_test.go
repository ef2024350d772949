package db

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmbot/internal/models"
)

func newMockRepo(t *testing.T) (*FavoritesRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return NewFavoritesRepository(conn), mock
}

func TestFavoritesRepository_AddFavorite(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2024, 6, 16, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO favorites (chat_id, category, name, comment, created_at)`)).
		WithArgs(int64(42), "drama", "Гоблин", "плакать").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, created))

	got, err := repo.AddFavorite(context.Background(), models.FavoriteEntry{
		ChatID: 42, Category: models.CategoryDrama, Name: "Гоблин", Comment: "плакать",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, created, got.CreatedAt)
}

func TestFavoritesRepository_AddFavorite_Error(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO favorites`)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.AddFavorite(context.Background(), models.FavoriteEntry{ChatID: 1, Category: models.CategoryAnime, Name: "x"})
	assert.ErrorContains(t, err, "connection reset")
}

func TestFavoritesRepository_RemoveFavorite(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM favorites WHERE chat_id = $1 AND category = $2 AND name = $3`)).
		WithArgs(int64(42), "anime", "Наруто").
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.RemoveFavorite(context.Background(), 42, models.CategoryAnime, "Наруто")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestFavoritesRepository_ListFavorites(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, comment, created_at`)).
		WithArgs(int64(42), "anime").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "comment", "created_at"}).
			AddRow(1, "Наруто", "пересмотреть", now).
			AddRow(2, "Ван-Пис", "", now))

	entries, err := repo.ListFavorites(context.Background(), 42, models.CategoryAnime)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Наруто", entries[0].Name)
	assert.Equal(t, models.CategoryAnime, entries[1].Category)
	assert.Equal(t, int64(42), entries[1].ChatID)
}

func TestFavoritesRepository_ListAllFavorites(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, category, name, comment, created_at`)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "name", "comment", "created_at"}).
			AddRow(1, "anime", "Наруто", "", now).
			AddRow(2, "drama", "Гоблин", "", now).
			AddRow(3, "cartoon", "???", "", now))

	all, err := repo.ListAllFavorites(context.Background(), 42)
	require.NoError(t, err)
	assert.Len(t, all[models.CategoryAnime], 1)
	assert.Len(t, all[models.CategoryDrama], 1)
	assert.Len(t, all, 2)
}

func TestEnsureSchema(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS favorites`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectExec(regexp.QuoteMeta(`CREATE INDEX IF NOT EXISTS idx_favorites_chat_category`)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureSchema(context.Background(), conn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_RollbackOnError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS favorites`)).WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err = EnsureSchema(context.Background(), conn)
	assert.ErrorContains(t, err, "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}
