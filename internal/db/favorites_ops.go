package db

import (
	"context"
	"database/sql"
	"fmt"

	slogctx "github.com/veqryn/slog-context"

	"filmbot/internal/models"
)

// FavoritesRepository - хранилище избранного в PostgreSQL.
// Записи упорядочены по id, т.е. в порядке добавления.
type FavoritesRepository struct {
	db *sql.DB
}

// NewFavoritesRepository создаёт репозиторий поверх открытого соединения.
func NewFavoritesRepository(conn *sql.DB) *FavoritesRepository {
	return &FavoritesRepository{db: conn}
}

// AddFavorite добавляет запись в конец списка пользователя для раздела.
func (r *FavoritesRepository) AddFavorite(ctx context.Context, entry models.FavoriteEntry) (models.FavoriteEntry, error) {
	query := `
        INSERT INTO favorites (chat_id, category, name, comment, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, entry.ChatID, entry.Category.Key(), entry.Name, entry.Comment).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return entry, fmt.Errorf("ошибка добавления в избранное (chat_id %d, %s): %w", entry.ChatID, entry.Category, err)
	}
	slogctx.Info(ctx, "Запись добавлена в избранное", "favorite_id", entry.ID, "category", entry.Category.Key())
	return entry, nil
}

// RemoveFavorite удаляет записи раздела с точным совпадением названия.
// Возвращает количество удалённых записей.
func (r *FavoritesRepository) RemoveFavorite(ctx context.Context, chatID int64, category models.Category, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE chat_id = $1 AND category = $2 AND name = $3`,
		chatID, category.Key(), name)
	if err != nil {
		return 0, fmt.Errorf("ошибка удаления из избранного (chat_id %d, %s): %w", chatID, category, err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("ошибка получения количества удалённых строк: %w", err)
	}
	return removed, nil
}

// ListFavorites возвращает список пользователя для раздела.
func (r *FavoritesRepository) ListFavorites(ctx context.Context, chatID int64, category models.Category) ([]models.FavoriteEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, comment, created_at
        FROM favorites
        WHERE chat_id = $1 AND category = $2
        ORDER BY id`, chatID, category.Key())
	if err != nil {
		return nil, fmt.Errorf("ошибка получения избранного (chat_id %d, %s): %w", chatID, category, err)
	}
	defer rows.Close()

	var entries []models.FavoriteEntry
	for rows.Next() {
		e := models.FavoriteEntry{ChatID: chatID, Category: category}
		if err := rows.Scan(&e.ID, &e.Name, &e.Comment, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования записи избранного: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения избранного: %w", err)
	}
	return entries, nil
}

// ListAllFavorites возвращает всё избранное пользователя, сгруппированное по разделам.
func (r *FavoritesRepository) ListAllFavorites(ctx context.Context, chatID int64) (map[models.Category][]models.FavoriteEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, category, name, comment, created_at
        FROM favorites
        WHERE chat_id = $1
        ORDER BY category, id`, chatID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения избранного (chat_id %d): %w", chatID, err)
	}
	defer rows.Close()

	result := make(map[models.Category][]models.FavoriteEntry)
	for rows.Next() {
		var categoryKey string
		e := models.FavoriteEntry{ChatID: chatID}
		if err := rows.Scan(&e.ID, &categoryKey, &e.Name, &e.Comment, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования записи избранного: %w", err)
		}
		category, ok := models.ParseCategoryKey(categoryKey)
		if !ok {
			slogctx.Warn(ctx, "Неизвестный раздел в таблице избранного", "category", categoryKey, "favorite_id", e.ID)
			continue
		}
		e.Category = category
		result[category] = append(result[category], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения избранного: %w", err)
	}
	return result, nil
}
