// Файл: internal/db/db.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var DB *sql.DB // Глобальная переменная для хранения подключения к БД

// InitDB открывает соединение с PostgreSQL и создаёт схему избранного.
func InitDB(ctx context.Context, databaseURL string) error {
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL не установлена")
	}

	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	// Нагрузка небольшая: одна таблица, короткие запросы.
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return fmt.Errorf("ошибка проверки соединения с базой данных: %w", err)
	}
	slog.Info("Успешное подключение к базе данных.")

	if err := EnsureSchema(ctx, conn); err != nil {
		conn.Close()
		return err
	}

	DB = conn
	slog.Info("Инициализация базы данных успешно завершена.")
	return nil
}

// CloseDB закрывает соединение с БД.
func CloseDB() {
	if DB == nil {
		return
	}
	if err := DB.Close(); err != nil {
		slog.Error("Ошибка закрытия соединения с БД", "error", err)
		return
	}
	slog.Info("Соединение с БД закрыто.")
}

const createTablesSQL = `
CREATE TABLE IF NOT EXISTS favorites (
    id SERIAL PRIMARY KEY,
    chat_id BIGINT NOT NULL,
    category TEXT NOT NULL CHECK (category IN ('anime', 'drama')),
    name TEXT NOT NULL,
    comment TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
)`

var createIndexesSQL = []string{
	`CREATE INDEX IF NOT EXISTS idx_favorites_chat_category ON favorites(chat_id, category)`,
}

// EnsureSchema создаёт таблицы и индексы, если их ещё нет. Идемпотентна.
func EnsureSchema(ctx context.Context, conn *sql.DB) (err error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции для создания таблиц: %w", err)
	}
	defer func() {
		if err != nil {
			slog.Warn("Откат транзакции из-за ошибки", "error", err)
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, createTablesSQL); err != nil {
		return fmt.Errorf("ошибка создания таблиц: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции создания таблиц: %w", err)
	}
	slog.Info("Создание таблиц (если не существуют) завершено.")

	for _, stmt := range createIndexesSQL {
		// индекс не критичен для работы: логируем и идём дальше
		if _, errIdx := conn.ExecContext(ctx, stmt); errIdx != nil {
			slog.Warn("Предупреждение: ошибка при создании индекса", "statement", strings.TrimSpace(stmt), "error", errIdx)
		}
	}
	return nil
}
