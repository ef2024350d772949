// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"filmbot/internal/constants"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	TelegramToken string
	AppEnv        string

	KinopoiskAPIKey string
	CatalogBaseURL  string
	CatalogTimeout  time.Duration

	DatabaseURL string
	DBHost      string
	DBName      string

	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration

	HTTPPort   string
	HTTPAPIKey string
}

// IsDev сообщает, что бот запущен в режиме разработки.
func (c *Config) IsDev() bool {
	return c.AppEnv == "dev"
}

// LoadConfig загружает конфигурацию из переменных окружения.
// .env к этому моменту уже подгружен godotenv в main.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		TelegramToken:   os.Getenv("TELEGRAM_APITOKEN"),
		AppEnv:          os.Getenv("ENV"),
		KinopoiskAPIKey: os.Getenv("KINOPOISK_API_KEY"),
		CatalogBaseURL:  os.Getenv("CATALOG_BASE_URL"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		HTTPPort:        os.Getenv("HTTP_PORT"),
		HTTPAPIKey:      os.Getenv("HTTP_API_KEY"),
	}

	cfg.CatalogTimeout = durationFromEnv("CATALOG_TIMEOUT", constants.DEFAULT_CATALOG_TIMEOUT)
	cfg.SessionTTL = durationFromEnv("SESSION_TTL", constants.DEFAULT_SESSION_TTL)
	cfg.SessionCleanupInterval = durationFromEnv("SESSION_CLEANUP_INTERVAL", constants.DEFAULT_SESSION_CLEANUP_INTERVAL)

	if cfg.CatalogBaseURL == "" {
		cfg.CatalogBaseURL = constants.CATALOG_DEFAULT_BASE_URL
	}
	if !strings.HasSuffix(cfg.CatalogBaseURL, "/") {
		cfg.CatalogBaseURL += "/"
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8080"
	}
	if cfg.HTTPAPIKey == "" {
		slog.Warn("Предупреждение: HTTP_API_KEY не установлен, маршруты /api/* отключены.")
	}

	var errs []error
	if cfg.TelegramToken == "" {
		errs = append(errs, errors.New("TELEGRAM_APITOKEN не установлен"))
	}
	if cfg.KinopoiskAPIKey == "" {
		errs = append(errs, errors.New("KINOPOISK_API_KEY не установлен"))
	}
	if cfg.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL не установлен"))
	} else {
		parsedURL, err := url.Parse(cfg.DatabaseURL)
		if err != nil {
			errs = append(errs, fmt.Errorf("ошибка парсинга DATABASE_URL: %w", err))
		} else {
			cfg.DBHost = parsedURL.Hostname()
			cfg.DBName = strings.TrimPrefix(parsedURL.Path, "/")
		}
	}
	if _, err := url.Parse(cfg.CatalogBaseURL); err != nil {
		errs = append(errs, fmt.Errorf("ошибка парсинга CATALOG_BASE_URL: %w", err))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	slog.Info("Конфигурация загружена.",
		"env", cfg.AppEnv,
		"catalog_base_url", cfg.CatalogBaseURL,
		"catalog_timeout", cfg.CatalogTimeout,
		"session_ttl", cfg.SessionTTL,
		"db_host", cfg.DBHost,
	)
	return cfg, nil
}

// durationFromEnv читает длительность в формате time.ParseDuration ("5s", "30m").
// При пустом или некорректном значении возвращает значение по умолчанию.
func durationFromEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("Предупреждение: некорректная длительность, используется значение по умолчанию",
			"key", key, "value", raw, "default", def)
		return def
	}
	return d
}
