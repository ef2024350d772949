package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/joho/godotenv"
	slogctx "github.com/veqryn/slog-context"

	"filmbot/internal/api"
	"filmbot/internal/catalog"
	"filmbot/internal/config"
	"filmbot/internal/db"
	"filmbot/internal/dispatcher"
	"filmbot/internal/handlers"
	"filmbot/internal/session"
	"filmbot/internal/telegram_api"
)

func main() {
	// --- Блок инициализации ---
	err := godotenv.Load()
	if err != nil {
		slog.Warn("Не удалось загрузить файл .env. Переменные окружения должны быть установлены иным способом.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Критическая ошибка: не удалось загрузить конфигурацию", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.IsDev())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.InitDB(ctx, cfg.DatabaseURL); err != nil {
		slog.Error("Критическая ошибка: не удалось инициализировать базу данных", "error", err, "db_host", cfg.DBHost, "db_name", cfg.DBName)
		os.Exit(1)
	}
	defer db.CloseDB()

	if err := telegram_api.InitBot(cfg.TelegramToken, cfg.IsDev()); err != nil {
		slog.Error("Критическая ошибка: не удалось инициализировать Telegram бота", "error", err)
		os.Exit(1)
	}
	botClient := telegram_api.Client

	favorites := db.NewFavoritesRepository(db.DB)
	sessionManager := session.NewSessionManager(cfg.SessionTTL, cfg.SessionCleanupInterval)
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, cfg.KinopoiskAPIKey, cfg.CatalogTimeout)

	botHandler := handlers.NewBotHandler(handlers.HandlerDependencies{
		BotClient: botClient,
		Dispatcher: dispatcher.New(dispatcher.Deps{
			Catalog:     catalogClient,
			Sessions:    sessionManager,
			Favorites:   favorites,
			BotUsername: botClient.UserName(),
			Typing:      func(ctx context.Context, chatID int64) {
				telegram_api.SendTyping(ctx, botClient, chatID)
			},
		}),
	})

	// --- HTTP API ---
	httpServer := &http.Server{
		Addr: ":" + cfg.HTTPPort,
		Handler: api.NewRouter(api.ApiDependencies{
			Favorites:   favorites,
			Sessions:    sessionManager,
			APIKey:      cfg.HTTPAPIKey,
			BotUsername: botClient.UserName(),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("Запуск HTTP-сервера", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Не удалось запустить HTTP-сервер", "error", err)
			stop()
		}
	}()

	// --- Long polling ---
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates, err := botClient.GetUpdatesChan(u)
	if err != nil {
		slog.Error("Критическая ошибка: не удалось получить канал обновлений", "error", err)
		os.Exit(1)
	}

	slog.Info("Бот и API-сервер запущены и готовы к работе...")

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case update, ok := <-updates:
			if !ok {
				break loop
			}
			if update.Message == nil {
				continue
			}
			go botHandler.HandleMessage(update)
		}
	}

	slog.Info("Остановка бота...")
	botClient.StopReceivingUpdates()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Ошибка остановки HTTP-сервера", "error", err)
	}
}

// setupLogger ставит текстовый slog-обработчик, который дописывает атрибуты из контекста.
func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slogctx.NewHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}), nil)
	slog.SetDefault(slog.New(h))
}
