package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"filmbot/internal/models"
)

// FavoritesReader - чтение избранного для HTTP API.
type FavoritesReader interface {
	ListFavorites(ctx context.Context, chatID int64, category models.Category) ([]models.FavoriteEntry, error)
	ListAllFavorites(ctx context.Context, chatID int64) (map[models.Category][]models.FavoriteEntry, error)
}

// SessionCounter сообщает число активных диалогов и время жизни сессии.
type SessionCounter interface {
	ActiveSessions() int
	TTL() time.Duration
}

// ApiDependencies содержит зависимости для обработчиков API.
type ApiDependencies struct {
	Favorites   FavoritesReader
	Sessions    SessionCounter
	APIKey      string
	BotUsername string
}

type server struct {
	deps ApiDependencies
}

// NewRouter создаёт chi-роутер с глобальными middleware и маршрутами API.
func NewRouter(deps ApiDependencies) *chi.Mux {
	r := chi.NewRouter()

	// ГЛОБАЛЬНЫЕ MIDDLEWARES ДОЛЖНЫ ИДТИ ПЕРЕД SetupRoutes
	r.Use(middleware.RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", apiKeyHeader},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	SetupRoutes(r, deps)
	return r
}

// SetupRoutes настраивает все маршруты для API.
func SetupRoutes(r chi.Router, deps ApiDependencies) {
	s := &server{deps: deps}

	r.Get("/healthz", s.Health)
	r.Get("/api/bot-info", s.BotInfo)

	r.Group(func(r chi.Router) {
		r.Use(APIKeyMiddleware(deps.APIKey))

		r.Route("/api/favorites/{chatID}", func(r chi.Router) {
			r.Get("/", s.GetFavorites)
			r.Get("/export", s.ExportFavorites)
		})
	})
}
