package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	slogctx "github.com/veqryn/slog-context"

	"filmbot/internal/formatters"
	"filmbot/internal/models"
	"filmbot/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type jsonResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// --- Вспомогательные функции для JSON-ответов ---
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(jsonResponse{Status: "error", Message: message})
}

func writeJSONSuccess(w http.ResponseWriter, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(jsonResponse{Status: "success", Message: message, Data: data})
}

type favoritesPayload struct {
	ChatID    int64                             `json:"chat_id"`
	Favorites map[string][]models.FavoriteEntry `json:"favorites"`
}

// Health - проверка живости процесса.
func (s *server) Health(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"active_sessions": 0}
	if s.deps.Sessions != nil {
		data["active_sessions"] = s.deps.Sessions.ActiveSessions()
		data["session_ttl"] = s.deps.Sessions.TTL().String()
	}
	writeJSONSuccess(w, "ok", data)
}

// BotInfo отдаёт имя бота и ссылку на него.
func (s *server) BotInfo(w http.ResponseWriter, r *http.Request) {
	link, err := utils.GenerateShareLink(s.deps.BotUsername)
	if err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeJSONSuccess(w, "Bot info retrieved", map[string]string{
		"username": s.deps.BotUsername,
		"link":     link,
	})
}

// GetFavorites отдаёт избранное пользователя; ?category=anime|drama сужает выборку.
func (s *server) GetFavorites(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatIDParam(w, r)
	if !ok {
		return
	}
	ctx := slogctx.With(r.Context(), "chat_id", chatID)

	payload := favoritesPayload{ChatID: chatID, Favorites: map[string][]models.FavoriteEntry{}}

	if raw := r.URL.Query().Get("category"); raw != "" {
		category, ok := models.ParseCategoryKey(raw)
		if !ok {
			writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Unknown category %q", raw))
			return
		}
		entries, err := s.deps.Favorites.ListFavorites(ctx, chatID, category)
		if err != nil {
			slogctx.Error(ctx, "GetFavorites: ошибка чтения избранного", "error", err)
			writeJSONError(w, http.StatusInternalServerError, "Failed to load favorites")
			return
		}
		payload.Favorites[category.Key()] = nonNil(entries)
		writeJSONSuccess(w, "Favorites retrieved", payload)
		return
	}

	all, err := s.deps.Favorites.ListAllFavorites(ctx, chatID)
	if err != nil {
		slogctx.Error(ctx, "GetFavorites: ошибка чтения избранного", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load favorites")
		return
	}
	for _, category := range models.Categories {
		payload.Favorites[category.Key()] = nonNil(all[category])
	}
	writeJSONSuccess(w, "Favorites retrieved", payload)
}

// ExportFavorites отдаёт избранное в виде .xlsx.
func (s *server) ExportFavorites(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatIDParam(w, r)
	if !ok {
		return
	}
	ctx := slogctx.With(r.Context(), "chat_id", chatID)

	all, err := s.deps.Favorites.ListAllFavorites(ctx, chatID)
	if err != nil {
		slogctx.Error(ctx, "ExportFavorites: ошибка чтения избранного", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load favorites")
		return
	}
	data, err := formatters.FavoritesWorkbook(all)
	if err != nil {
		slogctx.Error(ctx, "ExportFavorites: ошибка сборки книги", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to build workbook")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="favorites_%d.xlsx"`, chatID))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func chatIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	chatID, err := strconv.ParseInt(chi.URLParam(r, "chatID"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid chat ID")
		return 0, false
	}
	return chatID, true
}

func nonNil(entries []models.FavoriteEntry) []models.FavoriteEntry {
	if entries == nil {
		return []models.FavoriteEntry{}
	}
	return entries
}
