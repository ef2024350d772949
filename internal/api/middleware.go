// Файл: internal/api/middleware.go
package api

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	slogctx "github.com/veqryn/slog-context"
)

const apiKeyHeader = "X-API-KEY"

// APIKeyMiddleware проверяет статический ключ в заголовке X-API-KEY.
// С пустым ключом закрытые маршруты недоступны совсем.
func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				writeJSONError(w, http.StatusServiceUnavailable, "API disabled: HTTP_API_KEY is not configured")
				return
			}
			provided := r.Header.Get(apiKeyHeader)
			if provided == "" {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized: Missing X-API-KEY header")
				return
			}
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				slogctx.Warn(r.Context(), "APIKeyMiddleware: неверный ключ", "remote", r.RemoteAddr)
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized: Invalid API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger кладёт request id в контекст логгера и пишет строку о каждом запросе.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := slogctx.With(r.Context(), "request_id", middleware.GetReqID(r.Context()))
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r.WithContext(ctx))

		slogctx.Info(ctx, "HTTP запрос",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
