package session

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"filmbot/internal/constants"
	"filmbot/internal/models"
)

// SessionManager хранит состояние диалога каждого пользователя в памяти.
// У записи есть TTL: если пользователь молчит дольше ttl, запись вытесняется
// и он снова считается находящимся в состоянии покоя.
// SessionManager keeps per-chat dialog state in memory with TTL eviction.
type SessionManager struct {
	states *cache.Cache
	ttl    time.Duration
}

// NewSessionManager создаёт менеджер сессий.
// ttl - время жизни записи с момента последнего изменения, cleanupInterval - период чистки.
func NewSessionManager(ttl, cleanupInterval time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = constants.DEFAULT_SESSION_TTL
	}
	if cleanupInterval <= 0 {
		cleanupInterval = constants.DEFAULT_SESSION_CLEANUP_INTERVAL
	}
	c := cache.New(ttl, cleanupInterval)
	c.OnEvicted(func(key string, _ interface{}) {
		slog.Debug("SessionManager: сессия вытеснена по TTL", "chat_id", key)
	})
	return &SessionManager{states: c, ttl: ttl}
}

func key(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

// GetState возвращает текущее состояние пользователя.
// Если записи нет (новый пользователь или истёк TTL), возвращает пустое состояние.
func (sm *SessionManager) GetState(chatID int64) models.SessionState {
	v, ok := sm.states.Get(key(chatID))
	if !ok {
		return models.IdleState()
	}
	state, ok := v.(models.SessionState)
	if !ok {
		return models.IdleState()
	}
	return state
}

// SetState полностью перезаписывает состояние пользователя и продлевает TTL.
// Состояние покоя не хранится: запись просто удаляется.
func (sm *SessionManager) SetState(chatID int64, state models.SessionState) {
	if state.IsIdle() {
		sm.states.Delete(key(chatID))
		return
	}
	sm.states.Set(key(chatID), state, cache.DefaultExpiration)
}

// ClearState сбрасывает пользователя в состояние покоя.
func (sm *SessionManager) ClearState(chatID int64) {
	sm.states.Delete(key(chatID))
}

// ActiveSessions - число пользователей, от которых бот сейчас ждёт ввод.
func (sm *SessionManager) ActiveSessions() int {
	return sm.states.ItemCount()
}

// TTL возвращает время жизни записи.
func (sm *SessionManager) TTL() time.Duration {
	return sm.ttl
}
