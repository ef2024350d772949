package models

// FavoritesAction - операция над избранным, которую пользователь начал в меню.
type FavoritesAction int

const (
	FavoritesNone FavoritesAction = iota
	FavoritesAdd
	FavoritesDelete
	FavoritesList
)

func (a FavoritesAction) String() string {
	switch a {
	case FavoritesAdd:
		return "add"
	case FavoritesDelete:
		return "delete"
	case FavoritesList:
		return "list"
	default:
		return "none"
	}
}

// FavoritesStep - какой ввод ожидается внутри сценария избранного.
type FavoritesStep int

const (
	FavStepNone FavoritesStep = iota
	FavStepCategory
	FavStepName
	FavStepComment
)

// SessionState хранит, какой параметр бот ждёт от пользователя следующим сообщением.
// Запись перезаписывается целиком при каждом переходе.
// SessionState records which parameter the bot waits for; it is always overwritten as a whole.
type SessionState struct {
	// Awaiting != QueryNone только пока бот ждёт свободный ввод для поиска.
	Awaiting QueryKind
	Category Category

	// Сценарии избранного (добавление / удаление / просмотр).
	Favorites   FavoritesAction
	FavStep     FavoritesStep
	PendingName string
}

// IdleState - состояние по умолчанию для нового пользователя.
func IdleState() SessionState {
	return SessionState{}
}

// AwaitingQuery возвращает состояние ожидания параметра поиска.
func AwaitingQuery(kind QueryKind, category Category) SessionState {
	return SessionState{Awaiting: kind, Category: category}
}

// IsIdle сообщает, что бот ничего не ждёт от пользователя.
func (s SessionState) IsIdle() bool {
	return s.Awaiting == QueryNone && s.Favorites == FavoritesNone
}

// IsAwaitingQuery сообщает, что бот ждёт параметр поиска.
func (s SessionState) IsAwaitingQuery() bool {
	return s.Awaiting != QueryNone
}
