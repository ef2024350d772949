package dispatcher

import (
	"context"

	"filmbot/internal/catalog"
	"filmbot/internal/models"
)

// Catalog - операции каталога, которые вызывает диспетчер.
type Catalog interface {
	SearchByGenre(ctx context.Context, genres []string, category models.Category) catalog.Result
	SearchByTitle(ctx context.Context, title string, category models.Category) catalog.Result
	SearchByActor(ctx context.Context, actorNames []string, category models.Category) catalog.Result
	SearchByYear(ctx context.Context, yearOrRange string, category models.Category) catalog.Result
	Random(ctx context.Context, category models.Category) catalog.Result
}

// SessionStore - хранилище состояния диалога: одна запись на пользователя, перезапись целиком.
type SessionStore interface {
	GetState(chatID int64) models.SessionState
	SetState(chatID int64, state models.SessionState)
}

// FavoritesStore - постоянное хранилище избранного.
type FavoritesStore interface {
	AddFavorite(ctx context.Context, entry models.FavoriteEntry) (models.FavoriteEntry, error)
	RemoveFavorite(ctx context.Context, chatID int64, category models.Category, name string) (int64, error)
	ListFavorites(ctx context.Context, chatID int64, category models.Category) ([]models.FavoriteEntry, error)
	ListAllFavorites(ctx context.Context, chatID int64) (map[models.Category][]models.FavoriteEntry, error)
}

// Menu - раскладка клавиатуры, которую транспорт прикладывает к ответу.
type Menu int

const (
	MenuUnchanged Menu = iota
	MenuMain
	MenuAnime
	MenuDrama
	MenuFavorites
)

// AttachmentKind - как транспорт должен отправить вложение.
type AttachmentKind int

const (
	AttachmentDocument AttachmentKind = iota
	AttachmentPhoto
)

// Attachment - файл, отправляемый вместе с ответом.
type Attachment struct {
	Kind     AttachmentKind
	FileName string
	Data     []byte
	Caption  string
}

// Reply - ответ диспетчера на одно входящее сообщение.
// Messages отправляются по порядку; Menu прикладывается к последнему сообщению.
type Reply struct {
	Messages   []string
	Menu       Menu
	Attachment *Attachment
}

func textReply(messages ...string) Reply {
	return Reply{Messages: messages}
}
