// Package dispatcher - конечный автомат диалога: по тексту сообщения и сохранённому
// состоянию решает, что ответить, какой запрос отправить в каталог и куда перейти.
package dispatcher

import (
	"context"
	"fmt"
	"strings"

	slogctx "github.com/veqryn/slog-context"

	"filmbot/internal/catalog"
	"filmbot/internal/constants"
	"filmbot/internal/models"
	"filmbot/internal/utils"
)

const exportFileName = "favorites.xlsx"

// Deps - зависимости диспетчера.
type Deps struct {
	Catalog     Catalog
	Sessions    SessionStore
	Favorites   FavoritesStore
	BotUsername string
	// Typing вызывается перед каждым запросом к каталогу (индикатор "печатает...").
	Typing func(ctx context.Context, chatID int64)
}

type Dispatcher struct {
	catalog     Catalog
	sessions    SessionStore
	favorites   FavoritesStore
	botUsername string
	typing      func(ctx context.Context, chatID int64)
	menu        map[string]menuAction
}

func New(deps Deps) *Dispatcher {
	return &Dispatcher{
		catalog:     deps.Catalog,
		sessions:    deps.Sessions,
		favorites:   deps.Favorites,
		botUsername: deps.BotUsername,
		typing:      deps.Typing,
		menu:        buildMenu(),
	}
}

// Handle обрабатывает одно текстовое сообщение пользователя.
// Подписи меню и команды имеют приоритет над ожидаемым вводом.
func (d *Dispatcher) Handle(ctx context.Context, chatID int64, text string) Reply {
	ctx = slogctx.With(ctx, "chat_id", chatID)

	normalized := utils.NormalizeInput(text)
	if normalized == "" {
		return textReply(constants.EMPTY_MESSAGE_REPLY)
	}

	state := d.sessions.GetState(chatID)

	if action, ok := d.menu[normalized]; ok {
		return d.runAction(ctx, chatID, state, action)
	}
	// Неизвестная "/команда" при ожидаемом вводе - это сам ввод.
	if action, ok := commandAction(normalized); ok {
		return d.runAction(ctx, chatID, state, action)
	}

	switch {
	case state.IsAwaitingQuery():
		return d.runQuery(ctx, chatID, state, text)
	case state.Favorites != models.FavoritesNone:
		return d.continueFavorites(ctx, chatID, state, text)
	}

	slogctx.Debug(ctx, "Нераспознанное сообщение", "text", normalized)
	return textReply(constants.UNKNOWN_COMMAND_MSG)
}

func (d *Dispatcher) notifyTyping(ctx context.Context, chatID int64) {
	if d.typing != nil {
		d.typing(ctx, chatID)
	}
}

// resetState сбрасывает ожидание ввода. Для idle запись не трогаем.
func (d *Dispatcher) resetState(chatID int64, state models.SessionState) {
	if !state.IsIdle() {
		d.sessions.SetState(chatID, models.IdleState())
	}
}

func (d *Dispatcher) runAction(ctx context.Context, chatID int64, state models.SessionState, action menuAction) Reply {
	switch action.kind {
	case actionMainMenu:
		d.resetState(chatID, state)
		return Reply{Messages: []string{constants.START_MSG}, Menu: MenuMain}

	case actionHelp:
		d.resetState(chatID, state)
		return textReply(constants.HELP_MSG)

	case actionSection:
		d.resetState(chatID, state)
		return Reply{Messages: []string{sectionMessage(action.menu)}, Menu: action.menu}

	case actionSearch:
		d.sessions.SetState(chatID, models.AwaitingQuery(action.query, action.category))
		slogctx.Debug(ctx, "Ожидаем параметр поиска", "kind", action.query.String(), "category", action.category.String())
		return textReply(queryPrompt(action.query, action.category))

	case actionRandom:
		d.resetState(chatID, state)
		d.notifyTyping(ctx, chatID)
		res := d.catalog.Random(ctx, action.category)
		slogctx.Info(ctx, "Случайный выбор", "category", action.category.String(), "result", res.Kind.String())
		return textReply(fmt.Sprintf(constants.RANDOM_INTRO_FMT, action.category.Title()), res.Message())

	case actionFavorites:
		d.sessions.SetState(chatID, models.SessionState{Favorites: action.favorites, FavStep: models.FavStepCategory})
		return textReply(favoritesCategoryPrompt(action.favorites))

	case actionExport:
		d.resetState(chatID, state)
		return d.exportFavorites(ctx, chatID)

	case actionShare:
		d.resetState(chatID, state)
		return d.share(ctx)
	}
	return textReply(constants.UNKNOWN_COMMAND_MSG)
}

// runQuery использует свободный ввод как параметр ожидаемого поиска.
// Состояние сбрасывается до обращения к каталогу.
func (d *Dispatcher) runQuery(ctx context.Context, chatID int64, state models.SessionState, text string) Reply {
	d.sessions.SetState(chatID, models.IdleState())

	ctx = slogctx.With(ctx, "kind", state.Awaiting.String(), "category", state.Category.String())
	param := strings.TrimSpace(text)

	d.notifyTyping(ctx, chatID)
	res := d.search(ctx, state, param)
	slogctx.Info(ctx, "Запрос к каталогу выполнен", "result", res.Kind.String(), "status", res.StatusCode)
	return textReply(res.Message())
}

func (d *Dispatcher) search(ctx context.Context, state models.SessionState, param string) catalog.Result {
	switch state.Awaiting {
	case models.QueryByGenre:
		return d.catalog.SearchByGenre(ctx, queryList(state.Awaiting, param), state.Category)
	case models.QueryByActor:
		return d.catalog.SearchByActor(ctx, queryList(state.Awaiting, param), state.Category)
	case models.QueryByTitle:
		return d.catalog.SearchByTitle(ctx, param, state.Category)
	case models.QueryByYear:
		return d.catalog.SearchByYear(ctx, param, state.Category)
	default:
		return d.catalog.Random(ctx, state.Category)
	}
}

// queryList разбивает ввод по запятым для списочных видов поиска.
func queryList(kind models.QueryKind, param string) []string {
	if !kind.ListValued() {
		return []string{param}
	}
	return utils.SplitList(param)
}

func sectionMessage(menu Menu) string {
	switch menu {
	case MenuAnime:
		return constants.SECTION_ANIME_MSG
	case MenuDrama:
		return constants.SECTION_DRAMA_MSG
	case MenuFavorites:
		return constants.SECTION_FAVORITES_MSG
	}
	return constants.START_MSG
}

func queryPrompt(kind models.QueryKind, category models.Category) string {
	switch kind {
	case models.QueryByGenre:
		return constants.PROMPT_GENRE
	case models.QueryByActor:
		return constants.PROMPT_ACTOR
	case models.QueryByYear:
		return constants.PROMPT_YEAR
	default:
		return fmt.Sprintf(constants.PROMPT_TITLE_FMT, categoryGenitive(category))
	}
}

func (d *Dispatcher) share(ctx context.Context) Reply {
	link, png, err := utils.GenerateShareQRCode(d.botUsername)
	if err != nil {
		slogctx.Warn(ctx, "Не удалось сгенерировать QR-код", "error", err)
		return textReply(constants.SHARE_UNAVAILABLE)
	}
	return Reply{Attachment: &Attachment{
		Kind:     AttachmentPhoto,
		FileName: "share.png",
		Data:     png,
		Caption:  fmt.Sprintf(constants.SHARE_CAPTION_FMT, link),
	}}
}
