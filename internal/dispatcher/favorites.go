package dispatcher

import (
	"context"
	"fmt"
	"strings"

	slogctx "github.com/veqryn/slog-context"

	"filmbot/internal/constants"
	"filmbot/internal/formatters"
	"filmbot/internal/models"
	"filmbot/internal/utils"
)

func favoritesCategoryPrompt(action models.FavoritesAction) string {
	switch action {
	case models.FavoritesAdd:
		return constants.FAV_ASK_CATEGORY_ADD_MSG
	case models.FavoritesDelete:
		return constants.FAV_ASK_CATEGORY_DELETE_MSG
	default:
		return constants.FAV_ASK_CATEGORY_LIST_MSG
	}
}

// continueFavorites продвигает сценарий избранного на один шаг.
func (d *Dispatcher) continueFavorites(ctx context.Context, chatID int64, state models.SessionState, text string) Reply {
	ctx = slogctx.With(ctx, "favorites", state.Favorites.String())
	input := strings.TrimSpace(text)

	switch state.FavStep {
	case models.FavStepCategory:
		category, ok := models.ParseCategoryWord(utils.NormalizeInput(input))
		if !ok {
			return textReply(constants.FAV_BAD_CATEGORY_MSG)
		}
		switch state.Favorites {
		case models.FavoritesList:
			d.sessions.SetState(chatID, models.IdleState())
			return d.listFavorites(ctx, chatID, category)
		case models.FavoritesAdd:
			d.sessions.SetState(chatID, models.SessionState{Favorites: models.FavoritesAdd, FavStep: models.FavStepName, Category: category})
			return textReply(constants.FAV_ASK_NAME_ADD_MSG)
		default:
			d.sessions.SetState(chatID, models.SessionState{Favorites: models.FavoritesDelete, FavStep: models.FavStepName, Category: category})
			return textReply(constants.FAV_ASK_NAME_DELETE_MSG)
		}

	case models.FavStepName:
		if state.Favorites == models.FavoritesAdd {
			next := state
			next.FavStep = models.FavStepComment
			next.PendingName = input
			d.sessions.SetState(chatID, next)
			return textReply(constants.FAV_ASK_COMMENT_MSG)
		}
		d.sessions.SetState(chatID, models.IdleState())
		return d.removeFavorite(ctx, chatID, state.Category, input)

	case models.FavStepComment:
		d.sessions.SetState(chatID, models.IdleState())
		return d.addFavorite(ctx, models.FavoriteEntry{
			ChatID:   chatID,
			Category: state.Category,
			Name:     state.PendingName,
			Comment:  input,
		})
	}

	// Повреждённое состояние: начинаем с чистого листа.
	d.sessions.SetState(chatID, models.IdleState())
	return textReply(constants.UNKNOWN_COMMAND_MSG)
}

func (d *Dispatcher) addFavorite(ctx context.Context, entry models.FavoriteEntry) Reply {
	if d.favorites == nil {
		return textReply(constants.FAV_STORAGE_ERROR_MSG)
	}
	saved, err := d.favorites.AddFavorite(ctx, entry)
	if err != nil {
		slogctx.Error(ctx, "Ошибка сохранения в избранное", "error", err, "name", entry.Name)
		return textReply(constants.FAV_STORAGE_ERROR_MSG)
	}
	slogctx.Info(ctx, "Добавлено в избранное", "id", saved.ID, "category", saved.Category.String())
	return textReply(fmt.Sprintf(constants.FAV_ADDED_FMT, saved.Category.Title(), saved.Name, saved.Comment))
}

func (d *Dispatcher) removeFavorite(ctx context.Context, chatID int64, category models.Category, name string) Reply {
	if d.favorites == nil {
		return textReply(constants.FAV_STORAGE_ERROR_MSG)
	}
	removed, err := d.favorites.RemoveFavorite(ctx, chatID, category, name)
	if err != nil {
		slogctx.Error(ctx, "Ошибка удаления из избранного", "error", err, "name", name)
		return textReply(constants.FAV_STORAGE_ERROR_MSG)
	}
	if removed == 0 {
		return textReply(fmt.Sprintf(constants.FAV_NOT_FOUND_FMT, category.Title(), name))
	}
	return textReply(fmt.Sprintf(constants.FAV_DELETED_FMT, category.Title(), name))
}

func (d *Dispatcher) listFavorites(ctx context.Context, chatID int64, category models.Category) Reply {
	if d.favorites == nil {
		return textReply(constants.FAV_STORAGE_ERROR_MSG)
	}
	entries, err := d.favorites.ListFavorites(ctx, chatID, category)
	if err != nil {
		slogctx.Error(ctx, "Ошибка чтения избранного", "error", err)
		return textReply(constants.FAV_STORAGE_ERROR_MSG)
	}
	return textReply(formatters.FormatFavoritesList(entries))
}

// exportFavorites выгружает всё избранное пользователя в .xlsx.
func (d *Dispatcher) exportFavorites(ctx context.Context, chatID int64) Reply {
	if d.favorites == nil {
		return textReply(constants.FAV_STORAGE_ERROR_MSG)
	}
	byCategory, err := d.favorites.ListAllFavorites(ctx, chatID)
	if err != nil {
		slogctx.Error(ctx, "Ошибка чтения избранного для экспорта", "error", err)
		return textReply(constants.FAV_STORAGE_ERROR_MSG)
	}
	total := 0
	for _, entries := range byCategory {
		total += len(entries)
	}
	if total == 0 {
		return textReply(constants.FAV_EXPORT_EMPTY_MSG)
	}

	data, err := formatters.FavoritesWorkbook(byCategory)
	if err != nil {
		slogctx.Error(ctx, "Ошибка сборки книги экспорта", "error", err)
		return textReply(constants.FAV_STORAGE_ERROR_MSG)
	}
	slogctx.Info(ctx, "Экспорт избранного", "entries", total, "bytes", len(data))
	return Reply{Attachment: &Attachment{
		Kind:     AttachmentDocument,
		FileName: exportFileName,
		Data:     data,
		Caption:  constants.FAV_EXPORT_CAPTION,
	}}
}
