package handlers

import (
	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"filmbot/internal/constants"
	"filmbot/internal/dispatcher"
)

func replyKeyboard(rows ...[]tgbotapi.KeyboardButton) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func row(labels ...string) []tgbotapi.KeyboardButton {
	buttons := make([]tgbotapi.KeyboardButton, 0, len(labels))
	for _, label := range labels {
		buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
	}
	return tgbotapi.NewKeyboardButtonRow(buttons...)
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return replyKeyboard(
		row(constants.BTN_ANIME, constants.BTN_DRAMA),
		row(constants.BTN_FAVORITES),
		row(constants.BTN_HELP, constants.BTN_SHARE),
	)
}

func animeMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return replyKeyboard(
		row(constants.BTN_ANIME_BY_TITLE, constants.BTN_ANIME_BY_GENRE),
		row(constants.BTN_ANIME_BY_YEAR, constants.BTN_ANIME_BY_ACTOR),
		row(constants.BTN_ANIME_RANDOM),
		row(constants.BTN_BACK_TO_MAIN),
	)
}

func dramaMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return replyKeyboard(
		row(constants.BTN_DRAMA_BY_TITLE, constants.BTN_DRAMA_BY_GENRE),
		row(constants.BTN_DRAMA_BY_YEAR, constants.BTN_DRAMA_BY_ACTOR),
		row(constants.BTN_DRAMA_RANDOM),
		row(constants.BTN_BACK_TO_MAIN),
	)
}

func favoritesMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return replyKeyboard(
		row(constants.BTN_FAV_LIST),
		row(constants.BTN_FAV_ADD, constants.BTN_FAV_DELETE),
		row(constants.BTN_FAV_EXPORT),
		row(constants.BTN_BACK_TO_MAIN),
	)
}

// keyboardFor возвращает клавиатуру для меню ответа; nil - оставить текущую.
func keyboardFor(menu dispatcher.Menu) any {
	switch menu {
	case dispatcher.MenuMain:
		return mainMenuKeyboard()
	case dispatcher.MenuAnime:
		return animeMenuKeyboard()
	case dispatcher.MenuDrama:
		return dramaMenuKeyboard()
	case dispatcher.MenuFavorites:
		return favoritesMenuKeyboard()
	}
	return nil
}
