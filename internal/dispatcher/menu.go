package dispatcher

import (
	"strings"

	"filmbot/internal/constants"
	"filmbot/internal/models"
	"filmbot/internal/utils"
)

// actionKind - что делает пункт меню.
type actionKind int

const (
	actionMainMenu actionKind = iota
	actionHelp
	actionSection
	actionSearch
	actionRandom
	actionFavorites
	actionExport
	actionShare
)

type menuAction struct {
	kind      actionKind
	query     models.QueryKind
	category  models.Category
	menu      Menu
	favorites models.FavoritesAction
}

// searchLabels - кнопки поиска. Раздел берётся из второго слова подписи.
var searchLabels = []struct {
	label string
	kind  models.QueryKind
}{
	{constants.BTN_ANIME_BY_TITLE, models.QueryByTitle},
	{constants.BTN_ANIME_BY_GENRE, models.QueryByGenre},
	{constants.BTN_ANIME_BY_YEAR, models.QueryByYear},
	{constants.BTN_ANIME_BY_ACTOR, models.QueryByActor},
	{constants.BTN_ANIME_RANDOM, models.QueryRandom},
	{constants.BTN_DRAMA_BY_TITLE, models.QueryByTitle},
	{constants.BTN_DRAMA_BY_GENRE, models.QueryByGenre},
	{constants.BTN_DRAMA_BY_YEAR, models.QueryByYear},
	{constants.BTN_DRAMA_BY_ACTOR, models.QueryByActor},
	{constants.BTN_DRAMA_RANDOM, models.QueryRandom},
}

// categoryFromLabel разбирает раздел из второго слова подписи
// ("поиск аниме по жанру" -> аниме, "случайная дорама" -> дорама).
func categoryFromLabel(label string) (models.Category, bool) {
	tokens := strings.Fields(utils.NormalizeInput(label))
	if len(tokens) < 2 {
		return models.CategoryNone, false
	}
	return models.ParseCategoryWord(tokens[1])
}

// buildMenu собирает таблицу "нормализованная подпись -> действие".
func buildMenu() map[string]menuAction {
	menu := map[string]menuAction{
		utils.NormalizeInput(constants.BTN_BACK_TO_MAIN): {kind: actionMainMenu},
		utils.NormalizeInput(constants.BTN_HELP):         {kind: actionHelp},
		utils.NormalizeInput(constants.BTN_ANIME):        {kind: actionSection, menu: MenuAnime},
		utils.NormalizeInput(constants.BTN_DRAMA):        {kind: actionSection, menu: MenuDrama},
		utils.NormalizeInput(constants.BTN_FAVORITES):    {kind: actionSection, menu: MenuFavorites},
		utils.NormalizeInput(constants.BTN_SHARE):        {kind: actionShare},
		utils.NormalizeInput(constants.BTN_FAV_EXPORT):   {kind: actionExport},
		utils.NormalizeInput(constants.BTN_FAV_ADD):      {kind: actionFavorites, favorites: models.FavoritesAdd},
		utils.NormalizeInput(constants.BTN_FAV_DELETE):   {kind: actionFavorites, favorites: models.FavoritesDelete},
		utils.NormalizeInput(constants.BTN_FAV_LIST):     {kind: actionFavorites, favorites: models.FavoritesList},
	}

	for _, s := range searchLabels {
		category, ok := categoryFromLabel(s.label)
		if !ok {
			panic("dispatcher: не удалось определить раздел для кнопки " + s.label)
		}
		action := menuAction{kind: actionSearch, query: s.kind, category: category}
		if s.kind == models.QueryRandom {
			action.kind = actionRandom
		}
		menu[utils.NormalizeInput(s.label)] = action
	}
	return menu
}

// commandAction распознаёт команды вида /start, /help, /start@bot payload.
func commandAction(normalized string) (menuAction, bool) {
	if !strings.HasPrefix(normalized, "/") {
		return menuAction{}, false
	}
	cmd := strings.TrimPrefix(strings.Fields(normalized)[0], "/")
	if i := strings.IndexByte(cmd, '@'); i >= 0 {
		cmd = cmd[:i]
	}
	switch cmd {
	case constants.CMD_START:
		return menuAction{kind: actionMainMenu}, true
	case constants.CMD_HELP:
		return menuAction{kind: actionHelp}, true
	}
	return menuAction{}, false
}

// categoryGenitive - раздел в родительном падеже для подсказок ("название дорамы").
func categoryGenitive(c models.Category) string {
	if c == models.CategoryDrama {
		return "дорамы"
	}
	return c.Title()
}
