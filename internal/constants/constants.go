package constants

import "time"

// Подписи кнопок. Сравнение с вводом идёт без учёта регистра (strings.ToLower).
// Button labels. Incoming text is matched case-insensitively.
const (
	BTN_ANIME        = "🌸 Аниме"
	BTN_DRAMA        = "📺 Дорамы"
	BTN_FAVORITES    = "❤️ Избранное"
	BTN_HELP         = "❓ Что я умею?"
	BTN_SHARE        = "📲 Поделиться ботом"
	BTN_BACK_TO_MAIN = "Вернуться в главное меню 📌"

	BTN_ANIME_BY_TITLE = "Поиск аниме по названию 🔎"
	BTN_ANIME_BY_GENRE = "Поиск аниме по жанру 🎭"
	BTN_ANIME_BY_YEAR  = "Поиск аниме по году 🎯"
	BTN_ANIME_BY_ACTOR = "Поиск аниме по актеру 💎"
	BTN_ANIME_RANDOM   = "Случайное аниме 💡"

	BTN_DRAMA_BY_TITLE = "Поиск дорамы по названию 🔎"
	BTN_DRAMA_BY_GENRE = "Поиск дорамы по жанру 🎭"
	BTN_DRAMA_BY_YEAR  = "Поиск дорамы по году 🎯"
	BTN_DRAMA_BY_ACTOR = "Поиск дорамы по актеру 💎"
	BTN_DRAMA_RANDOM   = "Случайная дорама 💡"

	BTN_FAV_LIST   = "Мой список 📜"
	BTN_FAV_ADD    = "Добавить в Избранное 📝"
	BTN_FAV_DELETE = "Удалить из Избранного 🚫"
	BTN_FAV_EXPORT = "Экспорт избранного 📊"
)

const (
	CMD_START = "start"
	CMD_HELP  = "help"
)

// Тексты ответов.
const (
	START_MSG = "Привет! 👋 Я помогу подобрать аниме или дораму на вечер.\n\n" +
		"Выбери раздел в меню ниже: можно искать по названию, жанру, году, актёру " +
		"или довериться случаю. А в «Избранном» можно хранить то, что хочется посмотреть."

	HELP_MSG = "Вот что я умею:\n\n" +
		"🔎 искать аниме и дорамы по названию;\n" +
		"🎭 подбирать по жанрам (несколько жанров - через запятую);\n" +
		"🎯 искать по году или диапазону годов в формате год-год;\n" +
		"💎 искать по актёрам (несколько актёров - через запятую);\n" +
		"💡 предлагать случайное аниме или дораму;\n" +
		"❤️ вести список избранного и выгружать его в Excel.\n\n" +
		"Начать заново - /start"

	UNKNOWN_COMMAND_MSG = "⚙️ На такую команду я не запрограммирован... попробуйте другую или введите /help"

	// FALLBACK_MSG - единственный текст для всех случаев "нет пригодного результата".
	FALLBACK_MSG = "Не удалось получить данные."

	SECTION_ANIME_MSG     = "Вы в разделе 🌸 Аниме"
	SECTION_DRAMA_MSG     = "Вы в разделе 📺 Дорамы"
	SECTION_FAVORITES_MSG = "Вы в разделе ❤️ Избранное"

	PROMPT_TITLE_FMT = "Введи название %s, которое (-ую) хочешь посмотреть"
	PROMPT_GENRE     = "Введи нужные жанры (если их несколько, то укажи их через запятую)."
	PROMPT_ACTOR     = "Введи нужных актеров (если их несколько, то укажи их через запятую)"
	PROMPT_YEAR      = "Введи нужный год или диапазон годов (если вводишь диапазон, то вводи в формате год-год)"
	RANDOM_INTRO_FMT = "Случайное (-ая) %s, надеюсь, что оно (-а) тебе понравится:"

	FAV_ASK_CATEGORY_ADD_MSG    = "Введи, что ты хочешь добавить: аниме или дораму"
	FAV_ASK_CATEGORY_DELETE_MSG = "Введи, что ты хочешь удалить: аниме или дораму"
	FAV_ASK_CATEGORY_LIST_MSG   = "Введи, что ты хочешь увидеть: аниме или дорамы"
	FAV_BAD_CATEGORY_MSG        = "Не понял раздел 🤔 Напиши «аниме» или «дорама»."
	FAV_ASK_NAME_ADD_MSG        = "Введите название сериала, который вы хотите добавить"
	FAV_ASK_COMMENT_MSG         = "Введите комментарии к сериалу"
	FAV_ASK_NAME_DELETE_MSG     = "Введите название сериала, который нужно удалить:"
	FAV_ADDED_FMT               = "В раздел %s добавлен '%s' с комментарием: %s"
	FAV_DELETED_FMT             = "Из раздела %s удалено «%s»"
	FAV_NOT_FOUND_FMT           = "В разделе %s нет «%s» 🤷"
	FAV_LIST_HEADER             = "Ваш список избранного 🔥:"
	FAV_LIST_EMPTY_MSG          = "Ваш список пуст 🥺"
	FAV_EXPORT_EMPTY_MSG        = "В избранном пока пусто - выгружать нечего 🥺"
	FAV_EXPORT_CAPTION          = "Ваше избранное 📊"
	FAV_STORAGE_ERROR_MSG       = "❌ Не удалось обратиться к списку избранного. Попробуйте позже."

	SHARE_CAPTION_FMT   = "Отсканируй QR-код или открой ссылку: %s"
	SHARE_UNAVAILABLE   = "❌ Не удалось подготовить ссылку на бота."
	EMPTY_MESSAGE_REPLY = "Я понимаю только текстовые сообщения 🙂 Воспользуйтесь меню или введите /help"
)

// Параметры каталога (api.kinopoisk.dev).
const (
	CATALOG_DEFAULT_BASE_URL = "https://api.kinopoisk.dev/v1.4/"
	CATALOG_API_KEY_HEADER   = "X-API-KEY"

	ENDPOINT_MOVIE         = "movie"
	ENDPOINT_MOVIE_SEARCH  = "movie/search"
	ENDPOINT_MOVIE_RANDOM  = "movie/random"
	ENDPOINT_PERSON_SEARCH = "person/search"

	CATALOG_TYPE_ANIME     = "anime"
	CATALOG_TYPE_TV_SERIES = "tv-series"

	// Ширина переноса описания.
	DESCRIPTION_WRAP_WIDTH = 100

	// Сколько тайтлов запрашиваем на одного актёра.
	ACTOR_FILMS_LIMIT = 10
)

// Страны, по которым фильтруются дорамы (названия в том виде, в каком их ждёт API).
var DramaCountries = []string{"Корея Южная", "Япония", "Китай"}

// NotNullFields - поля, без которых запись каталога нам не нужна.
var NotNullFields = []string{"name", "description"}

const (
	DEFAULT_CATALOG_TIMEOUT          = 5 * time.Second
	DEFAULT_SESSION_TTL              = 30 * time.Minute
	DEFAULT_SESSION_CLEANUP_INTERVAL = 5 * time.Minute

	// Лимит длины одного сообщения Telegram (в символах).
	TELEGRAM_MESSAGE_LIMIT = 4096
)
