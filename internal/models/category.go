package models

import "strings"

// Category - раздел каталога, по которому фильтруется каждый запрос.
// Category is the catalog section applied as a filter to every query.
type Category int

const (
	CategoryNone Category = iota
	CategoryAnime
	CategoryDrama
)

// Key возвращает машинное имя раздела (используется в БД и HTTP API).
func (c Category) Key() string {
	switch c {
	case CategoryAnime:
		return "anime"
	case CategoryDrama:
		return "drama"
	default:
		return ""
	}
}

// Title возвращает название раздела для сообщений пользователю.
func (c Category) Title() string {
	switch c {
	case CategoryAnime:
		return "аниме"
	case CategoryDrama:
		return "дорама"
	default:
		return ""
	}
}

func (c Category) String() string {
	if k := c.Key(); k != "" {
		return k
	}
	return "none"
}

// ParseCategoryKey разбирает машинное имя раздела ("anime" / "drama").
func ParseCategoryKey(key string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "anime":
		return CategoryAnime, true
	case "drama":
		return CategoryDrama, true
	}
	return CategoryNone, false
}

// ParseCategoryWord разбирает слово, которым пользователь называет раздел:
// второй токен подписи кнопки ("аниме", "дорамы", "дорама") или свободный ввод.
func ParseCategoryWord(word string) (Category, bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	switch w {
	case "аниме":
		return CategoryAnime, true
	case "дорама", "дорамы", "дораму", "дорам":
		return CategoryDrama, true
	}
	return CategoryNone, false
}

// Categories - все разделы в порядке отображения.
var Categories = []Category{CategoryAnime, CategoryDrama}
