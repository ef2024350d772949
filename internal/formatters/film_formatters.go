package formatters

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"filmbot/internal/constants"
	"filmbot/internal/models"
)

// FormatFilm форматирует одну запись каталога: "{name}, {year}\n\n{описание}".
// Описание переносится по DESCRIPTION_WRAP_WIDTH колонкам.
func FormatFilm(film models.Film) string {
	return fmt.Sprintf("%s, %d\n\n%s", film.Name, film.Year, WrapText(film.Description, constants.DESCRIPTION_WRAP_WIDTH))
}

// FormatFilmList форматирует список записей с нумерацией с единицы.
// Записи разделяются одним переводом строки.
func FormatFilmList(films []models.Film) string {
	items := make([]string, 0, len(films))
	for i, film := range films {
		items = append(items, fmt.Sprintf("%d. %s", i+1, FormatFilm(film)))
	}
	return strings.Join(items, "\n")
}

// WrapText переносит текст по словам так, чтобы строки были не длиннее width символов.
// Пробельные символы схлопываются, слова длиннее width режутся на части.
// WrapText word-wraps text to width runes; whitespace is collapsed and over-long words are split.
func WrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return strings.Join(words, " ")
	}

	var lines []string
	var line strings.Builder
	lineLen := 0

	flush := func() {
		if lineLen > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
	}

	for _, word := range words {
		for utf8.RuneCountInString(word) > width {
			// длинное слово: добиваем текущую строку его началом
			room := width - lineLen
			if lineLen > 0 {
				room--
			}
			if room <= 0 {
				flush()
				continue
			}
			head, tail := splitRunes(word, room)
			if lineLen > 0 {
				line.WriteByte(' ')
				lineLen++
			}
			line.WriteString(head)
			lineLen += room
			flush()
			word = tail
		}

		wordLen := utf8.RuneCountInString(word)
		if lineLen > 0 && lineLen+1+wordLen > width {
			flush()
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(word)
		lineLen += wordLen
	}
	flush()

	return strings.Join(lines, "\n")
}

func splitRunes(s string, n int) (string, string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], s[pos:]
		}
		i++
	}
	return s, ""
}
