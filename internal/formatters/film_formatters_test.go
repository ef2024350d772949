package formatters

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmbot/internal/models"
)

func TestWrapText_LineWidth(t *testing.T) {
	text := strings.Repeat("слово ", 60)
	wrapped := WrapText(text, 100)

	lines := strings.Split(wrapped, "\n")
	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(l), 100)
		assert.Equal(t, strings.TrimSpace(l), l)
	}
	assert.Equal(t, strings.Join(strings.Fields(text), " "), strings.ReplaceAll(wrapped, "\n", " "))
}

func TestWrapText_Short(t *testing.T) {
	assert.Equal(t, "короткий текст", WrapText("  короткий \n текст ", 100))
	assert.Equal(t, "", WrapText("   ", 100))
}

func TestWrapText_LongWord(t *testing.T) {
	word := strings.Repeat("а", 25)
	wrapped := WrapText("xx "+word, 10)
	for _, l := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(l), 10)
	}
	assert.Equal(t, "xx"+word, strings.ReplaceAll(strings.ReplaceAll(wrapped, "\n", ""), " ", ""))
}

func TestFormatFilm(t *testing.T) {
	out := FormatFilm(models.Film{Name: "Тетрадь смерти", Year: 2006, Description: "Гений и тетрадь."})
	assert.Equal(t, "Тетрадь смерти, 2006\n\nГений и тетрадь.", out)
}

func TestFormatFilmList(t *testing.T) {
	films := []models.Film{
		{Name: "Первый", Year: 2001, Description: "Описание один"},
		{Name: "Второй", Year: 2002, Description: "Описание два"},
	}
	out := FormatFilmList(films)
	assert.Equal(t, "1. Первый, 2001\n\nОписание один\n2. Второй, 2002\n\nОписание два", out)
}

func TestFormatFilmList_Empty(t *testing.T) {
	assert.Equal(t, "", FormatFilmList(nil))
}
