package formatters

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"filmbot/internal/constants"
	"filmbot/internal/models"
)

// FormatFavoritesList форматирует список избранного для сообщения.
func FormatFavoritesList(entries []models.FavoriteEntry) string {
	if len(entries) == 0 {
		return constants.FAV_LIST_EMPTY_MSG
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}
	return fmt.Sprintf("%s\n%s", constants.FAV_LIST_HEADER, strings.Join(lines, "\n"))
}

// sheetTitles - названия листов книги экспорта по разделам.
var sheetTitles = map[models.Category]string{
	models.CategoryAnime: "Аниме",
	models.CategoryDrama: "Дорамы",
}

// FavoritesWorkbook собирает .xlsx с избранным: по листу на раздел.
// FavoritesWorkbook builds an .xlsx workbook with one sheet per category.
func FavoritesWorkbook(byCategory map[models.Category][]models.FavoriteEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"№", "Название", "Комментарий", "Добавлено"}
	first := true
	for _, category := range models.Categories {
		sheetName := sheetTitles[category]
		index, err := f.NewSheet(sheetName)
		if err != nil {
			return nil, fmt.Errorf("ошибка создания листа %s: %w", sheetName, err)
		}
		if first {
			f.SetActiveSheet(index)
			first = false
		}

		for i, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheetName, cell, header)
		}
		for i, entry := range byCategory[category] {
			row := i + 2
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), entry.Name)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), entry.Comment)
			if !entry.CreatedAt.IsZero() {
				f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), entry.CreatedAt.Format("02.01.2006 15:04"))
			}
		}
		f.SetColWidth(sheetName, "B", "C", 40)
		f.SetColWidth(sheetName, "D", "D", 18)
	}
	// Удаляем стандартный лист, созданный NewFile.
	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("ошибка записи книги Excel: %w", err)
	}
	return buf.Bytes(), nil
}
