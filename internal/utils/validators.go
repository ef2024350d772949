package utils

import (
	"regexp"
	"strings"
)

var yearInputRegex = regexp.MustCompile(`^\d{4}(-\d{4})?$`)

// SplitList превращает ввод вида "драма, комедия" в ["драма", "комедия"].
// Сначала убираются последовательности ", ", затем строка режется по запятым.
// Пустые элементы отбрасываются.
// SplitList turns "a, b" into ["a", "b"]: ", " sequences are collapsed before splitting on commas.
func SplitList(text string) []string {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ", ", ",")
	parts := strings.Split(normalized, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		result = append(result, p)
	}
	return result
}

// NormalizeYear убирает пробелы из года или диапазона ("2010 - 2015" -> "2010-2015").
// Длинное тире заменяется обычным дефисом.
func NormalizeYear(text string) string {
	year := strings.NewReplacer("–", "-", "—", "-").Replace(text)
	return strings.Join(strings.Fields(year), "")
}

// IsYearOrRange проверяет, что строка - год ("2015") или диапазон ("2010-2015").
func IsYearOrRange(text string) bool {
	return yearInputRegex.MatchString(text)
}

// NormalizeInput приводит текст сообщения к виду, в котором он сравнивается с подписями кнопок.
func NormalizeInput(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
