// Файл: internal/utils/formatters.go

package utils

import (
	"github.com/google/uuid"
)

// GenerateUUID генерирует новый UUID в строковом представлении.
// Используется как идентификатор запроса в логах.
func GenerateUUID() string {
	return uuid.New().String()
}
