package utils

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GenerateShareLink генерирует ссылку на бота для отправки друзьям.
func GenerateShareLink(botUsername string) (string, error) {
	if botUsername == "" {
		return "", fmt.Errorf("имя пользователя бота не настроено")
	}
	return fmt.Sprintf("https://t.me/%s", botUsername), nil
}

// GenerateShareQRCode генерирует PNG с QR-кодом ссылки на бота.
func GenerateShareQRCode(botUsername string) (string, []byte, error) {
	link, err := GenerateShareLink(botUsername)
	if err != nil {
		return "", nil, err
	}

	// qrcode.Medium - уровень коррекции ошибок, 256 - размер QR-кода в пикселях.
	qrBytes, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return "", nil, fmt.Errorf("ошибка кодирования QR-кода для ссылки '%s': %w", link, err)
	}
	return link, qrBytes, nil
}
