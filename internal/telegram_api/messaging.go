package telegram_api

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	slogctx "github.com/veqryn/slog-context"

	"filmbot/internal/constants"
)

// SplitMessage режет текст на части не длиннее limit рун.
// Режем по строкам, пустые строки сохраняются; строку длиннее лимита режем по рунам.
// Части, склеенные через "\n", дают исходный текст, если длинных строк не было.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 || len([]rune(text)) <= limit {
		return []string{text}
	}

	var parts []string
	var current strings.Builder
	currentLen := 0
	started := false

	flush := func() {
		// Пустую часть Telegram не примет.
		if started && current.Len() > 0 {
			parts = append(parts, current.String())
		}
		current.Reset()
		currentLen = 0
		started = false
	}

	for _, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		for len(runes) > limit {
			flush()
			parts = append(parts, string(runes[:limit]))
			runes = runes[limit:]
		}

		// +1 за перевод строки перед новой строкой.
		extra := len(runes)
		if started {
			extra++
		}
		if currentLen+extra > limit {
			flush()
			extra = len(runes)
		}
		if started {
			current.WriteByte('\n')
		}
		current.WriteString(string(runes))
		currentLen += extra
		started = true
	}
	flush()
	return parts
}

// SendText отправляет текст, при необходимости несколькими сообщениями.
// Клавиатура прикладывается к последнему сообщению.
func SendText(ctx context.Context, sender Sender, chatID int64, text string, markup any) error {
	parts := SplitMessage(text, constants.TELEGRAM_MESSAGE_LIMIT)
	for i, part := range parts {
		msg := tgbotapi.NewMessage(chatID, part)
		if i == len(parts)-1 && markup != nil {
			msg.ReplyMarkup = markup
		}
		if _, err := sender.Send(msg); err != nil {
			return fmt.Errorf("ошибка отправки сообщения (часть %d из %d): %w", i+1, len(parts), err)
		}
	}
	if len(parts) > 1 {
		slogctx.Debug(ctx, "Длинный ответ разбит на части", "parts", len(parts))
	}
	return nil
}

// SendDocument отправляет файл из памяти.
func SendDocument(sender Sender, chatID int64, name string, data []byte, caption string, markup any) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	doc.Caption = caption
	if markup != nil {
		doc.ReplyMarkup = markup
	}
	if _, err := sender.Send(doc); err != nil {
		return fmt.Errorf("ошибка отправки документа %s: %w", name, err)
	}
	return nil
}

// SendPhoto отправляет изображение из памяти.
func SendPhoto(sender Sender, chatID int64, name string, data []byte, caption string, markup any) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	photo.Caption = caption
	if markup != nil {
		photo.ReplyMarkup = markup
	}
	if _, err := sender.Send(photo); err != nil {
		return fmt.Errorf("ошибка отправки фото %s: %w", name, err)
	}
	return nil
}

// SendTyping показывает "печатает..." на время обработки запроса.
func SendTyping(ctx context.Context, sender Sender, chatID int64) {
	if _, err := sender.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		slogctx.Debug(ctx, "Не удалось отправить ChatTyping", "error", err)
	}
}
