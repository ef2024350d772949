package telegram_api

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
)

// Sender - часть Bot API, которой пользуются отправляющие функции пакета.
// Sender is the subset of the Bot API used by the sending helpers.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// BotClient представляет собой обертку для Telegram Bot API.
// BotClient represents a wrapper for the Telegram Bot API.
type BotClient struct {
	api   *tgbotapi.BotAPI
	Debug bool
}

// Global Bot instance for the package
// Глобальный экземпляр бота для пакета
var Client *BotClient

// InitBot инициализирует Telegram бота и отключает вебхук, чтобы работал long polling.
// InitBot initializes the Telegram bot and disables the webhook for long polling.
func InitBot(token string, debug bool) error {
	if token == "" {
		return fmt.Errorf("токен Telegram API не предоставлен")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("ошибка инициализации Telegram Bot API: %w", err)
	}
	api.Debug = debug

	slog.Info("Авторизован в Telegram", "username", api.Self.UserName)

	_, err = api.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true})
	if err != nil {
		// Ошибка возможна, если вебхука и не было.
		slog.Warn("Не удалось отключить вебхук", "error", err)
	}

	Client = &BotClient{
		api:   api,
		Debug: debug,
	}
	return nil
}

// UserName возвращает имя бота (для ссылки "поделиться").
func (bc *BotClient) UserName() string {
	if bc == nil || bc.api == nil {
		return ""
	}
	return bc.api.Self.UserName
}

// GetUpdatesChan возвращает канал обновлений от Telegram.
// GetUpdatesChan returns the update channel from Telegram.
func (bc *BotClient) GetUpdatesChan(config tgbotapi.UpdateConfig) (tgbotapi.UpdatesChannel, error) {
	if bc == nil || bc.api == nil {
		return nil, fmt.Errorf("BotClient или его API не инициализирован")
	}
	return bc.api.GetUpdatesChan(config), nil
}

// StopReceivingUpdates останавливает long polling.
func (bc *BotClient) StopReceivingUpdates() {
	if bc != nil && bc.api != nil {
		bc.api.StopReceivingUpdates()
	}
}

// Send отправляет сообщение через BotClient.
// Send sends a message via BotClient.
func (bc *BotClient) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if bc == nil || bc.api == nil {
		return tgbotapi.Message{}, fmt.Errorf("BotClient или его API не инициализирован")
	}
	if bc.Debug {
		switch msg := c.(type) {
		case tgbotapi.MessageConfig:
			slog.Debug("Отправка сообщения", "chat_id", msg.ChatID, "text", truncate(msg.Text, 50))
		case tgbotapi.DocumentConfig:
			slog.Debug("Отправка документа", "chat_id", msg.ChatID, "caption", msg.Caption)
		case tgbotapi.PhotoConfig:
			slog.Debug("Отправка фото", "chat_id", msg.ChatID, "caption", truncate(msg.Caption, 50))
		default:
			slog.Debug("Отправка", "type", fmt.Sprintf("%T", c))
		}
	}
	return bc.api.Send(c)
}

// Request выполняет запрос через BotClient.
// Request performs a request via BotClient.
func (bc *BotClient) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if bc == nil || bc.api == nil {
		return nil, fmt.Errorf("BotClient или его API не инициализирован")
	}
	if bc.Debug {
		slog.Debug("Выполнение запроса", "type", fmt.Sprintf("%T", c))
	}
	return bc.api.Request(c)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
