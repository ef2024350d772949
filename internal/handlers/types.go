package handlers

import (
	"context"

	"filmbot/internal/dispatcher"
	"filmbot/internal/telegram_api"
)

// Dispatcher решает, что ответить на текстовое сообщение.
type Dispatcher interface {
	Handle(ctx context.Context, chatID int64, text string) dispatcher.Reply
}

// HandlerDependencies содержит все зависимости, необходимые для обработчиков.
// HandlerDependencies contains all dependencies required for handlers.
type HandlerDependencies struct {
	BotClient  telegram_api.Sender
	Dispatcher Dispatcher
}

// BotHandler переводит обновления Telegram в вызовы диспетчера и отправляет ответы.
// BotHandler turns Telegram updates into dispatcher calls and sends the replies.
type BotHandler struct {
	Deps HandlerDependencies
}

// NewBotHandler создает новый экземпляр BotHandler.
// NewBotHandler creates a new instance of BotHandler.
func NewBotHandler(deps HandlerDependencies) *BotHandler {
	if deps.BotClient == nil || deps.Dispatcher == nil {
		panic("Не все зависимости для BotHandler были предоставлены.")
	}
	return &BotHandler{Deps: deps}
}
