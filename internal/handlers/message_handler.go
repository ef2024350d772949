// Файл: internal/handlers/message_handler.go

package handlers

import (
	"context"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	slogctx "github.com/veqryn/slog-context"

	"filmbot/internal/dispatcher"
	"filmbot/internal/telegram_api"
)

// HandleMessage обрабатывает входящие сообщения от Telegram.
// Вызывается в отдельной горутине на каждое обновление.
func (bh *BotHandler) HandleMessage(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	message := update.Message
	chatID := message.Chat.ID
	ctx := slogctx.With(context.Background(), "chat_id", chatID, "update_id", update.UpdateID)

	defer func() {
		if r := recover(); r != nil {
			slogctx.Error(ctx, "Паника при обработке сообщения", "panic", r)
		}
	}()

	slogctx.Debug(ctx, "HandleMessage", "text", message.Text, "message_id", message.MessageID)

	// Не текст (стикер, фото и т.п.) приходит с пустым Text - диспетчер ответит подсказкой.
	reply := bh.Deps.Dispatcher.Handle(ctx, chatID, message.Text)
	bh.sendReply(ctx, chatID, reply)
}

// sendReply отправляет сообщения ответа и вложение. Клавиатура уходит с последним отправлением.
func (bh *BotHandler) sendReply(ctx context.Context, chatID int64, reply dispatcher.Reply) {
	markup := keyboardFor(reply.Menu)

	for i, text := range reply.Messages {
		var m any
		if i == len(reply.Messages)-1 && reply.Attachment == nil {
			m = markup
		}
		if err := telegram_api.SendText(ctx, bh.Deps.BotClient, chatID, text, m); err != nil {
			slogctx.Error(ctx, "Ошибка отправки ответа", "error", err)
			return
		}
	}

	att := reply.Attachment
	if att == nil {
		return
	}
	var err error
	switch att.Kind {
	case dispatcher.AttachmentPhoto:
		err = telegram_api.SendPhoto(bh.Deps.BotClient, chatID, att.FileName, att.Data, att.Caption, markup)
	default:
		err = telegram_api.SendDocument(bh.Deps.BotClient, chatID, att.FileName, att.Data, att.Caption, markup)
	}
	if err != nil {
		slogctx.Error(ctx, "Ошибка отправки вложения", "error", err, "file", att.FileName)
	}
}
