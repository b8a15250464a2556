package notifier

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramChannel оповещение сотрудников о новой заявке
type TelegramChannel struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    Logger
}

// NewTelegramChannel создает канал; без токена или чата канал ничего не отправляет
func NewTelegramChannel(token string, chatID int64, log Logger) (*TelegramChannel, error) {
	if token == "" || chatID == 0 {
		log.Warn("telegram bot token or chat id is empty, staff notifications disabled")
		return &TelegramChannel{log: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramChannel{bot: bot, chatID: chatID, log: log}, nil
}

func (c *TelegramChannel) Name() string { return "telegram" }

// Send отправляет короткое уведомление в чат сотрудников
func (c *TelegramChannel) Send(ctx context.Context, msg *Message) error {
	if c.bot == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	if _, err := c.bot.Send(tgbotapi.NewMessage(c.chatID, msg.Summary)); err != nil {
		return fmt.Errorf("%w: telegram: %v", ErrSend, err)
	}
	return nil
}
