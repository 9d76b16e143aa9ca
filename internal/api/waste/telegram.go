package waste

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier relays an alert message to the cleanup channel and returns the
// provider's message identifier.
type Notifier interface {
	Notify(ctx context.Context, text string) (int, error)
}

// TelegramNotifier sends alerts to a fixed Telegram chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

var _ Notifier = (*TelegramNotifier)(nil)

// NewTelegramNotifier authenticates the bot with the given token.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// Notify sends the alert as a Markdown message.
func (n *TelegramNotifier) Notify(ctx context.Context, text string) (int, error) {
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	sent, err := n.bot.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("failed to send telegram message: %w", err)
	}
	return sent.MessageID, nil
}
