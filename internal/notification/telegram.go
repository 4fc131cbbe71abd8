package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/RoomDesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier mirrors dashboard toasts into an admin chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or admin chat is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, note domain.Notification) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("title", note.Title))
		return
	}

	go n.send(context.WithoutCancel(ctx), formatMessage(note))
}

func formatMessage(note domain.Notification) string {
	marker := "✅"
	if note.Variant == domain.VariantDestructive {
		marker = "⚠️"
	}
	return fmt.Sprintf("%s *%s*\n%s",
		marker,
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, note.Title),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, note.Description),
	)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
