package notification

import (
	"context"
	"fmt"

	"github.com/evento-ems/evento/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes ticket lifecycle messages to a shared operations
// chat. With an empty token or chat id notifications are silently dropped.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyTicketBooked(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket) {
	text := fmt.Sprintf(
		"*Ticket booked*\n\n"+"Event: %s\n"+"User: %s\n"+"Quantity: %d\n"+"Total: %d",
		event.Title, user.Name, ticket.Quantity, ticket.Total(),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyTicketCancelled(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket) {
	text := fmt.Sprintf(
		"*Ticket cancelled*\n\n"+"Event: %s\n"+"User: %s\n"+"Quantity: %d\n"+"Refunded: %d",
		event.Title, user.Name, ticket.Quantity, ticket.Total(),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.chatID == 0 {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
