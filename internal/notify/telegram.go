// Package notify sends booking notifications to property managers via
// Telegram.
package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"stayline/internal/events"
	"stayline/internal/models"
)

// Notifier pushes booking events to configured manager chats.
type Notifier struct {
	bot      *tgbotapi.BotAPI
	managers []int64
	limiter  *rate.Limiter
	logger   *zerolog.Logger
}

// New creates a notifier for the given bot token and manager chat IDs.
func New(token string, managers []int64, logger *zerolog.Logger) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Notifier{
		bot:      bot,
		managers: managers,
		// Telegram caps bots around 30 messages per second.
		limiter: rate.NewLimiter(rate.Limit(20), 30),
		logger:  logger,
	}, nil
}

// SubscribeTo wires the notifier into the event bus.
func (n *Notifier) SubscribeTo(bus *events.Bus) {
	bus.Subscribe(events.BookingCreated, func(e events.Event) error {
		return n.send(context.Background(), formatCreated(&e.Booking))
	})
	bus.Subscribe(events.BookingCanceled, func(e events.Event) error {
		return n.send(context.Background(), formatCanceled(&e.Booking))
	})
}

func (n *Notifier) send(ctx context.Context, text string) error {
	for _, chatID := range n.managers {
		if err := n.limiter.Wait(ctx); err != nil {
			return err
		}
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = "Markdown"
		if _, err := n.bot.Send(msg); err != nil {
			n.logger.Error().Err(err).Int64("chat_id", chatID).Msg("send notification")
		}
	}
	return nil
}

func formatCreated(b *models.BookingRecord) string {
	return fmt.Sprintf(`🏨 *New booking*

👤 %s
📅 %s → %s (%d nights)
🛏 %s
💰 %.2f
🆔 %s`,
		b.GuestName,
		b.CheckIn.Format("2006-01-02"),
		b.CheckOut.Format("2006-01-02"),
		b.Nights(),
		b.RoomType,
		b.TotalAmount,
		b.ID,
	)
}

func formatCanceled(b *models.BookingRecord) string {
	return fmt.Sprintf(`❌ *Booking canceled*

👤 %s
📅 %s → %s
🆔 %s`,
		b.GuestName,
		b.CheckIn.Format("2006-01-02"),
		b.CheckOut.Format("2006-01-02"),
		b.ID,
	)
}
