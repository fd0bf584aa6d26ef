package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/annaaimenedger987-crypto/massageBot/models"
	"github.com/annaaimenedger987-crypto/massageBot/utils"
)

// TelegramNotifier is the production implementation: it pushes admin
// notifications through the same bot the clients talk to.
type TelegramNotifier struct {
	bot     *tgbotapi.BotAPI
	adminID int64
}

func NewTelegramNotifier(bot *tgbotapi.BotAPI, adminID int64) (*TelegramNotifier, error) {
	if bot == nil {
		return nil, fmt.Errorf("notification service initialization error: bot is nil")
	}
	if adminID == 0 {
		return nil, fmt.Errorf("notification service initialization error: admin id is not set")
	}
	return &TelegramNotifier{bot: bot, adminID: adminID}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(_ context.Context, b models.Booking) error {
	text := fmt.Sprintf(
		"📌 Новая запись!\nДата: %s\nВремя: %s\nУслуга: %s (%d мин)\nЦена: %.0f BYN\nКлиент: %s\nТелефон: %s",
		utils.FormatHumanDate(b.Date), b.Start, b.Service, b.DurationMin, b.Price, b.ClientName, b.ClientPhone,
	)
	return n.send(text)
}

func (n *TelegramNotifier) NotifyDigest(_ context.Context, text string) error {
	return n.send(text)
}

func (n *TelegramNotifier) send(text string) error {
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.adminID, text)); err != nil {
		return fmt.Errorf("send admin notification: %w", err)
	}
	return nil
}
