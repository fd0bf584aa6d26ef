package handlers

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/annaaimenedger987-crypto/massageBot/services/ledger"
	"github.com/annaaimenedger987-crypto/massageBot/services/notification"
	"github.com/annaaimenedger987-crypto/massageBot/services/schedule"
	"github.com/annaaimenedger987-crypto/massageBot/utils"
)

// Router drives the multi-step dialogues. It is the only component that
// speaks Telegram; everything it learns goes through the ledger's narrow
// read/commit surface.
type Router struct {
	bot         *tgbotapi.BotAPI
	ledger      ledger.LedgerService
	notifier    notification.NotificationService
	sessions    *Sessions
	adminID     int64
	horizonDays int
	stepMin     int
	log         *zap.Logger

	// now is swappable in tests.
	now func() time.Time
}

func NewRouter(
	bot *tgbotapi.BotAPI,
	ledgerSvc ledger.LedgerService,
	notifier notification.NotificationService,
	adminID int64,
	horizonDays int,
	stepMin int,
) *Router {
	return &Router{
		bot:         bot,
		ledger:      ledgerSvc,
		notifier:    notifier,
		sessions:    NewSessions(),
		adminID:     adminID,
		horizonDays: horizonDays,
		stepMin:     stepMin,
		log:         utils.GetLogger(),
		now:         time.Now,
	}
}

// Run polls Telegram for updates until the context is cancelled.
func (r *Router) Run(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := r.bot.GetUpdatesChan(cfg)

	r.log.Info("bot is polling for updates")
	for {
		select {
		case <-ctx.Done():
			r.bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			r.HandleUpdate(update)
		}
	}
}

// HandleUpdate routes one incoming message: /start resets the conversation,
// an active flow consumes the message, otherwise it is a menu press.
func (r *Router) HandleUpdate(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" || msg.From == nil {
		return
	}

	chatID := msg.Chat.ID
	isAdmin := msg.From.ID == r.adminID
	text := msg.Text

	if msg.IsCommand() {
		if msg.Command() == "start" {
			r.sessions.Clear(chatID)
			r.sendMenu(chatID, isAdmin)
		}
		return
	}

	switch f := r.sessions.Get(chatID).(type) {
	case *BookingFlow:
		r.handleBookingStep(chatID, f, text)
	case *AdminScheduleFlow:
		r.handleScheduleStep(chatID, isAdmin, f, text)
	case *AdminDeleteFlow:
		r.handleDeleteStep(chatID, isAdmin, f, text)
	case *AdminContactsFlow:
		r.handleContactsStep(chatID, isAdmin, f, text)
	case *AdminServiceFlow:
		r.handleServiceStep(chatID, isAdmin, f, text)
	default:
		r.handleMenu(chatID, isAdmin, text)
	}
}

func (r *Router) handleMenu(chatID int64, isAdmin bool, text string) {
	switch text {
	case BtnServices:
		r.send(chatID, renderServices(r.ledger.Services()), nil)
	case BtnContacts:
		r.send(chatID, renderContacts(r.ledger.Contacts()), nil)
	case BtnBook:
		r.startBooking(chatID)
	}
	if !isAdmin {
		return
	}

	switch text {
	case BtnAdminSchedule:
		r.startAdminSchedule(chatID)
	case BtnAdminRecordsToday:
		today := r.now().Format(schedule.DateLayout)
		r.send(chatID, renderRecords(r.ledger, []string{today}), nil)
	case BtnAdminRecordsTomorrow:
		tomorrow := r.now().AddDate(0, 0, 1).Format(schedule.DateLayout)
		r.send(chatID, renderRecords(r.ledger, []string{tomorrow}), nil)
	case BtnAdminRecordsAll:
		r.send(chatID, renderRecords(r.ledger, r.bookedHorizonDates()), nil)
	case BtnAdminFree:
		r.send(chatID, renderFreeWindows(r.ledger, r.horizonDates()), adminKeyboard())
	case BtnAdminDelete:
		r.startAdminDelete(chatID)
	case BtnAdminContacts:
		r.startAdminContacts(chatID)
	case BtnAdminServices:
		r.startAdminServices(chatID)
	}
}

func (r *Router) sendMenu(chatID int64, isAdmin bool) {
	if isAdmin {
		r.send(chatID, "Админ-режим ⚙️", adminKeyboard())
		return
	}
	r.send(chatID, "Я бот онлайн-записи 💫", clientKeyboard())
}

// send delivers one message; kb may be a reply keyboard, a keyboard removal,
// or nil to leave the current keyboard alone.
func (r *Router) send(chatID int64, text string, kb interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if kb != nil {
		msg.ReplyMarkup = kb
	}
	if _, err := r.bot.Send(msg); err != nil {
		r.log.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (r *Router) horizonDates() []string {
	return schedule.HorizonDates(r.now(), r.horizonDays)
}

// bookedHorizonDates filters the booked dates down to the visible window.
func (r *Router) bookedHorizonDates() []string {
	var dates []string
	for _, d := range r.ledger.BookedDates() {
		if schedule.WithinHorizon(d, r.now(), r.horizonDays) {
			dates = append(dates, d)
		}
	}
	return dates
}
