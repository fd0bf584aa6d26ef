package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/annaaimenedger987-crypto/massageBot/services/ledger"
	"github.com/annaaimenedger987-crypto/massageBot/services/schedule"
	"github.com/annaaimenedger987-crypto/massageBot/utils"
)

const (
	minNameLen  = 2
	minPhoneLen = 6
)

func (r *Router) startBooking(chatID int64) {
	services := r.ledger.Services()
	if len(services) == 0 {
		r.send(chatID, "Пока нет услуг. Мастер ещё не добавил услуги.", nil)
		return
	}

	items := make([]string, 0, len(services))
	for i, s := range services {
		items = append(items, serviceButton(i, s))
	}
	r.sessions.Set(chatID, &BookingFlow{Step: BookingPickService})
	r.send(chatID, "Выберите услугу:", listKeyboard(items, BtnCancel))
}

func (r *Router) handleBookingStep(chatID int64, f *BookingFlow, text string) {
	if text == BtnCancel {
		r.sessions.Clear(chatID)
		r.send(chatID, "Ок 🙂", clientKeyboard())
		return
	}

	switch f.Step {
	case BookingPickService:
		r.bookingPickService(chatID, f, text)
	case BookingPickDate:
		r.bookingPickDate(chatID, f, text)
	case BookingPickTime:
		r.bookingPickTime(chatID, f, text)
	case BookingEnterName:
		r.bookingEnterName(chatID, f, text)
	case BookingEnterPhone:
		r.bookingEnterPhone(chatID, f, text)
	}
}

func (r *Router) bookingPickService(chatID int64, f *BookingFlow, text string) {
	idx, err := buttonIndex(text)
	if err != nil {
		r.send(chatID, "Выберите услугу кнопкой.", nil)
		return
	}
	services := r.ledger.Services()
	if idx < 0 || idx >= len(services) {
		r.send(chatID, "Выберите услугу кнопкой.", nil)
		return
	}

	f.Service = services[idx]
	f.Step = BookingPickDate
	r.send(chatID, "Выберите дату:", listKeyboard(r.horizonDates(), BtnCancel))
}

func (r *Router) bookingPickDate(chatID int64, f *BookingFlow, text string) {
	date := strings.TrimSpace(text)
	if !schedule.WithinHorizon(date, r.now(), r.horizonDays) {
		r.send(chatID, "Выберите дату кнопкой.", nil)
		return
	}

	if r.ledger.ResolveDay(date).Closed {
		r.send(chatID, "🚫 В этот день мастер не работает. Выберите другую дату.", nil)
		return
	}

	starts, err := r.ledger.AvailableStarts(date, f.Service.DurationMin)
	if err != nil {
		r.log.Error("availability lookup failed", zap.String("date", date), zap.Error(err))
		r.send(chatID, "Что-то пошло не так, попробуйте ещё раз.", nil)
		return
	}
	if len(starts) == 0 {
		r.send(chatID, "На этот день нет свободных окон под выбранную услугу. Выберите другую дату.", nil)
		return
	}

	f.Date = date
	f.Step = BookingPickTime
	r.send(chatID, "Выберите время:", listKeyboard(starts, BtnCancel))
}

func (r *Router) bookingPickTime(chatID int64, f *BookingFlow, text string) {
	start := strings.TrimSpace(text)

	// Courtesy check with fresh availability; the binding check happens again
	// inside the ledger at commit time.
	starts, err := r.ledger.AvailableStarts(f.Date, f.Service.DurationMin)
	if err != nil || !containsLabel(starts, start) {
		r.send(chatID, "Это время уже заняли 😿 Выберите другое время.", listKeyboard(starts, BtnCancel))
		return
	}

	f.Start = start
	f.Step = BookingEnterName
	r.send(chatID, "Введите ваше имя:", tgbotapi.NewRemoveKeyboard(true))
}

func (r *Router) bookingEnterName(chatID int64, f *BookingFlow, text string) {
	name := strings.TrimSpace(text)
	if utf8.RuneCountInString(name) < minNameLen {
		r.send(chatID, "Имя слишком короткое. Введите ещё раз:", nil)
		return
	}
	f.Name = name
	f.Step = BookingEnterPhone
	r.send(chatID, "Введите телефон (например +375...):", nil)
}

func (r *Router) bookingEnterPhone(chatID int64, f *BookingFlow, text string) {
	phone := strings.TrimSpace(text)
	if utf8.RuneCountInString(phone) < minPhoneLen {
		r.send(chatID, "Телефон выглядит странно. Введите ещё раз:", nil)
		return
	}

	booking, err := r.ledger.CreateBooking(ledger.BookingRequest{
		Date:        f.Date,
		Start:       f.Start,
		ServiceName: f.Service.Name,
		ClientName:  f.Name,
		ClientPhone: phone,
	})
	if err != nil {
		r.bookingCommitFailed(chatID, f, err)
		return
	}

	r.sessions.Clear(chatID)
	r.send(chatID, fmt.Sprintf(
		"✅ Вы записаны!\nУслуга: %s\nДата: %s\nВремя: %s\nДлительность: %d мин\nЦена: %.0f BYN\n\nЕсли нужно — мастер свяжется 💛",
		booking.Service, utils.FormatHumanDate(booking.Date), booking.Start, booking.DurationMin, booking.Price,
	), clientKeyboard())

	// Notification failures never affect the committed booking.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.notifier.NotifyBookingCreated(ctx, booking); err != nil {
		r.log.Warn("failed to notify admin about new booking",
			zap.String("booking_id", booking.ID), zap.Error(err))
	}
}

// bookingCommitFailed sends the client back to the right step: a lost race
// returns to time selection, anything else aborts the flow.
func (r *Router) bookingCommitFailed(chatID int64, f *BookingFlow, err error) {
	switch {
	case errors.Is(err, ledger.ErrSlotTaken), errors.Is(err, ledger.ErrClosedDay):
		starts, availErr := r.ledger.AvailableStarts(f.Date, f.Service.DurationMin)
		if availErr != nil || len(starts) == 0 {
			r.sessions.Clear(chatID)
			r.send(chatID, "На этот день окон больше нет. Попробуйте другую дату.", clientKeyboard())
			return
		}
		f.Step = BookingPickTime
		r.send(chatID, "Это время уже заняли 😿 Выберите другое время.", listKeyboard(starts, BtnCancel))
	default:
		r.log.Error("booking commit failed", zap.Error(err))
		r.sessions.Clear(chatID)
		r.send(chatID, "Не удалось сохранить запись, попробуйте позже.", clientKeyboard())
	}
}

// buttonIndex extracts N from a "N) ..." button label, zero-based.
func buttonIndex(text string) (int, error) {
	head, _, ok := strings.Cut(text, ")")
	if !ok {
		return 0, fmt.Errorf("no index in %q", text)
	}
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

func containsLabel(list []string, label string) bool {
	for _, l := range list {
		if l == label {
			return true
		}
	}
	return false
}
