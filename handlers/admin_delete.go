package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/annaaimenedger987-crypto/massageBot/services/ledger"
	"github.com/annaaimenedger987-crypto/massageBot/utils"
)

func (r *Router) startAdminDelete(chatID int64) {
	dates := r.ledger.BookedDates()
	if len(dates) == 0 {
		r.send(chatID, "Записей нет — удалять нечего.", nil)
		return
	}
	r.sessions.Set(chatID, &AdminDeleteFlow{Step: DeletePickDate})
	r.send(chatID, "Выберите дату, где удалить запись:", listKeyboard(dates, BtnCancel))
}

func (r *Router) handleDeleteStep(chatID int64, isAdmin bool, f *AdminDeleteFlow, text string) {
	if !isAdmin {
		r.sessions.Clear(chatID)
		return
	}
	if text == BtnCancel {
		r.sessions.Clear(chatID)
		r.send(chatID, "Ок.", adminKeyboard())
		return
	}

	switch f.Step {
	case DeletePickDate:
		r.deletePickDate(chatID, f, text)
	case DeletePickBooking:
		r.deletePickBooking(chatID, f, text)
	}
}

func (r *Router) deletePickDate(chatID int64, f *AdminDeleteFlow, text string) {
	date := strings.TrimSpace(text)
	bookings := r.ledger.BookingsFor(date)
	if len(bookings) == 0 {
		r.send(chatID, "На этой дате нет записей. Выберите другую.", nil)
		return
	}

	f.Date = date
	f.Bookings = bookings
	f.Step = DeletePickBooking

	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s\nВыберите номер записи для удаления:\n\n", utils.FormatHumanDate(date))
	numbers := make([]string, 0, len(bookings))
	for i, bk := range bookings {
		b.WriteString(bookingLine(i, bk) + "\n")
		numbers = append(numbers, strconv.Itoa(i+1))
	}
	r.send(chatID, b.String(), listKeyboard(numbers, BtnCancel))
}

func (r *Router) deletePickBooking(chatID int64, f *AdminDeleteFlow, text string) {
	idx, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		r.send(chatID, "Нужно нажать номер кнопкой.", nil)
		return
	}
	idx--
	if idx < 0 || idx >= len(f.Bookings) {
		r.send(chatID, "Неверный номер.", nil)
		return
	}

	target := f.Bookings[idx]
	removed, err := r.ledger.Admin().DeleteBooking(f.Date, target.ID)
	if err != nil {
		if errors.Is(err, ledger.ErrBookingNotFound) {
			// Deleted elsewhere since the list was shown.
			r.sessions.Clear(chatID)
			r.send(chatID, "Эта запись уже удалена.", adminKeyboard())
			return
		}
		r.log.Error("booking deletion failed", zap.String("id", target.ID), zap.Error(err))
		r.send(chatID, "⚠️ Не удалось удалить запись, попробуйте ещё раз.", nil)
		return
	}

	r.sessions.Clear(chatID)
	r.send(chatID, fmt.Sprintf(
		"✅ Запись удалена, время освобождено:\n%s %s — %s — %s",
		utils.FormatHumanDate(f.Date), removed.Start, removed.Service, removed.ClientName,
	), adminKeyboard())
}
