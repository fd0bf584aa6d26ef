package handlers

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/annaaimenedger987-crypto/massageBot/services/schedule"
	"github.com/annaaimenedger987-crypto/massageBot/utils"
)

func (r *Router) startAdminSchedule(chatID int64) {
	r.sessions.Set(chatID, &AdminScheduleFlow{Step: SchedulePickDate})
	r.send(chatID, fmt.Sprintf("📅 Выберите дату (%d дней вперёд):", r.horizonDays), listKeyboard(r.horizonDates(), BtnBackToMenu))
}

func (r *Router) handleScheduleStep(chatID int64, isAdmin bool, f *AdminScheduleFlow, text string) {
	if !isAdmin {
		r.sessions.Clear(chatID)
		return
	}
	if text == BtnBackToMenu {
		r.sessions.Clear(chatID)
		r.send(chatID, "Админ-меню ⚙️", adminKeyboard())
		return
	}

	switch f.Step {
	case SchedulePickDate:
		r.schedulePickDate(chatID, f, text)
	case SchedulePickAction:
		r.schedulePickAction(chatID, f, text)
	case ScheduleManualHours:
		r.scheduleManualHours(chatID, f, text)
	}
}

func (r *Router) schedulePickDate(chatID int64, f *AdminScheduleFlow, text string) {
	date := strings.TrimSpace(text)
	if !schedule.WithinHorizon(date, r.now(), r.horizonDays) {
		r.send(chatID, "Выберите дату кнопкой.", nil)
		return
	}
	f.Date = date
	f.Step = SchedulePickAction
	r.send(chatID, fmt.Sprintf("Дата: %s\nЧто сделать?", utils.FormatHumanDate(date)), scheduleActionKeyboard())
}

func (r *Router) schedulePickAction(chatID int64, f *AdminScheduleFlow, text string) {
	switch text {
	case BtnBackToDates:
		r.backToDates(chatID, f)
	case BtnDayOff:
		if err := r.ledger.Admin().SetOverride(f.Date, nil); err != nil {
			r.adminSaveFailed(chatID, err)
			return
		}
		r.send(chatID, fmt.Sprintf("✅ %s — выходной.", utils.FormatHumanDate(f.Date)), nil)
		r.backToDates(chatID, f)
	case BtnRestoreBase:
		if err := r.ledger.Admin().ClearOverride(f.Date); err != nil {
			r.adminSaveFailed(chatID, err)
			return
		}
		r.send(chatID, fmt.Sprintf("✅ %s — вернули стандартные часы.", utils.FormatHumanDate(f.Date)), nil)
		r.backToDates(chatID, f)
	case BtnManualHours:
		f.Step = ScheduleManualHours
		r.send(chatID, "Введите часы диапазонами:\n10-12\nили\n10-12, 16-18",
			listKeyboard(nil, BtnBackToDates, BtnBackToMenu))
	default:
		r.send(chatID, "Выберите действие кнопкой.", nil)
	}
}

func (r *Router) scheduleManualHours(chatID int64, f *AdminScheduleFlow, text string) {
	if text == BtnBackToDates {
		r.backToDates(chatID, f)
		return
	}

	labels, err := schedule.ParseHourRanges(text, r.stepMin)
	if err != nil {
		// Malformed admin input is reported for re-entry, never fatal.
		r.send(chatID, "❌ Формат неверный. Пример: 10-12, 16-18", nil)
		return
	}

	if err := r.ledger.Admin().SetOverride(f.Date, labels); err != nil {
		r.adminSaveFailed(chatID, err)
		return
	}
	r.send(chatID, fmt.Sprintf("✅ Часы на %s сохранены.", utils.FormatHumanDate(f.Date)), nil)
	r.backToDates(chatID, f)
}

func (r *Router) backToDates(chatID int64, f *AdminScheduleFlow) {
	f.Date = ""
	f.Step = SchedulePickDate
	r.send(chatID, "📅 Выберите дату:", listKeyboard(r.horizonDates(), BtnBackToMenu))
}

func (r *Router) adminSaveFailed(chatID int64, err error) {
	r.log.Error("admin mutation failed", zap.Error(err))
	r.send(chatID, "⚠️ Не удалось сохранить изменение, попробуйте ещё раз.", nil)
}
