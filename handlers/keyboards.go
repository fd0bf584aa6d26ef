package handlers

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Button labels. Dialogue routing matches on them verbatim, so they live in
// one place.
const (
	BtnBook     = "📅 Записаться"
	BtnServices = "💆‍♀️ Услуги и цены"
	BtnContacts = "📍 Контакты"

	BtnBackToMenu  = "⬅️ В меню"
	BtnBackToDates = "⬅️ К датам"
	BtnCancel      = "❌ Отмена"

	BtnAdminSchedule        = "📅 Управление расписанием"
	BtnAdminRecordsToday    = "📋 Записи: сегодня"
	BtnAdminRecordsTomorrow = "📋 Записи: завтра"
	BtnAdminRecordsAll      = "📋 Записи: все"
	BtnAdminDelete          = "🗑 Удалить запись"
	BtnAdminFree            = "🕒 Свободные окна"
	BtnAdminContacts        = "📍 Контакты (настроить)"
	BtnAdminServices        = "💼 Услуги (настроить)"

	BtnDayOff      = "🚫 Сделать выходным"
	BtnRestoreBase = "🔄 Вернуть стандарт"
	BtnManualHours = "⏰ Задать часы вручную"

	BtnServiceAdd    = "➕ Добавить услугу"
	BtnServiceRemove = "🗑 Удалить услугу"
)

func clientKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return keyboardOf([][]string{
		{BtnBook},
		{BtnServices},
		{BtnContacts},
	})
}

func adminKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return keyboardOf([][]string{
		{BtnAdminSchedule},
		{BtnAdminRecordsToday, BtnAdminRecordsTomorrow},
		{BtnAdminRecordsAll},
		{BtnAdminDelete, BtnAdminFree},
		{BtnAdminContacts},
		{BtnAdminServices},
		{BtnServices},
	})
}

func scheduleActionKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return keyboardOf([][]string{
		{BtnManualHours},
		{BtnDayOff},
		{BtnRestoreBase},
		{BtnBackToDates},
		{BtnBackToMenu},
	})
}

func serviceActionKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return keyboardOf([][]string{
		{BtnServiceAdd},
		{BtnServiceRemove},
		{BtnBackToMenu},
	})
}

// listKeyboard renders one button per row, followed by the extra rows.
func listKeyboard(items []string, extras ...string) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]string, 0, len(items)+len(extras))
	for _, it := range items {
		rows = append(rows, []string{it})
	}
	for _, ex := range extras {
		rows = append(rows, []string{ex})
	}
	return keyboardOf(rows)
}

func keyboardOf(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	kbRows := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		kbRow := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			kbRow = append(kbRow, tgbotapi.NewKeyboardButton(label))
		}
		kbRows = append(kbRows, kbRow)
	}
	kb := tgbotapi.NewReplyKeyboard(kbRows...)
	kb.ResizeKeyboard = true
	return kb
}
