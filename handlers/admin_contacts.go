package handlers

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/annaaimenedger987-crypto/massageBot/models"
)

func (r *Router) startAdminContacts(chatID int64) {
	current := r.ledger.Contacts()
	r.sessions.Set(chatID, &AdminContactsFlow{Step: ContactsEnterPhone})
	r.send(chatID, fmt.Sprintf(
		"Введите телефон (как показывать клиенту), например: +375 29 ...\n\nТекущий: %s",
		orPlaceholder(current.Phone),
	), tgbotapi.NewRemoveKeyboard(true))
}

func (r *Router) handleContactsStep(chatID int64, isAdmin bool, f *AdminContactsFlow, text string) {
	if !isAdmin {
		r.sessions.Clear(chatID)
		return
	}

	switch f.Step {
	case ContactsEnterPhone:
		f.Phone = strings.TrimSpace(text)
		f.Step = ContactsEnterAddress
		current := r.ledger.Contacts()
		r.send(chatID, fmt.Sprintf(
			"Теперь введите адрес (или просто город/район).\n\nТекущий: %s",
			orPlaceholder(current.Address),
		), nil)
	case ContactsEnterAddress:
		contacts := models.Contacts{Phone: f.Phone, Address: strings.TrimSpace(text)}
		if err := r.ledger.Admin().SetContacts(contacts); err != nil {
			r.adminSaveFailed(chatID, err)
			return
		}
		r.sessions.Clear(chatID)
		r.send(chatID, "✅ Контакты сохранены.", adminKeyboard())
	}
}
