package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/annaaimenedger987-crypto/massageBot/models"
	"github.com/annaaimenedger987-crypto/massageBot/services/ledger"
	"github.com/annaaimenedger987-crypto/massageBot/services/schedule"
)

func (r *Router) startAdminServices(chatID int64) {
	r.sessions.Set(chatID, &AdminServiceFlow{Step: ServicePickAction})
	r.send(chatID, renderServices(r.ledger.Services())+"\n\nЧто сделать?", serviceActionKeyboard())
}

func (r *Router) handleServiceStep(chatID int64, isAdmin bool, f *AdminServiceFlow, text string) {
	if !isAdmin {
		r.sessions.Clear(chatID)
		return
	}
	if text == BtnBackToMenu || text == BtnCancel {
		r.sessions.Clear(chatID)
		r.send(chatID, "Админ-меню ⚙️", adminKeyboard())
		return
	}

	switch f.Step {
	case ServicePickAction:
		r.servicePickAction(chatID, f, text)
	case ServiceEnterName:
		r.serviceEnterName(chatID, f, text)
	case ServiceEnterPrice:
		r.serviceEnterPrice(chatID, f, text)
	case ServiceEnterDuration:
		r.serviceEnterDuration(chatID, f, text)
	case ServicePickRemove:
		r.servicePickRemove(chatID, f, text)
	}
}

func (r *Router) servicePickAction(chatID int64, f *AdminServiceFlow, text string) {
	switch text {
	case BtnServiceAdd:
		f.Step = ServiceEnterName
		r.send(chatID, "Введите название услуги:", listKeyboard(nil, BtnCancel))
	case BtnServiceRemove:
		services := r.ledger.Services()
		if len(services) == 0 {
			r.send(chatID, "Удалять нечего — список пуст.", nil)
			return
		}
		items := make([]string, 0, len(services))
		for i, s := range services {
			items = append(items, serviceButton(i, s))
		}
		f.Step = ServicePickRemove
		r.send(chatID, "Какую услугу удалить?", listKeyboard(items, BtnCancel))
	default:
		r.send(chatID, "Выберите действие кнопкой.", nil)
	}
}

func (r *Router) serviceEnterName(chatID int64, f *AdminServiceFlow, text string) {
	name := strings.TrimSpace(text)
	if name == "" {
		r.send(chatID, "Название не может быть пустым. Введите ещё раз:", nil)
		return
	}
	f.Name = name
	f.Step = ServiceEnterPrice
	r.send(chatID, "Введите цену в BYN (число):", nil)
}

func (r *Router) serviceEnterPrice(chatID int64, f *AdminServiceFlow, text string) {
	price, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(text), ",", "."), 64)
	if err != nil || price < 0 {
		r.send(chatID, "Нужно число, например 80. Введите ещё раз:", nil)
		return
	}
	f.Price = price
	f.Step = ServiceEnterDuration
	r.send(chatID, fmt.Sprintf("Введите длительность в минутах (кратно %d):", r.stepMin), nil)
}

func (r *Router) serviceEnterDuration(chatID int64, f *AdminServiceFlow, text string) {
	duration, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		r.send(chatID, "Нужно число минут. Введите ещё раз:", nil)
		return
	}

	svc := models.Service{Name: f.Name, Price: f.Price, DurationMin: duration}
	if err := r.ledger.Admin().AddService(svc); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDuration):
			r.send(chatID, fmt.Sprintf("Длительность должна быть кратна %d минутам. Введите ещё раз:", r.stepMin), nil)
		case errors.Is(err, ledger.ErrServiceExists):
			r.sessions.Clear(chatID)
			r.send(chatID, "Такая услуга уже есть.", adminKeyboard())
		default:
			r.adminSaveFailed(chatID, err)
		}
		return
	}

	r.sessions.Clear(chatID)
	r.send(chatID, fmt.Sprintf("✅ Услуга добавлена: %s — %.0f BYN — %d мин.", f.Name, f.Price, duration), adminKeyboard())
}

func (r *Router) servicePickRemove(chatID int64, f *AdminServiceFlow, text string) {
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

	name := services[idx].Name
	if err := r.ledger.Admin().RemoveService(name); err != nil {
		r.adminSaveFailed(chatID, err)
		return
	}
	r.sessions.Clear(chatID)
	r.send(chatID, fmt.Sprintf("✅ Услуга удалена: %s.", name), adminKeyboard())
}
