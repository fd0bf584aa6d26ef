package handlers

import (
	"fmt"
	"strings"

	"github.com/annaaimenedger987-crypto/massageBot/models"
	"github.com/annaaimenedger987-crypto/massageBot/services/ledger"
	"github.com/annaaimenedger987-crypto/massageBot/services/schedule"
	"github.com/annaaimenedger987-crypto/massageBot/utils"
)

func renderServices(services []models.Service) string {
	if len(services) == 0 {
		return "Пока нет добавленных услуг."
	}
	var b strings.Builder
	b.WriteString("💆‍♀️ Услуги и цены:\n\n")
	for i, s := range services {
		fmt.Fprintf(&b, "%d) %s — %.0f BYN — %d мин\n", i+1, s.Name, s.Price, s.DurationMin)
	}
	return b.String()
}

func renderContacts(c models.Contacts) string {
	return fmt.Sprintf("📍 Контакты мастера:\n📞 Телефон: %s\n🏠 Адрес: %s",
		orPlaceholder(c.Phone), orPlaceholder(c.Address))
}

func orPlaceholder(s string) string {
	if s == "" {
		return "не указан"
	}
	return s
}

func serviceButton(i int, s models.Service) string {
	return fmt.Sprintf("%d) %s (%d мин)", i+1, s.Name, s.DurationMin)
}

func bookingLine(i int, b models.Booking) string {
	return fmt.Sprintf("%d) %s — %s — %s (%s)", i+1, b.Start, b.Service, b.ClientName, b.ClientPhone)
}

// renderRecords shows, per date, which slots are taken and which remain free.
func renderRecords(svc ledger.LedgerService, dates []string) string {
	var lines []string
	for _, d := range dates {
		day := svc.ResolveDay(d)
		if day.Closed {
			lines = append(lines, fmt.Sprintf("📅 %s — выходной", utils.FormatHumanDate(d)), "")
			continue
		}

		busy := schedule.BusyLabels(d, dateSource{svc})
		free := make([]string, 0, len(day.Slots))
		taken := make([]string, 0, len(busy))
		for _, t := range day.Slots {
			if _, ok := busy[t]; ok {
				taken = append(taken, t)
			} else {
				free = append(free, t)
			}
		}

		lines = append(lines, fmt.Sprintf("📅 %s", utils.FormatHumanDate(d)))
		lines = append(lines, listOrNone("🔴 Занято", taken)...)
		lines = append(lines, listOrNone("🟢 Свободно", free)...)
		lines = append(lines, "")
	}
	if len(lines) == 0 {
		return "Записей нет."
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// renderFreeWindows shows only the free side of every date in the horizon.
func renderFreeWindows(svc ledger.LedgerService, dates []string) string {
	var lines []string
	for _, d := range dates {
		day := svc.ResolveDay(d)
		if day.Closed {
			lines = append(lines, fmt.Sprintf("📅 %s — выходной", utils.FormatHumanDate(d)), "")
			continue
		}

		busy := schedule.BusyLabels(d, dateSource{svc})
		free := make([]string, 0, len(day.Slots))
		for _, t := range day.Slots {
			if _, ok := busy[t]; !ok {
				free = append(free, t)
			}
		}

		lines = append(lines, fmt.Sprintf("📅 %s", utils.FormatHumanDate(d)))
		lines = append(lines, listOrNone("🟢 Свободно", free)...)
		lines = append(lines, "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func listOrNone(prefix string, labels []string) []string {
	if len(labels) == 0 {
		return []string{prefix + ": нет"}
	}
	return []string{prefix + ":", strings.Join(labels, ", ")}
}

// DigestFor renders a date's booking list for the morning digest.
func DigestFor(svc ledger.LedgerService, date string) string {
	bookings := svc.BookingsFor(date)
	if len(bookings) == 0 {
		return "Записей нет."
	}
	var b strings.Builder
	for i, bk := range bookings {
		b.WriteString(bookingLine(i, bk) + "\n")
	}
	return strings.TrimSpace(b.String())
}

// dateSource adapts the ledger's snapshot accessor to schedule.BookingSource.
type dateSource struct{ svc ledger.LedgerService }

func (s dateSource) BookingsFor(date string) []models.Booking {
	return s.svc.BookingsFor(date)
}
