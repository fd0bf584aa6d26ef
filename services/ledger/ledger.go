package ledger

import (
	"fmt"
	"sort"

	"github.com/annaaimenedger987-crypto/massageBot/models"
	"github.com/annaaimenedger987-crypto/massageBot/services/schedule"
)

// Services returns a snapshot of the price list.
func (l *DefaultLedger) Services() []models.Service {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Service(nil), l.doc.Services...)
}

// ServiceByName looks a service up by its exact name.
func (l *DefaultLedger) ServiceByName(name string) (models.Service, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, svc := range l.doc.Services {
		if svc.Name == name {
			return svc, true
		}
	}
	return models.Service{}, false
}

func (l *DefaultLedger) Contacts() models.Contacts {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.doc.Contacts
}

// BookingsFor returns a snapshot of the date's bookings in start-time order.
// An unknown date is simply a date with no bookings.
func (l *DefaultLedger) BookingsFor(date string) []models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyBookings(l.doc.Appointments[date])
}

// BookedDates returns the sorted dates that currently hold bookings.
func (l *DefaultLedger) BookedDates() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	dates := make([]string, 0, len(l.doc.Appointments))
	for date, list := range l.doc.Appointments {
		if len(list) > 0 {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates
}

// ResolveDay resolves the date's schedule against overrides and the base grid.
func (l *DefaultLedger) ResolveDay(date string) schedule.DaySchedule {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.calc.Resolver.ResolveDay(date)
}

// AvailableStarts lists every valid start label for a booking of the given
// duration. Repeated calls without an intervening mutation return identical
// results.
func (l *DefaultLedger) AvailableStarts(date string, durationMin int) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.calc.AvailableStarts(date, durationMin)
}

// persist writes the document through the store. Mutating callers hold the
// write lock and must undo their in-memory change when this fails.
func (l *DefaultLedger) persist() error {
	if err := l.store.Save(l.doc); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func copyBookings(list []models.Booking) []models.Booking {
	out := make([]models.Booking, len(list))
	for i, b := range list {
		out[i] = b
		out[i].Block = append([]string(nil), b.Block...)
	}
	return out
}
