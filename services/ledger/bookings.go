package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/annaaimenedger987-crypto/massageBot/models"
	"github.com/annaaimenedger987-crypto/massageBot/services/schedule"
)

// CreateBooking commits a client's choice. Availability is re-derived here,
// immediately before mutating, because the selection the client saw is stale
// by definition: another client may have taken the slot in between. Service
// fields are snapshotted into the booking so later price-list edits do not
// rewrite it.
func (l *DefaultLedger) CreateBooking(req BookingRequest) (models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	svc, ok := l.findService(req.ServiceName)
	if !ok {
		return models.Booking{}, fmt.Errorf("%w: %q", ErrUnknownService, req.ServiceName)
	}

	if l.calc.Resolver.ResolveDay(req.Date).Closed {
		return models.Booking{}, fmt.Errorf("%w: %s", ErrClosedDay, req.Date)
	}

	starts, err := l.calc.AvailableStarts(req.Date, svc.DurationMin)
	if err != nil {
		return models.Booking{}, err
	}
	if !contains(starts, req.Start) {
		return models.Booking{}, fmt.Errorf("%w: %s %s", ErrSlotTaken, req.Date, req.Start)
	}

	block, err := schedule.BuildBlock(req.Start, svc.DurationMin, l.calc.Resolver.StepMin())
	if err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		ID:          uuid.New().String(),
		Date:        req.Date,
		Start:       req.Start,
		Block:       block,
		Service:     svc.Name,
		DurationMin: svc.DurationMin,
		Price:       svc.Price,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		CreatedAt:   time.Now(),
	}

	prev, hadDate := l.doc.Appointments[req.Date]
	day := append(copyBookings(prev), booking)
	// Stable display order within a day.
	sort.Slice(day, func(i, j int) bool { return day[i].Start < day[j].Start })
	l.doc.Appointments[req.Date] = day

	if err := l.persist(); err != nil {
		if hadDate {
			l.doc.Appointments[req.Date] = prev
		} else {
			delete(l.doc.Appointments, req.Date)
		}
		return models.Booking{}, err
	}

	l.log.Info("booking created",
		zap.String("id", booking.ID),
		zap.String("date", booking.Date),
		zap.String("start", booking.Start),
		zap.String("service", booking.Service))
	return booking, nil
}

// deleteBooking removes a booking by id. Its block is freed implicitly since
// occupancy is derived from the remaining bookings.
func (l *DefaultLedger) deleteBooking(date, id string) (models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev, ok := l.doc.Appointments[date]
	if !ok {
		return models.Booking{}, fmt.Errorf("%w: no bookings on %s", ErrBookingNotFound, date)
	}

	var removed models.Booking
	found := false
	remaining := make([]models.Booking, 0, len(prev))
	for _, b := range prev {
		if b.ID == id {
			removed = b
			found = true
			continue
		}
		remaining = append(remaining, b)
	}
	if !found {
		return models.Booking{}, fmt.Errorf("%w: %s on %s", ErrBookingNotFound, id, date)
	}

	if len(remaining) == 0 {
		delete(l.doc.Appointments, date)
	} else {
		l.doc.Appointments[date] = remaining
	}

	if err := l.persist(); err != nil {
		l.doc.Appointments[date] = prev
		return models.Booking{}, err
	}

	l.log.Info("booking deleted",
		zap.String("id", removed.ID),
		zap.String("date", removed.Date),
		zap.String("start", removed.Start))
	return removed, nil
}

func (l *DefaultLedger) findService(name string) (models.Service, bool) {
	for _, svc := range l.doc.Services {
		if svc.Name == name {
			return svc, true
		}
	}
	return models.Service{}, false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
