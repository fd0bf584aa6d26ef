package ledger

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/annaaimenedger987-crypto/massageBot/models"
	"github.com/annaaimenedger987-crypto/massageBot/services/schedule"
)

// adminFacade is the administrator-only call path. It carries no extra
// authorisation; its purpose is to make admin mutations impossible to reach
// by accident from the client flows.
type adminFacade struct{ l *DefaultLedger }

var _ AdminService = adminFacade{}

func (a adminFacade) AddService(svc models.Service) error {
	l := a.l
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.validateService(svc); err != nil {
		return err
	}
	if _, exists := l.findService(svc.Name); exists {
		return fmt.Errorf("%w: %q", ErrServiceExists, svc.Name)
	}

	prev := l.doc.Services
	l.doc.Services = append(append([]models.Service(nil), prev...), svc)
	if err := l.persist(); err != nil {
		l.doc.Services = prev
		return err
	}
	l.log.Info("service added", zap.String("name", svc.Name), zap.Int("duration", svc.DurationMin))
	return nil
}

func (a adminFacade) UpdateService(name string, svc models.Service) error {
	l := a.l
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.validateService(svc); err != nil {
		return err
	}

	idx := -1
	for i, s := range l.doc.Services {
		if s.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownService, name)
	}
	if svc.Name != name {
		if _, exists := l.findService(svc.Name); exists {
			return fmt.Errorf("%w: %q", ErrServiceExists, svc.Name)
		}
	}

	prev := l.doc.Services
	next := append([]models.Service(nil), prev...)
	next[idx] = svc
	l.doc.Services = next
	if err := l.persist(); err != nil {
		l.doc.Services = prev
		return err
	}
	l.log.Info("service updated", zap.String("name", name))
	return nil
}

func (a adminFacade) RemoveService(name string) error {
	l := a.l
	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.doc.Services
	next := make([]models.Service, 0, len(prev))
	found := false
	for _, s := range prev {
		if s.Name == name {
			found = true
			continue
		}
		next = append(next, s)
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrUnknownService, name)
	}

	l.doc.Services = next
	if err := l.persist(); err != nil {
		l.doc.Services = prev
		return err
	}
	l.log.Info("service removed", zap.String("name", name))
	return nil
}

// SetOverride replaces the date's schedule. A nil slot list closes the date
// entirely; a non-nil list becomes the date's only valid slot starts. Labels
// must sit on the grid; the list is stored deduplicated and sorted.
func (a adminFacade) SetOverride(date string, slots []string) error {
	l := a.l
	l.mu.Lock()
	defer l.mu.Unlock()

	var normalized []string
	if slots != nil {
		var err error
		normalized, err = normalizeOverride(slots, l.calc.Resolver.StepMin())
		if err != nil {
			return err
		}
	}

	prev, hadPrev := l.doc.Overrides[date]
	l.doc.Overrides[date] = normalized
	if err := l.persist(); err != nil {
		if hadPrev {
			l.doc.Overrides[date] = prev
		} else {
			delete(l.doc.Overrides, date)
		}
		return err
	}
	l.log.Info("override set", zap.String("date", date), zap.Bool("closed", normalized == nil))
	return nil
}

// ClearOverride returns the date to the base schedule. Clearing a date that
// has no override is a no-op.
func (a adminFacade) ClearOverride(date string) error {
	l := a.l
	l.mu.Lock()
	defer l.mu.Unlock()

	prev, hadPrev := l.doc.Overrides[date]
	if !hadPrev {
		return nil
	}

	delete(l.doc.Overrides, date)
	if err := l.persist(); err != nil {
		l.doc.Overrides[date] = prev
		return err
	}
	l.log.Info("override cleared", zap.String("date", date))
	return nil
}

func (a adminFacade) DeleteBooking(date, id string) (models.Booking, error) {
	return a.l.deleteBooking(date, id)
}

func (a adminFacade) SetContacts(c models.Contacts) error {
	l := a.l
	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.doc.Contacts
	l.doc.Contacts = c
	if err := l.persist(); err != nil {
		l.doc.Contacts = prev
		return err
	}
	l.log.Info("contacts updated")
	return nil
}

// Prune drops appointments and overrides for dates before the given date.
// ISO dates compare lexicographically, so a plain string compare is enough.
func (a adminFacade) Prune(before string) (int, error) {
	l := a.l
	l.mu.Lock()
	defer l.mu.Unlock()

	prevAppts := l.doc.Appointments
	prevOverrides := l.doc.Overrides

	appts := map[string][]models.Booking{}
	removed := 0
	for date, list := range prevAppts {
		if date < before {
			removed++
			continue
		}
		appts[date] = list
	}
	overrides := map[string][]string{}
	for date, slots := range prevOverrides {
		if date < before {
			removed++
			continue
		}
		overrides[date] = slots
	}
	if removed == 0 {
		return 0, nil
	}

	l.doc.Appointments = appts
	l.doc.Overrides = overrides
	if err := l.persist(); err != nil {
		l.doc.Appointments = prevAppts
		l.doc.Overrides = prevOverrides
		return 0, err
	}
	l.log.Info("pruned stale dates", zap.String("before", before), zap.Int("removed", removed))
	return removed, nil
}

func (l *DefaultLedger) validateService(svc models.Service) error {
	if svc.Name == "" {
		return ErrServiceName
	}
	step := l.calc.Resolver.StepMin()
	if svc.DurationMin <= 0 || svc.DurationMin%step != 0 {
		return fmt.Errorf("%w: %d min with step %d", schedule.ErrInvalidDuration, svc.DurationMin, step)
	}
	return nil
}

func normalizeOverride(slots []string, stepMin int) ([]string, error) {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(slots))
	for _, label := range slots {
		min, err := schedule.ParseLabel(label)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOverride, label)
		}
		if min%stepMin != 0 {
			return nil, fmt.Errorf("%w: %q is off the %d-minute grid", ErrInvalidOverride, label, stepMin)
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	sort.Strings(out)
	return out, nil
}
