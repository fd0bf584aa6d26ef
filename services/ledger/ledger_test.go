package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annaaimenedger987-crypto/massageBot/models"
	"github.com/annaaimenedger987-crypto/massageBot/services/schedule"
)

// memStore keeps the document in memory and can be told to fail saves.
type memStore struct {
	doc      models.Document
	saves    int
	failSave bool
	loadErr  error
}

func (s *memStore) Load() (models.Document, error) {
	if s.loadErr != nil {
		return models.EmptyDocument(), s.loadErr
	}
	if s.doc.Appointments == nil {
		return models.EmptyDocument(), nil
	}
	return s.doc, nil
}

func (s *memStore) Save(doc models.Document) error {
	if s.failSave {
		return errors.New("disk full")
	}
	s.doc = doc
	s.saves++
	return nil
}

const testDate = "2026-02-16"

func newTestLedger(t *testing.T) (*DefaultLedger, *memStore) {
	t.Helper()
	store := &memStore{}
	l, err := New(store, "08:00", "20:00", 30)
	require.NoError(t, err)
	require.NoError(t, l.Admin().AddService(models.Service{Name: "Массаж", Price: 80, DurationMin: 60}))
	require.NoError(t, l.Admin().AddService(models.Service{Name: "Спина", Price: 50, DurationMin: 30}))
	return l, store
}

func mustBook(t *testing.T, l *DefaultLedger, date, start, service string) models.Booking {
	t.Helper()
	b, err := l.CreateBooking(BookingRequest{
		Date:        date,
		Start:       start,
		ServiceName: service,
		ClientName:  "Анна",
		ClientPhone: "+375291234567",
	})
	require.NoError(t, err)
	return b
}

func TestCreateBooking(t *testing.T) {
	t.Run("snapshots service fields and persists", func(t *testing.T) {
		l, store := newTestLedger(t)
		savesBefore := store.saves

		b := mustBook(t, l, testDate, "10:00", "Массаж")

		assert.NotEmpty(t, b.ID)
		assert.Equal(t, testDate, b.Date)
		assert.Equal(t, "10:00", b.Start)
		assert.Equal(t, []string{"10:00", "10:30"}, b.Block)
		assert.Equal(t, "Массаж", b.Service)
		assert.Equal(t, 60, b.DurationMin)
		assert.Equal(t, 80.0, b.Price)
		assert.False(t, b.CreatedAt.IsZero())
		assert.Greater(t, store.saves, savesBefore)
	})

	t.Run("taken slot and overlaps disappear from availability", func(t *testing.T) {
		l, _ := newTestLedger(t)
		mustBook(t, l, testDate, "10:00", "Массаж")

		starts, err := l.AvailableStarts(testDate, 60)
		require.NoError(t, err)
		assert.NotContains(t, starts, "10:00")
		assert.NotContains(t, starts, "09:30")
		assert.NotContains(t, starts, "10:30")
		assert.Contains(t, starts, "11:00")
	})

	t.Run("second commit for the same slot loses the race", func(t *testing.T) {
		l, _ := newTestLedger(t)
		mustBook(t, l, testDate, "10:00", "Массаж")

		_, err := l.CreateBooking(BookingRequest{
			Date: testDate, Start: "10:00", ServiceName: "Спина",
			ClientName: "Ольга", ClientPhone: "+375290000000",
		})
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("closed day rejects the booking", func(t *testing.T) {
		l, _ := newTestLedger(t)
		require.NoError(t, l.Admin().SetOverride(testDate, nil))

		_, err := l.CreateBooking(BookingRequest{
			Date: testDate, Start: "10:00", ServiceName: "Массаж",
			ClientName: "Анна", ClientPhone: "+375291234567",
		})
		assert.ErrorIs(t, err, ErrClosedDay)
	})

	t.Run("unknown service", func(t *testing.T) {
		l, _ := newTestLedger(t)
		_, err := l.CreateBooking(BookingRequest{
			Date: testDate, Start: "10:00", ServiceName: "Маникюр",
			ClientName: "Анна", ClientPhone: "+375291234567",
		})
		assert.ErrorIs(t, err, ErrUnknownService)
	})

	t.Run("day list stays sorted by start time", func(t *testing.T) {
		l, _ := newTestLedger(t)
		mustBook(t, l, testDate, "15:00", "Спина")
		mustBook(t, l, testDate, "09:00", "Спина")
		mustBook(t, l, testDate, "12:00", "Спина")

		day := l.BookingsFor(testDate)
		require.Len(t, day, 3)
		assert.Equal(t, "09:00", day[0].Start)
		assert.Equal(t, "12:00", day[1].Start)
		assert.Equal(t, "15:00", day[2].Start)
	})

	t.Run("save failure rolls the mutation back", func(t *testing.T) {
		l, store := newTestLedger(t)
		store.failSave = true

		_, err := l.CreateBooking(BookingRequest{
			Date: testDate, Start: "10:00", ServiceName: "Массаж",
			ClientName: "Анна", ClientPhone: "+375291234567",
		})
		require.ErrorIs(t, err, ErrPersistence)

		store.failSave = false
		assert.Empty(t, l.BookingsFor(testDate))
		starts, err := l.AvailableStarts(testDate, 60)
		require.NoError(t, err)
		assert.Contains(t, starts, "10:00")
	})

	t.Run("later service edits do not rewrite bookings", func(t *testing.T) {
		l, _ := newTestLedger(t)
		b := mustBook(t, l, testDate, "10:00", "Массаж")

		require.NoError(t, l.Admin().UpdateService("Массаж",
			models.Service{Name: "Массаж", Price: 120, DurationMin: 90}))

		day := l.BookingsFor(testDate)
		require.Len(t, day, 1)
		assert.Equal(t, b.Price, day[0].Price)
		assert.Equal(t, b.DurationMin, day[0].DurationMin)
	})
}

func TestDeleteBooking(t *testing.T) {
	t.Run("frees the block and drops the empty date", func(t *testing.T) {
		l, _ := newTestLedger(t)
		b := mustBook(t, l, testDate, "10:00", "Массаж")

		removed, err := l.Admin().DeleteBooking(testDate, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, removed.ID)

		assert.Empty(t, l.BookedDates())
		starts, err := l.AvailableStarts(testDate, 60)
		require.NoError(t, err)
		assert.Contains(t, starts, "10:00")
	})

	t.Run("unknown id and unknown date", func(t *testing.T) {
		l, _ := newTestLedger(t)
		b := mustBook(t, l, testDate, "10:00", "Массаж")

		_, err := l.Admin().DeleteBooking(testDate, "nope")
		assert.ErrorIs(t, err, ErrBookingNotFound)

		_, err = l.Admin().DeleteBooking("2026-03-01", b.ID)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("save failure keeps the booking", func(t *testing.T) {
		l, store := newTestLedger(t)
		b := mustBook(t, l, testDate, "10:00", "Массаж")

		store.failSave = true
		_, err := l.Admin().DeleteBooking(testDate, b.ID)
		require.ErrorIs(t, err, ErrPersistence)

		store.failSave = false
		require.Len(t, l.BookingsFor(testDate), 1)
	})
}

func TestNoDoubleBooking(t *testing.T) {
	l, _ := newTestLedger(t)

	// Fill the day with whatever fits, interleaved with deletions.
	first := mustBook(t, l, testDate, "08:00", "Массаж")
	mustBook(t, l, testDate, "09:00", "Спина")
	mustBook(t, l, testDate, "09:30", "Массаж")
	_, err := l.Admin().DeleteBooking(testDate, first.ID)
	require.NoError(t, err)
	mustBook(t, l, testDate, "08:30", "Спина")
	mustBook(t, l, testDate, "11:00", "Массаж")

	seen := map[string]struct{}{}
	for _, b := range l.BookingsFor(testDate) {
		for _, label := range b.Block {
			_, dup := seen[label]
			require.False(t, dup, "label %s is double-booked", label)
			seen[label] = struct{}{}
		}
	}
}

func TestOverrides(t *testing.T) {
	t.Run("explicit hours replace the base grid", func(t *testing.T) {
		l, _ := newTestLedger(t)
		require.NoError(t, l.Admin().SetOverride(testDate, []string{"10:00", "10:30", "11:00"}))

		day := l.ResolveDay(testDate)
		require.False(t, day.Closed)
		assert.Equal(t, []string{"10:00", "10:30", "11:00"}, day.Slots)
	})

	t.Run("labels are stored deduplicated and sorted", func(t *testing.T) {
		l, _ := newTestLedger(t)
		require.NoError(t, l.Admin().SetOverride(testDate, []string{"11:00", "10:00", "11:00"}))
		assert.Equal(t, []string{"10:00", "11:00"}, l.ResolveDay(testDate).Slots)
	})

	t.Run("misaligned labels are rejected", func(t *testing.T) {
		l, _ := newTestLedger(t)
		err := l.Admin().SetOverride(testDate, []string{"10:15"})
		assert.ErrorIs(t, err, ErrInvalidOverride)

		err = l.Admin().SetOverride(testDate, []string{"ten"})
		assert.ErrorIs(t, err, ErrInvalidOverride)
	})

	t.Run("closed day yields no availability", func(t *testing.T) {
		l, _ := newTestLedger(t)
		require.NoError(t, l.Admin().SetOverride(testDate, nil))

		starts, err := l.AvailableStarts(testDate, 60)
		require.NoError(t, err)
		assert.Empty(t, starts)
	})

	t.Run("clear returns the date to the base schedule", func(t *testing.T) {
		l, _ := newTestLedger(t)
		require.NoError(t, l.Admin().SetOverride(testDate, nil))
		require.NoError(t, l.Admin().ClearOverride(testDate))
		assert.Len(t, l.ResolveDay(testDate).Slots, 24)

		// Clearing a date that has no override is a no-op.
		require.NoError(t, l.Admin().ClearOverride("2026-03-01"))
	})
}

func TestServiceCatalog(t *testing.T) {
	t.Run("duration must sit on the grid", func(t *testing.T) {
		l, _ := newTestLedger(t)
		err := l.Admin().AddService(models.Service{Name: "Экспресс", Price: 30, DurationMin: 45})
		assert.ErrorIs(t, err, schedule.ErrInvalidDuration)
	})

	t.Run("duplicate names are rejected", func(t *testing.T) {
		l, _ := newTestLedger(t)
		err := l.Admin().AddService(models.Service{Name: "Массаж", Price: 90, DurationMin: 60})
		assert.ErrorIs(t, err, ErrServiceExists)
	})

	t.Run("remove", func(t *testing.T) {
		l, _ := newTestLedger(t)
		require.NoError(t, l.Admin().RemoveService("Спина"))
		_, ok := l.ServiceByName("Спина")
		assert.False(t, ok)

		err := l.Admin().RemoveService("Спина")
		assert.ErrorIs(t, err, ErrUnknownService)
	})

	t.Run("snapshot accessors", func(t *testing.T) {
		l, _ := newTestLedger(t)
		services := l.Services()
		require.Len(t, services, 2)
		services[0].Price = 999
		fresh, ok := l.ServiceByName("Массаж")
		require.True(t, ok)
		assert.Equal(t, 80.0, fresh.Price)
	})
}

func TestContacts(t *testing.T) {
	l, _ := newTestLedger(t)
	assert.Equal(t, models.Contacts{}, l.Contacts())

	c := models.Contacts{Phone: "+375 29 123-45-67", Address: "Минск, пр. Победителей 1"}
	require.NoError(t, l.Admin().SetContacts(c))
	assert.Equal(t, c, l.Contacts())
}

func TestPrune(t *testing.T) {
	l, _ := newTestLedger(t)
	mustBook(t, l, "2026-02-10", "10:00", "Массаж")
	mustBook(t, l, "2026-02-20", "10:00", "Массаж")
	require.NoError(t, l.Admin().SetOverride("2026-02-05", nil))

	removed, err := l.Admin().Prune("2026-02-16")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	assert.Empty(t, l.BookingsFor("2026-02-10"))
	assert.Len(t, l.BookingsFor("2026-02-20"), 1)
	assert.False(t, l.ResolveDay("2026-02-05").Closed)

	removed, err = l.Admin().Prune("2026-02-16")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestLoadFailureDegradesToEmpty(t *testing.T) {
	store := &memStore{loadErr: errors.New("corrupt sector")}
	l, err := New(store, "08:00", "20:00", 30)
	require.NoError(t, err)
	assert.Empty(t, l.Services())
	assert.Empty(t, l.BookedDates())
}
