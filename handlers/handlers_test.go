package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annaaimenedger987-crypto/massageBot/models"
	"github.com/annaaimenedger987-crypto/massageBot/services/ledger"
	"github.com/annaaimenedger987-crypto/massageBot/storage"
)

func TestButtonIndex(t *testing.T) {
	t.Run("valid labels", func(t *testing.T) {
		for text, want := range map[string]int{
			"1) Массаж (60 мин)":       0,
			"3) 10:00 — Анна":          2,
			"12) что угодно":           11,
			" 2 ) с пробелами":         1,
		} {
			got, err := buttonIndex(text)
			require.NoError(t, err, text)
			assert.Equal(t, want, got, text)
		}
	})

	t.Run("free text is rejected", func(t *testing.T) {
		for _, text := range []string{"", "Массаж", "первый)", "10:00"} {
			_, err := buttonIndex(text)
			assert.Error(t, err, text)
		}
	})
}

func TestSessions(t *testing.T) {
	s := NewSessions()
	assert.Nil(t, s.Get(1))

	s.Set(1, &BookingFlow{Step: BookingPickDate, Date: "2026-02-16"})
	s.Set(2, &AdminContactsFlow{Step: ContactsEnterAddress, Phone: "+375"})

	flow, ok := s.Get(1).(*BookingFlow)
	require.True(t, ok)
	assert.Equal(t, "2026-02-16", flow.Date)

	// Chats do not share state.
	_, ok = s.Get(2).(*AdminContactsFlow)
	assert.True(t, ok)

	s.Clear(1)
	assert.Nil(t, s.Get(1))
	assert.NotNil(t, s.Get(2))
}

type nullStore struct{}

func (nullStore) Load() (models.Document, error) { return models.EmptyDocument(), nil }
func (nullStore) Save(models.Document) error     { return nil }

var _ storage.Store = nullStore{}

func testLedger(t *testing.T) ledger.LedgerService {
	t.Helper()
	l, err := ledger.New(nullStore{}, "08:00", "20:00", 30)
	require.NoError(t, err)
	return l
}

func TestDigestFor(t *testing.T) {
	l := testLedger(t)
	assert.Equal(t, "Записей нет.", DigestFor(l, "2026-02-16"))

	require.NoError(t, l.Admin().AddService(models.Service{Name: "Массаж", Price: 80, DurationMin: 60}))
	_, err := l.CreateBooking(ledger.BookingRequest{
		Date: "2026-02-16", Start: "10:00", ServiceName: "Массаж",
		ClientName: "Анна", ClientPhone: "+375291234567",
	})
	require.NoError(t, err)

	digest := DigestFor(l, "2026-02-16")
	assert.Contains(t, digest, "10:00")
	assert.Contains(t, digest, "Массаж")
	assert.Contains(t, digest, "Анна")
}

func TestRenderRecords(t *testing.T) {
	l := testLedger(t)
	require.NoError(t, l.Admin().AddService(models.Service{Name: "Массаж", Price: 80, DurationMin: 60}))
	require.NoError(t, l.Admin().SetOverride("2026-02-17", nil))
	_, err := l.CreateBooking(ledger.BookingRequest{
		Date: "2026-02-16", Start: "10:00", ServiceName: "Массаж",
		ClientName: "Анна", ClientPhone: "+375291234567",
	})
	require.NoError(t, err)

	out := renderRecords(l, []string{"2026-02-16", "2026-02-17"})
	assert.Contains(t, out, "16.02.2026")
	assert.Contains(t, out, "10:00, 10:30")
	assert.Contains(t, out, "17.02.2026 — выходной")

	assert.Equal(t, "Записей нет.", renderRecords(l, nil))
}

func TestRenderServices(t *testing.T) {
	assert.Equal(t, "Пока нет добавленных услуг.", renderServices(nil))

	out := renderServices([]models.Service{{Name: "Массаж", Price: 80, DurationMin: 60}})
	assert.Contains(t, out, "1) Массаж — 80 BYN — 60 мин")
}
