package ledger

import (
	"sync"

	"go.uber.org/zap"

	"github.com/annaaimenedger987-crypto/massageBot/models"
	"github.com/annaaimenedger987-crypto/massageBot/services/schedule"
	"github.com/annaaimenedger987-crypto/massageBot/storage"
	"github.com/annaaimenedger987-crypto/massageBot/utils"
)

// BookingRequest carries everything the commit step collected from a client.
type BookingRequest struct {
	Date        string
	Start       string
	ServiceName string
	ClientName  string
	ClientPhone string
}

// LedgerService is the read-and-commit surface the conversation flows use.
// All methods return snapshots; callers never see the ledger's internals.
type LedgerService interface {
	Services() []models.Service
	ServiceByName(name string) (models.Service, bool)
	Contacts() models.Contacts
	BookingsFor(date string) []models.Booking
	BookedDates() []string
	ResolveDay(date string) schedule.DaySchedule
	AvailableStarts(date string, durationMin int) ([]string, error)
	CreateBooking(req BookingRequest) (models.Booking, error)

	// Admin returns the explicit administrator-only call path. The ledger
	// does not authorise; the orchestrator gates who reaches this.
	Admin() AdminService
}

// AdminService groups the mutations only the configured administrator may
// trigger.
type AdminService interface {
	AddService(svc models.Service) error
	UpdateService(name string, svc models.Service) error
	RemoveService(name string) error
	SetOverride(date string, slots []string) error
	ClearOverride(date string) error
	DeleteBooking(date, id string) (models.Booking, error)
	SetContacts(c models.Contacts) error
	Prune(before string) (int, error)
}

// DefaultLedger is the single authoritative owner of mutable scheduler state.
// One mutex serialises every operation, so two concurrent commits can never
// both pass validation and double-book a block. Every mutation persists
// synchronously and rolls back in memory if the save fails.
type DefaultLedger struct {
	mu    sync.RWMutex
	doc   models.Document
	store storage.Store
	calc  *schedule.Calculator
	log   *zap.Logger
}

var _ LedgerService = (*DefaultLedger)(nil)

// New loads the persisted document and wires the availability calculator over
// the ledger's own state. A load failure degrades to an empty state rather
// than refusing to start; the loss is logged.
func New(store storage.Store, baseStart, baseEnd string, stepMin int) (*DefaultLedger, error) {
	logger := utils.GetLogger()

	doc, err := store.Load()
	if err != nil {
		logger.Error("failed to load data file, starting from empty state", zap.Error(err))
		doc = models.EmptyDocument()
	}

	l := &DefaultLedger{doc: doc, store: store, log: logger}

	resolver, err := schedule.NewResolver(overrideView{l}, baseStart, baseEnd, stepMin)
	if err != nil {
		return nil, err
	}
	l.calc = &schedule.Calculator{Resolver: resolver, Bookings: bookingView{l}}
	return l, nil
}

func (l *DefaultLedger) Admin() AdminService {
	return adminFacade{l}
}

// overrideView and bookingView feed the schedule package from ledger state
// without taking the lock; they are only ever read while a public ledger
// method already holds it.
type overrideView struct{ l *DefaultLedger }

func (v overrideView) Override(date string) ([]string, bool) {
	slots, ok := v.l.doc.Overrides[date]
	return slots, ok
}

type bookingView struct{ l *DefaultLedger }

func (v bookingView) BookingsFor(date string) []models.Booking {
	return v.l.doc.Appointments[date]
}
