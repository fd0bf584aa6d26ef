package handlers

import (
	"sync"

	"github.com/annaaimenedger987-crypto/massageBot/models"
)

// Flow is the typed per-conversation state of one multi-step dialogue. Flows
// live only in memory: an abandoned dialogue simply expires without side
// effects, because nothing touches the ledger until the final commit step.
type Flow interface{ isFlow() }

// BookingStep enumerates the client booking dialogue.
type BookingStep int

const (
	BookingPickService BookingStep = iota
	BookingPickDate
	BookingPickTime
	BookingEnterName
	BookingEnterPhone
)

// BookingFlow collects a service, date, time, name and phone, in that order.
type BookingFlow struct {
	Step    BookingStep
	Service models.Service
	Date    string
	Start   string
	Name    string
}

func (*BookingFlow) isFlow() {}

// AdminScheduleStep enumerates the schedule management dialogue.
type AdminScheduleStep int

const (
	SchedulePickDate AdminScheduleStep = iota
	SchedulePickAction
	ScheduleManualHours
)

type AdminScheduleFlow struct {
	Step AdminScheduleStep
	Date string
}

func (*AdminScheduleFlow) isFlow() {}

// AdminDeleteStep enumerates the booking deletion dialogue.
type AdminDeleteStep int

const (
	DeletePickDate AdminDeleteStep = iota
	DeletePickBooking
)

// AdminDeleteFlow keeps the numbered booking list exactly as it was shown,
// so the number the admin presses cannot drift if the day changes meanwhile.
type AdminDeleteFlow struct {
	Step     AdminDeleteStep
	Date     string
	Bookings []models.Booking
}

func (*AdminDeleteFlow) isFlow() {}

// AdminContactsStep enumerates the contact card dialogue.
type AdminContactsStep int

const (
	ContactsEnterPhone AdminContactsStep = iota
	ContactsEnterAddress
)

type AdminContactsFlow struct {
	Step  AdminContactsStep
	Phone string
}

func (*AdminContactsFlow) isFlow() {}

// AdminServiceStep enumerates the price-list management dialogue.
type AdminServiceStep int

const (
	ServicePickAction AdminServiceStep = iota
	ServiceEnterName
	ServiceEnterPrice
	ServiceEnterDuration
	ServicePickRemove
)

type AdminServiceFlow struct {
	Step  AdminServiceStep
	Name  string
	Price float64
}

func (*AdminServiceFlow) isFlow() {}

// Sessions holds the active flow per chat.
type Sessions struct {
	mu sync.Mutex
	m  map[int64]Flow
}

func NewSessions() *Sessions {
	return &Sessions{m: map[int64]Flow{}}
}

func (s *Sessions) Get(chatID int64) Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[chatID]
}

func (s *Sessions) Set(chatID int64, f Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[chatID] = f
}

func (s *Sessions) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, chatID)
}
