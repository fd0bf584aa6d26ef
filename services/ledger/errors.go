package ledger

import "errors"

var (
	ErrSlotTaken       = errors.New("slot is no longer available")
	ErrBookingNotFound = errors.New("booking not found")
	ErrClosedDay       = errors.New("day is closed")
	ErrUnknownService  = errors.New("unknown service")
	ErrServiceExists   = errors.New("service already exists")
	ErrServiceName     = errors.New("service name is required")
	ErrInvalidOverride = errors.New("override labels must be unique grid-aligned times")
	ErrPersistence     = errors.New("persistence failure")
)
