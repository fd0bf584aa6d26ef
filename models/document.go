package models

// Document is the single persisted state of the scheduler: the price list,
// per-date schedule overrides, bookings grouped by date and the contact card.
//
// An override value of nil marks the date as fully closed; a non-nil list is
// the date's only valid slot starts. An absent key means the base schedule
// applies. This matches the on-disk JSON shape, where a closed day is null.
type Document struct {
	Services     []Service            `json:"services"`
	Overrides    map[string][]string  `json:"overrides"`
	Appointments map[string][]Booking `json:"appointments"`
	Contacts     Contacts             `json:"contacts"`
}

// EmptyDocument returns a Document with all collections initialised,
// the state a fresh install starts from.
func EmptyDocument() Document {
	return Document{
		Services:     []Service{},
		Overrides:    map[string][]string{},
		Appointments: map[string][]Booking{},
	}
}
