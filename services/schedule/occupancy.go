package schedule

import "github.com/annaaimenedger987-crypto/massageBot/models"

// BookingSource exposes the bookings already committed for a date.
type BookingSource interface {
	BookingsFor(date string) []models.Booking
}

// BusyLabels derives the set of slot labels consumed by existing bookings on
// a date. Occupancy is always derived from booking blocks, never stored, so
// deleting a booking frees its slots implicitly.
func BusyLabels(date string, src BookingSource) map[string]struct{} {
	busy := map[string]struct{}{}
	for _, b := range src.BookingsFor(date) {
		for _, label := range b.Block {
			busy[label] = struct{}{}
		}
	}
	return busy
}
