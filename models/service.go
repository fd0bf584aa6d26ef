package models

// Service is an entry of the price list the admin maintains.
// Bookings copy its fields at commit time, so later edits never
// rewrite history.
type Service struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration"` // minutes, a positive multiple of the slot step
}
