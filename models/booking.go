package models

import "time"

// Booking represents a confirmed appointment record.
type Booking struct {
	ID          string    `json:"id"`           // UUID assigned at commit
	Date        string    `json:"date"`         // "YYYY-MM-DD"
	Start       string    `json:"time"`         // first slot label, "HH:MM"
	Block       []string  `json:"block"`        // consecutive slot labels the booking occupies
	Service     string    `json:"service"`      // snapshot of Service.Name
	DurationMin int       `json:"duration"`     // snapshot of Service.DurationMin
	Price       float64   `json:"price"`        // snapshot of Service.Price
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	CreatedAt   time.Time `json:"created_at"`
}
