package schedule

import "time"

// DateLayout is the canonical wire format for calendar dates.
const DateLayout = "2006-01-02"

// HorizonDates returns the rolling window of dates open for booking,
// starting today.
func HorizonDates(now time.Time, days int) []string {
	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(DateLayout))
	}
	return dates
}

// WithinHorizon reports whether date falls inside the booking window.
// Date strings are exact-matched against the window, so anything malformed
// is simply not bookable.
func WithinHorizon(date string, now time.Time, days int) bool {
	for _, d := range HorizonDates(now, days) {
		if d == date {
			return true
		}
	}
	return false
}
