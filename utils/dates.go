package utils

import "time"

// FormatHumanDate turns an ISO "2026-02-15" into the "15.02.2026" form shown
// to people. Anything malformed is returned as is.
func FormatHumanDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("02.01.2006")
}
