package utils

import "time"

// DateLayout is the calendar-date format used by itinerary events and
// exchange-rate stamps. Dates are compared lexically, so the layout must
// stay zero-padded year-first.
const DateLayout = "2006-01-02"

// TimeLayout is the clock format stored on itinerary events.
const TimeLayout = "15:04"

// Today returns the current date in DateLayout, UTC.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}
