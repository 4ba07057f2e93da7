package db_models

import "time"

// ItineraryEvent is a single dated entry on the trip timeline. Date and
// Time are stored as strings ("2006-01-02", "15:04") so chronological
// order is plain lexical order on the pair.
type ItineraryEvent struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Date        string `gorm:"index:idx_events_date_time,priority:1"`
	Time        string `gorm:"index:idx_events_date_time,priority:2"`
	Location    string
	Description string
	// Type is one of flight, accommodation, dining, activity.
	Type string
	// Icon is derived from Type once at creation and stored as-is; later
	// type changes do not touch it.
	Icon      string
	CreatedAt time.Time
}
