package domain

import "time"

// DateLayout is the canonical layout for calendar dates in ids, keys,
// and storage.
const DateLayout = "2006-01-02"

// ScheduleEntry is a concrete time-boxed assignment of one crew to one
// project phase on one date. Start and end times are "HH:MM" strings;
// the engine assumes them well-formed.
type ScheduleEntry struct {
	ID            string
	ProjectID     string
	CrewID        string
	Phase         Phase
	Date          time.Time
	StartTime     string
	EndTime       string
	TravelMinutes int
	Status        ScheduleStatus
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DateKey returns the entry's date formatted for grouping and id
// construction.
func (e *ScheduleEntry) DateKey() string {
	return e.Date.Format(DateLayout)
}

// Active reports whether the entry occupies crew time. Cancelled
// entries never count toward capacity or conflicts.
func (e *ScheduleEntry) Active() bool {
	return e.Status != ScheduleCancelled
}
