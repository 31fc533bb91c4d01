package scheduler

import (
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
)

// CrewDayCapacity is a crew's computed standing for one calendar date.
type CrewDayCapacity struct {
	Available      bool
	HoursRemaining float64
	Notes          string
}

// bookedEntryHours sums the duration of the crew's non-cancelled
// schedule entries on the date.
func bookedEntryHours(crewID string, date time.Time, entries []domain.ScheduleEntry) float64 {
	var total float64
	for _, e := range entries {
		if e.CrewID == crewID && e.Active() && SameDate(e.Date, date) {
			total += EntryHours(e)
		}
	}
	return total
}

func availabilityRecord(crewID string, date time.Time, records []domain.CrewAvailability) *domain.CrewAvailability {
	for i := range records {
		if records[i].CrewID == crewID && SameDate(records[i].Date, date) {
			return &records[i]
		}
	}
	return nil
}

// PlanningCapacity is the capacity model the resolver and
// auto-scheduler use: remaining hours are the crew's daily limit minus
// non-cancelled schedule entry hours. Pre-booked hours on the
// availability record do NOT reduce it; see StrictCapacity for the
// model that subtracts them. An explicit unavailable record zeroes the
// day either way.
func PlanningCapacity(crew domain.Crew, date time.Time, records []domain.CrewAvailability, entries []domain.ScheduleEntry) CrewDayCapacity {
	rec := availabilityRecord(crew.ID, date, records)
	if rec != nil && !rec.Available {
		return CrewDayCapacity{Available: false, HoursRemaining: 0, Notes: rec.Notes}
	}

	remaining := crew.DailyCapacity() - bookedEntryHours(crew.ID, date, entries)
	day := CrewDayCapacity{
		Available:      remaining > 0,
		HoursRemaining: remaining,
	}
	if rec != nil {
		day.Notes = rec.Notes
	}
	return day
}

// StrictCapacity additionally subtracts the availability record's
// pre-booked hours (commitments not reflected in schedule entries).
// It is the model reported to operators and can disagree with
// PlanningCapacity on whether a crew is available; the two are kept
// distinct on purpose.
func StrictCapacity(crew domain.Crew, date time.Time, records []domain.CrewAvailability, entries []domain.ScheduleEntry) CrewDayCapacity {
	day := PlanningCapacity(crew, date, records, entries)
	if !day.Available {
		return day
	}
	if rec := availabilityRecord(crew.ID, date, records); rec != nil {
		day.HoursRemaining -= rec.HoursBooked
	}
	day.Available = day.HoursRemaining > 0
	return day
}
