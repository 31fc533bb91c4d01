package domain

import "time"

// DefaultDailyCapacity is the assumed working hours per crew per day
// when a crew record does not set its own limit.
const DefaultDailyCapacity = 8.0

type Crew struct {
	ID               string
	Name             string
	Color            string
	HomeBase         string
	MaxDailyCapacity float64
	Members          []CrewMember
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CrewMember struct {
	ID             string
	CrewID         string
	Name           string
	Role           string
	Certifications []string
	HourlyRate     float64
}

// DailyCapacity returns the crew's max hours per day, falling back to
// the default when unset.
func (c *Crew) DailyCapacity() float64 {
	if c.MaxDailyCapacity <= 0 {
		return DefaultDailyCapacity
	}
	return c.MaxDailyCapacity
}

// CrewAvailability is a sparse per-(crew, date) override. Absence of a
// record means the crew is available with zero pre-booked hours.
type CrewAvailability struct {
	CrewID      string
	Date        time.Time
	Available   bool
	HoursBooked float64
	Notes       string
}
