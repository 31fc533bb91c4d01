package scheduler

import (
	"testing"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
)

var capDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestPlanningCapacity_FullDayWhenNothingBooked(t *testing.T) {
	crew := testutil.NewTestCrew("A")
	day := PlanningCapacity(*crew, capDate, nil, nil)
	assert.True(t, day.Available)
	assert.Equal(t, 8.0, day.HoursRemaining)
}

func TestPlanningCapacity_SubtractsEntryHours(t *testing.T) {
	crew := testutil.NewTestCrew("A")
	entries := []domain.ScheduleEntry{
		testutil.NewTestEntry("p1", crew.ID, capDate, "07:00", "10:00"),
		testutil.NewTestEntry("p2", crew.ID, capDate, "10:00", "13:00"),
	}
	day := PlanningCapacity(*crew, capDate, nil, entries)
	assert.True(t, day.Available)
	assert.InDelta(t, 2.0, day.HoursRemaining, 1e-9)
}

func TestPlanningCapacity_IgnoresCancelledOtherCrewOtherDate(t *testing.T) {
	crew := testutil.NewTestCrew("A")
	entries := []domain.ScheduleEntry{
		testutil.NewTestEntry("p1", crew.ID, capDate, "07:00", "15:00",
			testutil.WithStatus(domain.ScheduleCancelled)),
		testutil.NewTestEntry("p1", "other-crew", capDate, "07:00", "15:00"),
		testutil.NewTestEntry("p1", crew.ID, capDate.AddDate(0, 0, 1), "07:00", "15:00"),
	}
	day := PlanningCapacity(*crew, capDate, nil, entries)
	assert.Equal(t, 8.0, day.HoursRemaining)
}

func TestPlanningCapacity_UnavailableRecordZeroesDay(t *testing.T) {
	crew := testutil.NewTestCrew("A")
	records := []domain.CrewAvailability{
		{CrewID: crew.ID, Date: capDate, Available: false, Notes: "equipment service"},
	}
	day := PlanningCapacity(*crew, capDate, records, nil)
	assert.False(t, day.Available)
	assert.Zero(t, day.HoursRemaining)
	assert.Equal(t, "equipment service", day.Notes)
}

func TestPlanningCapacity_IgnoresPreBookedHours(t *testing.T) {
	crew := testutil.NewTestCrew("A")
	records := []domain.CrewAvailability{
		{CrewID: crew.ID, Date: capDate, Available: true, HoursBooked: 5},
	}
	day := PlanningCapacity(*crew, capDate, records, nil)
	assert.Equal(t, 8.0, day.HoursRemaining, "pre-booked hours belong to the strict model only")
}

func TestStrictCapacity_SubtractsPreBookedHours(t *testing.T) {
	crew := testutil.NewTestCrew("A")
	records := []domain.CrewAvailability{
		{CrewID: crew.ID, Date: capDate, Available: true, HoursBooked: 5},
	}
	entries := []domain.ScheduleEntry{
		testutil.NewTestEntry("p1", crew.ID, capDate, "07:00", "09:00"),
	}
	day := StrictCapacity(*crew, capDate, records, entries)
	assert.InDelta(t, 1.0, day.HoursRemaining, 1e-9)
	assert.True(t, day.Available)
}

func TestStrictCapacity_CanDisagreeWithPlanning(t *testing.T) {
	crew := testutil.NewTestCrew("A")
	records := []domain.CrewAvailability{
		{CrewID: crew.ID, Date: capDate, Available: true, HoursBooked: 8},
	}
	planning := PlanningCapacity(*crew, capDate, records, nil)
	strict := StrictCapacity(*crew, capDate, records, nil)
	assert.True(t, planning.Available)
	assert.False(t, strict.Available)
}

func TestCapacity_OverbookedGoesNegative(t *testing.T) {
	crew := testutil.NewTestCrew("A", testutil.WithCapacity(4))
	entries := []domain.ScheduleEntry{
		testutil.NewTestEntry("p1", crew.ID, capDate, "07:00", "13:00"),
	}
	day := PlanningCapacity(*crew, capDate, nil, entries)
	assert.False(t, day.Available)
	assert.InDelta(t, -2.0, day.HoursRemaining, 1e-9, "overbooking is reported, not clamped")
}
