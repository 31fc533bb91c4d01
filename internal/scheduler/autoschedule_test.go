package scheduler

import (
	"testing"

	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoSchedule_SingleReadyProject(t *testing.T) {
	p := testutil.NewTestProject("Harborview Lofts",
		testutil.WithProgress(40),
		testutil.WithMaterials(testutil.DeliveredMaterial("engineered oak")),
	)
	crew := testutil.NewTestCrew("A")

	entries := AutoSchedule(planDate, Snapshot{
		Now:      planNow,
		Projects: []domain.Project{*p},
		Crews:    []domain.Crew{*crew},
	})
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "auto-2026-03-10-"+p.ID+"-install", e.ID)
	assert.Equal(t, p.ID, e.ProjectID)
	assert.Equal(t, crew.ID, e.CrewID)
	assert.Equal(t, domain.PhaseInstall, e.Phase)
	assert.Equal(t, "07:00", e.StartTime)
	assert.Equal(t, "15:00", e.EndTime, "install targets 8 hours per day")
	assert.Equal(t, domain.ScheduleScheduled, e.Status)
	assert.Contains(t, e.Notes, "Auto-scheduled")
}

func TestAutoSchedule_SkipsBlockedAndUnassignable(t *testing.T) {
	blocked := testutil.NewTestProject("blocked", testutil.WithProgress(10))
	stored := []domain.ProjectBlocker{
		testutil.NewTestBlocker(blocked.ID, domain.BlockerWeather, domain.PhaseDemo),
	}
	crew := testutil.NewTestCrew("A")

	entries := AutoSchedule(planDate, Snapshot{
		Now:      planNow,
		Projects: []domain.Project{*blocked},
		Crews:    []domain.Crew{*crew},
		Blockers: stored,
	})
	assert.Empty(t, entries)

	// No crews at all: ready work has nowhere to go.
	ready := testutil.NewTestProject("ready", testutil.WithProgress(10))
	entries = AutoSchedule(planDate, Snapshot{
		Now:      planNow,
		Projects: []domain.Project{*ready},
	})
	assert.Empty(t, entries)
}

func TestAutoSchedule_SecondEntryStartsAfterFirst(t *testing.T) {
	// Two demo projects recommended to the same crew: the second
	// block lands right after the first instead of stacking at 07:00.
	a := testutil.NewTestProject("a", testutil.WithProgress(10))
	b := testutil.NewTestProject("b", testutil.WithProgress(10))
	crew := testutil.NewTestCrew("A", testutil.WithCapacity(12))

	entries := AutoSchedule(planDate, Snapshot{
		Now:      planNow,
		Projects: []domain.Project{*a, *b},
		Crews:    []domain.Crew{*crew},
	})
	require.Len(t, entries, 2)

	// Demo estimates 16h, so each block is 16/3 hours.
	assert.Equal(t, "07:00", entries[0].StartTime)
	assert.Equal(t, entries[0].EndTime, entries[1].StartTime)
	assert.Empty(t, CheckConflicts(entries[1], entries[:1]))
}

func TestAutoSchedule_RespectsCrewCapacityAcrossPass(t *testing.T) {
	// Capacity 10 fits one 8-hour install plus nothing else useful;
	// the second install candidate would get 2h, the minimum block,
	// and still fits. Drop capacity to 9 and the second is skipped.
	mkInstall := func(name string) domain.Project {
		return *testutil.NewTestProject(name,
			testutil.WithProgress(50),
			testutil.WithMaterials(testutil.DeliveredMaterial("vinyl")),
		)
	}
	snapshotFor := func(capacity float64) Snapshot {
		crew := testutil.NewTestCrew("A", testutil.WithCapacity(capacity))
		return Snapshot{
			Now:      planNow,
			Projects: []domain.Project{mkInstall("a"), mkInstall("b")},
			Crews:    []domain.Crew{*crew},
		}
	}

	entries := AutoSchedule(planDate, snapshotFor(10))
	require.Len(t, entries, 2)
	assert.InDelta(t, 8.0, EntryHours(entries[0]), 1e-9)
	assert.InDelta(t, 2.0, EntryHours(entries[1]), 1e-9)

	entries = AutoSchedule(planDate, snapshotFor(9))
	require.Len(t, entries, 1, "a sub-2-hour remainder is not dispatched")
	assert.InDelta(t, 8.0, EntryHours(entries[0]), 1e-9)
}

func TestAutoSchedule_PacksAroundExistingEntries(t *testing.T) {
	p := testutil.NewTestProject("p",
		testutil.WithProgress(50),
		testutil.WithMaterials(testutil.DeliveredMaterial("vinyl")),
	)
	crew := testutil.NewTestCrew("A", testutil.WithCapacity(12))
	existing := []domain.ScheduleEntry{
		testutil.NewTestEntry("other", crew.ID, planDate, "07:00", "09:00"),
	}

	entries := AutoSchedule(planDate, Snapshot{
		Now:      planNow,
		Projects: []domain.Project{*p},
		Crews:    []domain.Crew{*crew},
		Entries:  existing,
	})
	require.Len(t, entries, 1)
	assert.Equal(t, "09:00", entries[0].StartTime)
	assert.Empty(t, CheckConflicts(entries[0], existing))
}

func TestAutoSchedule_CancelledEntriesFreeTheSlot(t *testing.T) {
	p := testutil.NewTestProject("p",
		testutil.WithProgress(50),
		testutil.WithMaterials(testutil.DeliveredMaterial("vinyl")),
	)
	crew := testutil.NewTestCrew("A")
	cancelled := []domain.ScheduleEntry{
		testutil.NewTestEntry("other", crew.ID, planDate, "07:00", "15:00",
			testutil.WithStatus(domain.ScheduleCancelled)),
	}

	entries := AutoSchedule(planDate, Snapshot{
		Now:      planNow,
		Projects: []domain.Project{*p},
		Crews:    []domain.Crew{*crew},
		Entries:  cancelled,
	})
	require.Len(t, entries, 1)
	assert.Equal(t, "07:00", entries[0].StartTime)
}

func TestAutoSchedule_DeterministicIDs(t *testing.T) {
	p := testutil.NewTestProject("p", testutil.WithProgress(10))
	crew := testutil.NewTestCrew("A")
	snap := Snapshot{
		Now:      planNow,
		Projects: []domain.Project{*p},
		Crews:    []domain.Crew{*crew},
	}

	first := AutoSchedule(planDate, snap)
	second := AutoSchedule(planDate, snap)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID, "re-runs must collide, not duplicate")
}
