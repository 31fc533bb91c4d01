package scheduler

import (
	"testing"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	planNow  = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	planDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
)

func TestAvailableWork_SkipsWaitPhase(t *testing.T) {
	// At 40% the current phase is acclimation, a zero-crew wait
	// phase. The plan must surface install instead.
	p := testutil.NewTestProject("Harborview Lofts",
		testutil.WithProgress(40),
		testutil.WithMaterials(testutil.DeliveredMaterial("engineered oak")),
	)
	crew := testutil.NewTestCrew("A")

	items := AvailableWork(planDate, Snapshot{
		Now:      planNow,
		Projects: []domain.Project{*p},
		Crews:    []domain.Crew{*crew},
	})
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, domain.PhaseInstall, item.Phase)
	assert.True(t, item.ReadyToStart)
	assert.Empty(t, item.Blockers)
	assert.Equal(t, 24.0, item.EstimatedHours)
	assert.InDelta(t, 8.0, item.DailyEffort(), 1e-9)
	assert.Equal(t, 3, item.CrewSize)
	assert.True(t, item.MaterialReady)
	require.NotNil(t, item.RecommendedCrewID)
	assert.Equal(t, crew.ID, *item.RecommendedCrewID)
	require.NotNil(t, item.TravelMinutes)
}

func TestAvailableWork_OmitsUnschedulableProjects(t *testing.T) {
	onHold := testutil.NewTestProject("held", testutil.WithProjectStatus(domain.ProjectOnHold))
	done := testutil.NewTestProject("done", testutil.WithProjectStatus(domain.ProjectCompleted))
	scheduled := testutil.NewTestProject("queued", testutil.WithProjectStatus(domain.ProjectScheduled))

	items := AvailableWork(planDate, Snapshot{
		Now:      planNow,
		Projects: []domain.Project{*onHold, *done, *scheduled},
	})
	require.Len(t, items, 1)
	assert.Equal(t, scheduled.ID, items[0].ProjectID)
}

func TestAvailableWork_FinishedProjectYieldsNothing(t *testing.T) {
	// Still "active" but at 100%: no crewed phase remains.
	p := testutil.NewTestProject("done", testutil.WithProgress(100))
	items := AvailableWork(planDate, Snapshot{Now: planNow, Projects: []domain.Project{*p}})
	assert.Empty(t, items)
}

func TestAvailableWork_BlockedProjectStillAppears(t *testing.T) {
	p := testutil.NewTestProject("p", testutil.WithProgress(10))
	stored := []domain.ProjectBlocker{
		testutil.NewTestBlocker(p.ID, domain.BlockerInspection, domain.PhaseDemo),
	}

	items := AvailableWork(planDate, Snapshot{
		Now:      planNow,
		Projects: []domain.Project{*p},
		Blockers: stored,
	})
	require.Len(t, items, 1)
	assert.Equal(t, domain.PhaseDemo, items[0].Phase)
	assert.False(t, items[0].ReadyToStart)
	require.Len(t, items[0].Blockers, 1)
	assert.Nil(t, items[0].RecommendedCrewID, "no crews in snapshot")
}

func TestAvailableWork_ReadyBeforeBlockedThenByPriority(t *testing.T) {
	soon := planNow.AddDate(0, 0, 2)
	later := planNow.AddDate(0, 0, 30)

	blockedUrgent := testutil.NewTestProject("blocked-urgent",
		testutil.WithProgress(10), testutil.WithDueDate(soon))
	readyRelaxed := testutil.NewTestProject("ready-relaxed",
		testutil.WithProgress(10), testutil.WithDueDate(later))
	readyUrgent := testutil.NewTestProject("ready-urgent",
		testutil.WithProgress(10), testutil.WithDueDate(soon))

	stored := []domain.ProjectBlocker{
		testutil.NewTestBlocker(blockedUrgent.ID, domain.BlockerWeather, domain.PhaseDemo),
	}

	items := AvailableWork(planDate, Snapshot{
		Now:      planNow,
		Projects: []domain.Project{*blockedUrgent, *readyRelaxed, *readyUrgent},
		Blockers: stored,
	})
	require.Len(t, items, 3)
	assert.Equal(t, readyUrgent.ID, items[0].ProjectID)
	assert.Equal(t, readyRelaxed.ID, items[1].ProjectID)
	assert.Equal(t, blockedUrgent.ID, items[2].ProjectID)
}

func TestAvailableWork_PriorityAnchoredToNowNotPlanDate(t *testing.T) {
	due := planNow.AddDate(0, 0, 7)
	p := testutil.NewTestProject("p", testutil.WithProgress(10), testutil.WithDueDate(due))
	snap := Snapshot{Now: planNow, Projects: []domain.Project{*p}}

	// Plan two different dates against the same snapshot: priority is
	// a function of Now, so both agree.
	a := AvailableWork(planDate, snap)
	b := AvailableWork(planDate.AddDate(0, 0, 6), snap)
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, domain.PlanMedium, a[0].Priority)
	assert.Equal(t, a[0].Priority, b[0].Priority)
}

func TestDuePriority_Bands(t *testing.T) {
	mk := func(days int) *time.Time {
		d := planNow.AddDate(0, 0, days)
		return &d
	}
	assert.Equal(t, domain.PlanHigh, duePriority(mk(-3), planNow), "overdue is high")
	assert.Equal(t, domain.PlanHigh, duePriority(mk(4), planNow))
	assert.Equal(t, domain.PlanMedium, duePriority(mk(5), planNow))
	assert.Equal(t, domain.PlanMedium, duePriority(mk(9), planNow))
	assert.Equal(t, domain.PlanLow, duePriority(mk(10), planNow))
	assert.Equal(t, domain.PlanLow, duePriority(nil, planNow))
}

func TestAvailableWork_Deterministic(t *testing.T) {
	var projects []domain.Project
	for _, name := range []string{"a", "b", "c", "d"} {
		projects = append(projects, *testutil.NewTestProject(name, testutil.WithProgress(10)))
	}
	snap := Snapshot{Now: planNow, Projects: projects}

	first := AvailableWork(planDate, snap)
	second := AvailableWork(planDate, snap)
	assert.Equal(t, first, second)
}
