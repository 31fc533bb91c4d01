package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/repository"
	"github.com/harlenmason/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	planDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
)

type planFixture struct {
	db       *sql.DB
	projects repository.ProjectRepo
	crews    repository.CrewRepo
	schedule repository.ScheduleRepo
	blockers repository.BlockerRepo
	svc      *planService
}

func newPlanFixture(t *testing.T) *planFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	f := &planFixture{
		db:       db,
		projects: repository.NewSQLiteProjectRepo(db),
		crews:    repository.NewSQLiteCrewRepo(db),
		schedule: repository.NewSQLiteScheduleRepo(db),
		blockers: repository.NewSQLiteBlockerRepo(db),
	}
	availability := repository.NewSQLiteAvailabilityRepo(db)
	f.svc = NewPlanService(f.projects, f.crews, availability, f.schedule, f.blockers).(*planService)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func TestPlanService_DayPlan(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Harborview Lofts",
		testutil.WithProgress(40),
		testutil.WithDueDate(fixedNow.AddDate(0, 0, 3)),
		testutil.WithMaterials(testutil.DeliveredMaterial("engineered oak")),
	)
	require.NoError(t, f.projects.Create(ctx, proj))
	crew := testutil.NewTestCrew("Alpha")
	require.NoError(t, f.crews.Create(ctx, crew))

	items, err := f.svc.DayPlan(ctx, planDate)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.PhaseInstall, items[0].Phase)
	assert.Equal(t, domain.PlanHigh, items[0].Priority)
	assert.True(t, items[0].ReadyToStart)
	require.NotNil(t, items[0].RecommendedCrewID)
	assert.Equal(t, crew.ID, *items[0].RecommendedCrewID)
}

func TestPlanService_DayPlan_SurfacesStoredBlockers(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("p", testutil.WithProgress(10))
	require.NoError(t, f.projects.Create(ctx, proj))
	blocker := testutil.NewTestBlocker(proj.ID, domain.BlockerInspection, domain.PhaseDemo)
	require.NoError(t, f.blockers.Create(ctx, &blocker))

	items, err := f.svc.DayPlan(ctx, planDate)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].ReadyToStart)
	require.Len(t, items[0].Blockers, 1)
	assert.Equal(t, blocker.ID, items[0].Blockers[0].ID)
}

func TestPlanService_AutoSchedule_PersistsBatch(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("p",
		testutil.WithProgress(40),
		testutil.WithMaterials(testutil.DeliveredMaterial("engineered oak")),
	)
	require.NoError(t, f.projects.Create(ctx, proj))
	crew := testutil.NewTestCrew("Alpha")
	require.NoError(t, f.crews.Create(ctx, crew))

	created, err := f.svc.AutoSchedule(ctx, planDate)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "07:00", created[0].StartTime)
	assert.Equal(t, "15:00", created[0].EndTime)
	assert.Equal(t, fixedNow, created[0].CreatedAt)

	stored, err := f.schedule.ListByDate(ctx, planDate)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, created[0].ID, stored[0].ID)
}

func TestPlanService_AutoSchedule_RerunDoesNotDoubleBook(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("p", testutil.WithProgress(10))
	require.NoError(t, f.projects.Create(ctx, proj))
	crew := testutil.NewTestCrew("Alpha")
	require.NoError(t, f.crews.Create(ctx, crew))

	first, err := f.svc.AutoSchedule(ctx, planDate)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := f.svc.AutoSchedule(ctx, planDate)
	require.NoError(t, err)
	assert.Empty(t, second, "already-persisted ids are skipped")

	stored, err := f.schedule.ListByDate(ctx, planDate)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestPlanService_AutoSchedule_SkipsBlockedProjects(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("p", testutil.WithProgress(10))
	require.NoError(t, f.projects.Create(ctx, proj))
	crew := testutil.NewTestCrew("Alpha")
	require.NoError(t, f.crews.Create(ctx, crew))
	blocker := testutil.NewTestBlocker(proj.ID, domain.BlockerWeather, domain.PhaseDemo)
	require.NoError(t, f.blockers.Create(ctx, &blocker))

	created, err := f.svc.AutoSchedule(ctx, planDate)
	require.NoError(t, err)
	assert.Empty(t, created)
}
