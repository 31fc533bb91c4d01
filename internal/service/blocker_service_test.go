package service

import (
	"context"
	"testing"

	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/repository"
	"github.com/harlenmason/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlockerService(t *testing.T) (BlockerService, *domain.Project) {
	t.Helper()
	db := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(db)
	proj := testutil.NewTestProject("p")
	require.NoError(t, projects.Create(context.Background(), proj))
	return NewBlockerService(repository.NewSQLiteBlockerRepo(db), projects), proj
}

func TestBlockerService_Add(t *testing.T) {
	svc, proj := newBlockerService(t)
	ctx := context.Background()

	b := domain.ProjectBlocker{
		ProjectID:      proj.ID,
		Type:           domain.BlockerWeather,
		Description:    "rain all week",
		BlockingPhases: []domain.Phase{domain.PhaseDemo},
	}
	require.NoError(t, svc.Add(ctx, &b))
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, domain.PriorityMedium, b.Priority)

	listed, err := svc.List(ctx, proj.ID, true)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "rain all week", listed[0].Description)
}

func TestBlockerService_Add_Validation(t *testing.T) {
	svc, proj := newBlockerService(t)
	ctx := context.Background()

	badType := domain.ProjectBlocker{
		ProjectID: proj.ID, Type: "vibes",
		BlockingPhases: []domain.Phase{domain.PhaseDemo},
	}
	assert.Error(t, svc.Add(ctx, &badType))

	noPhases := domain.ProjectBlocker{ProjectID: proj.ID, Type: domain.BlockerCrew}
	assert.Error(t, svc.Add(ctx, &noPhases))

	badPhase := domain.ProjectBlocker{
		ProjectID: proj.ID, Type: domain.BlockerCrew,
		BlockingPhases: []domain.Phase{"staining"},
	}
	assert.Error(t, svc.Add(ctx, &badPhase))

	ghostProject := domain.ProjectBlocker{
		ProjectID: "nobody", Type: domain.BlockerCrew,
		BlockingPhases: []domain.Phase{domain.PhaseDemo},
	}
	assert.ErrorIs(t, svc.Add(ctx, &ghostProject), repository.ErrNotFound)
}

func TestBlockerService_Resolve(t *testing.T) {
	svc, proj := newBlockerService(t)
	ctx := context.Background()

	b := domain.ProjectBlocker{
		ProjectID: proj.ID, Type: domain.BlockerInspection,
		BlockingPhases: []domain.Phase{domain.PhaseInstall},
	}
	require.NoError(t, svc.Add(ctx, &b))
	require.NoError(t, svc.Resolve(ctx, b.ID, "harlen"))

	open, err := svc.List(ctx, proj.ID, true)
	require.NoError(t, err)
	assert.Empty(t, open)

	all, err := svc.List(ctx, proj.ID, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Resolved())
	assert.Equal(t, "harlen", all[0].ResolvedBy)
}
