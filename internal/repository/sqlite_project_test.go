package repository

import (
	"context"
	"testing"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	due := time.Now().UTC().AddDate(0, 1, 0)
	proj := testutil.NewTestProject("Harborview Lofts",
		testutil.WithDueDate(due),
		testutil.WithProgress(42.5),
		testutil.WithMaterials(
			testutil.DeliveredMaterial("engineered oak"),
			testutil.PendingMaterial("transition strips"),
		),
	)
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
	assert.Equal(t, "Harborview Lofts", fetched.Name)
	assert.Equal(t, 42.5, fetched.Progress)
	assert.Equal(t, domain.ProjectActive, fetched.Status)
	require.NotNil(t, fetched.DueDate)
	assert.Equal(t, due.Format(domain.DateLayout), fetched.DueDate.Format(domain.DateLayout))
	require.Len(t, fetched.Materials, 2)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_List_ExcludesCompleted(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	p1 := testutil.NewTestProject("Active1")
	p2 := testutil.NewTestProject("Active2")
	p3 := testutil.NewTestProject("Done", testutil.WithProjectStatus(domain.ProjectCompleted))
	for _, p := range []*domain.Project{p1, p2, p3} {
		require.NoError(t, repo.Create(ctx, p))
	}

	list, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	listAll, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, listAll, 3)
}

func TestProjectRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("p")
	require.NoError(t, repo.Create(ctx, proj))

	proj.Progress = 80
	proj.Status = domain.ProjectScheduled
	require.NoError(t, repo.Update(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, fetched.Progress)
	assert.Equal(t, domain.ProjectScheduled, fetched.Status)
}

func TestProjectRepo_Update_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	ghost := testutil.NewTestProject("ghost")
	err := repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_SetMaterialStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("p",
		testutil.WithMaterials(testutil.PendingMaterial("underlayment")))
	require.NoError(t, repo.Create(ctx, proj))

	matID := proj.Materials[0].ID
	require.NoError(t, repo.SetMaterialStatus(ctx, matID, domain.DeliveryDelivered))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Materials, 1)
	assert.Equal(t, domain.DeliveryDelivered, fetched.Materials[0].Status)

	assert.ErrorIs(t, repo.SetMaterialStatus(ctx, "no-such-material", domain.DeliveryDelivered), ErrNotFound)
}

func TestProjectRepo_Delete_CascadesMaterials(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("p",
		testutil.WithMaterials(testutil.DeliveredMaterial("vinyl")))
	require.NoError(t, repo.Create(ctx, proj))
	require.NoError(t, repo.Delete(ctx, proj.ID))

	_, err := repo.GetByID(ctx, proj.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM materials WHERE project_id = ?`, proj.ID).Scan(&count))
	assert.Zero(t, count)
}
