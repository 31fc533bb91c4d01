package repository

import (
	"context"
	"testing"

	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrewRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCrewRepo(db)
	ctx := context.Background()

	crew := testutil.NewTestCrew("Alpha",
		testutil.WithCapacity(10),
		testutil.WithHomeBase("North Hills"),
		testutil.WithMembers(
			domain.CrewMember{Name: "Ray", Role: "lead", Certifications: []string{"hardwood", "lvp"}, HourlyRate: 42},
			domain.CrewMember{Name: "Sam", Role: "installer"},
		),
	)
	require.NoError(t, repo.Create(ctx, crew))

	fetched, err := repo.GetByID(ctx, crew.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", fetched.Name)
	assert.Equal(t, 10.0, fetched.MaxDailyCapacity)
	assert.Equal(t, "North Hills", fetched.HomeBase)
	require.Len(t, fetched.Members, 2)
	assert.Equal(t, []string{"hardwood", "lvp"}, fetched.Members[0].Certifications)
}

func TestCrewRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCrewRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCrewRepo_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCrewRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestCrew("Alpha")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCrew("Bravo")))

	crews, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, crews, 2)
}

func TestCrewRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCrewRepo(db)
	ctx := context.Background()

	crew := testutil.NewTestCrew("Alpha",
		testutil.WithMembers(domain.CrewMember{Name: "Ray"}))
	require.NoError(t, repo.Create(ctx, crew))

	crew.MaxDailyCapacity = 6
	require.NoError(t, repo.Update(ctx, crew))

	fetched, err := repo.GetByID(ctx, crew.ID)
	require.NoError(t, err)
	assert.Equal(t, 6.0, fetched.MaxDailyCapacity)

	require.NoError(t, repo.Delete(ctx, crew.ID))
	_, err = repo.GetByID(ctx, crew.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Members go with the crew.
	var count int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM crew_members WHERE crew_id = ?`, crew.ID).Scan(&count))
	assert.Zero(t, count)
}
