package repository

import (
	"context"
	"errors"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("not found")

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	SetMaterialStatus(ctx context.Context, materialID string, status domain.DeliveryStatus) error
}

type CrewRepo interface {
	Create(ctx context.Context, c *domain.Crew) error
	GetByID(ctx context.Context, id string) (*domain.Crew, error)
	List(ctx context.Context) ([]*domain.Crew, error)
	Update(ctx context.Context, c *domain.Crew) error
	Delete(ctx context.Context, id string) error
}

type AvailabilityRepo interface {
	Upsert(ctx context.Context, a *domain.CrewAvailability) error
	Get(ctx context.Context, crewID string, date time.Time) (*domain.CrewAvailability, error)
	ListByDate(ctx context.Context, date time.Time) ([]domain.CrewAvailability, error)
	ListRange(ctx context.Context, crewID string, from, to time.Time) ([]domain.CrewAvailability, error)
	Delete(ctx context.Context, crewID string, date time.Time) error
}

type ScheduleRepo interface {
	Create(ctx context.Context, e *domain.ScheduleEntry) error
	BulkCreate(ctx context.Context, entries []domain.ScheduleEntry) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleEntry, error)
	Update(ctx context.Context, e *domain.ScheduleEntry) error
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error)
	ListByCrewRange(ctx context.Context, crewID string, from, to time.Time) ([]domain.ScheduleEntry, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.ScheduleEntry, error)
	// ListRange returns entries in [from, to]; crewID filters when
	// non-empty. Sorted by date, then start time.
	ListRange(ctx context.Context, from, to time.Time, crewID string) ([]domain.ScheduleEntry, error)
}

type BlockerRepo interface {
	Create(ctx context.Context, b *domain.ProjectBlocker) error
	GetByID(ctx context.Context, id string) (*domain.ProjectBlocker, error)
	ListByProject(ctx context.Context, projectID string, unresolvedOnly bool) ([]domain.ProjectBlocker, error)
	ListUnresolved(ctx context.Context) ([]domain.ProjectBlocker, error)
	Resolve(ctx context.Context, id, resolvedBy string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
