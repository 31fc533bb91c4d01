package service

import (
	"context"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/scheduler"
)

// PlanService runs the daily-work engine over the backing store.
type PlanService interface {
	// DayPlan returns the advisory work list for a date.
	DayPlan(ctx context.Context, date time.Time) ([]scheduler.DailyPlanItem, error)
	// AutoSchedule runs the greedy scheduler for a date and persists
	// the resulting entries as one batch, skipping ids that already
	// exist so a re-run cannot double-book.
	AutoSchedule(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error)
}

// ScheduleService is CRUD over concrete schedule entries plus the
// conflict checks. Conflicts are returned as data; callers decide
// whether to block a save.
type ScheduleService interface {
	Create(ctx context.Context, e *domain.ScheduleEntry) error
	Update(ctx context.Context, e *domain.ScheduleEntry) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.ScheduleEntry, error)
	ListDate(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error)
	ListRange(ctx context.Context, from, to time.Time, crewID string) ([]domain.ScheduleEntry, error)
	ListProject(ctx context.Context, projectID string) ([]domain.ScheduleEntry, error)
	// Check returns the existing entries a candidate would overlap.
	Check(ctx context.Context, e domain.ScheduleEntry) ([]domain.ScheduleEntry, error)
	// Audit scans all entries in the range for pairwise overlaps.
	Audit(ctx context.Context, from, to time.Time) ([]scheduler.ConflictPair, error)
}

type CrewService interface {
	Create(ctx context.Context, c *domain.Crew) error
	List(ctx context.Context) ([]*domain.Crew, error)
	Get(ctx context.Context, id string) (*domain.Crew, error)
	SetAvailability(ctx context.Context, a *domain.CrewAvailability) error
	// DayCapacity reports the strict remaining capacity for a crew on
	// a date (schedule entries and pre-booked hours both subtracted).
	DayCapacity(ctx context.Context, crewID string, date time.Time) (scheduler.CrewDayCapacity, error)
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	List(ctx context.Context, includeCompleted bool) ([]*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	SetProgress(ctx context.Context, id string, progress float64) error
	SetMaterialStatus(ctx context.Context, materialID string, status domain.DeliveryStatus) error
}

type BlockerService interface {
	Add(ctx context.Context, b *domain.ProjectBlocker) error
	List(ctx context.Context, projectID string, unresolvedOnly bool) ([]domain.ProjectBlocker, error)
	Resolve(ctx context.Context, id, resolvedBy string) error
}
