package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/repository"
	"github.com/harlenmason/crewplan/internal/scheduler"
)

type planService struct {
	projects     repository.ProjectRepo
	crews        repository.CrewRepo
	availability repository.AvailabilityRepo
	schedule     repository.ScheduleRepo
	blockers     repository.BlockerRepo

	// now is swappable for tests.
	now func() time.Time
}

func NewPlanService(
	projects repository.ProjectRepo,
	crews repository.CrewRepo,
	availability repository.AvailabilityRepo,
	schedule repository.ScheduleRepo,
	blockers repository.BlockerRepo,
) PlanService {
	return &planService{
		projects:     projects,
		crews:        crews,
		availability: availability,
		schedule:     schedule,
		blockers:     blockers,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *planService) DayPlan(ctx context.Context, date time.Time) ([]scheduler.DailyPlanItem, error) {
	snap, err := s.loadSnapshot(ctx, date)
	if err != nil {
		return nil, err
	}
	return scheduler.AvailableWork(date, snap), nil
}

func (s *planService) AutoSchedule(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error) {
	snap, err := s.loadSnapshot(ctx, date)
	if err != nil {
		return nil, err
	}

	created := scheduler.AutoSchedule(date, snap)

	// The engine's ids are deterministic per (date, project, phase);
	// drop anything already persisted so re-running the pass cannot
	// double-book a day.
	fresh := created[:0]
	for _, e := range created {
		_, err := s.schedule.GetByID(ctx, e.ID)
		if errors.Is(err, repository.ErrNotFound) {
			now := s.now()
			e.CreatedAt = now
			e.UpdatedAt = now
			fresh = append(fresh, e)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("checking existing entry %s: %w", e.ID, err)
		}
	}

	if err := s.schedule.BulkCreate(ctx, fresh); err != nil {
		return nil, fmt.Errorf("persisting auto-scheduled entries: %w", err)
	}
	return fresh, nil
}

// loadSnapshot assembles the engine's immutable input from the store.
func (s *planService) loadSnapshot(ctx context.Context, date time.Time) (scheduler.Snapshot, error) {
	var snap scheduler.Snapshot
	snap.Now = s.now()

	projects, err := s.projects.List(ctx, false)
	if err != nil {
		return snap, fmt.Errorf("loading projects: %w", err)
	}
	for _, p := range projects {
		snap.Projects = append(snap.Projects, *p)
	}

	crews, err := s.crews.List(ctx)
	if err != nil {
		return snap, fmt.Errorf("loading crews: %w", err)
	}
	for _, c := range crews {
		snap.Crews = append(snap.Crews, *c)
	}

	snap.Availability, err = s.availability.ListByDate(ctx, date)
	if err != nil {
		return snap, fmt.Errorf("loading availability: %w", err)
	}

	snap.Entries, err = s.schedule.ListByDate(ctx, date)
	if err != nil {
		return snap, fmt.Errorf("loading schedule entries: %w", err)
	}

	snap.Blockers, err = s.blockers.ListUnresolved(ctx)
	if err != nil {
		return snap, fmt.Errorf("loading blockers: %w", err)
	}

	return snap, nil
}
