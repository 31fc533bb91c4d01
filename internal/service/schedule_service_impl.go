package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/repository"
	"github.com/harlenmason/crewplan/internal/scheduler"
)

type scheduleService struct {
	schedule repository.ScheduleRepo
	now      func() time.Time
}

func NewScheduleService(schedule repository.ScheduleRepo) ScheduleService {
	return &scheduleService{
		schedule: schedule,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *scheduleService) Create(ctx context.Context, e *domain.ScheduleEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = domain.ScheduleScheduled
	}
	if !domain.ValidScheduleStatuses[string(e.Status)] {
		return fmt.Errorf("invalid schedule status %q", e.Status)
	}
	now := s.now()
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.schedule.Create(ctx, e)
}

func (s *scheduleService) Update(ctx context.Context, e *domain.ScheduleEntry) error {
	if !domain.ValidScheduleStatuses[string(e.Status)] {
		return fmt.Errorf("invalid schedule status %q", e.Status)
	}
	return s.schedule.Update(ctx, e)
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	return s.schedule.Delete(ctx, id)
}

func (s *scheduleService) Get(ctx context.Context, id string) (*domain.ScheduleEntry, error) {
	return s.schedule.GetByID(ctx, id)
}

func (s *scheduleService) ListDate(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error) {
	return s.schedule.ListByDate(ctx, date)
}

func (s *scheduleService) ListRange(ctx context.Context, from, to time.Time, crewID string) ([]domain.ScheduleEntry, error) {
	return s.schedule.ListRange(ctx, from, to, crewID)
}

func (s *scheduleService) ListProject(ctx context.Context, projectID string) ([]domain.ScheduleEntry, error) {
	return s.schedule.ListByProject(ctx, projectID)
}

func (s *scheduleService) Check(ctx context.Context, e domain.ScheduleEntry) ([]domain.ScheduleEntry, error) {
	existing, err := s.schedule.ListByDate(ctx, e.Date)
	if err != nil {
		return nil, fmt.Errorf("loading entries for conflict check: %w", err)
	}
	return scheduler.CheckConflicts(e, existing), nil
}

func (s *scheduleService) Audit(ctx context.Context, from, to time.Time) ([]scheduler.ConflictPair, error) {
	entries, err := s.schedule.ListRange(ctx, from, to, "")
	if err != nil {
		return nil, fmt.Errorf("loading entries for audit: %w", err)
	}
	return scheduler.ScanConflicts(entries), nil
}
