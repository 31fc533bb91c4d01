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

type crewService struct {
	crews        repository.CrewRepo
	availability repository.AvailabilityRepo
	schedule     repository.ScheduleRepo
	now          func() time.Time
}

func NewCrewService(
	crews repository.CrewRepo,
	availability repository.AvailabilityRepo,
	schedule repository.ScheduleRepo,
) CrewService {
	return &crewService{
		crews:        crews,
		availability: availability,
		schedule:     schedule,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *crewService) Create(ctx context.Context, c *domain.Crew) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.MaxDailyCapacity <= 0 {
		c.MaxDailyCapacity = domain.DefaultDailyCapacity
	}
	for i := range c.Members {
		if c.Members[i].ID == "" {
			c.Members[i].ID = uuid.New().String()
		}
		c.Members[i].CrewID = c.ID
	}
	now := s.now()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.crews.Create(ctx, c)
}

func (s *crewService) List(ctx context.Context) ([]*domain.Crew, error) {
	return s.crews.List(ctx)
}

func (s *crewService) Get(ctx context.Context, id string) (*domain.Crew, error) {
	return s.crews.GetByID(ctx, id)
}

func (s *crewService) SetAvailability(ctx context.Context, a *domain.CrewAvailability) error {
	if _, err := s.crews.GetByID(ctx, a.CrewID); err != nil {
		return fmt.Errorf("looking up crew %s: %w", a.CrewID, err)
	}
	return s.availability.Upsert(ctx, a)
}

// DayCapacity reports strict remaining capacity: the crew's daily
// limit minus scheduled entry hours minus pre-booked hours from the
// availability override. This is the operator-facing number and can
// disagree with the planner's more lenient model.
func (s *crewService) DayCapacity(ctx context.Context, crewID string, date time.Time) (scheduler.CrewDayCapacity, error) {
	crew, err := s.crews.GetByID(ctx, crewID)
	if err != nil {
		return scheduler.CrewDayCapacity{}, fmt.Errorf("looking up crew %s: %w", crewID, err)
	}

	records, err := s.availability.ListByDate(ctx, date)
	if err != nil {
		return scheduler.CrewDayCapacity{}, fmt.Errorf("loading availability: %w", err)
	}
	entries, err := s.schedule.ListByDate(ctx, date)
	if err != nil {
		return scheduler.CrewDayCapacity{}, fmt.Errorf("loading schedule entries: %w", err)
	}

	return scheduler.StrictCapacity(*crew, date, records, entries), nil
}
