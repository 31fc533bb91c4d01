package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/repository"
)

type blockerService struct {
	blockers repository.BlockerRepo
	projects repository.ProjectRepo
	now      func() time.Time
}

func NewBlockerService(blockers repository.BlockerRepo, projects repository.ProjectRepo) BlockerService {
	return &blockerService{
		blockers: blockers,
		projects: projects,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *blockerService) Add(ctx context.Context, b *domain.ProjectBlocker) error {
	if !domain.ValidBlockerTypes[string(b.Type)] {
		return fmt.Errorf("invalid blocker type %q", b.Type)
	}
	if len(b.BlockingPhases) == 0 {
		return fmt.Errorf("blocker must target at least one phase")
	}
	for _, p := range b.BlockingPhases {
		if domain.PhaseIndex(p) < 0 {
			return fmt.Errorf("unknown phase %q", p)
		}
	}
	if _, err := s.projects.GetByID(ctx, b.ProjectID); err != nil {
		return fmt.Errorf("looking up project %s: %w", b.ProjectID, err)
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Priority == "" {
		b.Priority = domain.PriorityMedium
	}
	b.CreatedAt = s.now()
	return s.blockers.Create(ctx, b)
}

func (s *blockerService) List(ctx context.Context, projectID string, unresolvedOnly bool) ([]domain.ProjectBlocker, error) {
	if projectID == "" {
		if unresolvedOnly {
			return s.blockers.ListUnresolved(ctx)
		}
		return nil, fmt.Errorf("project id required when listing resolved blockers")
	}
	return s.blockers.ListByProject(ctx, projectID, unresolvedOnly)
}

func (s *blockerService) Resolve(ctx context.Context, id, resolvedBy string) error {
	return s.blockers.Resolve(ctx, id, resolvedBy, s.now())
}
