package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	now      func() time.Time
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{
		projects: projects,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	if p.Progress < 0 || p.Progress > 100 {
		return fmt.Errorf("progress %.1f out of range 0-100", p.Progress)
	}
	for i := range p.Materials {
		if p.Materials[i].ID == "" {
			p.Materials[i].ID = uuid.New().String()
		}
		p.Materials[i].ProjectID = p.ID
		if p.Materials[i].Status == "" {
			p.Materials[i].Status = domain.DeliveryOrdered
		}
	}
	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) List(ctx context.Context, includeCompleted bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeCompleted)
}

func (s *projectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) SetProgress(ctx context.Context, id string, progress float64) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress %.1f out of range 0-100", progress)
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Progress = progress
	if progress >= 100 {
		p.Status = domain.ProjectCompleted
	}
	return s.projects.Update(ctx, p)
}

func (s *projectService) SetMaterialStatus(ctx context.Context, materialID string, status domain.DeliveryStatus) error {
	return s.projects.SetMaterialStatus(ctx, materialID, status)
}
