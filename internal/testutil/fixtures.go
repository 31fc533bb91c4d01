package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/harlenmason/crewplan/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProgress(pct float64) ProjectOption {
	return func(p *domain.Project) {
		p.Progress = pct
	}
}

func WithDueDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.DueDate = &d
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithAddress(addr string) ProjectOption {
	return func(p *domain.Project) {
		p.Address = addr
	}
}

func WithMaterials(materials ...domain.Material) ProjectOption {
	return func(p *domain.Project) {
		for i := range materials {
			materials[i].ProjectID = p.ID
			if materials[i].ID == "" {
				materials[i].ID = uuid.New().String()
			}
		}
		p.Materials = materials
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Address:   "100 Main St, Downtown",
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DeliveredMaterial builds a material already marked delivered.
func DeliveredMaterial(name string) domain.Material {
	return domain.Material{ID: uuid.New().String(), Name: name, Status: domain.DeliveryDelivered}
}

// PendingMaterial builds a material still in transit.
func PendingMaterial(name string) domain.Material {
	return domain.Material{ID: uuid.New().String(), Name: name, Status: domain.DeliveryInTransit}
}

// Crew options
type CrewOption func(*domain.Crew)

func WithCapacity(hours float64) CrewOption {
	return func(c *domain.Crew) {
		c.MaxDailyCapacity = hours
	}
}

func WithHomeBase(base string) CrewOption {
	return func(c *domain.Crew) {
		c.HomeBase = base
	}
}

func WithMembers(members ...domain.CrewMember) CrewOption {
	return func(c *domain.Crew) {
		for i := range members {
			members[i].CrewID = c.ID
			if members[i].ID == "" {
				members[i].ID = uuid.New().String()
			}
		}
		c.Members = members
	}
}

func NewTestCrew(name string, opts ...CrewOption) *domain.Crew {
	now := time.Now().UTC()
	c := &domain.Crew{
		ID:               uuid.New().String(),
		Name:             name,
		Color:            "#83a598",
		HomeBase:         "Downtown",
		MaxDailyCapacity: domain.DefaultDailyCapacity,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Schedule entry options
type EntryOption func(*domain.ScheduleEntry)

func WithStatus(s domain.ScheduleStatus) EntryOption {
	return func(e *domain.ScheduleEntry) {
		e.Status = s
	}
}

func WithPhase(p domain.Phase) EntryOption {
	return func(e *domain.ScheduleEntry) {
		e.Phase = p
	}
}

func NewTestEntry(projectID, crewID string, date time.Time, start, end string, opts ...EntryOption) domain.ScheduleEntry {
	now := time.Now().UTC()
	e := domain.ScheduleEntry{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		CrewID:    crewID,
		Phase:     domain.PhaseInstall,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    domain.ScheduleScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewTestBlocker builds an unresolved stored blocker targeting the
// given phases.
func NewTestBlocker(projectID string, typ domain.BlockerType, phases ...domain.Phase) domain.ProjectBlocker {
	return domain.ProjectBlocker{
		ID:             uuid.New().String(),
		ProjectID:      projectID,
		Type:           typ,
		Description:    "test blocker",
		BlockingPhases: phases,
		Priority:       domain.PriorityMedium,
		CreatedAt:      time.Now().UTC(),
	}
}
