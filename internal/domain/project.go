package domain

import "time"

// Project is owned by the surrounding application; the scheduling core
// only reads it. Progress is a 0-100 completion percentage from which
// the current phase is derived.
type Project struct {
	ID        string
	Name      string
	Address   string
	Progress  float64
	Status    ProjectStatus
	DueDate   *time.Time
	Materials []Material
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Material is a line item on a project's bill of materials with its
// delivery status.
type Material struct {
	ID        string
	ProjectID string
	Name      string
	Status    DeliveryStatus
}

// Schedulable reports whether the project should appear in daily work
// planning at all.
func (p *Project) Schedulable() bool {
	return p.Status == ProjectActive || p.Status == ProjectScheduled
}

// DisplayID returns a short identifier for terminal output.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
