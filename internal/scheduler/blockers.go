package scheduler

import (
	"fmt"
	"strings"

	"github.com/harlenmason/crewplan/internal/domain"
)

// Synthetic blocker ids. Stable strings, not globally unique: two
// projects' dependency blockers for the same phase share an id.
// Aggregate across projects by domain.BlockerKey, never by id.
const (
	syntheticDepIDPrefix = "dep-"
	syntheticMaterialID  = "material-waiting"
)

// PhaseBlockers assembles everything currently preventing the phase
// from starting, recomputed on every call:
//  1. one synthetic dependency blocker per incomplete prerequisite, in
//     catalog dependency order;
//  2. one synthetic material blocker naming every undelivered material,
//     when the phase requires material and any is missing;
//  3. all stored unresolved blockers targeting the phase, stored order.
func PhaseBlockers(p domain.Project, phase domain.Phase, stored []domain.ProjectBlocker) []domain.ProjectBlocker {
	var out []domain.ProjectBlocker

	cfg := domain.PhaseConfigFor(phase)
	for _, dep := range cfg.Dependencies {
		if IsPhaseComplete(p, dep) {
			continue
		}
		out = append(out, domain.ProjectBlocker{
			ID:             syntheticDepIDPrefix + string(dep),
			ProjectID:      p.ID,
			Type:           domain.BlockerDependency,
			Description:    fmt.Sprintf("%s must be completed first", domain.PhaseConfigFor(dep).Label),
			BlockingPhases: []domain.Phase{phase},
			Priority:       domain.PriorityHigh,
		})
	}

	if cfg.MaterialRequired {
		var missing []string
		for _, m := range p.Materials {
			if m.Status != domain.DeliveryDelivered {
				missing = append(missing, m.Name)
			}
		}
		if len(missing) > 0 {
			out = append(out, domain.ProjectBlocker{
				ID:             syntheticMaterialID,
				ProjectID:      p.ID,
				Type:           domain.BlockerMaterial,
				Description:    fmt.Sprintf("Waiting on materials: %s", strings.Join(missing, ", ")),
				BlockingPhases: []domain.Phase{phase},
				Priority:       domain.PriorityHigh,
			})
		}
	}

	for _, b := range stored {
		if b.ProjectID == p.ID && !b.Resolved() && b.Blocks(phase) {
			out = append(out, b)
		}
	}

	return out
}

// CanPhaseStart reports whether the phase is free to begin: all
// prerequisites complete, materials ready, and no unresolved stored
// blocker targeting it.
func CanPhaseStart(p domain.Project, phase domain.Phase, stored []domain.ProjectBlocker) bool {
	if !DependenciesComplete(p, phase) {
		return false
	}
	if !MaterialsReady(phase, p.Materials) {
		return false
	}
	for _, b := range stored {
		if b.ProjectID == p.ID && !b.Resolved() && b.Blocks(phase) {
			return false
		}
	}
	return true
}
