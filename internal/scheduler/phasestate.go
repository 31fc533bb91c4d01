package scheduler

import "github.com/harlenmason/crewplan/internal/domain"

// CurrentPhase maps a project's progress percentage to the first phase
// whose completion threshold has not yet been reached. Progress of
// exactly 100 yields closeout.
func CurrentPhase(p domain.Project) domain.Phase {
	for _, ph := range domain.Phases() {
		if p.Progress < domain.CompletionThreshold(ph) {
			return ph
		}
	}
	return domain.PhaseCloseout
}

// IsPhaseComplete reports whether the project's progress has reached
// the phase's completion threshold.
func IsPhaseComplete(p domain.Project, phase domain.Phase) bool {
	return p.Progress >= domain.CompletionThreshold(phase)
}

// DependenciesComplete reports whether every prerequisite of the phase
// is complete for the project.
func DependenciesComplete(p domain.Project, phase domain.Phase) bool {
	for _, dep := range domain.PhaseConfigFor(phase).Dependencies {
		if !IsPhaseComplete(p, dep) {
			return false
		}
	}
	return true
}

// MaterialsReady reports whether the phase can proceed with respect to
// material delivery. Phases that consume no material are always ready.
// The check spans every material on the project, not just those the
// phase consumes; callers that want phase-scoped readiness pass the
// phase's bill of materials instead of the full project list.
func MaterialsReady(phase domain.Phase, materials []domain.Material) bool {
	if !domain.PhaseConfigFor(phase).MaterialRequired {
		return true
	}
	for _, m := range materials {
		if m.Status != domain.DeliveryDelivered {
			return false
		}
	}
	return true
}
