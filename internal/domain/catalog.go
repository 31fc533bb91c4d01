package domain

import "fmt"

// PhaseConfig is the immutable per-phase configuration from the phase
// catalog.
type PhaseConfig struct {
	Label            string
	EstimatedHours   float64
	RequiredCrew     int
	Dependencies     []Phase
	MaterialRequired bool
	WeatherSensitive bool
	// WaitHours is the fixed elapsed time for zero-crew wait phases
	// (acclimation, cure) during which no crew is scheduled.
	WaitHours float64
	Icon      string
}

// phaseOrder is the total ordering of phases. Completion thresholds and
// dependency validation both assume this sequence.
var phaseOrder = []Phase{
	PhaseDemo,
	PhasePrep,
	PhaseAcclimation,
	PhaseInstall,
	PhaseCure,
	PhasePunch,
	PhaseCloseout,
}

var catalog = map[Phase]PhaseConfig{
	PhaseDemo: {
		Label:          "Demolition & Tear-Out",
		EstimatedHours: 16,
		RequiredCrew:   2,
		Icon:           "hammer",
	},
	PhasePrep: {
		Label:          "Subfloor Prep & Leveling",
		EstimatedHours: 12,
		RequiredCrew:   2,
		Dependencies:   []Phase{PhaseDemo},
		Icon:           "ruler",
	},
	PhaseAcclimation: {
		Label:            "Material Acclimation",
		RequiredCrew:     0,
		Dependencies:     []Phase{PhasePrep},
		MaterialRequired: true,
		WeatherSensitive: true,
		WaitHours:        48,
		Icon:             "clock",
	},
	PhaseInstall: {
		Label:            "Installation",
		EstimatedHours:   24,
		RequiredCrew:     3,
		Dependencies:     []Phase{PhaseDemo, PhasePrep},
		MaterialRequired: true,
		Icon:             "layers",
	},
	PhaseCure: {
		Label:        "Cure & Set",
		RequiredCrew: 0,
		Dependencies: []Phase{PhaseInstall},
		WaitHours:    24,
		Icon:         "timer",
	},
	PhasePunch: {
		Label:          "Punch List",
		EstimatedHours: 8,
		RequiredCrew:   2,
		Dependencies:   []Phase{PhaseInstall},
		Icon:           "clipboard",
	},
	PhaseCloseout: {
		Label:          "Final Walkthrough & Closeout",
		EstimatedHours: 4,
		RequiredCrew:   1,
		Dependencies:   []Phase{PhasePunch},
		Icon:           "check",
	},
}

// completionThresholds maps each phase to the project progress
// percentage at which it counts as complete. Values are strictly
// increasing in phase order (the last two share 100).
var completionThresholds = map[Phase]float64{
	PhaseDemo:        20,
	PhasePrep:        35,
	PhaseAcclimation: 50,
	PhaseInstall:     80,
	PhaseCure:        90,
	PhasePunch:       100,
	PhaseCloseout:    100,
}

func init() {
	if err := validateCatalog(); err != nil {
		panic(fmt.Sprintf("phase catalog invalid: %v", err))
	}
}

// Phases returns all phases in catalog order.
func Phases() []Phase {
	out := make([]Phase, len(phaseOrder))
	copy(out, phaseOrder)
	return out
}

// PhaseIndex returns a phase's position in catalog order, or -1 for an
// unknown phase.
func PhaseIndex(p Phase) int {
	for i, ph := range phaseOrder {
		if ph == p {
			return i
		}
	}
	return -1
}

// PhaseConfigFor returns the catalog configuration for a phase.
func PhaseConfigFor(p Phase) PhaseConfig {
	return catalog[p]
}

// CompletionThreshold returns the progress percentage at which the
// phase counts as complete.
func CompletionThreshold(p Phase) float64 {
	return completionThresholds[p]
}

// validateCatalog checks the dependency graph at load time: every
// phase must be configured and carry a threshold, dependencies must
// reference only strictly earlier phases (which also rules out cycles
// and self-references), and thresholds must be non-decreasing in phase
// order.
func validateCatalog() error {
	prev := -1.0
	for i, p := range phaseOrder {
		cfg, ok := catalog[p]
		if !ok {
			return fmt.Errorf("phase %s has no catalog entry", p)
		}
		th, ok := completionThresholds[p]
		if !ok {
			return fmt.Errorf("phase %s has no completion threshold", p)
		}
		if th < prev {
			return fmt.Errorf("phase %s threshold %.0f decreases from %.0f", p, th, prev)
		}
		prev = th
		for _, dep := range cfg.Dependencies {
			j := PhaseIndex(dep)
			if j < 0 {
				return fmt.Errorf("phase %s depends on unknown phase %s", p, dep)
			}
			if j >= i {
				return fmt.Errorf("phase %s depends on %s, which is not an earlier phase", p, dep)
			}
		}
	}
	if phaseOrder[len(phaseOrder)-1] != PhaseCloseout || completionThresholds[PhaseCloseout] != 100 {
		return fmt.Errorf("catalog must end at closeout with threshold 100")
	}
	return nil
}
