package scheduler

import (
	"sort"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
)

// phaseSpanDays is the fixed heuristic that any phase spans roughly
// three working days; a day's target effort is the phase estimate
// divided by it.
const phaseSpanDays = 3

// Snapshot is the immutable input the engine works over: the caller
// supplies all collaborator data by value and owns persistence.
type Snapshot struct {
	// Now anchors due-date urgency. The resolver's priority is a
	// function of dueDate-Now, independent of the date being planned.
	Now          time.Time
	Projects     []domain.Project
	Crews        []domain.Crew
	Availability []domain.CrewAvailability
	Entries      []domain.ScheduleEntry
	Blockers     []domain.ProjectBlocker
}

// DailyPlanItem is one row of the day plan: the next thing a project
// could work on. Pure output, never stored.
type DailyPlanItem struct {
	ProjectID      string
	ProjectName    string
	Address        string
	Phase          domain.Phase
	Priority       domain.PlanPriority
	ReadyToStart   bool
	Blockers       []domain.ProjectBlocker
	EstimatedHours float64
	CrewSize       int
	MaterialReady  bool

	// Nil when no crew qualifies; the item still appears.
	RecommendedCrewID *string
	TravelMinutes     *int
}

// DailyEffort returns the portion of the item's phase effort targeted
// for a single day.
func (i *DailyPlanItem) DailyEffort() float64 {
	return i.EstimatedHours / phaseSpanDays
}

// AvailableWork builds the day plan for a target date: one item per
// active or scheduled project, surfacing only the first actionable
// phase (zero-crew wait phases and completed phases are skipped). A
// blocked or unassignable project still yields an item; nothing is
// omitted and nothing errors.
func AvailableWork(date time.Time, snap Snapshot) []DailyPlanItem {
	var items []DailyPlanItem
	for _, p := range snap.Projects {
		if !p.Schedulable() {
			continue
		}
		if item, ok := nextWorkItem(p, date, snap); ok {
			items = append(items, item)
		}
	}

	// Ready items first, then by priority; stable within groups.
	sort.SliceStable(items, func(a, b int) bool {
		if items[a].ReadyToStart != items[b].ReadyToStart {
			return items[a].ReadyToStart
		}
		return priorityRank(items[a].Priority) < priorityRank(items[b].Priority)
	})
	return items
}

// nextWorkItem walks phases in catalog order from the project's
// current phase and emits an item for the first one that needs a crew
// and is not already complete. Returns false when the project has no
// remaining crewed work.
func nextWorkItem(p domain.Project, date time.Time, snap Snapshot) (DailyPlanItem, bool) {
	phases := domain.Phases()
	for i := domain.PhaseIndex(CurrentPhase(p)); i < len(phases); i++ {
		phase := phases[i]
		cfg := domain.PhaseConfigFor(phase)
		if cfg.RequiredCrew == 0 || IsPhaseComplete(p, phase) {
			continue
		}

		blockers := PhaseBlockers(p, phase, snap.Blockers)
		item := DailyPlanItem{
			ProjectID:      p.ID,
			ProjectName:    p.Name,
			Address:        p.Address,
			Phase:          phase,
			Priority:       duePriority(p.DueDate, snap.Now),
			ReadyToStart:   len(blockers) == 0 && DependenciesComplete(p, phase),
			Blockers:       blockers,
			EstimatedHours: cfg.EstimatedHours,
			CrewSize:       cfg.RequiredCrew,
			MaterialReady:  MaterialsReady(phase, p.Materials),
		}

		if crew, travel := SuggestBestCrew(p, date, snap.Crews, snap.Availability, snap.Entries, item.DailyEffort()); crew != nil {
			id := crew.ID
			t := travel
			item.RecommendedCrewID = &id
			item.TravelMinutes = &t
		}
		return item, true
	}
	return DailyPlanItem{}, false
}

// duePriority derives urgency from days until the due date: under 5
// days high, under 10 medium, otherwise low. No due date means low.
func duePriority(due *time.Time, now time.Time) domain.PlanPriority {
	if due == nil {
		return domain.PlanLow
	}
	days := due.Sub(now).Hours() / 24
	switch {
	case days < 5:
		return domain.PlanHigh
	case days < 10:
		return domain.PlanMedium
	default:
		return domain.PlanLow
	}
}

func priorityRank(p domain.PlanPriority) int {
	switch p {
	case domain.PlanHigh:
		return 0
	case domain.PlanMedium:
		return 1
	default:
		return 2
	}
}
