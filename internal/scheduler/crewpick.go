package scheduler

import (
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
)

// SuggestBestCrew picks the crew to recommend for a project on a date:
// among crews that are available with at least requiredHours of
// planning capacity remaining, the one with the shortest estimated
// travel from its home base to the project address. Ties keep input
// order. Returns nil when no crew qualifies.
func SuggestBestCrew(
	project domain.Project,
	date time.Time,
	crews []domain.Crew,
	records []domain.CrewAvailability,
	entries []domain.ScheduleEntry,
	requiredHours float64,
) (*domain.Crew, int) {
	var best *domain.Crew
	bestTravel := 0
	for i := range crews {
		day := PlanningCapacity(crews[i], date, records, entries)
		if !day.Available || day.HoursRemaining < requiredHours {
			continue
		}
		travel := EstimateTravelMinutes(crews[i].HomeBase, project.Address)
		if best == nil || travel < bestTravel {
			best = &crews[i]
			bestTravel = travel
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestTravel
}
