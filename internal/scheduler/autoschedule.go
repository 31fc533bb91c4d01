package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
)

const (
	// Working window for auto-scheduled blocks, minutes from midnight.
	workDayStartMin = 7 * 60
	workDayEndMin   = 19 * 60

	// minBlockHours is the smallest viable work block; shorter
	// candidates are skipped without charging the crew.
	minBlockHours = 2.0

	// maxBlockHours caps a single auto-scheduled block.
	maxBlockHours = 8.0
)

// AutoSchedule greedily converts the day plan's ready, crewed items
// into concrete schedule entries within each crew's remaining
// capacity. Start times are allocated into the first open gap of the
// crew's calendar from 07:00, considering both pre-existing
// non-cancelled entries and entries created earlier in this pass.
//
// The result has deterministic ids (auto-<date>-<project>-<phase>), so
// running the pass twice against a store that already persisted the
// first result produces colliding ids: callers persist exactly once or
// de-duplicate by id.
func AutoSchedule(date time.Time, snap Snapshot) []domain.ScheduleEntry {
	var created []domain.ScheduleEntry
	// Explicit per-pass accumulator of hours handed to each crew,
	// threaded through the loop rather than hidden in shared state.
	crewHours := make(map[string]float64)

	for _, item := range AvailableWork(date, snap) {
		if !item.ReadyToStart || item.RecommendedCrewID == nil {
			continue
		}
		crew := crewByID(snap.Crews, *item.RecommendedCrewID)
		if crew == nil {
			continue
		}

		availHours := crew.DailyCapacity() - crewHours[crew.ID]
		hours := min(item.DailyEffort(), availHours, maxBlockHours)
		if hours < minBlockHours {
			// Too small to be worth a dispatch; the crew keeps its
			// remaining time for later items in this pass.
			continue
		}

		startMin, ok := firstOpenGap(crew.ID, date, int(hours*60), snap.Entries, created)
		if !ok {
			continue
		}

		entry := domain.ScheduleEntry{
			ID:        autoEntryID(date, item.ProjectID, item.Phase),
			ProjectID: item.ProjectID,
			CrewID:    crew.ID,
			Phase:     item.Phase,
			Date:      date,
			StartTime: FormatClock(startMin),
			EndTime:   FormatClock(startMin + int(hours*60)),
			Status:    domain.ScheduleScheduled,
			Notes:     fmt.Sprintf("Auto-scheduled: %s", domain.PhaseConfigFor(item.Phase).Label),
		}
		if item.TravelMinutes != nil {
			entry.TravelMinutes = *item.TravelMinutes
		}

		created = append(created, entry)
		crewHours[crew.ID] += hours
	}
	return created
}

func autoEntryID(date time.Time, projectID string, phase domain.Phase) string {
	return fmt.Sprintf("auto-%s-%s-%s", date.Format(domain.DateLayout), projectID, phase)
}

func crewByID(crews []domain.Crew, id string) *domain.Crew {
	for i := range crews {
		if crews[i].ID == id {
			return &crews[i]
		}
	}
	return nil
}

// firstOpenGap finds the earliest start within the working window
// where a block of the given length fits around the crew's busy
// intervals on the date. Existing and pass-created entries are merged;
// cancelled entries do not occupy time.
func firstOpenGap(crewID string, date time.Time, blockMin int, existing, created []domain.ScheduleEntry) (int, bool) {
	type span struct{ start, end int }
	var busy []span
	collect := func(entries []domain.ScheduleEntry) {
		for _, e := range entries {
			if e.CrewID == crewID && e.Active() && SameDate(e.Date, date) {
				busy = append(busy, span{ClockMinutes(e.StartTime), ClockMinutes(e.EndTime)})
			}
		}
	}
	collect(existing)
	collect(created)
	sort.Slice(busy, func(i, j int) bool { return busy[i].start < busy[j].start })

	cursor := workDayStartMin
	for _, s := range busy {
		if s.start-cursor >= blockMin {
			break
		}
		if s.end > cursor {
			cursor = s.end
		}
	}
	if cursor+blockMin > workDayEndMin {
		return 0, false
	}
	return cursor, true
}
