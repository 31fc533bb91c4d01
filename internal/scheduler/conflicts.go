package scheduler

import (
	"sort"

	"github.com/harlenmason/crewplan/internal/domain"
)

// ConflictPair is one detected overlap between two entries on the same
// crew and date.
type ConflictPair struct {
	A              domain.ScheduleEntry
	B              domain.ScheduleEntry
	OverlapMinutes int
}

// CheckConflicts returns every existing non-cancelled entry for the
// candidate's crew and date whose [start,end) interval intersects the
// candidate's. An entry sharing the candidate's id is ignored so
// updates don't conflict with themselves. Detection, not prevention:
// the caller decides whether to block the save.
func CheckConflicts(candidate domain.ScheduleEntry, existing []domain.ScheduleEntry) []domain.ScheduleEntry {
	var conflicts []domain.ScheduleEntry
	newStart, newEnd := ClockMinutes(candidate.StartTime), ClockMinutes(candidate.EndTime)
	for _, e := range existing {
		if e.ID == candidate.ID || e.CrewID != candidate.CrewID || !e.Active() || !SameDate(e.Date, candidate.Date) {
			continue
		}
		if overlapMinutes(newStart, newEnd, ClockMinutes(e.StartTime), ClockMinutes(e.EndTime)) > 0 {
			conflicts = append(conflicts, e)
		}
	}
	return conflicts
}

// ScanConflicts audits a whole entry set: groups by (crew, date) and
// reports all pairwise overlaps with their exact overlap in minutes.
// O(n²) within each group, which stays small (one crew's entries on
// one day).
func ScanConflicts(entries []domain.ScheduleEntry) []ConflictPair {
	groups := make(map[string][]domain.ScheduleEntry)
	var order []string
	for _, e := range entries {
		if !e.Active() {
			continue
		}
		key := e.CrewID + "|" + e.DateKey()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], e)
	}
	sort.Strings(order)

	var pairs []ConflictPair
	for _, key := range order {
		group := groups[key]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				ov := overlapMinutes(
					ClockMinutes(a.StartTime), ClockMinutes(a.EndTime),
					ClockMinutes(b.StartTime), ClockMinutes(b.EndTime),
				)
				if ov > 0 {
					pairs = append(pairs, ConflictPair{A: a, B: b, OverlapMinutes: ov})
				}
			}
		}
	}
	return pairs
}

// overlapMinutes returns the length of the intersection of two
// half-open [start,end) intervals, zero when disjoint.
func overlapMinutes(aStart, aEnd, bStart, bEnd int) int {
	start := aStart
	if bStart > start {
		start = bStart
	}
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	if end <= start {
		return 0
	}
	return end - start
}
