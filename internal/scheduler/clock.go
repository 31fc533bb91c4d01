package scheduler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
)

// ClockMinutes parses an "HH:MM" string into minutes from midnight.
// Malformed input is an unchecked precondition violation; this returns
// 0 rather than an error so the engine stays total.
func ClockMinutes(hhmm string) int {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	mins, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return hours*60 + mins
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// EntryHours returns an entry's duration in fractional hours.
func EntryHours(e domain.ScheduleEntry) float64 {
	return float64(ClockMinutes(e.EndTime)-ClockMinutes(e.StartTime)) / 60.0
}

// SameDate reports whether two timestamps fall on the same calendar
// date.
func SameDate(a, b time.Time) bool {
	return a.Format(domain.DateLayout) == b.Format(domain.DateLayout)
}
