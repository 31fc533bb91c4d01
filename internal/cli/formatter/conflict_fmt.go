package formatter

import (
	"fmt"
	"strings"

	"github.com/harlenmason/crewplan/internal/scheduler"
)

// FormatConflicts renders an audit result.
func FormatConflicts(pairs []scheduler.ConflictPair, crewNames map[string]string) string {
	if len(pairs) == 0 {
		return StyleGreen.Render("No conflicts found.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%d conflict(s)", len(pairs))))
	b.WriteString("\n\n")
	for _, p := range pairs {
		crew := crewNames[p.A.CrewID]
		if crew == "" {
			crew = p.A.CrewID
		}
		b.WriteString(fmt.Sprintf("%s %s on %s: %s–%s overlaps %s–%s by %s\n",
			StyleRed.Render("✗"),
			StyleBlue.Render(crew),
			p.A.Date.Format("Jan 2"),
			p.A.StartTime, p.A.EndTime,
			p.B.StartTime, p.B.EndTime,
			StyleRed.Render(fmt.Sprintf("%d min", p.OverlapMinutes)),
		))
		b.WriteString(Dim(fmt.Sprintf("  entries %s / %s\n", p.A.ID, p.B.ID)))
	}
	return b.String()
}

// FormatCrewCapacity renders a single crew/date capacity line.
func FormatCrewCapacity(crewName string, day scheduler.CrewDayCapacity) string {
	if !day.Available {
		out := fmt.Sprintf("%s: %s", Bold(crewName), StyleRed.Render("unavailable"))
		if day.Notes != "" {
			out += Dim(" — " + day.Notes)
		}
		return out + "\n"
	}
	out := fmt.Sprintf("%s: %s remaining", Bold(crewName),
		StyleGreen.Render(fmt.Sprintf("%.1fh", day.HoursRemaining)))
	if day.Notes != "" {
		out += Dim(" — " + day.Notes)
	}
	return out + "\n"
}
