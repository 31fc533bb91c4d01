package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/scheduler"
)

// FormatDayPlan renders the resolver's output for one date.
func FormatDayPlan(date time.Time, items []scheduler.DailyPlanItem, crewNames map[string]string) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Day plan — %s", date.Format("Mon Jan 2, 2006"))))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(Dim("No schedulable work.") + "\n")
		return b.String()
	}

	headers := []string{"Project", "Phase", "Status", "Priority", "Hours", "Crew", "Travel"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		crew := Dim("—")
		travel := Dim("—")
		if it.RecommendedCrewID != nil {
			name := crewNames[*it.RecommendedCrewID]
			if name == "" {
				name = *it.RecommendedCrewID
			}
			crew = StyleBlue.Render(name)
		}
		if it.TravelMinutes != nil {
			travel = fmt.Sprintf("%dm", *it.TravelMinutes)
		}
		rows = append(rows, []string{
			it.ProjectName,
			domain.PhaseConfigFor(it.Phase).Label,
			ReadyIndicator(it.ReadyToStart),
			PriorityColor(it.Priority).Render(string(it.Priority)),
			fmt.Sprintf("%.1f", it.DailyEffort()),
			crew,
			travel,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	// Blocked items get their reasons listed below the table.
	for _, it := range items {
		if len(it.Blockers) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(Bold(it.ProjectName) + Dim(" blocked by:") + "\n")
		for _, bl := range it.Blockers {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				StyleYellow.Render("▸"),
				bl.Description))
		}
	}
	return b.String()
}

// FormatScheduleEntries renders a list of schedule entries.
func FormatScheduleEntries(entries []domain.ScheduleEntry, crewNames, projectNames map[string]string) string {
	if len(entries) == 0 {
		return Dim("No schedule entries.") + "\n"
	}
	headers := []string{"Date", "Time", "Project", "Phase", "Crew", "Status"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		project := projectNames[e.ProjectID]
		if project == "" {
			project = e.ProjectID
		}
		crew := crewNames[e.CrewID]
		if crew == "" {
			crew = e.CrewID
		}
		rows = append(rows, []string{
			e.Date.Format(domain.DateLayout),
			fmt.Sprintf("%s–%s", e.StartTime, e.EndTime),
			project,
			string(e.Phase),
			StyleBlue.Render(crew),
			statusStyle(e.Status).Render(string(e.Status)),
		})
	}
	return RenderTable(headers, rows)
}

func statusStyle(s domain.ScheduleStatus) lipgloss.Style {
	switch s {
	case domain.ScheduleCompleted:
		return StyleGreen
	case domain.ScheduleInProgress:
		return StyleYellow
	case domain.ScheduleCancelled:
		return StyleDim
	default:
		return StyleFg
	}
}
