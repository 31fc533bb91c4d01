package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harlenmason/crewplan/internal/cli/formatter"
	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/scheduler"
)

// boardData holds everything the board shows for one date.
type boardData struct {
	items     []scheduler.DailyPlanItem
	entries   []domain.ScheduleEntry
	crewNames map[string]string
	projNames map[string]string
}

// boardLoadedMsg signals that board data for a date has been loaded.
type boardLoadedMsg struct {
	date time.Time
	data boardData
	err  error
}

// boardModel is the interactive day board. Left/right move between
// dates, up/down select a plan item, and the selected item's blockers
// are shown under the list.
type boardModel struct {
	app     *App
	date    time.Time
	data    *boardData
	loading bool
	err     error
	cursor  int
	width   int
	keys    boardKeyMap
}

type boardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Prev    key.Binding
	Next    key.Binding
	Today   key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func newBoardModel(app *App, date time.Time) *boardModel {
	return &boardModel{
		app:     app,
		date:    date,
		loading: true,
		keys:    newBoardKeyMap(),
	}
}

func (m *boardModel) Init() tea.Cmd {
	return m.loadData(m.date)
}

func (m *boardModel) loadData(date time.Time) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()

		items, err := app.Plan.DayPlan(ctx, date)
		if err != nil {
			return boardLoadedMsg{date: date, err: err}
		}
		entries, err := app.Schedule.ListDate(ctx, date)
		if err != nil {
			return boardLoadedMsg{date: date, err: err}
		}

		return boardLoadedMsg{
			date: date,
			data: boardData{
				items:     items,
				entries:   entries,
				crewNames: crewNameIndex(ctx, app),
				projNames: projectNameIndex(ctx, app),
			},
		}
	}
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case boardLoadedMsg:
		m.loading = false
		m.date = msg.date
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.data = &msg.data
		if m.cursor >= len(msg.data.items) {
			m.cursor = max(0, len(msg.data.items)-1)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.data != nil && m.cursor < len(m.data.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Prev):
			return m.gotoDate(m.date.AddDate(0, 0, -1))
		case key.Matches(msg, m.keys.Next):
			return m.gotoDate(m.date.AddDate(0, 0, 1))
		case key.Matches(msg, m.keys.Today):
			return m.gotoDate(time.Now())
		case key.Matches(msg, m.keys.Refresh):
			return m.gotoDate(m.date)
		}
	}

	return m, nil
}

func (m *boardModel) gotoDate(date time.Time) (tea.Model, tea.Cmd) {
	m.loading = true
	m.cursor = 0
	return m, m.loadData(date)
}

func (m *boardModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + formatter.Header("Board "+m.date.Format("Mon Jan 2")) + "\n\n")

	switch {
	case m.loading:
		b.WriteString("  " + formatter.Dim("Loading...") + "\n")
	case m.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.data == nil || len(m.data.items) == 0:
		b.WriteString("  " + formatter.Dim("No work available for this date.") + "\n")
	default:
		m.renderItems(&b)
		m.renderEntries(&b)
	}

	b.WriteString("\n  " + m.helpLine() + "\n")
	return b.String()
}

func (m *boardModel) renderItems(b *strings.Builder) {
	for i, item := range m.data.items {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		crew := formatter.Dim("unassigned")
		if item.RecommendedCrewID != nil {
			name := m.data.crewNames[*item.RecommendedCrewID]
			if name == "" {
				name = *item.RecommendedCrewID
			}
			crew = formatter.StyleBlue.Render(name)
		}

		b.WriteString(fmt.Sprintf("  %s%s  %s  %s  %s  %s\n",
			cursor,
			formatter.PriorityColor(item.Priority).Render(strings.ToUpper(string(item.Priority))),
			nameStyle.Render(padRight(item.ProjectName, 20)),
			formatter.StylePurple.Render(padRight(string(item.Phase), 12)),
			formatter.ReadyIndicator(item.ReadyToStart),
			crew,
		))
	}

	// Blockers for the selected item.
	if m.cursor < len(m.data.items) {
		sel := m.data.items[m.cursor]
		if len(sel.Blockers) > 0 {
			b.WriteString("\n  " + formatter.Dim("Blockers for "+sel.ProjectName+":") + "\n")
			for _, bl := range sel.Blockers {
				b.WriteString("    " + formatter.StyleRed.Render("✗") + " " + bl.Description + "\n")
			}
		}
	}
}

func (m *boardModel) renderEntries(b *strings.Builder) {
	if len(m.data.entries) == 0 {
		return
	}
	b.WriteString("\n  " + formatter.StyleHeader.Render("SCHEDULED") + "\n")
	out := formatter.FormatScheduleEntries(m.data.entries, m.data.crewNames, m.data.projNames)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
}

func (m *boardModel) helpLine() string {
	parts := []string{}
	for _, kb := range []key.Binding{m.keys.Prev, m.keys.Next, m.keys.Today, m.keys.Refresh, m.keys.Quit} {
		parts = append(parts, kb.Help().Key+" "+kb.Help().Desc)
	}
	return formatter.Dim(strings.Join(parts, "  ·  "))
}

func padRight(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "…"
	}
	return s + strings.Repeat(" ", width-len(s))
}

func newBoardCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Interactive day board",
		Long:  "Browse the daily work plan and schedule interactively. Arrow keys move between days and items.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return fmt.Errorf("board requires an interactive terminal")
			}
			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newBoardModel(app, date))
			_, err = p.Run()
			return err
		},
	}

	addDateFlag(cmd.Flags(), &dateStr)
	return cmd
}
