package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/harlenmason/crewplan/internal/cli/formatter"
	"github.com/harlenmason/crewplan/internal/domain"
)

func newBlockerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocker",
		Short: "Manage project blockers",
	}
	cmd.AddCommand(
		newBlockerAddCmd(app),
		newBlockerListCmd(app),
		newBlockerResolveCmd(app),
	)
	return cmd
}

// crewplanHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func crewplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	return t
}

func newBlockerAddCmd(app *App) *cobra.Command {
	var projectID, typ, description, priority string
	var phases []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a blocker on a project",
		Long:  "Register a blocker on a project. Without flags on an interactive terminal, prompts with a form.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			interactive := projectID == "" && app.IsInteractive != nil && app.IsInteractive()
			if interactive {
				if err := runBlockerForm(ctx, app, &projectID, &typ, &description, &priority, &phases); err != nil {
					return err
				}
			}

			blocker := domain.ProjectBlocker{
				ProjectID:   projectID,
				Type:        domain.BlockerType(typ),
				Description: description,
				Priority:    domain.BlockerPriority(priority),
			}
			for _, p := range phases {
				blocker.BlockingPhases = append(blocker.BlockingPhases, domain.Phase(p))
			}
			if err := app.Blockers.Add(ctx, &blocker); err != nil {
				return err
			}
			fmt.Printf("Registered %s blocker %s\n", blocker.Type, blocker.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project id")
	cmd.Flags().StringVar(&typ, "type", "other", "Blocker type (weather, crew, inspection, other)")
	cmd.Flags().StringVar(&description, "description", "", "What is blocking")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (high, medium, low)")
	cmd.Flags().StringSliceVar(&phases, "phases", nil, "Phases blocked (comma-separated)")
	return cmd
}

func runBlockerForm(ctx context.Context, app *App, projectID, typ, description, priority *string, phases *[]string) error {
	projects, err := app.Projects.List(ctx, false)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return fmt.Errorf("no projects to block")
	}

	projectOpts := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		projectOpts = append(projectOpts, huh.NewOption(p.Name, p.ID))
	}
	phaseOpts := make([]huh.Option[string], 0)
	for _, p := range domain.Phases() {
		phaseOpts = append(phaseOpts, huh.NewOption(domain.PhaseConfigFor(p).Label, string(p)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which project?").
				Options(projectOpts...).
				Value(projectID),
			huh.NewSelect[string]().
				Title("Blocker type").
				Options(
					huh.NewOption("Weather", "weather"),
					huh.NewOption("Crew", "crew"),
					huh.NewOption("Inspection", "inspection"),
					huh.NewOption("Other", "other"),
				).
				Value(typ),
			huh.NewMultiSelect[string]().
				Title("Phases blocked").
				Options(phaseOpts...).
				Value(phases),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("High", "high"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("Low", "low"),
				).
				Value(priority),
			huh.NewInput().
				Title("Description").
				Value(description),
		),
	).WithTheme(crewplanHuhTheme()).WithShowHelp(false)

	return form.Run()
}

func newBlockerListCmd(app *App) *cobra.Command {
	var projectID string
	var includeResolved bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blockers",
		RunE: func(cmd *cobra.Command, args []string) error {
			blockers, err := app.Blockers.List(context.Background(), projectID, !includeResolved)
			if err != nil {
				return err
			}
			if len(blockers) == 0 {
				fmt.Println(formatter.Dim("No blockers."))
				return nil
			}
			headers := []string{"ID", "Type", "Priority", "Phases", "Description", "Status"}
			rows := make([][]string, 0, len(blockers))
			for _, b := range blockers {
				status := formatter.StyleRed.Render("open")
				if b.Resolved() {
					status = formatter.StyleGreen.Render("resolved " + b.ResolvedAt.Format(domain.DateLayout))
				}
				rows = append(rows, []string{
					formatter.Dim(shortID(b.ID)),
					string(b.Type),
					string(b.Priority),
					phaseList(b.BlockingPhases),
					b.Description,
					status,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Filter by project id")
	cmd.Flags().BoolVar(&includeResolved, "all", false, "Include resolved blockers")
	return cmd
}

func newBlockerResolveCmd(app *App) *cobra.Command {
	var resolvedBy string

	cmd := &cobra.Command{
		Use:   "resolve <blocker-id>",
		Short: "Mark a blocker resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Blockers.Resolve(context.Background(), args[0], resolvedBy); err != nil {
				return err
			}
			fmt.Printf("Resolved blocker %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&resolvedBy, "by", "", "Who resolved it")
	return cmd
}

func phaseList(phases []domain.Phase) string {
	out := ""
	for i, p := range phases {
		if i > 0 {
			out += ","
		}
		out += string(p)
	}
	return out
}
