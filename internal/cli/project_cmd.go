package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harlenmason/crewplan/internal/cli/formatter"
	"github.com/harlenmason/crewplan/internal/domain"
	"github.com/harlenmason/crewplan/internal/scheduler"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects and materials",
	}
	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectAddCmd(app),
		newProjectProgressCmd(app),
		newProjectMaterialCmd(app),
	)
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println(formatter.Dim("No projects."))
				return nil
			}
			headers := []string{"ID", "Name", "Progress", "Phase", "Due", "Status"}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				due := formatter.Dim("—")
				if p.DueDate != nil {
					due = p.DueDate.Format(domain.DateLayout)
				}
				rows = append(rows, []string{
					formatter.Dim(p.DisplayID()),
					formatter.Bold(p.Name),
					fmt.Sprintf("%.0f%%", p.Progress),
					domain.PhaseConfigFor(scheduler.CurrentPhase(*p)).Label,
					due,
					string(p.Status),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed projects")
	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, address, dueStr string
	var progress float64
	var materials []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.Project{
				Name:     name,
				Address:  address,
				Progress: progress,
			}
			if dueStr != "" {
				due, err := parseDate(dueStr)
				if err != nil {
					return err
				}
				p.DueDate = &due
			}
			// --material "Name" or "Name:status" may repeat.
			for _, m := range materials {
				matName, status, hasStatus := strings.Cut(m, ":")
				mat := domain.Material{Name: matName}
				if hasStatus {
					mat.Status = domain.DeliveryStatus(status)
				}
				p.Materials = append(p.Materials, mat)
			}
			if err := app.Projects.Create(context.Background(), &p); err != nil {
				return err
			}
			fmt.Printf("Created project %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&address, "address", "", "Job site address")
	cmd.Flags().Float64Var(&progress, "progress", 0, "Completion percentage 0-100")
	cmd.Flags().StringVar(&dueStr, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&materials, "material", nil, "Material as name[:status] (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectProgressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress <project-id> <percent>",
		Short: "Update a project's completion percentage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pct float64
			if _, err := fmt.Sscanf(args[1], "%f", &pct); err != nil {
				return fmt.Errorf("invalid percentage %q", args[1])
			}
			if err := app.Projects.SetProgress(context.Background(), args[0], pct); err != nil {
				return err
			}
			fmt.Printf("Set progress of %s to %.0f%%\n", args[0], pct)
			return nil
		},
	}
	return cmd
}

func newProjectMaterialCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "material <material-id> <status>",
		Short: "Update a material's delivery status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.DeliveryStatus(args[1])
			switch status {
			case domain.DeliveryOrdered, domain.DeliveryInTransit, domain.DeliveryDelivered:
			default:
				return fmt.Errorf("invalid delivery status %q", args[1])
			}
			if err := app.Projects.SetMaterialStatus(context.Background(), args[0], status); err != nil {
				return err
			}
			fmt.Printf("Marked material %s as %s\n", args[0], status)
			return nil
		},
	}
	return cmd
}
