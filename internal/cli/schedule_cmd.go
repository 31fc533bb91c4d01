package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harlenmason/crewplan/internal/cli/formatter"
	"github.com/harlenmason/crewplan/internal/domain"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage concrete schedule entries",
	}
	cmd.AddCommand(
		newScheduleAutoCmd(app),
		newScheduleAddCmd(app),
		newScheduleListCmd(app),
		newScheduleRmCmd(app),
	)
	return cmd
}

func newScheduleAutoCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Auto-schedule ready work onto available crews",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}
			ctx := context.Background()
			entries, err := app.Plan.AutoSchedule(ctx, date)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(formatter.Dim("Nothing to schedule."))
				return nil
			}
			fmt.Printf("Created %d entr%s:\n", len(entries), plural(len(entries), "y", "ies"))
			fmt.Print(formatter.FormatScheduleEntries(entries, crewNameIndex(ctx, app), projectNameIndex(ctx, app)))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &dateStr)
	return cmd
}

func newScheduleAddCmd(app *App) *cobra.Command {
	var dateStr, projectID, crewID, phase, start, end, notes string
	var travel int
	var force bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a schedule entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}
			if domain.PhaseIndex(domain.Phase(phase)) < 0 {
				return fmt.Errorf("unknown phase %q", phase)
			}
			entry := domain.ScheduleEntry{
				ProjectID:     projectID,
				CrewID:        crewID,
				Phase:         domain.Phase(phase),
				Date:          date,
				StartTime:     start,
				EndTime:       end,
				TravelMinutes: travel,
				Notes:         notes,
			}

			ctx := context.Background()
			conflicts, err := app.Schedule.Check(ctx, entry)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 && !force {
				fmt.Print(formatter.StyleRed.Render(
					fmt.Sprintf("Refusing to save: %d conflicting entr%s (use --force to override):",
						len(conflicts), plural(len(conflicts), "y", "ies"))) + "\n")
				fmt.Print(formatter.FormatScheduleEntries(conflicts, crewNameIndex(ctx, app), projectNameIndex(ctx, app)))
				return fmt.Errorf("schedule conflict")
			}

			if err := app.Schedule.Create(ctx, &entry); err != nil {
				return err
			}
			fmt.Printf("Created entry %s\n", entry.ID)
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &dateStr)
	cmd.Flags().StringVar(&projectID, "project", "", "Project id")
	cmd.Flags().StringVar(&crewID, "crew", "", "Crew id")
	cmd.Flags().StringVar(&phase, "phase", "install", "Phase")
	cmd.Flags().StringVar(&start, "start", "07:00", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "15:00", "End time (HH:MM)")
	cmd.Flags().IntVar(&travel, "travel", 0, "Travel minutes")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().BoolVar(&force, "force", false, "Save even when conflicts are detected")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("crew")
	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	var fromStr, toStr, crewID, projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schedule entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var entries []domain.ScheduleEntry
			var err error
			if projectID != "" {
				entries, err = app.Schedule.ListProject(ctx, projectID)
			} else {
				from, ferr := parseDate(fromStr)
				if ferr != nil {
					return ferr
				}
				to, terr := parseDate(toStr)
				if terr != nil {
					return terr
				}
				entries, err = app.Schedule.ListRange(ctx, from, to, crewID)
			}
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatScheduleEntries(entries, crewNameIndex(ctx, app), projectNameIndex(ctx, app)))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &fromStr)
	cmd.Flags().StringVar(&toStr, "to", time.Now().Format(domain.DateLayout), "End of date range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&crewID, "crew", "", "Filter by crew id")
	cmd.Flags().StringVar(&projectID, "project", "", "List by project instead of date range")
	return cmd
}

func newScheduleRmCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <entry-id>",
		Short: "Delete a schedule entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schedule.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted entry %s\n", args[0])
			return nil
		},
	}
	return cmd
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
