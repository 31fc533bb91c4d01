package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlenmason/crewplan/internal/cli/formatter"
)

func newPlanCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the daily work plan for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}
			ctx := context.Background()
			items, err := app.Plan.DayPlan(ctx, date)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatDayPlan(date, items, crewNameIndex(ctx, app)))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &dateStr)
	return cmd
}
