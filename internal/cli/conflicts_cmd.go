package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harlenmason/crewplan/internal/cli/formatter"
	"github.com/harlenmason/crewplan/internal/domain"
)

func newConflictsCmd(app *App) *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Audit the schedule for overlapping assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseDate(fromStr)
			if err != nil {
				return err
			}
			to, err := parseDate(toStr)
			if err != nil {
				return err
			}
			ctx := context.Background()
			pairs, err := app.Schedule.Audit(ctx, from, to)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatConflicts(pairs, crewNameIndex(ctx, app)))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &fromStr)
	cmd.Flags().StringVar(&toStr, "to", time.Now().Format(domain.DateLayout), "End of date range (YYYY-MM-DD)")
	return cmd
}
