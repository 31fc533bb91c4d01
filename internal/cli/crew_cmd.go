package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harlenmason/crewplan/internal/cli/formatter"
	"github.com/harlenmason/crewplan/internal/domain"
)

func newCrewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crew",
		Short: "Manage crews and their availability",
	}
	cmd.AddCommand(
		newCrewListCmd(app),
		newCrewAddCmd(app),
		newCrewAvailCmd(app),
	)
	return cmd
}

func newCrewListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List crews",
		RunE: func(cmd *cobra.Command, args []string) error {
			crews, err := app.Crews.List(context.Background())
			if err != nil {
				return err
			}
			if len(crews) == 0 {
				fmt.Println(formatter.Dim("No crews."))
				return nil
			}
			headers := []string{"ID", "Name", "Home base", "Capacity", "Members"}
			rows := make([][]string, 0, len(crews))
			for _, c := range crews {
				names := make([]string, 0, len(c.Members))
				for _, m := range c.Members {
					names = append(names, m.Name)
				}
				rows = append(rows, []string{
					formatter.Dim(shortID(c.ID)),
					formatter.Bold(c.Name),
					c.HomeBase,
					fmt.Sprintf("%.0fh/day", c.DailyCapacity()),
					strings.Join(names, ", "),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newCrewAddCmd(app *App) *cobra.Command {
	var name, color, homeBase string
	var capacity float64
	var members []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a crew",
		RunE: func(cmd *cobra.Command, args []string) error {
			crew := domain.Crew{
				Name:             name,
				Color:            color,
				HomeBase:         homeBase,
				MaxDailyCapacity: capacity,
			}
			// --member "Name:role" may repeat.
			for _, m := range members {
				memberName, role, _ := strings.Cut(m, ":")
				crew.Members = append(crew.Members, domain.CrewMember{Name: memberName, Role: role})
			}
			if err := app.Crews.Create(context.Background(), &crew); err != nil {
				return err
			}
			fmt.Printf("Created crew %s (%s)\n", crew.Name, crew.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Crew name")
	cmd.Flags().StringVar(&color, "color", "#83a598", "Display color")
	cmd.Flags().StringVar(&homeBase, "home-base", "", "Home base location")
	cmd.Flags().Float64Var(&capacity, "capacity", domain.DefaultDailyCapacity, "Max hours per day")
	cmd.Flags().StringArrayVar(&members, "member", nil, "Member as name:role (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newCrewAvailCmd(app *App) *cobra.Command {
	var dateStr, crewID, notes string
	var unavailable bool
	var hoursBooked float64

	cmd := &cobra.Command{
		Use:   "avail",
		Short: "Show or set a crew's availability for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}
			ctx := context.Background()

			// With no mutation flags, report remaining capacity.
			if !cmd.Flags().Changed("unavailable") && !cmd.Flags().Changed("hours-booked") && !cmd.Flags().Changed("notes") {
				crew, err := app.Crews.Get(ctx, crewID)
				if err != nil {
					return err
				}
				day, err := app.Crews.DayCapacity(ctx, crewID, date)
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatCrewCapacity(crew.Name, day))
				return nil
			}

			rec := domain.CrewAvailability{
				CrewID:      crewID,
				Date:        date,
				Available:   !unavailable,
				HoursBooked: hoursBooked,
				Notes:       notes,
			}
			if err := app.Crews.SetAvailability(ctx, &rec); err != nil {
				return err
			}
			fmt.Printf("Updated availability for %s on %s\n", crewID, dateStr)
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &dateStr)
	cmd.Flags().StringVar(&crewID, "crew", "", "Crew id")
	cmd.Flags().BoolVar(&unavailable, "unavailable", false, "Mark the crew unavailable")
	cmd.Flags().Float64Var(&hoursBooked, "hours-booked", 0, "Pre-committed hours not in schedule entries")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("crew")
	return cmd
}

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
