package cli

import (
	"github.com/spf13/cobra"

	"github.com/harlenmason/crewplan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plan     service.PlanService
	Schedule service.ScheduleService
	Crews    service.CrewService
	Projects service.ProjectService
	Blockers service.BlockerService

	// IsInteractive reports whether stdin is a terminal; gated
	// features (forms, board view) fall back to flags otherwise.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "crewplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "crewplan",
		Short: "Crew scheduling and daily work planning for flooring jobs",
	}

	root.AddCommand(
		newPlanCmd(app),
		newScheduleCmd(app),
		newConflictsCmd(app),
		newCrewCmd(app),
		newProjectCmd(app),
		newBlockerCmd(app),
		newBoardCmd(app),
	)

	return root
}
