package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/harlenmason/crewplan/internal/cli"
	"github.com/harlenmason/crewplan/internal/db"
	"github.com/harlenmason/crewplan/internal/repository"
	"github.com/harlenmason/crewplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.crewplan/crewplan.db
	dbPath := os.Getenv("CREWPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".crewplan", "crewplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	crewRepo := repository.NewSQLiteCrewRepo(database)
	availabilityRepo := repository.NewSQLiteAvailabilityRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	blockerRepo := repository.NewSQLiteBlockerRepo(database)

	app := &cli.App{
		Plan:     service.NewPlanService(projectRepo, crewRepo, availabilityRepo, scheduleRepo, blockerRepo),
		Schedule: service.NewScheduleService(scheduleRepo),
		Crews:    service.NewCrewService(crewRepo, availabilityRepo, scheduleRepo),
		Projects: service.NewProjectService(projectRepo),
		Blockers: service.NewBlockerService(blockerRepo, projectRepo),
	}

	// Detect interactive terminal for form and board entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
