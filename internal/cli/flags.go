package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/harlenmason/crewplan/internal/domain"
)

// addDateFlag registers the shared --date flag, defaulting to today.
func addDateFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVar(target, "date", time.Now().Format(domain.DateLayout), "Target date (YYYY-MM-DD)")
}

// parseDate parses a --date value.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// crewNameIndex builds an id→name map for rendering.
func crewNameIndex(ctx context.Context, app *App) map[string]string {
	names := make(map[string]string)
	crews, err := app.Crews.List(ctx)
	if err != nil {
		return names
	}
	for _, c := range crews {
		names[c.ID] = c.Name
	}
	return names
}

// projectNameIndex builds an id→name map for rendering.
func projectNameIndex(ctx context.Context, app *App) map[string]string {
	names := make(map[string]string)
	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return names
	}
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	return names
}
