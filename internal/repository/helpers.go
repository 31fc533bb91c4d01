package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
)

const dateLayout = domain.DateLayout

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// joinPhases serializes a phase list to a comma-separated column value.
func joinPhases(phases []domain.Phase) string {
	parts := make([]string, len(phases))
	for i, p := range phases {
		parts[i] = string(p)
	}
	return strings.Join(parts, ",")
}

// splitPhases parses a comma-separated column value back to a phase list.
func splitPhases(s string) []domain.Phase {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	phases := make([]domain.Phase, 0, len(parts))
	for _, p := range parts {
		phases = append(phases, domain.Phase(p))
	}
	return phases
}

// joinStrings and splitStrings handle comma-separated text columns
// such as member certifications.
func joinStrings(vals []string) string {
	return strings.Join(vals, ",")
}

func splitStrings(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
