package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent
// (CREATE IF NOT EXISTS); "duplicate column name" from re-run ALTER
// TABLE statements is tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		address    TEXT NOT NULL DEFAULT '',
		progress   REAL NOT NULL DEFAULT 0,
		status     TEXT NOT NULL DEFAULT 'active'
		           CHECK(status IN ('active','scheduled','on-hold','completed')),
		due_date   TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS materials (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'ordered'
		           CHECK(status IN ('ordered','in-transit','delivered'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_materials_project ON materials(project_id)`,

	`CREATE TABLE IF NOT EXISTS crews (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		color              TEXT NOT NULL DEFAULT '',
		home_base          TEXT NOT NULL DEFAULT '',
		max_daily_capacity REAL NOT NULL DEFAULT 8,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS crew_members (
		id             TEXT PRIMARY KEY,
		crew_id        TEXT NOT NULL REFERENCES crews(id) ON DELETE CASCADE,
		name           TEXT NOT NULL,
		role           TEXT NOT NULL DEFAULT '',
		certifications TEXT NOT NULL DEFAULT '',
		hourly_rate    REAL NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_crew_members_crew ON crew_members(crew_id)`,

	`CREATE TABLE IF NOT EXISTS crew_availability (
		crew_id      TEXT NOT NULL REFERENCES crews(id) ON DELETE CASCADE,
		date         TEXT NOT NULL,
		available    INTEGER NOT NULL DEFAULT 1,
		hours_booked REAL NOT NULL DEFAULT 0,
		notes        TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (crew_id, date)
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_entries (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		crew_id        TEXT NOT NULL REFERENCES crews(id) ON DELETE CASCADE,
		phase          TEXT NOT NULL,
		date           TEXT NOT NULL,
		start_time     TEXT NOT NULL,
		end_time       TEXT NOT NULL,
		travel_minutes INTEGER NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'scheduled'
		               CHECK(status IN ('scheduled','in-progress','completed','cancelled')),
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_crew_date ON schedule_entries(crew_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_project ON schedule_entries(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_date ON schedule_entries(date)`,

	`CREATE TABLE IF NOT EXISTS project_blockers (
		id              TEXT PRIMARY KEY,
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		type            TEXT NOT NULL
		                CHECK(type IN ('dependency','material','weather','crew','inspection','other')),
		description     TEXT NOT NULL DEFAULT '',
		blocking_phases TEXT NOT NULL DEFAULT '',
		priority        TEXT NOT NULL DEFAULT 'medium'
		                CHECK(priority IN ('high','medium','low')),
		created_at      TEXT NOT NULL,
		resolved_at     TEXT,
		resolved_by     TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_blockers_project ON project_blockers(project_id)`,
}
