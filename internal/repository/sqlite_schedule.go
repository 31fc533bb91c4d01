package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
)

const scheduleColumns = `id, project_id, crew_id, phase, date, start_time, end_time,
		travel_minutes, status, notes, created_at, updated_at`

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db *sql.DB
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(db *sql.DB) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

func (r *SQLiteScheduleRepo) Create(ctx context.Context, e *domain.ScheduleEntry) error {
	query := `INSERT INTO schedule_entries (` + scheduleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.ProjectID,
		e.CrewID,
		string(e.Phase),
		e.Date.Format(dateLayout),
		e.StartTime,
		e.EndTime,
		e.TravelMinutes,
		string(e.Status),
		e.Notes,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule entry: %w", err)
	}
	return nil
}

// BulkCreate inserts a batch of entries in one transaction. All or
// nothing; the auto-scheduler's output is persisted through this.
func (r *SQLiteScheduleRepo) BulkCreate(ctx context.Context, entries []domain.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting bulk insert: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	query := `INSERT INTO schedule_entries (` + scheduleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i := range entries {
		e := &entries[i]
		if _, err := tx.ExecContext(ctx, query,
			e.ID, e.ProjectID, e.CrewID, string(e.Phase),
			e.Date.Format(dateLayout), e.StartTime, e.EndTime,
			e.TravelMinutes, string(e.Status), e.Notes,
			e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("bulk inserting schedule entry %s: %w", e.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing bulk insert: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scheduleColumns+` FROM schedule_entries WHERE id = ?`, id)
	return scanScheduleEntry(row)
}

func (r *SQLiteScheduleRepo) Update(ctx context.Context, e *domain.ScheduleEntry) error {
	query := `UPDATE schedule_entries SET project_id = ?, crew_id = ?, phase = ?, date = ?,
		start_time = ?, end_time = ?, travel_minutes = ?, status = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.ProjectID, e.CrewID, string(e.Phase), e.Date.Format(dateLayout),
		e.StartTime, e.EndTime, e.TravelMinutes, string(e.Status), e.Notes,
		time.Now().UTC().Format(time.RFC3339), e.ID)
	if err != nil {
		return fmt.Errorf("updating schedule entry: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedule_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule entry: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteScheduleRepo) ListByDate(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error) {
	return r.queryEntries(ctx,
		`SELECT `+scheduleColumns+` FROM schedule_entries WHERE date = ?
		 ORDER BY date, start_time`,
		date.Format(dateLayout))
}

func (r *SQLiteScheduleRepo) ListByCrewRange(ctx context.Context, crewID string, from, to time.Time) ([]domain.ScheduleEntry, error) {
	return r.queryEntries(ctx,
		`SELECT `+scheduleColumns+` FROM schedule_entries
		 WHERE crew_id = ? AND date >= ? AND date <= ?
		 ORDER BY date, start_time`,
		crewID, from.Format(dateLayout), to.Format(dateLayout))
}

func (r *SQLiteScheduleRepo) ListByProject(ctx context.Context, projectID string) ([]domain.ScheduleEntry, error) {
	return r.queryEntries(ctx,
		`SELECT `+scheduleColumns+` FROM schedule_entries
		 WHERE project_id = ?
		 ORDER BY date, start_time`,
		projectID)
}

func (r *SQLiteScheduleRepo) ListRange(ctx context.Context, from, to time.Time, crewID string) ([]domain.ScheduleEntry, error) {
	if crewID != "" {
		return r.ListByCrewRange(ctx, crewID, from, to)
	}
	return r.queryEntries(ctx,
		`SELECT `+scheduleColumns+` FROM schedule_entries
		 WHERE date >= ? AND date <= ?
		 ORDER BY date, start_time`,
		from.Format(dateLayout), to.Format(dateLayout))
}

func (r *SQLiteScheduleRepo) queryEntries(ctx context.Context, query string, args ...interface{}) ([]domain.ScheduleEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.ScheduleEntry
	for rows.Next() {
		e, err := scanScheduleEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule entries: %w", err)
	}
	return entries, nil
}

func scanScheduleEntry(row rowScanner) (*domain.ScheduleEntry, error) {
	var e domain.ScheduleEntry
	var phase, status, date, createdAt, updatedAt string
	err := row.Scan(&e.ID, &e.ProjectID, &e.CrewID, &phase, &date, &e.StartTime, &e.EndTime,
		&e.TravelMinutes, &status, &e.Notes, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning schedule entry: %w", err)
	}
	e.Phase = domain.Phase(phase)
	e.Status = domain.ScheduleStatus(status)
	e.Date, _ = time.Parse(dateLayout, date)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &e, nil
}
