package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
)

// SQLiteAvailabilityRepo implements AvailabilityRepo using a SQLite database.
type SQLiteAvailabilityRepo struct {
	db *sql.DB
}

// NewSQLiteAvailabilityRepo creates a new SQLiteAvailabilityRepo.
func NewSQLiteAvailabilityRepo(db *sql.DB) *SQLiteAvailabilityRepo {
	return &SQLiteAvailabilityRepo{db: db}
}

func (r *SQLiteAvailabilityRepo) Upsert(ctx context.Context, a *domain.CrewAvailability) error {
	query := `INSERT INTO crew_availability (crew_id, date, available, hours_booked, notes)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(crew_id, date) DO UPDATE SET
			available = excluded.available,
			hours_booked = excluded.hours_booked,
			notes = excluded.notes`
	_, err := r.db.ExecContext(ctx, query,
		a.CrewID,
		a.Date.Format(dateLayout),
		boolToInt(a.Available),
		a.HoursBooked,
		a.Notes,
	)
	if err != nil {
		return fmt.Errorf("upserting crew availability: %w", err)
	}
	return nil
}

func (r *SQLiteAvailabilityRepo) Get(ctx context.Context, crewID string, date time.Time) (*domain.CrewAvailability, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT crew_id, date, available, hours_booked, notes
		 FROM crew_availability WHERE crew_id = ? AND date = ?`,
		crewID, date.Format(dateLayout))
	a, err := scanAvailability(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *SQLiteAvailabilityRepo) ListByDate(ctx context.Context, date time.Time) ([]domain.CrewAvailability, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT crew_id, date, available, hours_booked, notes
		 FROM crew_availability WHERE date = ? ORDER BY crew_id`,
		date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing availability by date: %w", err)
	}
	defer rows.Close()
	return collectAvailability(rows)
}

func (r *SQLiteAvailabilityRepo) ListRange(ctx context.Context, crewID string, from, to time.Time) ([]domain.CrewAvailability, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT crew_id, date, available, hours_booked, notes
		 FROM crew_availability WHERE crew_id = ? AND date >= ? AND date <= ?
		 ORDER BY date`,
		crewID, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing availability range: %w", err)
	}
	defer rows.Close()
	return collectAvailability(rows)
}

func (r *SQLiteAvailabilityRepo) Delete(ctx context.Context, crewID string, date time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM crew_availability WHERE crew_id = ? AND date = ?`,
		crewID, date.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("deleting crew availability: %w", err)
	}
	return requireRow(res)
}

func scanAvailability(row rowScanner) (*domain.CrewAvailability, error) {
	var a domain.CrewAvailability
	var date string
	var available int
	if err := row.Scan(&a.CrewID, &date, &available, &a.HoursBooked, &a.Notes); err != nil {
		return nil, err
	}
	a.Date, _ = time.Parse(dateLayout, date)
	a.Available = intToBool(available)
	return &a, nil
}

func collectAvailability(rows *sql.Rows) ([]domain.CrewAvailability, error) {
	var records []domain.CrewAvailability
	for rows.Next() {
		a, err := scanAvailability(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning crew availability: %w", err)
		}
		records = append(records, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating crew availability: %w", err)
	}
	return records, nil
}
