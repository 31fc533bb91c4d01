package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
)

const blockerColumns = `id, project_id, type, description, blocking_phases, priority,
		created_at, resolved_at, resolved_by`

// SQLiteBlockerRepo implements BlockerRepo using a SQLite database.
type SQLiteBlockerRepo struct {
	db *sql.DB
}

// NewSQLiteBlockerRepo creates a new SQLiteBlockerRepo.
func NewSQLiteBlockerRepo(db *sql.DB) *SQLiteBlockerRepo {
	return &SQLiteBlockerRepo{db: db}
}

func (r *SQLiteBlockerRepo) Create(ctx context.Context, b *domain.ProjectBlocker) error {
	query := `INSERT INTO project_blockers (` + blockerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.ProjectID,
		string(b.Type),
		b.Description,
		joinPhases(b.BlockingPhases),
		string(b.Priority),
		b.CreatedAt.Format(time.RFC3339),
		nullableTimeToString(b.ResolvedAt, time.RFC3339),
		b.ResolvedBy,
	)
	if err != nil {
		return fmt.Errorf("inserting blocker: %w", err)
	}
	return nil
}

func (r *SQLiteBlockerRepo) GetByID(ctx context.Context, id string) (*domain.ProjectBlocker, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+blockerColumns+` FROM project_blockers WHERE id = ?`, id)
	return scanBlocker(row)
}

func (r *SQLiteBlockerRepo) ListByProject(ctx context.Context, projectID string, unresolvedOnly bool) ([]domain.ProjectBlocker, error) {
	query := `SELECT ` + blockerColumns + ` FROM project_blockers WHERE project_id = ?`
	if unresolvedOnly {
		query += ` AND resolved_at IS NULL`
	}
	query += ` ORDER BY created_at`
	return r.queryBlockers(ctx, query, projectID)
}

func (r *SQLiteBlockerRepo) ListUnresolved(ctx context.Context) ([]domain.ProjectBlocker, error) {
	return r.queryBlockers(ctx,
		`SELECT `+blockerColumns+` FROM project_blockers
		 WHERE resolved_at IS NULL ORDER BY created_at`)
}

func (r *SQLiteBlockerRepo) Resolve(ctx context.Context, id, resolvedBy string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE project_blockers SET resolved_at = ?, resolved_by = ?
		 WHERE id = ? AND resolved_at IS NULL`,
		at.Format(time.RFC3339), resolvedBy, id)
	if err != nil {
		return fmt.Errorf("resolving blocker: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteBlockerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM project_blockers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting blocker: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteBlockerRepo) queryBlockers(ctx context.Context, query string, args ...interface{}) ([]domain.ProjectBlocker, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing blockers: %w", err)
	}
	defer rows.Close()

	var blockers []domain.ProjectBlocker
	for rows.Next() {
		b, err := scanBlocker(rows)
		if err != nil {
			return nil, err
		}
		blockers = append(blockers, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blockers: %w", err)
	}
	return blockers, nil
}

func scanBlocker(row rowScanner) (*domain.ProjectBlocker, error) {
	var b domain.ProjectBlocker
	var typ, phases, priority, createdAt string
	var resolvedAt sql.NullString
	err := row.Scan(&b.ID, &b.ProjectID, &typ, &b.Description, &phases, &priority,
		&createdAt, &resolvedAt, &b.ResolvedBy)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning blocker: %w", err)
	}
	b.Type = domain.BlockerType(typ)
	b.BlockingPhases = splitPhases(phases)
	b.Priority = domain.BlockerPriority(priority)
	b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	b.ResolvedAt = parseNullableTime(resolvedAt, time.RFC3339)
	return &b, nil
}
