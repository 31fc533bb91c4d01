package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
)

const projectColumns = `id, name, address, progress, status, due_date, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db *sql.DB
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db *sql.DB) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Address,
		p.Progress,
		string(p.Status),
		nullableTimeToString(p.DueDate, dateLayout),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	for i := range p.Materials {
		if err := r.insertMaterial(ctx, &p.Materials[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) insertMaterial(ctx context.Context, m *domain.Material) error {
	query := `INSERT INTO materials (id, project_id, name, status) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, m.ID, m.ProjectID, m.Name, string(m.Status)); err != nil {
		return fmt.Errorf("inserting material: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanProject(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadMaterials(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context, includeCompleted bool) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if !includeCompleted {
		query += ` WHERE status != 'completed'`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	for _, p := range projects {
		if err := r.loadMaterials(ctx, p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, address = ?, progress = ?, status = ?,
		due_date = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Address,
		p.Progress,
		string(p.Status),
		nullableTimeToString(p.DueDate, dateLayout),
		time.Now().UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteProjectRepo) SetMaterialStatus(ctx context.Context, materialID string, status domain.DeliveryStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE materials SET status = ? WHERE id = ?`, string(status), materialID)
	if err != nil {
		return fmt.Errorf("updating material status: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteProjectRepo) loadMaterials(ctx context.Context, p *domain.Project) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, name, status FROM materials WHERE project_id = ? ORDER BY name`, p.ID)
	if err != nil {
		return fmt.Errorf("listing materials: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m domain.Material
		var status string
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Name, &status); err != nil {
			return fmt.Errorf("scanning material: %w", err)
		}
		m.Status = domain.DeliveryStatus(status)
		p.Materials = append(p.Materials, m)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var status string
	var dueDate sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(&p.ID, &p.Name, &p.Address, &p.Progress, &status, &dueDate, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	p.Status = domain.ProjectStatus(status)
	p.DueDate = parseNullableTime(dueDate, dateLayout)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &p, nil
}

// requireRow converts a zero-row write into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
