package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harlenmason/crewplan/internal/domain"
)

const crewColumns = `id, name, color, home_base, max_daily_capacity, created_at, updated_at`

// SQLiteCrewRepo implements CrewRepo using a SQLite database.
type SQLiteCrewRepo struct {
	db *sql.DB
}

// NewSQLiteCrewRepo creates a new SQLiteCrewRepo.
func NewSQLiteCrewRepo(db *sql.DB) *SQLiteCrewRepo {
	return &SQLiteCrewRepo{db: db}
}

func (r *SQLiteCrewRepo) Create(ctx context.Context, c *domain.Crew) error {
	query := `INSERT INTO crews (` + crewColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Color,
		c.HomeBase,
		c.MaxDailyCapacity,
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting crew: %w", err)
	}
	for i := range c.Members {
		if err := r.insertMember(ctx, &c.Members[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteCrewRepo) insertMember(ctx context.Context, m *domain.CrewMember) error {
	query := `INSERT INTO crew_members (id, crew_id, name, role, certifications, hourly_rate)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.CrewID, m.Name, m.Role, joinStrings(m.Certifications), m.HourlyRate)
	if err != nil {
		return fmt.Errorf("inserting crew member: %w", err)
	}
	return nil
}

func (r *SQLiteCrewRepo) GetByID(ctx context.Context, id string) (*domain.Crew, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+crewColumns+` FROM crews WHERE id = ?`, id)
	c, err := scanCrew(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadMembers(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCrewRepo) List(ctx context.Context) ([]*domain.Crew, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+crewColumns+` FROM crews ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing crews: %w", err)
	}
	defer rows.Close()

	var crews []*domain.Crew
	for rows.Next() {
		c, err := scanCrew(rows)
		if err != nil {
			return nil, err
		}
		crews = append(crews, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating crews: %w", err)
	}
	for _, c := range crews {
		if err := r.loadMembers(ctx, c); err != nil {
			return nil, err
		}
	}
	return crews, nil
}

func (r *SQLiteCrewRepo) Update(ctx context.Context, c *domain.Crew) error {
	query := `UPDATE crews SET name = ?, color = ?, home_base = ?, max_daily_capacity = ?,
		updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Name, c.Color, c.HomeBase, c.MaxDailyCapacity,
		time.Now().UTC().Format(time.RFC3339), c.ID)
	if err != nil {
		return fmt.Errorf("updating crew: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteCrewRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM crews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting crew: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteCrewRepo) loadMembers(ctx context.Context, c *domain.Crew) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, crew_id, name, role, certifications, hourly_rate
		 FROM crew_members WHERE crew_id = ? ORDER BY name`, c.ID)
	if err != nil {
		return fmt.Errorf("listing crew members: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m domain.CrewMember
		var certs string
		if err := rows.Scan(&m.ID, &m.CrewID, &m.Name, &m.Role, &certs, &m.HourlyRate); err != nil {
			return fmt.Errorf("scanning crew member: %w", err)
		}
		m.Certifications = splitStrings(certs)
		c.Members = append(c.Members, m)
	}
	return rows.Err()
}

func scanCrew(row rowScanner) (*domain.Crew, error) {
	var c domain.Crew
	var createdAt, updatedAt string
	err := row.Scan(&c.ID, &c.Name, &c.Color, &c.HomeBase, &c.MaxDailyCapacity, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning crew: %w", err)
	}
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	c.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &c, nil
}
