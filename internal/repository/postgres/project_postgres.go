package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/repository"
)

// ProjectPostgres is a PostgreSQL implementation of repository.ProjectRepository.
// It uses database/sql with parameterized queries and contains no business
// logic. The content tree (hero + sections) is stored as JSONB.
type ProjectPostgres struct {
	db *sql.DB
}

// NewProjectPostgres creates a new ProjectPostgres repository.
func NewProjectPostgres(db *sql.DB) *ProjectPostgres {
	return &ProjectPostgres{db: db}
}

var _ repository.ProjectRepository = (*ProjectPostgres)(nil)

// Create inserts a new project row and returns the stored record.
func (r *ProjectPostgres) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	hero, sections, err := marshalContent(p.Hero, p.Sections)
	if err != nil {
		return nil, err
	}
	const q = `
		INSERT INTO projects (id, name, category, description, hero, sections, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, category, description, hero, sections, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Name,
		p.Category,
		p.Description,
		hero,
		sections,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return scanProject(row)
}

// Update replaces a project's mutable fields by ID.
func (r *ProjectPostgres) Update(ctx context.Context, p *model.Project) (*model.Project, error) {
	hero, sections, err := marshalContent(p.Hero, p.Sections)
	if err != nil {
		return nil, err
	}
	const q = `
		UPDATE projects
		SET name = $2, category = $3, description = $4, hero = $5, sections = $6, updated_at = $7
		WHERE id = $1
		RETURNING id, name, category, description, hero, sections, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Name,
		p.Category,
		p.Description,
		hero,
		sections,
		p.UpdatedAt,
	)
	return scanProject(row)
}

// FindByID fetches a single project by its ID.
func (r *ProjectPostgres) FindByID(ctx context.Context, id string) (*model.Project, error) {
	const q = `
		SELECT id, name, category, description, hero, sections, created_at, updated_at
		FROM projects
		WHERE id = $1
	`
	return scanProject(r.db.QueryRowContext(ctx, q, id))
}

// List returns projects using LIMIT/OFFSET pagination and a total count.
func (r *ProjectPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Project], error) {
	const qCount = `SELECT COUNT(*) FROM projects`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, name, category, description, hero, sections, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Project]{Items: items, Total: total}, nil
}

// Delete removes a project by ID. It does not return an error if the row does not exist.
func (r *ProjectPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM projects WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*model.Project, error) {
	var (
		p        model.Project
		hero     []byte
		sections []byte
	)
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Description,
		&hero,
		&sections,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(hero) > 0 {
		if err := json.Unmarshal(hero, &p.Hero); err != nil {
			return nil, fmt.Errorf("unmarshal hero: %w", err)
		}
	}
	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &p.Sections); err != nil {
			return nil, fmt.Errorf("unmarshal sections: %w", err)
		}
	}
	return &p, nil
}

func marshalContent(hero *model.ImageRef, sections []model.Section) ([]byte, []byte, error) {
	var (
		heroJSON []byte
		err      error
	)
	if hero != nil {
		heroJSON, err = json.Marshal(hero)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal hero: %w", err)
		}
	}
	if sections == nil {
		sections = []model.Section{}
	}
	sectionsJSON, err := json.Marshal(sections)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal sections: %w", err)
	}
	return heroJSON, sectionsJSON, nil
}
