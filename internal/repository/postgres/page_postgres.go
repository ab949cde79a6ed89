package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/repository"
)

// PagePostgres is a PostgreSQL implementation of repository.PageRepository.
// Pages are singletons keyed by slug; Upsert covers the create-on-first-edit
// case.
type PagePostgres struct {
	db *sql.DB
}

// NewPagePostgres creates a new PagePostgres repository.
func NewPagePostgres(db *sql.DB) *PagePostgres {
	return &PagePostgres{db: db}
}

var _ repository.PageRepository = (*PagePostgres)(nil)

// Upsert inserts the page, or replaces its content when the slug already exists.
func (r *PagePostgres) Upsert(ctx context.Context, p *model.Page) (*model.Page, error) {
	sections, err := json.Marshal(p.Sections)
	if err != nil {
		return nil, fmt.Errorf("marshal sections: %w", err)
	}
	members, err := json.Marshal(p.Members)
	if err != nil {
		return nil, fmt.Errorf("marshal members: %w", err)
	}
	const q = `
		INSERT INTO pages (id, slug, title, sections, members, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (slug) DO UPDATE
		SET title = EXCLUDED.title, sections = EXCLUDED.sections,
		    members = EXCLUDED.members, updated_at = EXCLUDED.updated_at
		RETURNING id, slug, title, sections, members, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Slug,
		p.Title,
		sections,
		members,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return scanPage(row)
}

// FindBySlug fetches a single page by its slug.
func (r *PagePostgres) FindBySlug(ctx context.Context, slug string) (*model.Page, error) {
	const q = `
		SELECT id, slug, title, sections, members, created_at, updated_at
		FROM pages
		WHERE slug = $1
	`
	return scanPage(r.db.QueryRowContext(ctx, q, slug))
}

// Delete removes a page by slug. It does not return an error if the row does not exist.
func (r *PagePostgres) Delete(ctx context.Context, slug string) error {
	const q = `DELETE FROM pages WHERE slug = $1`
	_, err := r.db.ExecContext(ctx, q, slug)
	return err
}

func scanPage(row rowScanner) (*model.Page, error) {
	var (
		p        model.Page
		sections []byte
		members  []byte
	)
	if err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Title,
		&sections,
		&members,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &p.Sections); err != nil {
			return nil, fmt.Errorf("unmarshal sections: %w", err)
		}
	}
	if len(members) > 0 {
		if err := json.Unmarshal(members, &p.Members); err != nil {
			return nil, fmt.Errorf("unmarshal members: %w", err)
		}
	}
	return &p, nil
}
