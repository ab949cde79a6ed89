package postgres

import (
	"context"
	"database/sql"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/repository"
)

// ApplicationPostgres is a PostgreSQL implementation of repository.ApplicationRepository.
type ApplicationPostgres struct {
	db *sql.DB
}

// NewApplicationPostgres creates a new ApplicationPostgres repository.
func NewApplicationPostgres(db *sql.DB) *ApplicationPostgres {
	return &ApplicationPostgres{db: db}
}

var _ repository.ApplicationRepository = (*ApplicationPostgres)(nil)

// Create inserts a new application row and returns the stored record.
func (r *ApplicationPostgres) Create(ctx context.Context, a *model.JobApplication) (*model.JobApplication, error) {
	const q = `
		INSERT INTO job_applications (id, name, email, role, message, resume_url, resume_asset_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, email, role, message, resume_url, resume_asset_id, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.Name,
		a.Email,
		a.Role,
		a.Message,
		a.ResumeURL,
		a.ResumeAssetID,
		a.CreatedAt,
	)
	return scanApplication(row)
}

// FindByID fetches a single application by its ID.
func (r *ApplicationPostgres) FindByID(ctx context.Context, id string) (*model.JobApplication, error) {
	const q = `
		SELECT id, name, email, role, message, resume_url, resume_asset_id, created_at
		FROM job_applications
		WHERE id = $1
	`
	return scanApplication(r.db.QueryRowContext(ctx, q, id))
}

// List returns applications using LIMIT/OFFSET pagination and a total count.
func (r *ApplicationPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.JobApplication], error) {
	const qCount = `SELECT COUNT(*) FROM job_applications`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, name, email, role, message, resume_url, resume_asset_id, created_at
		FROM job_applications
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.JobApplication, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.JobApplication]{Items: items, Total: total}, nil
}

// Delete removes an application by ID. It does not return an error if the row does not exist.
func (r *ApplicationPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM job_applications WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

func scanApplication(row rowScanner) (*model.JobApplication, error) {
	var a model.JobApplication
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.Role,
		&a.Message,
		&a.ResumeURL,
		&a.ResumeAssetID,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
