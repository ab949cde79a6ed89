package repository

import (
	"context"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
)

// ApplicationRepository defines persistence for job applications.
type ApplicationRepository interface {
	// Create inserts a new application row and returns the stored record.
	Create(ctx context.Context, a *model.JobApplication) (*model.JobApplication, error)

	// FindByID returns an application by its ID.
	FindByID(ctx context.Context, id string) (*model.JobApplication, error)

	// List returns a paginated list of applications and a total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.JobApplication], error)

	// Delete removes an application by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
