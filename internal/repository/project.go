package repository

import (
	"context"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
)

// ProjectRepository defines persistence for portfolio projects. No business
// logic here; the service layer owns rewrite/reconcile choreography.
type ProjectRepository interface {
	// Create inserts a new project row and returns the stored record.
	Create(ctx context.Context, p *model.Project) (*model.Project, error)

	// Update replaces a project's mutable fields by ID and returns the stored record.
	Update(ctx context.Context, p *model.Project) (*model.Project, error)

	// FindByID returns a project by its ID.
	FindByID(ctx context.Context, id string) (*model.Project, error)

	// List returns a paginated list of projects and a total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Project], error)

	// Delete removes a project by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
