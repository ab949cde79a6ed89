package repository

import (
	"context"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
)

// PageRepository defines persistence for page singletons keyed by slug.
type PageRepository interface {
	// Upsert inserts the page on first edit or replaces its content on later
	// edits, returning the stored record.
	Upsert(ctx context.Context, p *model.Page) (*model.Page, error)

	// FindBySlug returns a page by its slug.
	FindBySlug(ctx context.Context, slug string) (*model.Page, error)

	// Delete removes a page by slug. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, slug string) error
}
