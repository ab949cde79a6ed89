package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/content"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/model"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/repository"
)

var ErrSlugRequired = errors.New("slug is required")

// PageService defines the use cases for page singletons. A page comes into
// existence on its first admin edit; later edits replace its content.
type PageService interface {
	Upsert(ctx context.Context, p *model.Page) (*model.Page, error)
	Get(ctx context.Context, slug string) (*model.Page, error)
	Delete(ctx context.Context, slug string) error
}

type pageService struct {
	repo       repository.PageRepository
	rewriter   *content.Rewriter
	reconciler *content.Reconciler
}

// NewPageService constructs a new PageService.
func NewPageService(repo repository.PageRepository, rewriter *content.Rewriter, reconciler *content.Reconciler) PageService {
	return &pageService{repo: repo, rewriter: rewriter, reconciler: reconciler}
}

func (s *pageService) Upsert(ctx context.Context, p *model.Page) (*model.Page, error) {
	if p.Slug == "" {
		return nil, ErrSlugRequired
	}

	// First edit creates the singleton; a missing row is not an error here.
	old, err := s.repo.FindBySlug(ctx, p.Slug)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	now := time.Now().UTC()
	if old != nil {
		p.ID = old.ID
		p.CreatedAt = old.CreatedAt
	} else {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	if err := s.rewriter.Rewrite(ctx, p); err != nil {
		return nil, fmt.Errorf("rewrite content: %w", err)
	}

	stored, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return nil, err
	}

	if old != nil {
		s.reconciler.ReconcileUpdate(ctx, content.AssetIDs(old), content.AssetIDs(stored))
	}
	return stored, nil
}

// Get returns a page by slug.
func (s *pageService) Get(ctx context.Context, slug string) (*model.Page, error) {
	if slug == "" {
		return nil, ErrSlugRequired
	}
	p, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *pageService) Delete(ctx context.Context, slug string) error {
	if slug == "" {
		return ErrSlugRequired
	}
	old, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, slug); err != nil {
		return err
	}
	s.reconciler.ReconcileDelete(ctx, content.AssetIDs(old))
	return nil
}
