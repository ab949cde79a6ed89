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

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNameRequired = errors.New("name is required")
	ErrNotFound     = errors.New("record not found")
)

// ProjectListResult is the service-level DTO for paginated projects.
type ProjectListResult struct {
	Items []model.Project `json:"data"`
	Total int             `json:"total"`
}

// ProjectService defines the use cases for portfolio projects. Create and
// Update convert inline image payloads before persisting; Update and Delete
// clean up assets the committed mutation stopped referencing.
type ProjectService interface {
	Create(ctx context.Context, p *model.Project) (*model.Project, error)
	Update(ctx context.Context, p *model.Project) (*model.Project, error)
	Get(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context, limit, offset int) (*ProjectListResult, error)
	Delete(ctx context.Context, id string) error
}

// projectService is a concrete implementation of ProjectService.
type projectService struct {
	repo       repository.ProjectRepository
	rewriter   *content.Rewriter
	reconciler *content.Reconciler
}

// NewProjectService constructs a new ProjectService.
func NewProjectService(repo repository.ProjectRepository, rewriter *content.Rewriter, reconciler *content.Reconciler) ProjectService {
	return &projectService{repo: repo, rewriter: rewriter, reconciler: reconciler}
}

func (s *projectService) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	if p.Name == "" {
		return nil, ErrNameRequired
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	// Convert before the write so the persisted tree never carries inline payloads.
	if err := s.rewriter.Rewrite(ctx, p); err != nil {
		return nil, fmt.Errorf("rewrite content: %w", err)
	}
	return s.repo.Create(ctx, p)
}

func (s *projectService) Update(ctx context.Context, p *model.Project) (*model.Project, error) {
	if p.ID == "" {
		return nil, ErrIDRequired
	}
	if p.Name == "" {
		return nil, ErrNameRequired
	}
	old, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.rewriter.Rewrite(ctx, p); err != nil {
		return nil, fmt.Errorf("rewrite content: %w", err)
	}
	p.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	// The write is committed; cleanup runs after and never rolls it back.
	s.reconciler.ReconcileUpdate(ctx, content.AssetIDs(old), content.AssetIDs(stored))
	return stored, nil
}

// Get returns a project by ID.
func (s *projectService) Get(ctx context.Context, id string) (*model.Project, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns paginated projects without exposing repository types.
func (s *projectService) List(ctx context.Context, limit, offset int) (*ProjectListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ProjectListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	old, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.reconciler.ReconcileDelete(ctx, content.AssetIDs(old))
	return nil
}
