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
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/storage"
)

var (
	ErrEmailRequired  = errors.New("email is required")
	ErrResumeRequired = errors.New("resume is required")
)

const careersFolder = "vds/careers"

// ApplicationListResult is the service-level DTO for paginated applications.
type ApplicationListResult struct {
	Items []model.JobApplication `json:"data"`
	Total int                    `json:"total"`
}

// ApplicationService defines the use cases for job applications submitted
// through the public careers form. The résumé arrives as an inline data-URI
// PDF and is stored as an asset before the record is persisted.
type ApplicationService interface {
	Submit(ctx context.Context, a *model.JobApplication, resume string) (*model.JobApplication, error)
	Get(ctx context.Context, id string) (*model.JobApplication, error)
	List(ctx context.Context, limit, offset int) (*ApplicationListResult, error)
	Delete(ctx context.Context, id string) error
}

type applicationService struct {
	repo       repository.ApplicationRepository
	store      storage.Storage
	validator  *content.Validator
	reconciler *content.Reconciler
}

// NewApplicationService constructs a new ApplicationService. validator must
// carry the résumé policy, not the general image one.
func NewApplicationService(repo repository.ApplicationRepository, store storage.Storage, validator *content.Validator, reconciler *content.Reconciler) ApplicationService {
	return &applicationService{repo: repo, store: store, validator: validator, reconciler: reconciler}
}

func (s *applicationService) Submit(ctx context.Context, a *model.JobApplication, resume string) (*model.JobApplication, error) {
	if a.Name == "" {
		return nil, ErrNameRequired
	}
	if a.Email == "" {
		return nil, ErrEmailRequired
	}
	if resume == "" {
		return nil, ErrResumeRequired
	}

	inline, ok, err := s.validator.Validate(resume)
	if err != nil {
		return nil, &content.FieldError{Path: "resume", Err: err}
	}
	if !ok {
		return nil, &content.FieldError{Path: "resume", Err: fmt.Errorf("%w: expected an inline payload", content.ErrMalformedPayload)}
	}
	data, err := inline.Decode()
	if err != nil {
		return nil, &content.FieldError{Path: "resume", Err: err}
	}

	asset, err := s.store.Upload(ctx, data, inline.Format, careersFolder)
	if err != nil {
		return nil, &content.FieldError{Path: "resume", Err: err}
	}

	a.ID = uuid.NewString()
	a.ResumeURL = asset.URL
	a.ResumeAssetID = asset.AssetID
	a.CreatedAt = time.Now().UTC()

	stored, err := s.repo.Create(ctx, a)
	if err != nil {
		// Rollback: delete the résumé from storage
		if delErr := s.store.Delete(ctx, asset.AssetID); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

// Get returns an application by ID.
func (s *applicationService) Get(ctx context.Context, id string) (*model.JobApplication, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// List returns paginated applications without exposing repository types.
func (s *applicationService) List(ctx context.Context, limit, offset int) (*ApplicationListResult, error) {
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
	return &ApplicationListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *applicationService) Delete(ctx context.Context, id string) error {
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
	if old.ResumeAssetID != "" {
		s.reconciler.ReconcileDelete(ctx, []string{old.ResumeAssetID})
	}
	return nil
}
