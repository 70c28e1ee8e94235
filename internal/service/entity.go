package service

import (
	"context"
	"strings"
	"time"

	"gtm-crm-backend/internal/auth"
	"gtm-crm-backend/internal/database/models"
	apperrors "gtm-crm-backend/internal/errors"
	"gtm-crm-backend/internal/logger"
	"gtm-crm-backend/internal/notify"
	"gtm-crm-backend/internal/repository"
	"gtm-crm-backend/internal/validation"

	"github.com/google/uuid"
)

// EntityService handles business logic for companies, contacts, leads and deals
type EntityService struct {
	repos     repository.EntityRepositories
	validator *validation.Validator
	notifier  notify.Publisher
	persistence
}

// NewEntityService creates a new entity service
func NewEntityService(repos repository.EntityRepositories, validator *validation.Validator, notifier notify.Publisher, timeout time.Duration) *EntityService {
	return &EntityService{
		repos:       repos,
		validator:   validator,
		notifier:    notifier,
		persistence: newPersistence(timeout),
	}
}

// EntityResponse represents a CRM record
type EntityResponse struct {
	ID          uuid.UUID         `json:"id"`
	Kind        models.EntityKind `json:"kind"`
	WorkspaceID uuid.UUID         `json:"workspace_id"`
	OwnerID     uuid.UUID         `json:"owner_id"`
	Fields      map[string]string `json:"fields"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// EntityListResponse represents a paginated list of records
type EntityListResponse struct {
	Entities []EntityResponse `json:"entities"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// EntityRequest carries form values for creating or replacing a record
type EntityRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}

// CreateEntity validates and stores a new record owned by the session user
func (s *EntityService) CreateEntity(ctx context.Context, session auth.Session, kind models.EntityKind, values map[string]string) (*EntityResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	repo, err := s.repoFor(kind)
	if err != nil {
		return nil, err
	}
	if errs := s.validator.Validate(kind, values); len(errs) > 0 {
		return nil, apperrors.NewValidationErrors(errs)
	}

	entity, _ := models.NewEntity(kind)
	entity.Apply(trimValues(values))
	entity.SetOwnership(session.WorkspaceID, session.UserID)

	wctx, cancel := s.write(ctx)
	defer cancel()
	if err := repo.Create(wctx, entity); err != nil {
		return nil, apperrors.FromPersistence("create "+strings.ToLower(string(kind)), err, notFoundFor(kind))
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"kind":      string(kind),
		"entity_id": entity.GetID().String(),
	}).Info("entity created")

	s.publish(ctx, s.notifier, notify.Event{
		Type:        notify.EventEntityCreated,
		WorkspaceID: session.WorkspaceID,
		UserID:      session.UserID,
		EntityKind:  string(kind),
		EntityID:    entity.GetID().String(),
	})

	return toEntityResponse(entity), nil
}

// GetEntity retrieves a record from the session's workspace
func (s *EntityService) GetEntity(ctx context.Context, session auth.Session, kind models.EntityKind, id uuid.UUID) (*EntityResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	repo, err := s.repoFor(kind)
	if err != nil {
		return nil, err
	}

	rctx, cancel := s.read(ctx)
	defer cancel()
	entity, err := repo.GetByID(rctx, session.WorkspaceID, id)
	if err != nil {
		return nil, apperrors.FromPersistence("get "+strings.ToLower(string(kind)), err, notFoundFor(kind))
	}
	return toEntityResponse(entity), nil
}

// ListEntities retrieves records of one kind, optionally filtered by name
func (s *EntityService) ListEntities(ctx context.Context, session auth.Session, kind models.EntityKind, query string, page, pageSize int) (*EntityListResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	repo, err := s.repoFor(kind)
	if err != nil {
		return nil, err
	}

	page, pageSize, limit, offset := normalizePage(page, pageSize)

	rctx, cancel := s.read(ctx)
	defer cancel()
	entities, total, err := repo.GetByWorkspace(rctx, session.WorkspaceID, strings.TrimSpace(query), limit, offset)
	if err != nil {
		return nil, apperrors.FromPersistence("list "+strings.ToLower(string(kind)), err, notFoundFor(kind))
	}

	responses := make([]EntityResponse, len(entities))
	for i, entity := range entities {
		responses[i] = *toEntityResponse(entity)
	}
	return &EntityListResponse{
		Entities: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateEntity replaces a record's fields. Only the owner may edit a record.
func (s *EntityService) UpdateEntity(ctx context.Context, session auth.Session, kind models.EntityKind, id uuid.UUID, values map[string]string) (*EntityResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	repo, err := s.repoFor(kind)
	if err != nil {
		return nil, err
	}
	if errs := s.validator.Validate(kind, values); len(errs) > 0 {
		return nil, apperrors.NewValidationErrors(errs)
	}

	wctx, cancel := s.write(ctx)
	defer cancel()

	entity, err := repo.GetByID(wctx, session.WorkspaceID, id)
	if err != nil {
		return nil, apperrors.FromPersistence("get "+strings.ToLower(string(kind)), err, notFoundFor(kind))
	}
	if entity.GetOwnerID() != session.UserID {
		return nil, apperrors.ErrForbidden
	}

	entity.Apply(trimValues(values))
	if err := repo.Update(wctx, entity); err != nil {
		return nil, apperrors.FromPersistence("update "+strings.ToLower(string(kind)), err, notFoundFor(kind))
	}
	return toEntityResponse(entity), nil
}

// DeleteEntity removes a record owned by the session user. Lists that reference it
// keep the ID and skip it when resolving members.
func (s *EntityService) DeleteEntity(ctx context.Context, session auth.Session, kind models.EntityKind, id uuid.UUID) error {
	if err := requireSession(session); err != nil {
		return err
	}
	repo, err := s.repoFor(kind)
	if err != nil {
		return err
	}

	wctx, cancel := s.write(ctx)
	defer cancel()

	entity, err := repo.GetByID(wctx, session.WorkspaceID, id)
	if err != nil {
		return apperrors.FromPersistence("get "+strings.ToLower(string(kind)), err, notFoundFor(kind))
	}
	if entity.GetOwnerID() != session.UserID {
		return apperrors.ErrForbidden
	}

	if err := repo.Delete(wctx, session.WorkspaceID, id); err != nil {
		return apperrors.FromPersistence("delete "+strings.ToLower(string(kind)), err, notFoundFor(kind))
	}
	return nil
}

func (s *EntityService) repoFor(kind models.EntityKind) (repository.EntityRepositoryInterface, error) {
	repo, ok := s.repos[kind]
	if !ok {
		return nil, apperrors.ErrUnknownEntityKind
	}
	return repo, nil
}

func trimValues(values map[string]string) map[string]string {
	trimmed := make(map[string]string, len(values))
	for k, v := range values {
		trimmed[k] = strings.TrimSpace(v)
	}
	return trimmed
}

func toEntityResponse(entity models.Entity) *EntityResponse {
	created, updated := entity.GetTimestamps()
	return &EntityResponse{
		ID:          entity.GetID(),
		Kind:        entity.Kind(),
		WorkspaceID: entity.GetWorkspaceID(),
		OwnerID:     entity.GetOwnerID(),
		Fields:      entity.Fields(),
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}
