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

// ListService handles business logic for lists
type ListService struct {
	repo      repository.ListRepositoryInterface
	validator *validation.Validator
	notifier  notify.Publisher
	persistence
}

// NewListService creates a new list service
func NewListService(repo repository.ListRepositoryInterface, validator *validation.Validator, notifier notify.Publisher, timeout time.Duration) *ListService {
	return &ListService{
		repo:        repo,
		validator:   validator,
		notifier:    notifier,
		persistence: newPersistence(timeout),
	}
}

// CreateListRequest represents the request to create a list
type CreateListRequest struct {
	Name   string `json:"name" example:"Q4 Targets"`
	Type   string `json:"type" example:"Contact"`
	Access string `json:"access" example:"Private"`
}

// UpdateListRequest represents the request to rename a list or change its access. Type is immutable.
type UpdateListRequest struct {
	Name   string `json:"name" example:"Q1 Targets"`
	Access string `json:"access" example:"Public"`
}

// ListResponse represents the response for list operations
type ListResponse struct {
	ID          uuid.UUID         `json:"id"`
	WorkspaceID uuid.UUID         `json:"workspace_id"`
	OwnerID     uuid.UUID         `json:"owner_id"`
	Name        string            `json:"name"`
	Type        models.EntityKind `json:"type"`
	Access      models.ListAccess `json:"access"`
	MemberIDs   []string          `json:"member_ids"`
	MemberCount int               `json:"member_count"`
	Version     int64             `json:"version"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ListListResponse represents a paginated list of lists
type ListListResponse struct {
	Lists    []ListResponse `json:"lists"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CreateList creates an empty list owned by the session user
func (s *ListService) CreateList(ctx context.Context, session auth.Session, req *CreateListRequest) (*ListResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	if errs := s.validator.Validate(models.KindList, validation.Record{
		models.FieldName:   req.Name,
		models.FieldType:   req.Type,
		models.FieldAccess: req.Access,
	}); len(errs) > 0 {
		return nil, apperrors.NewValidationErrors(errs)
	}

	list := &models.List{
		Name:      strings.TrimSpace(req.Name),
		Type:      models.EntityKind(req.Type),
		Access:    models.ListAccess(req.Access),
		MemberIDs: []string{},
		Version:   1,
	}
	list.SetOwnership(session.WorkspaceID, session.UserID)

	wctx, cancel := s.write(ctx)
	defer cancel()
	if err := s.repo.Create(wctx, list); err != nil {
		return nil, apperrors.FromPersistence("create list", err, apperrors.ErrListNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"list_id": list.ID.String(),
		"type":    string(list.Type),
	}).Info("list created")

	return toListResponse(list), nil
}

// GetList retrieves a list visible to the session
func (s *ListService) GetList(ctx context.Context, session auth.Session, id uuid.UUID) (*ListResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	rctx, cancel := s.read(ctx)
	defer cancel()
	list, err := loadVisibleList(rctx, s.repo, session, id)
	if err != nil {
		return nil, err
	}
	return toListResponse(list), nil
}

// GetLists retrieves the lists visible to the session, optionally filtered by type
func (s *ListService) GetLists(ctx context.Context, session auth.Session, kind string, page, pageSize int) (*ListListResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if kind != "" && !models.EntityKind(kind).IsListable() {
		return nil, apperrors.NewValidationError(models.FieldType, "Type must be Company, Contact or Lead")
	}

	page, pageSize, limit, offset := normalizePage(page, pageSize)

	rctx, cancel := s.read(ctx)
	defer cancel()
	lists, total, err := s.repo.GetVisible(rctx, session.WorkspaceID, session.UserID, models.EntityKind(kind), limit, offset)
	if err != nil {
		return nil, apperrors.FromPersistence("list lists", err, apperrors.ErrListNotFound)
	}

	responses := make([]ListResponse, len(lists))
	for i := range lists {
		responses[i] = *toListResponse(&lists[i])
	}

	return &ListListResponse{
		Lists:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateList renames a list or changes its access. Only the owner may update.
func (s *ListService) UpdateList(ctx context.Context, session auth.Session, id uuid.UUID, req *UpdateListRequest) (*ListResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	wctx, cancel := s.write(ctx)
	defer cancel()

	list, err := loadVisibleList(wctx, s.repo, session, id)
	if err != nil {
		return nil, err
	}
	if !list.IsOwnedBy(session.UserID) {
		return nil, apperrors.ErrForbidden
	}

	if errs := s.validator.Validate(models.KindList, validation.Record{
		models.FieldName:   req.Name,
		models.FieldType:   string(list.Type),
		models.FieldAccess: req.Access,
	}); len(errs) > 0 {
		return nil, apperrors.NewValidationErrors(errs)
	}

	list.Name = strings.TrimSpace(req.Name)
	list.Access = models.ListAccess(req.Access)

	updated, err := s.repo.UpdateDetails(wctx, list)
	if err != nil {
		return nil, apperrors.FromPersistence("update list", err, apperrors.ErrListNotFound)
	}
	return toListResponse(updated), nil
}

// DeleteList deletes a list owned by the session user. Member entities are not touched.
func (s *ListService) DeleteList(ctx context.Context, session auth.Session, id uuid.UUID) error {
	if err := requireSession(session); err != nil {
		return err
	}

	wctx, cancel := s.write(ctx)
	defer cancel()

	list, err := loadVisibleList(wctx, s.repo, session, id)
	if err != nil {
		return err
	}
	if !list.IsOwnedBy(session.UserID) {
		return apperrors.ErrForbidden
	}

	if err := s.repo.Delete(wctx, session.WorkspaceID, id); err != nil {
		return apperrors.FromPersistence("delete list", err, apperrors.ErrListNotFound)
	}

	s.publish(ctx, s.notifier, notify.Event{
		Type:        notify.EventListDeleted,
		WorkspaceID: session.WorkspaceID,
		UserID:      session.UserID,
		ListID:      id.String(),
	})
	return nil
}

func toListResponse(list *models.List) *ListResponse {
	members := make([]string, len(list.MemberIDs))
	copy(members, list.MemberIDs)
	return &ListResponse{
		ID:          list.ID,
		WorkspaceID: list.WorkspaceID,
		OwnerID:     list.OwnerID,
		Name:        list.Name,
		Type:        list.Type,
		Access:      list.Access,
		MemberIDs:   members,
		MemberCount: len(members),
		Version:     list.Version,
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}
}
