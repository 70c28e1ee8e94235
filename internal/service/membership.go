package service

import (
	"context"
	"time"

	"gtm-crm-backend/internal/auth"
	"gtm-crm-backend/internal/database/models"
	apperrors "gtm-crm-backend/internal/errors"
	"gtm-crm-backend/internal/logger"
	"gtm-crm-backend/internal/metrics"
	"gtm-crm-backend/internal/notify"
	"gtm-crm-backend/internal/repository"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
)

const (
	opToggle        = "toggle"
	opInvalid       = "invalid"
	membershipRetry = 50 * time.Millisecond
)

// MembershipService adds and removes entities on lists
type MembershipService struct {
	lists      repository.ListRepositoryInterface
	entities   repository.EntityRepositories
	notifier   notify.Publisher
	locks      *listLocks
	retryDelay time.Duration
	persistence
}

// NewMembershipService creates a new membership service
func NewMembershipService(lists repository.ListRepositoryInterface, entities repository.EntityRepositories, notifier notify.Publisher, timeout time.Duration) *MembershipService {
	return &MembershipService{
		lists:       lists,
		entities:    entities,
		notifier:    notifier,
		locks:       newListLocks(),
		retryDelay:  membershipRetry,
		persistence: newPersistence(timeout),
	}
}

// WithRetryDelay sets the pause before the single retry of a conflicting write
func (s *MembershipService) WithRetryDelay(delay time.Duration) *MembershipService {
	s.retryDelay = delay
	return s
}

// MembershipRequest represents an explicit add or remove on a list
type MembershipRequest struct {
	EntityID   uuid.UUID           `json:"entity_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	EntityType models.EntityKind   `json:"entity_type" binding:"required" example:"Contact"`
	Op         models.MembershipOp `json:"op" binding:"required" example:"add"`
}

// ToggleMembershipRequest adds the entity when absent and removes it when present
type ToggleMembershipRequest struct {
	EntityID   uuid.UUID         `json:"entity_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	EntityType models.EntityKind `json:"entity_type" binding:"required" example:"Contact"`
}

// MembershipResponse represents the list after a membership operation
type MembershipResponse struct {
	List    ListResponse        `json:"list"`
	Op      models.MembershipOp `json:"op"`
	Changed bool                `json:"changed"`
}

// UpdateMembership applies an explicit add or remove. Both are idempotent: adding a
// present member or removing an absent one returns the unchanged list.
func (s *MembershipService) UpdateMembership(ctx context.Context, session auth.Session, listID uuid.UUID, req *MembershipRequest) (*MembershipResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if !req.Op.IsValid() {
		metrics.MembershipOps.WithLabelValues(opInvalid, metrics.ResultInvalid).Inc()
		return nil, apperrors.NewValidationError("op", "Op must be add or remove")
	}
	if err := checkEntityType(req.EntityType); err != nil {
		metrics.MembershipOps.WithLabelValues(string(req.Op), metrics.ResultInvalid).Inc()
		return nil, err
	}
	return s.apply(ctx, session, listID, req.EntityID, req.EntityType, req.Op, string(req.Op))
}

// ToggleMembership removes the entity when it is a member and adds it otherwise.
// The choice is made under the list lock from the stored membership. Only the add
// branch checks that the entity still exists.
func (s *MembershipService) ToggleMembership(ctx context.Context, session auth.Session, listID uuid.UUID, req *ToggleMembershipRequest) (*MembershipResponse, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if err := checkEntityType(req.EntityType); err != nil {
		metrics.MembershipOps.WithLabelValues(opToggle, metrics.ResultInvalid).Inc()
		return nil, err
	}
	return s.apply(ctx, session, listID, req.EntityID, req.EntityType, "", opToggle)
}

// AddMember adds an entity to a list
func (s *MembershipService) AddMember(ctx context.Context, session auth.Session, listID, entityID uuid.UUID, kind models.EntityKind) (*MembershipResponse, error) {
	return s.UpdateMembership(ctx, session, listID, &MembershipRequest{EntityID: entityID, EntityType: kind, Op: models.MembershipAdd})
}

// RemoveMember removes an entity from a list. The entity is not looked up, so
// references to deleted records can still be removed.
func (s *MembershipService) RemoveMember(ctx context.Context, session auth.Session, listID, entityID uuid.UUID, kind models.EntityKind) (*MembershipResponse, error) {
	return s.UpdateMembership(ctx, session, listID, &MembershipRequest{EntityID: entityID, EntityType: kind, Op: models.MembershipRemove})
}

func checkEntityType(kind models.EntityKind) error {
	if !kind.IsValid() {
		return apperrors.NewValidationError("entity_type", "Unknown entity type")
	}
	return nil
}

// apply runs one membership mutation while holding the list lock. An empty op means
// toggle. A version conflict is retried once against a fresh read; explicit operations
// are also retried once after a transient failure.
func (s *MembershipService) apply(ctx context.Context, session auth.Session, listID, entityID uuid.UUID, kind models.EntityKind, op models.MembershipOp, label string) (*MembershipResponse, error) {
	unlock := s.locks.Lock(listID)
	defer unlock()

	idempotent := op != ""
	var (
		result    *MembershipResponse
		firstRead int64
		lostReply bool
	)
	err := retry.Do(
		func() error {
			wctx, cancel := s.write(ctx)
			defer cancel()
			res, readVersion, err := s.attempt(wctx, session, listID, entityID, kind, op)
			if firstRead == 0 {
				firstRead = readVersion
			}
			if err != nil {
				lostReply = apperrors.IsTransient(err)
				return err
			}
			result = res
			return nil
		},
		retry.Attempts(2),
		retry.Delay(s.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return apperrors.IsConflict(err) || (idempotent && apperrors.IsTransient(err))
		}),
		retry.OnRetry(func(n uint, err error) {
			logger.WithContext(ctx).WithError(err).WithField("list_id", listID.String()).Warn("retrying membership update")
		}),
	)

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"list_id":   listID.String(),
		"entity_id": entityID.String(),
		"op":        label,
	})

	if err != nil {
		metrics.MembershipOps.WithLabelValues(label, membershipResult(err)).Inc()
		log.WithError(err).Warn("membership update failed")
		s.publish(ctx, s.notifier, notify.Event{
			Type:        notify.EventListMembershipRejected,
			WorkspaceID: session.WorkspaceID,
			UserID:      session.UserID,
			EntityKind:  string(kind),
			EntityID:    entityID.String(),
			ListID:      listID.String(),
			Op:          label,
			Error:       err.Error(),
		})
		return nil, err
	}

	// A write can commit after its reply is lost. The retry then finds the change
	// already applied at a newer version; count it as this call's change. A concurrent
	// writer making the same change in that window is indistinguishable.
	if !result.Changed && lostReply && firstRead > 0 && result.List.Version > firstRead {
		result.Changed = true
	}

	if !result.Changed {
		metrics.MembershipOps.WithLabelValues(label, metrics.ResultNoop).Inc()
		return result, nil
	}

	metrics.MembershipOps.WithLabelValues(label, metrics.ResultOK).Inc()
	log.WithField("version", result.List.Version).Info("membership updated")
	s.publish(ctx, s.notifier, notify.Event{
		Type:        notify.EventListMembershipUpdated,
		WorkspaceID: session.WorkspaceID,
		UserID:      session.UserID,
		EntityKind:  string(kind),
		EntityID:    entityID.String(),
		ListID:      listID.String(),
		Op:          string(result.Op),
		Version:     result.List.Version,
	})
	return result, nil
}

// attempt performs one read-modify-write and also returns the version it read, or 0
// when the list could not be read
func (s *MembershipService) attempt(ctx context.Context, session auth.Session, listID, entityID uuid.UUID, kind models.EntityKind, op models.MembershipOp) (*MembershipResponse, int64, error) {
	list, err := loadVisibleList(ctx, s.lists, session, listID)
	if err != nil {
		return nil, 0, err
	}
	if kind != list.Type {
		return nil, list.Version, apperrors.NewTypeMismatchError(string(list.Type), string(kind))
	}

	present := list.HasMember(entityID)
	if op == "" {
		op = models.MembershipAdd
		if present {
			op = models.MembershipRemove
		}
	}

	unchanged := &MembershipResponse{List: *toListResponse(list), Op: op}

	var members []string
	switch op {
	case models.MembershipAdd:
		if present {
			return unchanged, list.Version, nil
		}
		if err := s.ensureEntity(ctx, session.WorkspaceID, list.Type, entityID); err != nil {
			return nil, list.Version, err
		}
		members = list.WithMember(entityID)
	case models.MembershipRemove:
		// no entity lookup, so orphaned references stay removable
		if !present {
			return unchanged, list.Version, nil
		}
		members = list.WithoutMember(entityID)
	default:
		return nil, list.Version, apperrors.ErrInvalidMembershipOp
	}

	updated, err := s.lists.UpdateMembers(ctx, list.ID, members, list.Version)
	if err != nil {
		return nil, list.Version, apperrors.FromPersistence("update list members", err, apperrors.ErrListNotFound)
	}
	return &MembershipResponse{List: *toListResponse(updated), Op: op, Changed: true}, list.Version, nil
}

// ensureEntity checks the entity exists in the list's workspace
func (s *MembershipService) ensureEntity(ctx context.Context, workspaceID uuid.UUID, kind models.EntityKind, entityID uuid.UUID) error {
	repo, ok := s.entities[kind]
	if !ok {
		return apperrors.ErrListNotListable
	}
	if _, err := repo.GetByID(ctx, workspaceID, entityID); err != nil {
		return apperrors.FromPersistence("load entity", err, notFoundFor(kind))
	}
	return nil
}

func membershipResult(err error) string {
	switch {
	case apperrors.IsConflict(err):
		return metrics.ResultConflict
	case apperrors.IsValidation(err), apperrors.IsTypeMismatch(err), apperrors.IsNotFound(err):
		return metrics.ResultInvalid
	}
	return metrics.ResultError
}
