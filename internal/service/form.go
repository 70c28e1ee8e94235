package service

import (
	"context"
	"errors"
	"fmt"

	"gtm-crm-backend/internal/auth"
	"gtm-crm-backend/internal/database/models"
	apperrors "gtm-crm-backend/internal/errors"
	"gtm-crm-backend/internal/form"
	"gtm-crm-backend/internal/logger"
	"gtm-crm-backend/internal/metrics"
	"gtm-crm-backend/internal/notify"
	"gtm-crm-backend/internal/validation"

	"github.com/google/uuid"
)

const (
	msgSaveUnavailable = "Could not reach the server. Your changes were kept, try again."
	msgSaveFailed      = "Could not save the record. Your changes were kept."
	msgListSyncFailed  = "Created, but could not be added to the list. Retry add."
	msgListMissing     = "The list no longer exists"
	msgListWrongType   = "This list holds %s records"
)

// FormService runs create forms: validate, persist, then optionally add the new
// record to the list the form was opened from
type FormService struct {
	entities   EntityServiceInterface
	lists      ListServiceInterface
	membership MembershipServiceInterface
	validator  *validation.Validator
	notifier   notify.Publisher
	persistence
}

// NewFormService creates a new form service
func NewFormService(entities EntityServiceInterface, lists ListServiceInterface, membership MembershipServiceInterface, validator *validation.Validator, notifier notify.Publisher) *FormService {
	return &FormService{
		entities:    entities,
		lists:       lists,
		membership:  membership,
		validator:   validator,
		notifier:    notifier,
		persistence: newPersistence(0),
	}
}

// SubmitFormRequest represents a submitted create form
type SubmitFormRequest struct {
	Kind   models.EntityKind `json:"-"`
	Values map[string]string `json:"values"`
	ListID *uuid.UUID        `json:"list_id,omitempty"`
}

// SubmitFormResponse carries the form state after submission and whatever was created
type SubmitFormResponse struct {
	State      form.State          `json:"state"`
	Entity     *EntityResponse     `json:"entity,omitempty"`
	List       *ListResponse       `json:"list,omitempty"`
	Membership *MembershipResponse `json:"membership,omitempty"`
}

// Submit validates and persists a create form. Invalid input never reaches storage.
// When the record is created but the list add fails, the response holds the created
// record and the error is a *errors.ListSyncError.
func (s *FormService) Submit(ctx context.Context, session auth.Session, req *SubmitFormRequest) (*SubmitFormResponse, error) {
	listID := ""
	if req.ListID != nil {
		listID = req.ListID.String()
	}

	state := form.New(req.Kind, listID)
	for field, value := range req.Values {
		state = form.Reduce(state, form.FieldChanged{Field: field, Value: value})
	}
	resp := &SubmitFormResponse{State: state}

	if err := requireSession(session); err != nil {
		return resp, err
	}

	if errs := s.check(req.Kind, req.ListID != nil, resp.State.Values); len(errs) > 0 {
		metrics.FormSubmissions.WithLabelValues(string(req.Kind), metrics.ResultInvalid).Inc()
		resp.State = form.Reduce(resp.State, form.ValidationFailed{Errors: errs})
		return resp, apperrors.NewValidationErrors(errs)
	}

	resp.State = form.Reduce(resp.State, form.SubmitStarted{})

	// A list that cannot take the record is rejected before anything is written
	if req.ListID != nil {
		if err := s.checkTargetList(ctx, session, *req.ListID, req.Kind); err != nil {
			return s.targetListFailed(ctx, req.Kind, resp, err)
		}
	}

	entityID, err := s.persist(ctx, session, req.Kind, resp.State.Values, resp)
	if err != nil {
		if fields := apperrors.FieldErrorsOf(err); fields != nil {
			metrics.FormSubmissions.WithLabelValues(string(req.Kind), metrics.ResultInvalid).Inc()
			resp.State = form.Reduce(resp.State, form.ValidationFailed{Errors: fields})
			return resp, err
		}
		metrics.FormSubmissions.WithLabelValues(string(req.Kind), metrics.ResultError).Inc()
		message := msgSaveFailed
		if apperrors.IsTransient(err) {
			message = msgSaveUnavailable
		}
		resp.State = form.Reduce(resp.State, form.SubmitFailed{Message: message})
		logger.WithContext(ctx).WithError(err).WithField("kind", string(req.Kind)).Error("form submission failed")
		return resp, err
	}

	if req.ListID != nil {
		membership, err := s.membership.AddMember(ctx, session, *req.ListID, entityID, req.Kind)
		if err != nil {
			return s.listSyncFailed(ctx, session, req, entityID, resp, err)
		}
		resp.Membership = membership
	}

	metrics.FormSubmissions.WithLabelValues(string(req.Kind), metrics.ResultOK).Inc()
	resp.State = form.Reduce(resp.State, form.SubmitSucceeded{EntityID: entityID.String()})
	return resp, nil
}

// check runs the record validator plus the rule that only listable kinds may be
// created from a list
func (s *FormService) check(kind models.EntityKind, fromList bool, values map[string]string) map[string]string {
	errs := s.validator.Validate(kind, values)
	if fromList && kind.IsValid() && !kind.IsListable() {
		errs["list_id"] = string(kind) + " records cannot be added to lists"
	}
	return errs
}

// checkTargetList reads the list the form was opened from and checks it holds kind
func (s *FormService) checkTargetList(ctx context.Context, session auth.Session, listID uuid.UUID, kind models.EntityKind) error {
	list, err := s.lists.GetList(ctx, session, listID)
	if err != nil {
		return err
	}
	if list.Type != kind {
		return apperrors.NewTypeMismatchError(string(list.Type), string(kind))
	}
	return nil
}

func (s *FormService) targetListFailed(ctx context.Context, kind models.EntityKind, resp *SubmitFormResponse, err error) (*SubmitFormResponse, error) {
	var message string
	switch {
	case apperrors.IsNotFound(err):
		message = msgListMissing
	case apperrors.IsTypeMismatch(err):
		var mismatch *apperrors.TypeMismatchError
		listType := ""
		if errors.As(err, &mismatch) {
			listType = mismatch.ListType
		}
		message = fmt.Sprintf(msgListWrongType, listType)
	}

	if message != "" {
		errs := map[string]string{"list_id": message}
		metrics.FormSubmissions.WithLabelValues(string(kind), metrics.ResultInvalid).Inc()
		resp.State = form.Reduce(resp.State, form.ValidationFailed{Errors: errs})
		return resp, apperrors.NewValidationErrors(errs)
	}

	metrics.FormSubmissions.WithLabelValues(string(kind), metrics.ResultError).Inc()
	notice := msgSaveFailed
	if apperrors.IsTransient(err) {
		notice = msgSaveUnavailable
	}
	resp.State = form.Reduce(resp.State, form.SubmitFailed{Message: notice})
	logger.WithContext(ctx).WithError(err).WithField("kind", string(kind)).Error("form target list check failed")
	return resp, err
}

func (s *FormService) persist(ctx context.Context, session auth.Session, kind models.EntityKind, values map[string]string, resp *SubmitFormResponse) (uuid.UUID, error) {
	if kind == models.KindList {
		list, err := s.lists.CreateList(ctx, session, &CreateListRequest{
			Name:   values[models.FieldName],
			Type:   values[models.FieldType],
			Access: values[models.FieldAccess],
		})
		if err != nil {
			return uuid.Nil, err
		}
		resp.List = list
		return list.ID, nil
	}

	entity, err := s.entities.CreateEntity(ctx, session, kind, values)
	if err != nil {
		return uuid.Nil, err
	}
	resp.Entity = entity
	return entity.ID, nil
}

func (s *FormService) listSyncFailed(ctx context.Context, session auth.Session, req *SubmitFormRequest, entityID uuid.UUID, resp *SubmitFormResponse, cause error) (*SubmitFormResponse, error) {
	syncErr := &apperrors.ListSyncError{
		EntityID: entityID.String(),
		ListID:   req.ListID.String(),
		Err:      cause,
	}

	metrics.FormSubmissions.WithLabelValues(string(req.Kind), metrics.ResultListSync).Inc()
	logger.WithContext(ctx).WithError(cause).WithFields(map[string]interface{}{
		"entity_id": syncErr.EntityID,
		"list_id":   syncErr.ListID,
	}).Warn("record created but list add failed")

	s.publish(ctx, s.notifier, notify.Event{
		Type:        notify.EventListSyncFailed,
		WorkspaceID: session.WorkspaceID,
		UserID:      session.UserID,
		EntityKind:  string(req.Kind),
		EntityID:    syncErr.EntityID,
		ListID:      syncErr.ListID,
		Op:          string(models.MembershipAdd),
		Error:       cause.Error(),
	})

	resp.State = form.Reduce(resp.State, form.ListSyncFailed{EntityID: syncErr.EntityID, Message: msgListSyncFailed})
	return resp, syncErr
}
