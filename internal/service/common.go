package service

import (
	"context"
	"time"

	"gtm-crm-backend/internal/auth"
	"gtm-crm-backend/internal/database/models"
	apperrors "gtm-crm-backend/internal/errors"
	"gtm-crm-backend/internal/logger"
	"gtm-crm-backend/internal/notify"
	"gtm-crm-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultPersistenceTimeout = 5 * time.Second
	defaultPageSize           = 20
	maxPageSize               = 100
)

// persistence bounds every storage call by a timeout. Reads follow the caller's
// cancellation; writes are detached from it so an abandoned request still finishes
// the write and reports the result through the notifier.
type persistence struct {
	timeout time.Duration
}

func newPersistence(timeout time.Duration) persistence {
	if timeout <= 0 {
		timeout = defaultPersistenceTimeout
	}
	return persistence{timeout: timeout}
}

func (p persistence) read(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, p.timeout)
}

func (p persistence) write(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
}

// publish delivers a notification on a context detached from the request.
// Delivery failures are logged and never fail the operation.
func (p persistence) publish(ctx context.Context, notifier notify.Publisher, event notify.Event) {
	if notifier == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	pctx, cancel := p.write(ctx)
	defer cancel()
	if err := notifier.Publish(pctx, event); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("event", string(event.Type)).Warn("failed to publish notification")
	}
}

func requireSession(session auth.Session) error {
	if session.IsZero() {
		return apperrors.ErrMissingSession
	}
	return nil
}

// normalizePage clamps page and page size and returns the matching limit and offset
func normalizePage(page, pageSize int) (int, int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}

// notFoundFor returns the not-found error for an entity kind
func notFoundFor(kind models.EntityKind) error {
	switch kind {
	case models.KindCompany:
		return apperrors.ErrCompanyNotFound
	case models.KindContact:
		return apperrors.ErrContactNotFound
	case models.KindLead:
		return apperrors.ErrLeadNotFound
	case models.KindDeal:
		return apperrors.ErrDealNotFound
	case models.KindList:
		return apperrors.ErrListNotFound
	}
	return apperrors.NewNotFoundError(string(kind))
}

// loadVisibleList loads a list and applies the access rule. Lists the session may not
// see are reported as not found.
func loadVisibleList(ctx context.Context, repo repository.ListRepositoryInterface, session auth.Session, id uuid.UUID) (*models.List, error) {
	list, err := repo.GetByID(ctx, session.WorkspaceID, id)
	if err != nil {
		return nil, apperrors.FromPersistence("load list", err, apperrors.ErrListNotFound)
	}
	if !list.IsVisibleTo(session.WorkspaceID, session.UserID) {
		return nil, apperrors.ErrListNotFound
	}
	return list, nil
}
