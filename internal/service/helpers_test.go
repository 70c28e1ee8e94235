package service_test

import (
	"context"
	"sync"

	"gtm-crm-backend/internal/auth"
	"gtm-crm-backend/internal/database/models"
	apperrors "gtm-crm-backend/internal/errors"
	"gtm-crm-backend/internal/notify"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newSession() auth.Session {
	return auth.Session{UserID: uuid.New(), WorkspaceID: uuid.New(), Email: "owner@example.com"}
}

func newList(session auth.Session, kind models.EntityKind, members ...uuid.UUID) *models.List {
	ids := make([]string, len(members))
	for i, id := range members {
		ids[i] = id.String()
	}
	list := &models.List{
		Name:      "Q4 Targets",
		Type:      kind,
		Access:    models.ListAccessPrivate,
		MemberIDs: ids,
		Version:   1,
	}
	list.ID = uuid.New()
	list.SetOwnership(session.WorkspaceID, session.UserID)
	return list
}

// listStoreStub is an in-memory ListRepositoryInterface with a real version check.
// Membership properties are easier to assert against state than against call expectations.
type listStoreStub struct {
	mu     sync.Mutex
	lists  map[uuid.UUID]*models.List
	writes int
	// failNext makes the next UpdateMembers call return this error
	failNext error
	// loseReplyNext makes the next UpdateMembers call commit and then return this error
	loseReplyNext error
}

func newListStoreStub(lists ...*models.List) *listStoreStub {
	s := &listStoreStub{lists: map[uuid.UUID]*models.List{}}
	for _, l := range lists {
		s.lists[l.ID] = cloneList(l)
	}
	return s
}

func cloneList(l *models.List) *models.List {
	c := *l
	c.MemberIDs = append([]string{}, l.MemberIDs...)
	return &c
}

func (s *listStoreStub) get(id uuid.UUID) *models.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneList(s.lists[id])
}

func (s *listStoreStub) Create(ctx context.Context, list *models.List) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if list.ID == uuid.Nil {
		list.ID = uuid.New()
	}
	s.lists[list.ID] = cloneList(list)
	return nil
}

func (s *listStoreStub) GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*models.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[id]
	if !ok || list.WorkspaceID != workspaceID {
		return nil, gorm.ErrRecordNotFound
	}
	return cloneList(list), nil
}

func (s *listStoreStub) GetVisible(ctx context.Context, workspaceID, userID uuid.UUID, kind models.EntityKind, limit, offset int) ([]models.List, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.List
	for _, l := range s.lists {
		if l.IsVisibleTo(workspaceID, userID) && (kind == "" || l.Type == kind) {
			out = append(out, *cloneList(l))
		}
	}
	return out, int64(len(out)), nil
}

func (s *listStoreStub) UpdateDetails(ctx context.Context, list *models.List) (*models.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.lists[list.ID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	stored.Name = list.Name
	stored.Access = list.Access
	return cloneList(stored), nil
}

func (s *listStoreStub) UpdateMembers(ctx context.Context, id uuid.UUID, memberIDs []string, expectedVersion int64) (*models.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failNext; err != nil {
		s.failNext = nil
		return nil, err
	}
	stored, ok := s.lists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if stored.Version != expectedVersion {
		return nil, apperrors.ErrListConflict
	}
	stored.MemberIDs = append([]string{}, memberIDs...)
	stored.Version++
	s.writes++
	if err := s.loseReplyNext; err != nil {
		s.loseReplyNext = nil
		return nil, err
	}
	return cloneList(stored), nil
}

func (s *listStoreStub) Delete(ctx context.Context, workspaceID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lists[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.lists, id)
	return nil
}

// recordingPublisher collects published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event notify.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []notify.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]notify.EventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}
