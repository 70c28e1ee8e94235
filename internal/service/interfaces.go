package service

import (
	"context"

	"gtm-crm-backend/internal/auth"
	"gtm-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EntityServiceInterface defines the interface for entity service
type EntityServiceInterface interface {
	CreateEntity(ctx context.Context, session auth.Session, kind models.EntityKind, values map[string]string) (*EntityResponse, error)
	GetEntity(ctx context.Context, session auth.Session, kind models.EntityKind, id uuid.UUID) (*EntityResponse, error)
	ListEntities(ctx context.Context, session auth.Session, kind models.EntityKind, query string, page, pageSize int) (*EntityListResponse, error)
	UpdateEntity(ctx context.Context, session auth.Session, kind models.EntityKind, id uuid.UUID, values map[string]string) (*EntityResponse, error)
	DeleteEntity(ctx context.Context, session auth.Session, kind models.EntityKind, id uuid.UUID) error
}

// ListServiceInterface defines the interface for list service
type ListServiceInterface interface {
	CreateList(ctx context.Context, session auth.Session, req *CreateListRequest) (*ListResponse, error)
	GetList(ctx context.Context, session auth.Session, id uuid.UUID) (*ListResponse, error)
	GetLists(ctx context.Context, session auth.Session, kind string, page, pageSize int) (*ListListResponse, error)
	UpdateList(ctx context.Context, session auth.Session, id uuid.UUID, req *UpdateListRequest) (*ListResponse, error)
	DeleteList(ctx context.Context, session auth.Session, id uuid.UUID) error
}

// MembershipServiceInterface defines the interface for list membership service
type MembershipServiceInterface interface {
	UpdateMembership(ctx context.Context, session auth.Session, listID uuid.UUID, req *MembershipRequest) (*MembershipResponse, error)
	ToggleMembership(ctx context.Context, session auth.Session, listID uuid.UUID, req *ToggleMembershipRequest) (*MembershipResponse, error)
	AddMember(ctx context.Context, session auth.Session, listID, entityID uuid.UUID, kind models.EntityKind) (*MembershipResponse, error)
	RemoveMember(ctx context.Context, session auth.Session, listID, entityID uuid.UUID, kind models.EntityKind) (*MembershipResponse, error)
}

// ProjectionServiceInterface defines the interface for list projection service
type ProjectionServiceInterface interface {
	ResolveMembers(ctx context.Context, list *models.List) (*Projection, error)
	GetMembers(ctx context.Context, session auth.Session, listID uuid.UUID) (*ListMembersResponse, error)
	ExportMembers(ctx context.Context, session auth.Session, listID uuid.UUID) (*ExportFile, error)
}

// FormServiceInterface defines the interface for form submission service
type FormServiceInterface interface {
	Submit(ctx context.Context, session auth.Session, req *SubmitFormRequest) (*SubmitFormResponse, error)
}

// Ensure concrete services implement the interfaces
var (
	_ EntityServiceInterface     = (*EntityService)(nil)
	_ ListServiceInterface       = (*ListService)(nil)
	_ MembershipServiceInterface = (*MembershipService)(nil)
	_ ProjectionServiceInterface = (*ProjectionService)(nil)
	_ FormServiceInterface       = (*FormService)(nil)
)
