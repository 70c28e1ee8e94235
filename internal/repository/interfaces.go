package repository

import (
	"context"

	"gtm-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EntityRepositoryInterface defines workspace-scoped operations over one entity kind
type EntityRepositoryInterface interface {
	Kind() models.EntityKind
	Create(ctx context.Context, entity models.Entity) error
	GetByID(ctx context.Context, workspaceID, id uuid.UUID) (models.Entity, error)
	GetByIDs(ctx context.Context, workspaceID uuid.UUID, ids []uuid.UUID) ([]models.Entity, error)
	GetByWorkspace(ctx context.Context, workspaceID uuid.UUID, query string, limit, offset int) ([]models.Entity, int64, error)
	Update(ctx context.Context, entity models.Entity) error
	Delete(ctx context.Context, workspaceID, id uuid.UUID) error
}

// ListRepositoryInterface defines the interface for list repository operations
type ListRepositoryInterface interface {
	Create(ctx context.Context, list *models.List) error
	GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*models.List, error)
	GetVisible(ctx context.Context, workspaceID, userID uuid.UUID, kind models.EntityKind, limit, offset int) ([]models.List, int64, error)
	UpdateDetails(ctx context.Context, list *models.List) (*models.List, error)
	UpdateMembers(ctx context.Context, id uuid.UUID, memberIDs []string, expectedVersion int64) (*models.List, error)
	Delete(ctx context.Context, workspaceID, id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// WorkspaceRepositoryInterface defines the interface for workspace repository operations
type WorkspaceRepositoryInterface interface {
	Create(ctx context.Context, workspace *models.Workspace) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error)
	GetByName(ctx context.Context, name string) (*models.Workspace, error)
}

// Ensure concrete repositories implement the interfaces
var (
	_ EntityRepositoryInterface    = (*EntityRepository[models.Company, *models.Company])(nil)
	_ ListRepositoryInterface      = (*ListRepository)(nil)
	_ UserRepositoryInterface      = (*UserRepository)(nil)
	_ WorkspaceRepositoryInterface = (*WorkspaceRepository)(nil)
)
