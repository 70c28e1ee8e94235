package repository

import (
	"context"

	"gtm-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkspaceRepository handles database operations for workspaces
type WorkspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create creates a new workspace
func (r *WorkspaceRepository) Create(ctx context.Context, workspace *models.Workspace) error {
	return r.db.WithContext(ctx).Create(workspace).Error
}

// GetByID retrieves a workspace by ID
func (r *WorkspaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	var workspace models.Workspace
	err := r.db.WithContext(ctx).First(&workspace, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

// GetByName retrieves a workspace by its unique name
func (r *WorkspaceRepository) GetByName(ctx context.Context, name string) (*models.Workspace, error) {
	var workspace models.Workspace
	err := r.db.WithContext(ctx).First(&workspace, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}
