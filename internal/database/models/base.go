package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// WorkspaceModel is embedded by every tenant-scoped record
type WorkspaceModel struct {
	BaseModel
	WorkspaceID uuid.UUID `json:"workspace_id" gorm:"type:uuid;not null;index"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
}

// GetID returns the record ID
func (m *WorkspaceModel) GetID() uuid.UUID {
	return m.ID
}

// GetWorkspaceID returns the tenant the record belongs to
func (m *WorkspaceModel) GetWorkspaceID() uuid.UUID {
	return m.WorkspaceID
}

// GetOwnerID returns the user who created the record
func (m *WorkspaceModel) GetOwnerID() uuid.UUID {
	return m.OwnerID
}

// GetTimestamps returns the creation and last update times
func (m *WorkspaceModel) GetTimestamps() (time.Time, time.Time) {
	return m.CreatedAt, m.UpdatedAt
}

// SetOwnership stamps the workspace and owning user on a new record
func (m *WorkspaceModel) SetOwnership(workspaceID, ownerID uuid.UUID) {
	m.WorkspaceID = workspaceID
	m.OwnerID = ownerID
}
