package models

import "github.com/google/uuid"

// User represents a workspace member who can sign in and own records
type User struct {
	BaseModel
	WorkspaceID  uuid.UUID `json:"workspace_id" gorm:"type:uuid;not null;index"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name         string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	PasswordHash string    `json:"-" gorm:"not null;size:100"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
