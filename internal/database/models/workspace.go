package models

// Workspace is the tenant boundary: every record and user belongs to exactly one
type Workspace struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" gorm:"size:200"`
}

// TableName returns the table name for Workspace
func (Workspace) TableName() string {
	return "workspaces"
}
