package models

import (
	"slices"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// List represents a named, typed collection of entity references owned by a user
type List struct {
	WorkspaceModel
	Name      string         `json:"name" gorm:"not null;size:200"`
	Type      EntityKind     `json:"type" gorm:"type:varchar(20);not null;index"`
	Access    ListAccess     `json:"access" gorm:"type:varchar(20);not null;default:'Private'"`
	MemberIDs pq.StringArray `json:"member_ids" gorm:"type:text[];not null;default:'{}'"`
	Version   int64          `json:"version" gorm:"not null;default:1"`
}

// TableName returns the table name for List
func (List) TableName() string {
	return "lists"
}

// HasMember reports whether the entity ID is referenced by the list
func (l *List) HasMember(entityID uuid.UUID) bool {
	return slices.Contains(l.MemberIDs, entityID.String())
}

// IsVisibleTo applies the access rule: private lists resolve only for their owner,
// public lists for anyone in the same workspace.
func (l *List) IsVisibleTo(workspaceID, userID uuid.UUID) bool {
	if l.WorkspaceID != workspaceID {
		return false
	}
	return l.Access == ListAccessPublic || l.OwnerID == userID
}

// IsOwnedBy reports whether userID owns the list
func (l *List) IsOwnedBy(userID uuid.UUID) bool {
	return l.OwnerID == userID
}

// WithMember returns the member IDs with entityID appended, or unchanged if present
func (l *List) WithMember(entityID uuid.UUID) pq.StringArray {
	if l.HasMember(entityID) {
		return slices.Clone(l.MemberIDs)
	}
	members := make(pq.StringArray, 0, len(l.MemberIDs)+1)
	members = append(members, l.MemberIDs...)
	return append(members, entityID.String())
}

// WithoutMember returns the member IDs with every occurrence of entityID removed
func (l *List) WithoutMember(entityID uuid.UUID) pq.StringArray {
	id := entityID.String()
	members := make(pq.StringArray, 0, len(l.MemberIDs))
	for _, m := range l.MemberIDs {
		if m != id {
			members = append(members, m)
		}
	}
	return members
}

func (l *List) Kind() EntityKind   { return KindList }
func (l *List) DisplayName() string { return l.Name }

func (l *List) Apply(fields map[string]string) {
	l.Name = fields[FieldName]
	if t := fields[FieldType]; t != "" {
		l.Type = EntityKind(t)
	}
	l.Access = ListAccess(fields[FieldAccess])
	if l.Access == "" {
		l.Access = ListAccessPrivate
	}
}

func (l *List) Fields() map[string]string {
	return map[string]string{
		FieldName:   l.Name,
		FieldType:   string(l.Type),
		FieldAccess: string(l.Access),
	}
}
