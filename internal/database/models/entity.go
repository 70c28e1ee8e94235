package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record field names shared by forms, validation schemas and exports
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldWebsite     = "website"
	FieldLinkedin    = "linkedin"
	FieldDescription = "description"
	FieldIndustry    = "industry"
	FieldSize        = "size"
	FieldStage       = "stage"
	FieldType        = "type"
	FieldRevenue     = "revenue"
	FieldTitle       = "title"
	FieldCompany     = "company"
	FieldRole        = "role"
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldSource      = "source"
	FieldPipeline    = "pipeline"
	FieldCloseDate   = "closeDate"
	FieldAccess      = "access"
)

// Entity is the capability shared by Company, Contact, Lead and Deal records
type Entity interface {
	GetID() uuid.UUID
	GetWorkspaceID() uuid.UUID
	GetOwnerID() uuid.UUID
	GetTimestamps() (time.Time, time.Time)
	SetOwnership(workspaceID, ownerID uuid.UUID)
	Kind() EntityKind
	DisplayName() string
	// Apply overwrites the record's fields from form values. Values must be validated first.
	Apply(fields map[string]string)
	// Fields returns the record's form values keyed by field name.
	Fields() map[string]string
}

// NewEntity returns an empty record of the given kind
func NewEntity(kind EntityKind) (Entity, bool) {
	switch kind {
	case KindCompany:
		return &Company{}, true
	case KindContact:
		return &Contact{}, true
	case KindLead:
		return &Lead{}, true
	case KindDeal:
		return &Deal{}, true
	}
	return nil, false
}

// ParseDate accepts calendar dates (2006-01-02) and RFC 3339 timestamps
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func parseFloatPtr(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}

func formatFloatPtr(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func parseDatePtr(value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	t, err := ParseDate(value)
	if err != nil {
		return nil
	}
	return &t
}

func formatDatePtr(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format("2006-01-02")
}
