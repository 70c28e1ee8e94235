package form

import (
	"maps"

	"gtm-crm-backend/internal/database/models"
)

// Status is the lifecycle position of a form
type Status string

const (
	StatusEditing    Status = "editing"
	StatusSubmitting Status = "submitting"
	StatusClosed     Status = "closed"
)

// NoticeKind classifies a dismissible notification shown alongside the form
type NoticeKind string

const (
	NoticeTransient NoticeKind = "transient"
	NoticeListSync  NoticeKind = "list_sync"
)

// Notice is a user-dismissible message
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// State is an immutable snapshot of a create form. Use Reduce to derive the next one.
type State struct {
	Kind     models.EntityKind `json:"kind"`
	ListID   string            `json:"list_id,omitempty"`
	Values   map[string]string `json:"values"`
	Errors   map[string]string `json:"errors"`
	Status   Status            `json:"status"`
	Notice   *Notice           `json:"notice,omitempty"`
	EntityID string            `json:"entity_id,omitempty"`
}

// New returns an empty form for kind. listID is set when the form was opened from a list.
func New(kind models.EntityKind, listID string) State {
	return State{
		Kind:   kind,
		ListID: listID,
		Values: Defaults(kind),
		Errors: map[string]string{},
		Status: StatusEditing,
	}
}

// Defaults returns the initial field values for kind
func Defaults(kind models.EntityKind) map[string]string {
	switch kind {
	case models.KindLead:
		return map[string]string{models.FieldStatus: "New"}
	case models.KindList:
		return map[string]string{models.FieldAccess: string(models.ListAccessPrivate)}
	}
	return map[string]string{}
}

// HasErrors reports whether any field is invalid
func (s State) HasErrors() bool {
	return len(s.Errors) > 0
}

func (s State) clone() State {
	next := s
	next.Values = maps.Clone(s.Values)
	next.Errors = maps.Clone(s.Errors)
	if next.Values == nil {
		next.Values = map[string]string{}
	}
	if next.Errors == nil {
		next.Errors = map[string]string{}
	}
	if s.Notice != nil {
		n := *s.Notice
		next.Notice = &n
	}
	return next
}
