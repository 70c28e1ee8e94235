package form

import (
	"testing"

	"gtm-crm-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestReduce_FieldChangedClearsError(t *testing.T) {
	s := New(models.KindContact, "")
	s = Reduce(s, ValidationFailed{Errors: map[string]string{"name": "Name is required", "email": "A valid email is required"}})

	next := Reduce(s, FieldChanged{Field: "name", Value: "Jane"})

	assert.Equal(t, "Jane", next.Values["name"])
	assert.NotContains(t, next.Errors, "name")
	assert.Contains(t, next.Errors, "email")
	assert.Contains(t, s.Errors, "name", "previous state must be untouched")
	assert.Empty(t, s.Values["name"])
}

func TestReduce_SubmitSucceededResets(t *testing.T) {
	s := New(models.KindLead, "list-1")
	s = Reduce(s, FieldChanged{Field: "name", Value: "Acme"})
	s = Reduce(s, FieldChanged{Field: "status", Value: "Qualified"})
	s = Reduce(s, SubmitStarted{})
	assert.Equal(t, StatusSubmitting, s.Status)

	next := Reduce(s, SubmitSucceeded{EntityID: "e-1"})

	assert.Equal(t, StatusClosed, next.Status)
	assert.Equal(t, map[string]string{"status": "New"}, next.Values)
	assert.Equal(t, "list-1", next.ListID)
	assert.Equal(t, "e-1", next.EntityID)
	assert.Nil(t, next.Notice)
}

func TestReduce_SubmitFailedRetainsValues(t *testing.T) {
	s := New(models.KindCompany, "")
	s = Reduce(s, FieldChanged{Field: "name", Value: "Acme"})
	s = Reduce(s, SubmitStarted{})

	next := Reduce(s, SubmitFailed{Message: "service temporarily unavailable"})

	assert.Equal(t, StatusEditing, next.Status)
	assert.Equal(t, "Acme", next.Values["name"])
	if assert.NotNil(t, next.Notice) {
		assert.Equal(t, NoticeTransient, next.Notice.Kind)
	}

	dismissed := Reduce(next, NoticeDismissed{})
	assert.Nil(t, dismissed.Notice)
	assert.NotNil(t, next.Notice)
}

func TestReduce_ListSyncFailedIsDistinct(t *testing.T) {
	s := New(models.KindContact, "list-1")
	s = Reduce(s, FieldChanged{Field: "name", Value: "Jane"})

	next := Reduce(s, ListSyncFailed{EntityID: "c-1", Message: "could not be added to the list - retry add"})

	assert.Equal(t, StatusClosed, next.Status)
	assert.Equal(t, "c-1", next.EntityID)
	assert.Empty(t, next.Values["name"])
	if assert.NotNil(t, next.Notice) {
		assert.Equal(t, NoticeListSync, next.Notice.Kind)
	}
}
