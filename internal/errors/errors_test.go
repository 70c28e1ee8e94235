package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "list"}
		assert.Equal(t, "list not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "list"}
		err2 := &NotFoundError{Entity: "list"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "list"}
		err2 := &NotFoundError{Entity: "company"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrListNotFound, ErrListNotFound))
		assert.False(t, errors.Is(ErrListNotFound, ErrCompanyNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrContactNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrLeadNotFound)))
		assert.False(t, IsNotFound(ErrListConflict))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		assert.Equal(t, "user already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("ValidationErrors lists fields in order", func(t *testing.T) {
		err := NewValidationErrors(map[string]string{"name": "Name is required", "email": "Invalid email"})
		assert.Equal(t, "validation failed: email: Invalid email; name: Name is required", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("email", "invalid")))
		assert.True(t, IsValidation(NewValidationErrors(map[string]string{"name": "required"})))
		assert.False(t, IsValidation(ErrListNotFound))
	})

	t.Run("FieldErrorsOf", func(t *testing.T) {
		assert.Equal(t, map[string]string{"email": "invalid"}, FieldErrorsOf(NewValidationError("email", "invalid")))
		assert.Equal(t, map[string]string{"name": "required"},
			FieldErrorsOf(fmt.Errorf("wrap: %w", NewValidationErrors(map[string]string{"name": "required"}))))
		assert.Nil(t, FieldErrorsOf(ErrListNotFound))
	})
}

func TestMembershipErrors(t *testing.T) {
	t.Run("TypeMismatchError message", func(t *testing.T) {
		err := NewTypeMismatchError("Contact", "Company")
		assert.Equal(t, "cannot add Company to a Contact list", err.Error())
		assert.True(t, IsTypeMismatch(err))
		assert.False(t, IsTypeMismatch(ErrListConflict))
	})

	t.Run("ConflictError", func(t *testing.T) {
		assert.True(t, IsConflict(ErrListConflict))
		assert.True(t, IsConflict(fmt.Errorf("update: %w", ErrListConflict)))
	})

	t.Run("ListSyncError unwraps cause", func(t *testing.T) {
		err := &ListSyncError{EntityID: "e", ListID: "l", Err: ErrListConflict}
		assert.True(t, IsListSync(err))
		assert.True(t, IsConflict(err))
		assert.Contains(t, err.Error(), "retry add")
	})
}

func TestFromPersistence(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, FromPersistence("get list", nil, ErrListNotFound))
	})

	t.Run("record not found maps to the given error", func(t *testing.T) {
		err := FromPersistence("get list", gorm.ErrRecordNotFound, ErrListNotFound)
		assert.Equal(t, ErrListNotFound, err)
	})

	t.Run("deadline exceeded becomes transient", func(t *testing.T) {
		err := FromPersistence("get list", context.DeadlineExceeded, ErrListNotFound)
		assert.True(t, IsTransient(err))
		assert.Equal(t, "get list: temporarily unavailable", err.Error())
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("taxonomy errors pass through", func(t *testing.T) {
		assert.Equal(t, ErrListConflict, FromPersistence("update list", ErrListConflict, ErrListNotFound))
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		raw := errors.New("syntax error at or near")
		err := FromPersistence("update list", raw, ErrListNotFound)
		assert.True(t, errors.Is(err, raw))
		assert.Equal(t, "update list: syntax error at or near", err.Error())
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthorization(ErrForbidden))
	assert.False(t, IsAuthorization(ErrInvalidCredentials))
	assert.True(t, IsConfiguration(NewConfigurationError("missing")))
}
