package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in workspace"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error on a single field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors carries every field-level violation found in a record.
// Fields maps field name to a human-readable message.
type ValidationErrors struct {
	Fields map[string]string
}

func (e *ValidationErrors) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// TypeMismatchError is returned when an entity of one kind is added to a list of another kind
type TypeMismatchError struct {
	ListType   string
	EntityType string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot add %s to a %s list", e.EntityType, e.ListType)
}

// ConflictError represents a concurrent-write version mismatch
type ConflictError struct {
	Entity string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s was modified concurrently", e.Entity)
}

// TransientError wraps timeouts and connectivity failures
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: temporarily unavailable", e.Op)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// ListSyncError reports that an entity was created but could not be added to a list
type ListSyncError struct {
	EntityID string
	ListID   string
	Err      error
}

func (e *ListSyncError) Error() string {
	return "entity created, but could not be added to the list - retry add"
}

func (e *ListSyncError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents ownership and access violations
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCompanyNotFound   = &NotFoundError{Entity: "company"}
	ErrContactNotFound   = &NotFoundError{Entity: "contact"}
	ErrLeadNotFound      = &NotFoundError{Entity: "lead"}
	ErrDealNotFound      = &NotFoundError{Entity: "deal"}
	ErrListNotFound      = &NotFoundError{Entity: "list"}
	ErrUserNotFound      = &NotFoundError{Entity: "user"}
	ErrWorkspaceNotFound = &NotFoundError{Entity: "workspace"}
	ErrSessionNotFound   = &NotFoundError{Entity: "session"}
)

// Already Exists Errors
var (
	ErrUserExists      = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrWorkspaceExists = &AlreadyExistsError{Entity: "workspace", Context: "with this name"}
)

// Business Logic Errors
var (
	ErrListConflict            = &ConflictError{Entity: "list"}
	ErrListNotListable         = errors.New("entity kind cannot be added to lists")
	ErrUnknownEntityKind       = errors.New("unknown entity kind")
	ErrInvalidMembershipOp     = errors.New("invalid membership operation")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrMissingSession     = &AuthenticationError{Message: "authentication required"}
	ErrForbidden          = &AuthorizationError{Message: "you do not have access to this resource"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError or ValidationErrors
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var validationErrs *ValidationErrors
	return errors.As(err, &validationErr) || errors.As(err, &validationErrs)
}

// IsTypeMismatch checks if an error is a TypeMismatchError
func IsTypeMismatch(err error) bool {
	var mismatchErr *TypeMismatchError
	return errors.As(err, &mismatchErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsTransient checks if an error is a TransientError
func IsTransient(err error) bool {
	var transientErr *TransientError
	return errors.As(err, &transientErr)
}

// IsListSync checks if an error is a ListSyncError
func IsListSync(err error) bool {
	var syncErr *ListSyncError
	return errors.As(err, &syncErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// FieldErrorsOf returns the per-field messages carried by a validation error, or nil
func FieldErrorsOf(err error) map[string]string {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs.Fields
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) && validationErr.Field != "" {
		return map[string]string{validationErr.Field: validationErr.Message}
	}
	return nil
}

// FromPersistence converts a raw storage error into the application taxonomy.
// notFound is returned for missing rows; timeouts and connection failures become
// TransientError. Errors already in the taxonomy pass through unchanged.
func FromPersistence(op string, err error, notFound error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return &TransientError{Op: op, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &TransientError{Op: op, Err: err}
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return &TransientError{Op: op, Err: err}
	}
	if IsNotFound(err) || IsConflict(err) || IsTransient(err) || IsValidation(err) ||
		IsTypeMismatch(err) || IsAuthorization(err) || IsAlreadyExists(err) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrors wraps a field map into a ValidationErrors
func NewValidationErrors(fields map[string]string) error {
	return &ValidationErrors{Fields: fields}
}

// NewTypeMismatchError creates a new TypeMismatchError
func NewTypeMismatchError(listType, entityType string) error {
	return &TypeMismatchError{ListType: listType, EntityType: entityType}
}

// NewTransientError creates a new TransientError
func NewTransientError(op string, err error) error {
	return &TransientError{Op: op, Err: err}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
