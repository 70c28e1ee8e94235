package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gtm-crm-backend/internal/auth"
	apperrors "gtm-crm-backend/internal/errors"
	"gtm-crm-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgUnavailable = "service temporarily unavailable, please retry"
	msgInternal    = "internal server error"

	defaultPage     = 1
	defaultPageSize = 20
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// ValidationErrorResponse carries per-field validation messages
type ValidationErrorResponse struct {
	Error  string            `json:"error" example:"validation failed"`
	Fields map[string]string `json:"fields"`
}

// respondError maps the application error taxonomy onto HTTP status codes.
// Raw storage errors never reach the client.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrForbidden.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsTypeMismatch(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "code": "type_mismatch"})
	case apperrors.IsValidation(err):
		fields := apperrors.FieldErrorsOf(err)
		if fields == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Error: "validation failed", Fields: fields})
	case errors.Is(err, apperrors.ErrListNotListable),
		errors.Is(err, apperrors.ErrUnknownEntityKind),
		errors.Is(err, apperrors.ErrInvalidMembershipOp):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err), apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsTransient(err):
		logger.WithContext(c.Request.Context()).WithError(err).Warn("transient failure")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msgUnavailable})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}

// requireSession returns the caller's session or writes a 401
func requireSession(c *gin.Context) (auth.Session, bool) {
	session, ok := auth.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingSession.Error()})
		return auth.Session{}, false
	}
	return session, true
}

// parseUUIDParam parses a path parameter or writes a 400
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads page and page_size; missing values take defaults
func parsePagination(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidPaginationParams.Error()})
		return 0, 0, false
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidPaginationParams.Error()})
		return 0, 0, false
	}
	return page, pageSize, true
}
