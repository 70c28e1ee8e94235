package handlers

import (
	"net/http"
	"strings"

	"gtm-crm-backend/internal/database/models"
	"gtm-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EntityRoutes maps collection path segments to the record kind they serve
var EntityRoutes = map[string]models.EntityKind{
	"companies": models.KindCompany,
	"contacts":  models.KindContact,
	"leads":     models.KindLead,
	"deals":     models.KindDeal,
}

// ParseKind accepts a kind name ("Contact", "contact") or its collection path ("contacts")
func ParseKind(value string) (models.EntityKind, bool) {
	lower := strings.ToLower(strings.TrimSpace(value))
	if kind, ok := EntityRoutes[lower]; ok {
		return kind, true
	}
	if lower == "lists" {
		return models.KindList, true
	}
	for _, kind := range []models.EntityKind{models.KindCompany, models.KindContact, models.KindLead, models.KindDeal, models.KindList} {
		if strings.EqualFold(string(kind), lower) {
			return kind, true
		}
	}
	return "", false
}

// EntityHandler handles HTTP requests for one CRM record kind
type EntityHandler struct {
	entityService service.EntityServiceInterface
	kind          models.EntityKind
}

// NewEntityHandler creates a new entity handler bound to kind
func NewEntityHandler(entityService service.EntityServiceInterface, kind models.EntityKind) *EntityHandler {
	return &EntityHandler{
		entityService: entityService,
		kind:          kind,
	}
}

// CreateEntity handles POST /{companies|contacts|leads|deals}
// @Summary Create a record
// @Description Validate and create a company, contact, lead or deal in the caller's workspace
// @Tags entities
// @Accept json
// @Produce json
// @Param kind path string true "Collection (companies, contacts, leads, deals)"
// @Param record body service.EntityRequest true "Field values"
// @Success 201 {object} service.EntityResponse "Successfully created record"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} ValidationErrorResponse "Validation failed"
// @Failure 503 {object} ErrorResponse "Storage temporarily unavailable"
// @Security BearerAuth
// @Router /{kind} [post]
func (h *EntityHandler) CreateEntity(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req service.EntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entity, err := h.entityService.CreateEntity(c.Request.Context(), session, h.kind, req.Values)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entity)
}

// GetEntity handles GET /{kind}/:id
// @Summary Get a record by ID
// @Tags entities
// @Produce json
// @Param kind path string true "Collection (companies, contacts, leads, deals)"
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} service.EntityResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Security BearerAuth
// @Router /{kind}/{id} [get]
func (h *EntityHandler) GetEntity(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", strings.ToLower(string(h.kind)))
	if !ok {
		return
	}

	entity, err := h.entityService.GetEntity(c.Request.Context(), session, h.kind, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

// ListEntities handles GET /{kind}
// @Summary List records
// @Description Paginated records of one kind, optionally filtered by name
// @Tags entities
// @Produce json
// @Param kind path string true "Collection (companies, contacts, leads, deals)"
// @Param q query string false "Name search"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.EntityListResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /{kind} [get]
func (h *EntityHandler) ListEntities(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	entities, err := h.entityService.ListEntities(c.Request.Context(), session, h.kind, c.Query("q"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entities)
}

// UpdateEntity handles PUT /{kind}/:id
// @Summary Update a record
// @Description Replace the record's fields; only the owner may update
// @Tags entities
// @Accept json
// @Produce json
// @Param kind path string true "Collection (companies, contacts, leads, deals)"
// @Param id path string true "Record ID (UUID)"
// @Param record body service.EntityRequest true "Field values"
// @Success 200 {object} service.EntityResponse
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 422 {object} ValidationErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /{kind}/{id} [put]
func (h *EntityHandler) UpdateEntity(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", strings.ToLower(string(h.kind)))
	if !ok {
		return
	}

	var req service.EntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entity, err := h.entityService.UpdateEntity(c.Request.Context(), session, h.kind, id, req.Values)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

// DeleteEntity handles DELETE /{kind}/:id
// @Summary Delete a record
// @Description Lists keep their references; orphans are skipped when members are resolved
// @Tags entities
// @Param kind path string true "Collection (companies, contacts, leads, deals)"
// @Param id path string true "Record ID (UUID)"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Security BearerAuth
// @Router /{kind}/{id} [delete]
func (h *EntityHandler) DeleteEntity(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", strings.ToLower(string(h.kind)))
	if !ok {
		return
	}

	if err := h.entityService.DeleteEntity(c.Request.Context(), session, h.kind, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
