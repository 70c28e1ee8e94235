package handlers

import (
	"mime"
	"net/http"

	"gtm-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ListHandler handles HTTP requests for lists and their membership
type ListHandler struct {
	listService       service.ListServiceInterface
	membershipService service.MembershipServiceInterface
	projectionService service.ProjectionServiceInterface
}

// NewListHandler creates a new list handler
func NewListHandler(
	listService service.ListServiceInterface,
	membershipService service.MembershipServiceInterface,
	projectionService service.ProjectionServiceInterface,
) *ListHandler {
	return &ListHandler{
		listService:       listService,
		membershipService: membershipService,
		projectionService: projectionService,
	}
}

// CreateList handles POST /lists
// @Summary Create a list
// @Description Create an empty list of companies, contacts or leads
// @Tags lists
// @Accept json
// @Produce json
// @Param list body service.CreateListRequest true "List data"
// @Success 201 {object} service.ListResponse "Successfully created list"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} ValidationErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /lists [post]
func (h *ListHandler) CreateList(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req service.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.listService.CreateList(c.Request.Context(), session, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, list)
}

// GetList handles GET /lists/:id
// @Summary Get list by ID
// @Tags lists
// @Produce json
// @Param id path string true "List ID (UUID)"
// @Success 200 {object} service.ListResponse
// @Failure 400 {object} ErrorResponse "Invalid list ID"
// @Failure 404 {object} ErrorResponse "List not found"
// @Security BearerAuth
// @Router /lists/{id} [get]
func (h *ListHandler) GetList(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "list")
	if !ok {
		return
	}

	list, err := h.listService.GetList(c.Request.Context(), session, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetLists handles GET /lists
// @Summary List lists
// @Description Lists visible to the caller, optionally filtered by member type
// @Tags lists
// @Produce json
// @Param type query string false "Member type (Company, Contact, Lead)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ListListResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 422 {object} ValidationErrorResponse "Unsupported list type"
// @Security BearerAuth
// @Router /lists [get]
func (h *ListHandler) GetLists(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	lists, err := h.listService.GetLists(c.Request.Context(), session, c.Query("type"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lists)
}

// UpdateList handles PUT /lists/:id
// @Summary Rename a list or change its access
// @Tags lists
// @Accept json
// @Produce json
// @Param id path string true "List ID (UUID)"
// @Param list body service.UpdateListRequest true "List data"
// @Success 200 {object} service.ListResponse
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "List not found"
// @Failure 422 {object} ValidationErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /lists/{id} [put]
func (h *ListHandler) UpdateList(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "list")
	if !ok {
		return
	}

	var req service.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.listService.UpdateList(c.Request.Context(), session, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// DeleteList handles DELETE /lists/:id
// @Summary Delete a list
// @Tags lists
// @Param id path string true "List ID (UUID)"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "List not found"
// @Security BearerAuth
// @Router /lists/{id} [delete]
func (h *ListHandler) DeleteList(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "list")
	if !ok {
		return
	}

	if err := h.listService.DeleteList(c.Request.Context(), session, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMembers handles GET /lists/:id/members
// @Summary Resolve list members
// @Description Members in list order; references to deleted records are reported in orphaned
// @Tags lists
// @Produce json
// @Param id path string true "List ID (UUID)"
// @Success 200 {object} service.ListMembersResponse
// @Failure 404 {object} ErrorResponse "List not found"
// @Failure 503 {object} ErrorResponse "Storage temporarily unavailable"
// @Security BearerAuth
// @Router /lists/{id}/members [get]
func (h *ListHandler) GetMembers(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "list")
	if !ok {
		return
	}

	members, err := h.projectionService.GetMembers(c.Request.Context(), session, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateMembership handles POST /lists/:id/members
// @Summary Add or remove a member
// @Description Idempotent explicit membership change; repeating a request leaves the list unchanged
// @Tags lists
// @Accept json
// @Produce json
// @Param id path string true "List ID (UUID)"
// @Param membership body service.MembershipRequest true "Membership change"
// @Success 200 {object} service.MembershipResponse
// @Failure 404 {object} ErrorResponse "List or record not found"
// @Failure 409 {object} ErrorResponse "List modified concurrently"
// @Failure 422 {object} map[string]interface{} "Type mismatch or validation failed"
// @Failure 503 {object} ErrorResponse "Storage temporarily unavailable"
// @Security BearerAuth
// @Router /lists/{id}/members [post]
func (h *ListHandler) UpdateMembership(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "list")
	if !ok {
		return
	}

	var req service.MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.membershipService.UpdateMembership(c.Request.Context(), session, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ToggleMembership handles POST /lists/:id/members/toggle
// @Summary Toggle a member
// @Description Adds the record if absent, removes it if present
// @Tags lists
// @Accept json
// @Produce json
// @Param id path string true "List ID (UUID)"
// @Param membership body service.ToggleMembershipRequest true "Record to toggle"
// @Success 200 {object} service.MembershipResponse
// @Failure 404 {object} ErrorResponse "List or record not found"
// @Failure 409 {object} ErrorResponse "List modified concurrently"
// @Failure 422 {object} map[string]interface{} "Type mismatch"
// @Security BearerAuth
// @Router /lists/{id}/members/toggle [post]
func (h *ListHandler) ToggleMembership(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "list")
	if !ok {
		return
	}

	var req service.ToggleMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.membershipService.ToggleMembership(c.Request.Context(), session, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveMember handles DELETE /lists/:id/members/:entityId
// @Summary Remove a member
// @Description Idempotent; removing an absent record succeeds without a write
// @Tags lists
// @Produce json
// @Param id path string true "List ID (UUID)"
// @Param entityId path string true "Record ID (UUID)"
// @Param entity_type query string true "Record type (Company, Contact, Lead)"
// @Success 200 {object} service.MembershipResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "List not found"
// @Failure 422 {object} map[string]interface{} "Type mismatch"
// @Security BearerAuth
// @Router /lists/{id}/members/{entityId} [delete]
func (h *ListHandler) RemoveMember(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	listID, ok := parseUUIDParam(c, "id", "list")
	if !ok {
		return
	}
	entityID, ok := parseUUIDParam(c, "entityId", "entity")
	if !ok {
		return
	}
	kind, ok := ParseKind(c.Query("entity_type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entity_type is required"})
		return
	}

	resp, err := h.membershipService.RemoveMember(c.Request.Context(), session, listID, entityID, kind)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ExportMembers handles GET /lists/:id/export
// @Summary Export list members
// @Description Spreadsheet of the list's resolved members
// @Tags lists
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "List ID (UUID)"
// @Success 200 {file} file "XLSX workbook"
// @Failure 404 {object} ErrorResponse "List not found"
// @Security BearerAuth
// @Router /lists/{id}/export [get]
func (h *ListHandler) ExportMembers(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "list")
	if !ok {
		return
	}

	file, err := h.projectionService.ExportMembers(c.Request.Context(), session, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", contentDisposition(file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// contentDisposition builds an attachment header with the file name quoted or encoded as needed
func contentDisposition(name string) string {
	if header := mime.FormatMediaType("attachment", map[string]string{"filename": name}); header != "" {
		return header
	}
	return "attachment"
}
