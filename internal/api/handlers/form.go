package handlers

import (
	"net/http"

	"gtm-crm-backend/internal/database/models"
	apperrors "gtm-crm-backend/internal/errors"
	"gtm-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FormHandler handles create-form submissions
type FormHandler struct {
	formService service.FormServiceInterface
}

// NewFormHandler creates a new form handler
func NewFormHandler(formService service.FormServiceInterface) *FormHandler {
	return &FormHandler{
		formService: formService,
	}
}

// FormErrorResponse is a failed submission: the error plus the form state to render
type FormErrorResponse struct {
	Error string `json:"error"`
	*service.SubmitFormResponse
}

// Submit handles POST /forms/:kind
// @Summary Submit a create form
// @Description Validate and create a record; when list_id is set the new record is added to that list.
// @Description 207 means the record was created but the list add failed and should be retried.
// @Tags forms
// @Accept json
// @Produce json
// @Param kind path string true "Record kind (company, contact, lead, deal, list)"
// @Param form body service.SubmitFormRequest true "Form values"
// @Success 201 {object} service.SubmitFormResponse "Record created"
// @Success 207 {object} FormErrorResponse "Record created, list add failed"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} FormErrorResponse "Validation failed"
// @Failure 503 {object} FormErrorResponse "Storage temporarily unavailable"
// @Security BearerAuth
// @Router /forms/{kind} [post]
func (h *FormHandler) Submit(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req service.SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, ok := ParseKind(c.Param("kind"))
	if !ok {
		kind = models.EntityKind(c.Param("kind"))
	}
	req.Kind = kind

	resp, err := h.formService.Submit(c.Request.Context(), session, &req)
	if err == nil {
		c.JSON(http.StatusCreated, resp)
		return
	}
	if resp == nil {
		respondError(c, err)
		return
	}

	switch {
	case apperrors.IsListSync(err):
		c.JSON(http.StatusMultiStatus, FormErrorResponse{Error: err.Error(), SubmitFormResponse: resp})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, FormErrorResponse{Error: "validation failed", SubmitFormResponse: resp})
	case apperrors.IsTransient(err):
		c.JSON(http.StatusServiceUnavailable, FormErrorResponse{Error: msgUnavailable, SubmitFormResponse: resp})
	default:
		respondError(c, err)
	}
}
