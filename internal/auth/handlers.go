package auth

import (
	"net/http"

	apperrors "gtm-crm-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth/login
// @Summary Sign in with email and password
// @Description Verify the user's password and issue a bearer token scoped to their workspace
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "User credentials"
// @Success 200 {object} LoginResponse "Signed in"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Failure 503 {object} map[string]interface{} "Service temporarily unavailable"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case apperrors.IsAuthentication(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case apperrors.IsTransient(err):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable, please retry"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ValidateToken is a helper endpoint to validate JWT tokens
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token to validate" example("Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...")
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}
