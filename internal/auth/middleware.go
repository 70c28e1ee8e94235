package auth

import (
	"net/http"
	"strings"

	"gtm-crm-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and installs the caller's Session
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		// Validate token
		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		session, err := claims.Session()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		SetSession(c, session)
		c.Set("auth_claims", claims)
		c.Next()
	}
}

// SetSession stores the session on the gin context and on the request context
// so that services and loggers downstream can read it.
func SetSession(c *gin.Context, session Session) {
	c.Set(SessionKey, session)

	ctx := WithSession(c.Request.Context(), session)
	ctx = logger.ContextWith(ctx, logger.UserKey, session.Email)
	ctx = logger.ContextWith(ctx, logger.WorkspaceKey, session.WorkspaceID.String())
	c.Request = c.Request.WithContext(ctx)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}
	return tokenString, true
}
