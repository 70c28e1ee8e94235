package auth

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionKey is the gin context key holding the authenticated Session
const SessionKey = "session"

type sessionContextKey struct{}

// Session identifies the authenticated caller. It is passed explicitly to every
// service call that reads or writes workspace data.
type Session struct {
	UserID      uuid.UUID `json:"user_id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Email       string    `json:"email"`
}

// IsZero reports whether the session carries no identity
func (s Session) IsZero() bool {
	return s.UserID == uuid.Nil || s.WorkspaceID == uuid.Nil
}

// WithSession returns a copy of ctx carrying s
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// FromContext returns the Session stored by WithSession
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionContextKey{}).(Session)
	return s, ok && !s.IsZero()
}

// GetSession is a helper function to extract the session set by RequireAuth
func GetSession(c *gin.Context) (Session, bool) {
	value, exists := c.Get(SessionKey)
	if !exists {
		return Session{}, false
	}
	s, ok := value.(Session)
	return s, ok && !s.IsZero()
}
