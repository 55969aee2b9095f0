package authz

import (
	"context"

	"teamtrack-backend/internal/database/models"
)

// Session is the explicit current-user value passed into every authorization
// and store-mutating call.
type Session struct {
	UserID string      `json:"user_id"`
	Name   string      `json:"name"`
	Role   models.Role `json:"role"`
}

// NewSession builds a session for u.
func NewSession(u models.User) Session {
	return Session{UserID: u.ID, Name: u.Name, Role: u.Role}
}

// IsZero reports whether no user is attached.
func (s Session) IsZero() bool {
	return s.UserID == ""
}

type sessionKey struct{}

// WithSession attaches s to ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session attached to ctx, if any.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok && !s.IsZero()
}
