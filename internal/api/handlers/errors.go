package handlers

import (
	"net/http"

	"teamtrack-backend/internal/auth"
	"teamtrack-backend/internal/authz"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError writes err with the status its type maps to. Server-side
// failures are logged; client errors are not.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).WithError(err).Error("request failed")
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// requireSession returns the session set by the auth middleware, answering
// 401 when there is none.
func requireSession(c *gin.Context) (authz.Session, bool) {
	session, ok := auth.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrSessionRequired.Error()})
		return authz.Session{}, false
	}
	return session, true
}
