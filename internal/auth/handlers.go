package auth

import (
	"net/http"

	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/logger"
	"teamtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	sessions service.SessionServiceInterface
	users    service.UserServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(sessions service.SessionServiceInterface, users service.UserServiceInterface) *AuthHandler {
	return &AuthHandler{sessions: sessions, users: users}
}

// Login handles POST /auth/login
// @Summary Log in by name and role
// @Description Resolve the user by case-insensitive name, creating it with the requested role when absent, and issue a session token
// @Tags authentication
// @Accept json
// @Produce json
// @Param login body service.LoginRequest true "Name and role"
// @Success 200 {object} service.LoginResponse "Session token and user"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.sessions.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /auth/me
// @Summary Get the current user
// @Description Return the user behind the bearer token
// @Tags authentication
// @Produce json
// @Success 200 {object} models.User "Current user"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.users.Get(c.Request.Context(), session.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /auth/profile
// @Summary Update the current user's profile
// @Description Change the name and role of the current user. The name must not belong to another user.
// @Tags authentication
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileRequest true "New name and role"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 409 {object} map[string]interface{} "Name already taken"
// @Security BearerAuth
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	session, ok := GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), session, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func writeError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("auth request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
