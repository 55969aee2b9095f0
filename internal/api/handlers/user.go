package handlers

import (
	"net/http"

	"teamtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers handles GET /users
// @Summary List all users
// @Description Get every user ordered by creation time
// @Tags users
// @Produce json
// @Success 200 {array} models.User "Successfully retrieved users"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.userService.List(c.Request.Context()))
}

// ListAssignableUsers handles GET /users/assignable
// @Summary List assignable users
// @Description Get the users tasks can be assigned to (clients and members)
// @Tags users
// @Produce json
// @Success 200 {array} models.User "Successfully retrieved users"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /users/assignable [get]
func (h *UserHandler) ListAssignableUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.userService.Assignable(c.Request.Context()))
}
