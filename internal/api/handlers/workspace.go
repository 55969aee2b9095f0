package handlers

import (
	"net/http"

	"teamtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkspaceHandler serves the cross-collection endpoints
type WorkspaceHandler struct {
	workspaceService service.WorkspaceServiceInterface
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(workspaceService service.WorkspaceServiceInterface) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
	}
}

// GetData handles GET /data
// @Summary Get all data
// @Description Get every user, team, project and task
// @Tags workspace
// @Produce json
// @Success 200 {object} service.DataResponse "All collections"
// @Security BearerAuth
// @Router /data [get]
func (h *WorkspaceHandler) GetData(c *gin.Context) {
	c.JSON(http.StatusOK, h.workspaceService.Data(c.Request.Context()))
}

// ImportData handles POST /data/import
// @Summary Replace all data
// @Description Replace every collection with the uploaded data. Client only.
// @Tags workspace
// @Accept json
// @Produce json
// @Param data body service.ImportRequest true "Collections to import"
// @Success 200 {object} service.DataResponse "Imported collections"
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /data/import [post]
func (h *WorkspaceHandler) ImportData(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req service.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	data, err := h.workspaceService.Import(c.Request.Context(), session, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetStats handles GET /stats
// @Summary Dashboard statistics
// @Description Count teams, projects, tasks and the tasks assigned to the current user
// @Tags workspace
// @Produce json
// @Success 200 {object} authz.Stats "Dashboard counters"
// @Security BearerAuth
// @Router /stats [get]
func (h *WorkspaceHandler) GetStats(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.workspaceService.Stats(c.Request.Context(), session))
}

// GetCapabilities handles GET /capabilities
// @Summary Current user's capabilities
// @Description Report which actions the current user may perform
// @Tags workspace
// @Produce json
// @Success 200 {object} authz.Capabilities "Capabilities"
// @Security BearerAuth
// @Router /capabilities [get]
func (h *WorkspaceHandler) GetCapabilities(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.workspaceService.Capabilities(c.Request.Context(), session))
}

// GetMyTeams handles GET /me/teams
// @Summary Teams of the current user
// @Tags workspace
// @Produce json
// @Success 200 {array} models.Team "Teams"
// @Security BearerAuth
// @Router /me/teams [get]
func (h *WorkspaceHandler) GetMyTeams(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.workspaceService.MyTeams(c.Request.Context(), session))
}

// GetMyProjects handles GET /me/projects
// @Summary Projects of the current user's teams
// @Tags workspace
// @Produce json
// @Success 200 {array} models.Project "Projects"
// @Security BearerAuth
// @Router /me/projects [get]
func (h *WorkspaceHandler) GetMyProjects(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.workspaceService.MyProjects(c.Request.Context(), session))
}

// GetMyTasks handles GET /me/tasks
// @Summary Tasks assigned to the current user
// @Tags workspace
// @Produce json
// @Success 200 {array} models.Task "Tasks"
// @Security BearerAuth
// @Router /me/tasks [get]
func (h *WorkspaceHandler) GetMyTasks(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.workspaceService.MyTasks(c.Request.Context(), session))
}

// DeleteEntity handles DELETE /delete/:collection/:id
// @Summary Delete an entity from any collection
// @Description Delete by collection name (users, teams, projects, tasks) applying that collection's rules
// @Tags workspace
// @Param collection path string true "Collection name"
// @Param id path string true "Entity ID"
// @Success 204 "Entity deleted"
// @Failure 400 {object} ErrorResponse "Unknown collection"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /delete/{collection}/{id} [delete]
func (h *WorkspaceHandler) DeleteEntity(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	if err := h.workspaceService.Delete(c.Request.Context(), session, c.Param("collection"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
