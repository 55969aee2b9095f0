package handlers

import (
	"net/http"

	"teamtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams handles GET /teams
// @Summary List all teams
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team "Successfully retrieved teams"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	c.JSON(http.StatusOK, h.teamService.List(c.Request.Context()))
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team. Members may be given by id or by name; unknown names become new members.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.SaveTeamRequest true "Team data"
// @Success 201 {object} models.Team "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req service.SaveTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.Save(c.Request.Context(), session, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body service.SaveTeamRequest true "Team data"
// @Success 200 {object} models.Team "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req service.SaveTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.ID = c.Param("id")

	team, err := h.teamService.Save(c.Request.Context(), session, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete a team. Its projects are kept.
// @Tags teams
// @Param id path string true "Team ID"
// @Success 204 "Team deleted"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), session, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTeamMembers handles GET /teams/:id/members
// @Summary List team members
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} models.User "Successfully retrieved members"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/members [get]
func (h *TeamHandler) GetTeamMembers(c *gin.Context) {
	members, err := h.teamService.Members(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}
