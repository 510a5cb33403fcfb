package handlers

import (
	"net/http"

	"problem-selection-backend/internal/auth"
	apperrors "problem-selection-backend/internal/errors"
	"problem-selection-backend/internal/service"

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

// GetTeam handles GET /teams/:teamId
// @Summary Get team details
// @Description Get the calling team's record including its selected problem. Other teams are not readable.
// @Tags teams
// @Produce json
// @Param teamId path string true "Team identifier (e.g. TEAM001)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	identity, ok := auth.GetTeamIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrMissingCredentials.Error()})
		return
	}

	h.respondWithTeam(c, identity, c.Param("teamId"))
}

// GetMyTeam handles GET /teams/me
// @Summary Get own team
// @Description Get the authenticated team's record including its selected problem
// @Tags teams
// @Produce json
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/me [get]
func (h *TeamHandler) GetMyTeam(c *gin.Context) {
	identity, ok := auth.GetTeamIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrMissingCredentials.Error()})
		return
	}

	h.respondWithTeam(c, identity, identity.TeamCode)
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List every team with the problem it selected, without contact details
// @Tags teams
// @Produce json
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	resp, err := h.teamService.ListTeams(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list teams")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TeamHandler) respondWithTeam(c *gin.Context, identity *auth.TeamIdentity, teamCode string) {
	team, err := h.teamService.GetTeamDetails(c.Request.Context(), identity, teamCode)
	if err != nil {
		respondError(c, err, "failed to get team")
		return
	}

	c.JSON(http.StatusOK, team)
}
