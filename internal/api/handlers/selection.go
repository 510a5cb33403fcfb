package handlers

import (
	"net/http"

	"problem-selection-backend/internal/auth"
	apperrors "problem-selection-backend/internal/errors"
	"problem-selection-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SelectionHandler handles HTTP requests for problem selection
type SelectionHandler struct {
	selectionService service.SelectionServiceInterface
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(selectionService service.SelectionServiceInterface) *SelectionHandler {
	return &SelectionHandler{
		selectionService: selectionService,
	}
}

// SelectProblem handles POST /selection
// @Summary Select a problem statement
// @Description Bind the authenticated team to a problem. A team selects exactly once and a problem accepts at most maxTeams teams.
// @Tags selection
// @Accept json
// @Produce json
// @Param request body service.SelectProblemRequest true "Team and problem identifiers"
// @Success 200 {object} service.SelectionResponse "Problem selected"
// @Failure 400 {object} ErrorResponse "Invalid request, team already selected, or problem full"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Selecting on behalf of another team"
// @Failure 404 {object} ErrorResponse "Team or problem not found"
// @Failure 503 {object} ErrorResponse "Contention persisted, retry later"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /selection [post]
func (h *SelectionHandler) SelectProblem(c *gin.Context) {
	identity, ok := auth.GetTeamIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrMissingCredentials.Error()})
		return
	}

	var req service.SelectProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.selectionService.SelectProblem(c.Request.Context(), identity, &req)
	if err != nil {
		respondError(c, err, "server error during selection")
		return
	}

	c.JSON(http.StatusOK, resp)
}
