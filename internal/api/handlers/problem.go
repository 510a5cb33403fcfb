package handlers

import (
	"net/http"

	"problem-selection-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProblemHandler handles HTTP requests for problem statements
type ProblemHandler struct {
	problemService service.ProblemServiceInterface
}

// NewProblemHandler creates a new problem handler
func NewProblemHandler(problemService service.ProblemServiceInterface) *ProblemHandler {
	return &ProblemHandler{
		problemService: problemService,
	}
}

// ListProblems handles GET /problems
// @Summary List problem statements
// @Description List active problems with their remaining capacity and the teams that selected them
// @Tags problems
// @Produce json
// @Param category query string false "Category filter" Enums(Web Development, AI/ML, Mobile App, Blockchain, IoT, Other)
// @Param difficulty query string false "Difficulty filter" Enums(Easy, Medium, Hard)
// @Success 200 {object} service.ProblemListResponse "Successfully retrieved problems"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /problems [get]
func (h *ProblemHandler) ListProblems(c *gin.Context) {
	resp, err := h.problemService.ListProblems(c.Request.Context(), c.Query("category"), c.Query("difficulty"))
	if err != nil {
		respondError(c, err, "failed to list problems")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProblem handles GET /problems/:id
// @Summary Get problem statement
// @Description Get a problem by its UUID or human identifier (e.g. PS001)
// @Tags problems
// @Produce json
// @Param id path string true "Problem UUID or identifier"
// @Success 200 {object} service.ProblemResponse "Successfully retrieved problem"
// @Failure 404 {object} ErrorResponse "Problem not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /problems/{id} [get]
func (h *ProblemHandler) GetProblem(c *gin.Context) {
	resp, err := h.problemService.GetProblem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to get problem")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAvailability handles GET /problems/:id/availability
// @Summary Problem availability
// @Description Report whether a problem still has open slots
// @Tags problems
// @Produce json
// @Param id path string true "Problem UUID or identifier"
// @Success 200 {object} service.AvailabilityResponse "Availability"
// @Failure 404 {object} ErrorResponse "Problem not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /problems/{id}/availability [get]
func (h *ProblemHandler) GetAvailability(c *gin.Context) {
	resp, err := h.problemService.GetAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to check availability")
		return
	}

	c.JSON(http.StatusOK, resp)
}
