package auth

import (
	"net/http"

	apperrors "problem-selection-backend/internal/errors"
	"problem-selection-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/v1/auth/login
// @Summary Team login
// @Description Authenticate a team with its ID and password and receive a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Team credentials"
// @Success 200 {object} LoginResponse "Login successful"
// @Failure 400 {object} map[string]interface{} "Team ID or password missing"
// @Failure 401 {object} map[string]interface{} "Invalid team ID or password"
// @Failure 403 {object} map[string]interface{} "Team account is inactive"
// @Failure 429 {object} map[string]interface{} "Too many login attempts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team ID and password are required"})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAuthentication(err):
			logger.WithContext(c.Request.Context()).WithField("login_team", req.TeamID).Info("login rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logger.WithContext(c.Request.Context()).WithError(err).Error("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error during login"})
		}
		return
	}

	logger.WithContext(c.Request.Context()).WithField("login_team", resp.Team.TeamID).Info("team logged in")
	c.JSON(http.StatusOK, resp)
}
