package handlers

import (
	"net/http"

	apperrors "problem-selection-backend/internal/errors"
	"problem-selection-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// retryAfterSeconds is sent with 503 responses when store contention outlasted the retry budget
const retryAfterSeconds = "1"

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
	Code  string `json:"code,omitempty" example:"already_selected"`
}

// respondError maps the error taxonomy onto HTTP statuses. Unclassified
// errors are logged and answered with fallback so internals do not leak.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  string(apperrors.ConflictReasonOf(err)),
		})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsTransient(err):
		logger.WithContext(c.Request.Context()).WithError(err).Warn("store contention, asking client to retry")
		c.Header("Retry-After", retryAfterSeconds)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "service busy, please retry"})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
