package auth

import (
	"net/http"
	"strings"

	apperrors "problem-selection-backend/internal/errors"
	"problem-selection-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	identityContextKey = "team_identity"
	teamIDContextKey   = "team_id"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service AuthServiceInterface
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service AuthServiceInterface) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token, resolves the team and sets it on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingCredentials.Error()})
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingCredentials.Error()})
			return
		}

		identity, err := m.service.ResolveIdentity(c.Request.Context(), tokenString)
		if err != nil {
			if apperrors.IsAuthentication(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			if apperrors.IsAuthorization(err) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
				return
			}
			logger.WithContext(c.Request.Context()).WithError(err).Error("failed to resolve team identity")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(identityContextKey, identity)
		c.Set(teamIDContextKey, identity.TeamCode)
		c.Request = c.Request.WithContext(logger.WithValue(c.Request.Context(), logger.TeamIDKey, identity.TeamCode))

		c.Next()
	}
}

// GetTeamIdentity is a helper function to extract the authenticated team from context
func GetTeamIdentity(c *gin.Context) (*TeamIdentity, bool) {
	identity, exists := c.Get(identityContextKey)
	if !exists {
		return nil, false
	}

	teamIdentity, ok := identity.(*TeamIdentity)
	return teamIdentity, ok
}

// GetTeamID is a helper function to extract the authenticated team's identifier from context
func GetTeamID(c *gin.Context) (string, bool) {
	teamID, exists := c.Get(teamIDContextKey)
	if !exists {
		return "", false
	}

	id, ok := teamID.(string)
	return id, ok
}
