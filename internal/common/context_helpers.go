// File: internal/common/context_helpers.go
package common

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetTokenFromContext retrieves the JWT token string from the Authorization header.
// Returns an empty string if not found.
func GetTokenFromContext(c *gin.Context) string {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], AuthorizationTypeBearer) {
		return ""
	}
	return parts[1]
}

// GetUserIDFromContext retrieves the user ID from the Gin context.
// Returns an empty string if not set by the auth middleware.
func GetUserIDFromContext(c *gin.Context) string {
	val, exists := c.Get(UserIDKey)
	if !exists {
		return ""
	}
	userID, ok := val.(string)
	if !ok {
		return ""
	}
	return userID
}

// GetSessionIDFromContext retrieves the session ID from the Gin context.
// Returns uuid.Nil if not found or not a UUID.
func GetSessionIDFromContext(c *gin.Context) uuid.UUID {
	val, exists := c.Get(SessionIDKey)
	if !exists {
		return uuid.Nil
	}
	sessionID, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return sessionID
}

// GetTenantIDFromContext retrieves the tenant ID from the Gin context.
func GetTenantIDFromContext(c *gin.Context) string {
	val, exists := c.Get(TenantIDKey)
	if !exists {
		return ""
	}
	tenantID, ok := val.(string)
	if !ok {
		return ""
	}
	return tenantID
}
