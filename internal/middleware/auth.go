// File: internal/middleware/auth.go
package middleware

import (
	"huglu_mobile_backend/internal/common"
	"huglu_mobile_backend/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware creates a Gin middleware for JWT authentication.
// A token with an empty user ID is the "missing userId" class of failure and is
// rejected with SESSION_REQUIRED so clients redirect to login.
func AuthMiddleware(tokenService shared.TokenService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := common.GetTokenFromContext(c)
		if tokenString == "" {
			logger.Debug("Authorization header missing or malformed")
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header format must be 'Bearer <token>'."))
			return
		}

		claims, err := tokenService.ValidateToken(tokenString)
		if err != nil {
			logger.Warn("Token validation failed", zap.Error(err))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("The provided token is invalid or has expired."))
			return
		}

		if claims.UserID == "" {
			common.RespondWithError(c, common.ErrSessionRequired)
			return
		}

		c.Set(common.UserIDKey, claims.UserID)
		c.Set(common.SessionIDKey, claims.SessionID)
		c.Set(common.TenantIDKey, claims.TenantID)

		logger.Debug("User authenticated successfully",
			zap.String("userID", claims.UserID),
			zap.String("sessionID", claims.SessionID.String()),
		)

		c.Next()
	}
}
