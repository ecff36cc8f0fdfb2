// File: internal/middleware/error.go
package middleware

import (
	"huglu_mobile_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler creates a Gin middleware for centralized error handling.
// Handlers attach errors via c.Error; anything that is not a common.APIError
// is logged and surfaced as a generic 500 so upstream details never leak.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			for _, ginErr := range c.Errors {
				apiErr, isAPIErr := common.IsAPIError(ginErr.Err)

				if isAPIErr {
					c.AbortWithStatusJSON(apiErr.StatusCode, common.ErrorResponse{
						Success: false,
						Code:    apiErr.Code,
						Message: apiErr.Message,
						Details: apiErr.Details,
					})
				} else {
					logger.Error("Unhandled application error",
						zap.Error(ginErr.Err),
						zap.String("path", c.Request.URL.Path),
						zap.Any("meta", ginErr.Meta),
						zap.String("request_id", c.GetString(RequestIDContextKey)),
					)
					genericError := common.ErrInternalServer.WithDetails("An unexpected error occurred.")
					if gin.Mode() == gin.DebugMode && ginErr.Err != nil {
						genericError = common.ErrInternalServer.WithDetails(ginErr.Err.Error())
					}
					c.AbortWithStatusJSON(genericError.StatusCode, common.ErrorResponse{
						Success: false,
						Code:    genericError.Code,
						Message: genericError.Message,
						Details: genericError.Details,
					})
				}
				return
			}
		}

		if c.Writer.Status() == 404 && len(c.Errors) == 0 {
			notFoundErr := common.ErrNotFound.WithDetails("The requested endpoint does not exist.")
			c.AbortWithStatusJSON(notFoundErr.StatusCode, common.ErrorResponse{
				Success: false,
				Code:    notFoundErr.Code,
				Message: notFoundErr.Message,
				Details: notFoundErr.Details,
			})
			return
		}
		if c.Writer.Status() == 405 && len(c.Errors) == 0 {
			methodNotAllowedErr := common.NewAPIError(405, "METHOD_NOT_ALLOWED", "The method is not allowed for the requested URL.")
			c.AbortWithStatusJSON(methodNotAllowedErr.StatusCode, common.ErrorResponse{
				Success: false,
				Code:    methodNotAllowedErr.Code,
				Message: methodNotAllowedErr.Message,
			})
			return
		}
	}
}
