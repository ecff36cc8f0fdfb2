// File: internal/wishlist/handler.go
package wishlist

import (
	"errors"

	"huglu_mobile_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for wishlist operations.
// All routes in this group should be authenticated.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", h.getSummary)
	router.POST("/remove", h.remove)
	router.POST("/clear", h.clearAll)
}

func (h *Handler) getSummary(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	summary, err := h.service.GetSummary(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Wishlist retrieved successfully.", summary)
}

func (h *Handler) remove(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	var req RemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(validationErrs)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid request payload."))
		return
	}

	if err := h.service.Remove(c.Request.Context(), userID, req); err != nil {
		if apiErr, ok := common.IsAPIError(err); ok {
			common.RespondWithError(c, apiErr)
			return
		}
		common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Favorite removed successfully.", nil)
}

func (h *Handler) clearAll(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	result, err := h.service.ClearAll(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, result.Outcome(), result)
}
