// File: internal/referral/handler.go
package referral

import (
	"huglu_mobile_backend/internal/common"

	"github.com/gin-gonic/gin"
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

// RegisterRoutes sets up the routes for referral operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", h.getView)
}

func (h *Handler) getView(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	view, err := h.service.GetView(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Referral information retrieved successfully.", view)
}
