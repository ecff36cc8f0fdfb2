// File: internal/notification/handler.go
package notification

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

// RegisterRoutes sets up the routes for notification operations.
// All routes in this group should be authenticated.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", h.getFeed)
	router.POST("/:notification_id/mark-read", h.markRead)
	router.POST("/mark-all-read", h.markAllRead)
}

func (h *Handler) getFeed(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	feed, err := h.service.GetFeed(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Notifications retrieved successfully.", feed)
}

func (h *Handler) markRead(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	notificationID := c.Param("notification_id")
	if notificationID == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Notification ID is required."))
		return
	}

	updated := h.service.MarkRead(c.Request.Context(), userID, notificationID)
	common.RespondOK(c, "Mark-as-read processed.", gin.H{"updated": updated})
}

func (h *Handler) markAllRead(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	updated := h.service.MarkAllRead(c.Request.Context(), userID)
	common.RespondOK(c, "Mark-all-as-read processed.", gin.H{"updated": updated})
}
