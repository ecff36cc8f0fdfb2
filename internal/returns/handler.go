// File: internal/returns/handler.go
package returns

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

// RegisterRoutes sets up the routes for return request operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", h.getList)
	router.POST("/:request_id/cancel", h.cancel)
}

func (h *Handler) getList(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	list, err := h.service.GetList(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
		return
	}

	// The upstream returns the full history; page it here for the screen.
	page, pageSize := common.GetPaginationParams(c)
	pagination := common.NewPagination(int64(len(list.Items)), page, pageSize)
	start := (page - 1) * pageSize
	if start > len(list.Items) {
		start = len(list.Items)
	}
	end := start + pageSize
	if end > len(list.Items) {
		end = len(list.Items)
	}
	common.RespondPaginated(c, "Return requests retrieved successfully.", list.Items[start:end], pagination)
}

func (h *Handler) cancel(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	requestID := c.Param("request_id")
	if requestID == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Return request ID is required."))
		return
	}

	if err := h.service.Cancel(c.Request.Context(), userID, requestID); err != nil {
		if apiErr, ok := common.IsAPIError(err); ok {
			common.RespondWithError(c, apiErr)
			return
		}
		common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Return request cancelled successfully.", nil)
}
