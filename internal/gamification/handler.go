// File: internal/gamification/handler.go
package gamification

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

// RegisterRoutes sets up the routes for gamification operations.
// All routes in this group should be authenticated.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/overview", h.getOverview)
	router.GET("/quests", h.getQuestBoard)
	router.POST("/quests/:quest_id/claim", h.claimQuest)
	router.GET("/badges", h.getBadgeCase)
	router.GET("/daily-rewards", h.getRewardCalendar)
	router.POST("/daily-rewards/claim", h.claimDailyReward)
	router.GET("/streak", h.getStreak)
}

func (h *Handler) getOverview(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	overview, err := h.service.GetOverview(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Gamification overview retrieved successfully.", overview)
}

func (h *Handler) getQuestBoard(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	board, err := h.service.GetQuestBoard(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Quests retrieved successfully.", board)
}

func (h *Handler) claimQuest(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	questID := c.Param("quest_id")
	if questID == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Quest ID is required."))
		return
	}

	if err := h.service.ClaimQuest(c.Request.Context(), userID, questID); err != nil {
		if apiErr, ok := common.IsAPIError(err); ok {
			common.RespondWithError(c, apiErr)
			return
		}
		common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Quest reward claimed successfully.", nil)
}

func (h *Handler) getBadgeCase(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	badgeCase, err := h.service.GetBadgeCase(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Badges retrieved successfully.", badgeCase)
}

func (h *Handler) getRewardCalendar(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	calendar, err := h.service.GetRewardCalendar(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Daily rewards retrieved successfully.", calendar)
}

func (h *Handler) claimDailyReward(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	if err := h.service.ClaimDailyReward(c.Request.Context(), userID); err != nil {
		common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Daily reward claimed successfully.", nil)
}

func (h *Handler) getStreak(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	streak, err := h.service.GetStreak(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Streak retrieved successfully.", streak)
}
