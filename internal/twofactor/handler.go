// File: internal/twofactor/handler.go
package twofactor

import (
	"errors"

	"huglu_mobile_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
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

// RegisterRoutes sets up the routes for two-factor operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.getStatus)
	router.POST("/request-code", h.requestCode)
	router.POST("/resend-code", h.resendCode)
	router.POST("/verify", h.verify)
	router.POST("/disable", h.disable)
}

func (h *Handler) identity(c *gin.Context) (uuid.UUID, string, bool) {
	userID := common.GetUserIDFromContext(c)
	sessionID := common.GetSessionIDFromContext(c)
	if userID == "" || sessionID == uuid.Nil {
		common.RespondWithError(c, common.ErrSessionRequired)
		return uuid.Nil, "", false
	}
	return sessionID, userID, true
}

func (h *Handler) getStatus(c *gin.Context) {
	sessionID, _, ok := h.identity(c)
	if !ok {
		return
	}

	status, err := h.service.GetStatus(c.Request.Context(), sessionID)
	if err != nil {
		common.RespondWithError(c, common.ErrInternalServer.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Two-factor status retrieved successfully.", status)
}

func (h *Handler) requestCode(c *gin.Context) {
	sessionID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	var input RequestCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(validationErrors)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	if err := h.service.RequestCode(c.Request.Context(), sessionID, userID, input.Phone); err != nil {
		h.respondServiceError(c, err)
		return
	}
	common.RespondOK(c, "Verification code sent.", nil)
}

func (h *Handler) resendCode(c *gin.Context) {
	sessionID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	if err := h.service.ResendCode(c.Request.Context(), sessionID, userID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	common.RespondOK(c, "Verification code resent.", nil)
}

func (h *Handler) verify(c *gin.Context) {
	sessionID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	var input VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(validationErrors)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	if err := h.service.Verify(c.Request.Context(), sessionID, userID, input.Code); err != nil {
		h.respondServiceError(c, err)
		return
	}
	common.RespondOK(c, "Two-factor authentication enabled.", nil)
}

func (h *Handler) disable(c *gin.Context) {
	sessionID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	var input DisableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	if err := h.service.Disable(c.Request.Context(), sessionID, userID, input.Confirm); err != nil {
		h.respondServiceError(c, err)
		return
	}
	common.RespondOK(c, "Two-factor authentication disabled.", nil)
}

func (h *Handler) respondServiceError(c *gin.Context, err error) {
	if apiErr, ok := common.IsAPIError(err); ok {
		common.RespondWithError(c, apiErr)
		return
	}
	common.RespondWithError(c, common.ErrInternalServer.WithDetails(err.Error()))
}
