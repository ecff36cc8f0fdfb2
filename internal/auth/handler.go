// File: internal/auth/handler.go
package auth

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

// RegisterPublicRoutes sets up the unauthenticated auth routes.
func (h *Handler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.POST("/login", h.login)
	router.POST("/register", h.register)
}

// RegisterProtectedRoutes sets up the auth routes that need a session.
func (h *Handler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/logout", h.logout)
	router.POST("/onboarding-seen", h.onboardingSeen)
}

func (h *Handler) login(c *gin.Context) {
	var input LoginInput
	if !h.bind(c, &input) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	common.RespondOK(c, "Logged in successfully.", result)
}

func (h *Handler) register(c *gin.Context) {
	var input RegisterInput
	if !h.bind(c, &input) {
		return
	}

	result, err := h.service.Register(c.Request.Context(), input)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	common.RespondCreated(c, "Account created successfully.", result)
}

func (h *Handler) logout(c *gin.Context) {
	sessionID := common.GetSessionIDFromContext(c)
	if sessionID == uuid.Nil {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	if err := h.service.Logout(c.Request.Context(), sessionID); err != nil {
		common.RespondWithError(c, common.ErrInternalServer.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Logged out successfully.", nil)
}

func (h *Handler) onboardingSeen(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	sessionID := common.GetSessionIDFromContext(c)
	if userID == "" || sessionID == uuid.Nil {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	if err := h.service.MarkOnboardingSeen(c.Request.Context(), sessionID, userID); err != nil {
		common.RespondWithError(c, common.ErrInternalServer.WithDetails(err.Error()))
		return
	}
	common.RespondOK(c, "Onboarding marked as seen.", nil)
}

func (h *Handler) bind(c *gin.Context, input interface{}) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(validationErrors)))
			return false
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return false
	}
	return true
}

func (h *Handler) respondServiceError(c *gin.Context, err error) {
	if apiErr, ok := common.IsAPIError(err); ok {
		common.RespondWithError(c, apiErr)
		return
	}
	common.RespondWithError(c, common.ErrInternalServer.WithDetails(err.Error()))
}
