// File: internal/user/handler.go
package user

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

// RegisterRoutes sets up the routes for profile and address operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile", h.getProfile)
	router.PUT("/profile", h.updateProfile)
	router.GET("/addresses", h.listAddresses)
	router.POST("/addresses", h.createAddress)
	router.PUT("/addresses/:address_id", h.updateAddress)
	router.DELETE("/addresses/:address_id", h.deleteAddress)
}

func (h *Handler) getProfile(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	common.RespondOK(c, "Profile retrieved successfully.", profile)
}

func (h *Handler) updateProfile(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	var input ProfileInput
	if !h.bind(c, &input) {
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), userID, input); err != nil {
		h.respondServiceError(c, err)
		return
	}
	common.RespondOK(c, "Profile updated successfully.", nil)
}

func (h *Handler) listAddresses(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	addresses, err := h.service.ListAddresses(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	common.RespondOK(c, "Addresses retrieved successfully.", addresses)
}

func (h *Handler) createAddress(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	var input AddressInput
	if !h.bind(c, &input) {
		return
	}

	created, err := h.service.CreateAddress(c.Request.Context(), userID, input)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	common.RespondCreated(c, "Address created successfully.", created)
}

func (h *Handler) updateAddress(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	addressID := c.Param("address_id")
	var input AddressInput
	if !h.bind(c, &input) {
		return
	}

	if err := h.service.UpdateAddress(c.Request.Context(), userID, addressID, input); err != nil {
		h.respondServiceError(c, err)
		return
	}
	common.RespondOK(c, "Address updated successfully.", nil)
}

func (h *Handler) deleteAddress(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrSessionRequired)
		return
	}

	addressID := c.Param("address_id")
	if err := h.service.DeleteAddress(c.Request.Context(), userID, addressID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	common.RespondNoContent(c)
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
	common.RespondWithError(c, common.ErrBadGateway.WithDetails(err.Error()))
}
