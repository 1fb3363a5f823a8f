package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/interfaces/http/middleware"
	"soko.backend/internal/interfaces/http/response"
	"soko.backend/internal/usecases"
)

// MerchantHandler handles merchant profile endpoints
type MerchantHandler struct {
	merchantUsecase *usecases.MerchantUsecase
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantUsecase *usecases.MerchantUsecase) *MerchantHandler {
	return &MerchantHandler{merchantUsecase: merchantUsecase}
}

// GetProfile returns the authenticated merchant's profile
// GET /api/v1/merchants/me
func (h *MerchantHandler) GetProfile(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	profile, err := h.merchantUsecase.GetProfile(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// UpdateProfile updates the authenticated merchant's profile
// PATCH /api/v1/merchants/me
func (h *MerchantHandler) UpdateProfile(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.MerchantUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.merchantUsecase.UpdateProfile(c.Request.Context(), merchantID, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// JoinMarket places the merchant in a market
// POST /api/v1/merchants/me/market
func (h *MerchantHandler) JoinMarket(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.JoinMarketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.merchantUsecase.JoinMarket(c.Request.Context(), merchantID, input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Joined market"})
}

// LeaveMarket removes the merchant from its market
// DELETE /api/v1/merchants/me/market
func (h *MerchantHandler) LeaveMarket(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	if err := h.merchantUsecase.LeaveMarket(c.Request.Context(), merchantID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Left market"})
}

// ConnectMarketer attaches a referring marketer, once
// POST /api/v1/merchants/me/marketer
func (h *MerchantHandler) ConnectMarketer(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.ConnectMarketerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.merchantUsecase.ConnectMarketer(c.Request.Context(), merchantID, input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Marketer connected"})
}

// AddAddress attaches a business address to the merchant
// POST /api/v1/merchants/me/addresses
func (h *MerchantHandler) AddAddress(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	address, err := h.merchantUsecase.AddAddress(c.Request.Context(), merchantID, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, address)
}

// DeleteAddress removes one of the merchant's addresses
// DELETE /api/v1/merchants/me/addresses/:addressId
func (h *MerchantHandler) DeleteAddress(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	addressID, err := uuid.Parse(c.Param("addressId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid address id"))
		return
	}

	if err := h.merchantUsecase.DeleteAddress(c.Request.Context(), merchantID, addressID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Address deleted"})
}

// DeleteAccount soft deletes the authenticated merchant's account
// DELETE /api/v1/merchants/me
func (h *MerchantHandler) DeleteAccount(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	if err := h.merchantUsecase.DeleteAccount(c.Request.Context(), merchantID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Account deleted"})
}
