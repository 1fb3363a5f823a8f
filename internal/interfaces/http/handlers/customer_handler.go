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

// CustomerHandler handles customer profile endpoints
type CustomerHandler struct {
	customerUsecase *usecases.CustomerUsecase
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerUsecase *usecases.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{customerUsecase: customerUsecase}
}

// GetProfile returns the authenticated customer's profile
// GET /api/v1/customers/me
func (h *CustomerHandler) GetProfile(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	profile, err := h.customerUsecase.GetProfile(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// UpdateProfile updates the authenticated customer's profile
// PATCH /api/v1/customers/me
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CustomerUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.customerUsecase.UpdateProfile(c.Request.Context(), customerID, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// AddAddress attaches an address to the authenticated customer
// POST /api/v1/customers/me/addresses
func (h *CustomerHandler) AddAddress(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	address, err := h.customerUsecase.AddAddress(c.Request.Context(), customerID, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, address)
}

// DeleteAddress removes one of the customer's addresses
// DELETE /api/v1/customers/me/addresses/:addressId
func (h *CustomerHandler) DeleteAddress(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	addressID, err := uuid.Parse(c.Param("addressId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid address id"))
		return
	}

	if err := h.customerUsecase.DeleteAddress(c.Request.Context(), customerID, addressID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Address deleted"})
}

// DeleteAccount removes the authenticated customer's account
// DELETE /api/v1/customers/me
func (h *CustomerHandler) DeleteAccount(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	if err := h.customerUsecase.DeleteAccount(c.Request.Context(), customerID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Account deleted"})
}
