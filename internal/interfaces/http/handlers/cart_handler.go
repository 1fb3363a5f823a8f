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

// CartHandler handles cart endpoints
type CartHandler struct {
	cartUsecase *usecases.CartUsecase
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartUsecase *usecases.CartUsecase) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase}
}

// Update upserts a cart line, quantity 0 removes it
// PUT /api/v1/cart
func (h *CartHandler) Update(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CartUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	item, err := h.cartUsecase.Update(c.Request.Context(), customerID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	if item == nil {
		response.Success(c, http.StatusOK, gin.H{"message": "Line removed"})
		return
	}
	response.Success(c, http.StatusOK, item)
}

// List returns the customer's cart
// GET /api/v1/cart
func (h *CartHandler) List(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	items, err := h.cartUsecase.List(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.CartItem{}
	}

	var total int64
	for _, item := range items {
		total += item.TotalPrice
	}

	response.Success(c, http.StatusOK, gin.H{
		"items": items,
		"total": total,
	})
}

// Remove deletes a single cart line
// DELETE /api/v1/cart/:productId
func (h *CartHandler) Remove(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	if err := h.cartUsecase.RemoveLine(c.Request.Context(), customerID, productID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Line removed"})
}

// Clear empties the customer's cart
// DELETE /api/v1/cart
func (h *CartHandler) Clear(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	if err := h.cartUsecase.Clear(c.Request.Context(), customerID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Cart cleared"})
}
