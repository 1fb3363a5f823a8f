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
	"soko.backend/pkg/utils"
)

// MarketHandler handles market endpoints
type MarketHandler struct {
	marketUsecase *usecases.MarketUsecase
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(marketUsecase *usecases.MarketUsecase) *MarketHandler {
	return &MarketHandler{marketUsecase: marketUsecase}
}

// Create registers a market or mall
// POST /api/v1/markets
func (h *MarketHandler) Create(c *gin.Context) {
	var input entities.MarketCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	market, err := h.marketUsecase.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.InvalidateCache(c, "/api/v1/markets")
	response.Success(c, http.StatusCreated, market)
}

// Get returns a single market
// GET /api/v1/markets/:id
func (h *MarketHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid market id"))
		return
	}

	market, err := h.marketUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, market)
}

// List returns a page of markets
// GET /api/v1/markets
func (h *MarketHandler) List(c *gin.Context) {
	params := utils.ParsePageParams(c)

	markets, total, err := h.marketUsecase.List(c.Request.Context(), params.PageSize, params.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, utils.NewPage(markets, total, params))
}

// Update applies partial updates to a market
// PATCH /api/v1/markets/:id
func (h *MarketHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid market id"))
		return
	}

	var input entities.MarketUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	market, err := h.marketUsecase.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.InvalidateCache(c, "/api/v1/markets")
	response.Success(c, http.StatusOK, market)
}

// Delete soft deletes a market
// DELETE /api/v1/markets/:id
func (h *MarketHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid market id"))
		return
	}

	if err := h.marketUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	middleware.InvalidateCache(c, "/api/v1/markets")
	response.Success(c, http.StatusOK, gin.H{"message": "Market deleted"})
}

// ListMerchants returns a page of merchants trading in a market
// GET /api/v1/markets/:id/merchants
func (h *MarketHandler) ListMerchants(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid market id"))
		return
	}

	params := utils.ParsePageParams(c)
	merchants, total, err := h.marketUsecase.ListMerchants(c.Request.Context(), id, params.PageSize, params.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, utils.NewPage(merchants, total, params))
}
