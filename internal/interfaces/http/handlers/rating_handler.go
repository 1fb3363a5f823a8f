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

// RatingHandler handles rating endpoints
type RatingHandler struct {
	ratingUsecase *usecases.RatingUsecase
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(ratingUsecase *usecases.RatingUsecase) *RatingHandler {
	return &RatingHandler{ratingUsecase: ratingUsecase}
}

// Rate creates or replaces the customer's rating of a product
// PUT /api/v1/ratings
func (h *RatingHandler) Rate(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	rating, err := h.ratingUsecase.Rate(c.Request.Context(), customerID, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, rating)
}

// Delete removes the customer's own rating
// DELETE /api/v1/ratings/:id
func (h *RatingHandler) Delete(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid rating id"))
		return
	}

	if err := h.ratingUsecase.Delete(c.Request.Context(), customerID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Rating deleted"})
}

// ListByProduct returns a page of a product's ratings
// GET /api/v1/products/:id/ratings
func (h *RatingHandler) ListByProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	params := utils.ParsePageParams(c)
	ratings, total, err := h.ratingUsecase.ListByProduct(c.Request.Context(), productID, params.PageSize, params.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, utils.NewPage(ratings, total, params))
}
