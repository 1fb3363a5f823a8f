package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/interfaces/http/middleware"
	"soko.backend/internal/interfaces/http/response"
	"soko.backend/internal/usecases"
)

// MarketerHandler handles referral-program endpoints
type MarketerHandler struct {
	marketerUsecase *usecases.MarketerUsecase
}

// NewMarketerHandler creates a new marketer handler
func NewMarketerHandler(marketerUsecase *usecases.MarketerUsecase) *MarketerHandler {
	return &MarketerHandler{marketerUsecase: marketerUsecase}
}

// Register upgrades the authenticated customer to a marketer
// POST /api/v1/marketers
func (h *MarketerHandler) Register(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.MarketerRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	marketer, err := h.marketerUsecase.Register(c.Request.Context(), customerID, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, marketer)
}

// GetProfile returns the authenticated customer's marketer profile
// GET /api/v1/marketers/me
func (h *MarketerHandler) GetProfile(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	marketer, err := h.marketerUsecase.GetByCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, marketer)
}

// Earnings returns the marketer's earnings with totals
// GET /api/v1/marketers/me/earnings?paid=
func (h *MarketerHandler) Earnings(c *gin.Context) {
	customerID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var paid *bool
	if raw := c.Query("paid"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid paid filter"))
			return
		}
		paid = &parsed
	}

	summary, err := h.marketerUsecase.Earnings(c.Request.Context(), customerID, paid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

// Verify flips a marketer's verification flag
// PATCH /api/v1/marketers/:id/verify
func (h *MarketerHandler) Verify(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid marketer id"))
		return
	}

	var input struct {
		Verified bool `json:"verified"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.marketerUsecase.SetVerified(c.Request.Context(), id, input.Verified); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Marketer updated"})
}

// Payout marks every unpaid earning of a marketer as paid
// POST /api/v1/marketers/:id/payout
func (h *MarketerHandler) Payout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid marketer id"))
		return
	}

	n, err := h.marketerUsecase.Payout(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":  "Payout recorded",
		"earnings": n,
	})
}
