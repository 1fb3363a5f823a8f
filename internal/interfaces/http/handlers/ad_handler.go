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
	"soko.backend/pkg/utils"
)

// AdHandler handles ad lifecycle endpoints
type AdHandler struct {
	adUsecase *usecases.AdUsecase
}

// NewAdHandler creates a new ad handler
func NewAdHandler(adUsecase *usecases.AdUsecase) *AdHandler {
	return &AdHandler{adUsecase: adUsecase}
}

// ActivateFree creates a free level-0 ad for the merchant's product
// POST /api/v1/ads/free/:productId
func (h *AdHandler) ActivateFree(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	ad, err := h.adUsecase.ActivateFreeAd(c.Request.Context(), merchantID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.AdsActivatedTotal.WithLabelValues("0").Inc()
	response.Success(c, http.StatusCreated, ad)
}

// InitializePayment opens a gateway checkout session for a paid ad
// POST /api/v1/ads/initialize/:level/:productId
func (h *AdHandler) InitializePayment(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	level, err := strconv.Atoi(c.Param("level"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid ad level"))
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	resp, err := h.adUsecase.InitializeAdPayment(c.Request.Context(), merchantID, level, productID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// VerifyPayment confirms an ad payment with the gateway
// POST /api/v1/ads/verify/:reference
func (h *AdHandler) VerifyPayment(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	reference := c.Param("reference")
	if reference == "" {
		response.Error(c, domainerrors.BadRequest("missing payment reference"))
		return
	}

	resp, err := h.adUsecase.VerifyAdPayment(c.Request.Context(), merchantID, reference)
	if err != nil {
		middleware.AdPaymentsVerifiedTotal.WithLabelValues("failed").Inc()
		response.Error(c, err)
		return
	}

	middleware.AdPaymentsVerifiedTotal.WithLabelValues(resp.Status).Inc()
	if resp.Ad != nil {
		middleware.AdsActivatedTotal.WithLabelValues(strconv.Itoa(resp.Ad.Level)).Inc()
	}
	response.Success(c, http.StatusOK, resp)
}

// TrackView bumps an ad's view counter
// POST /api/v1/ads/:id/view
func (h *AdHandler) TrackView(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid ad id"))
		return
	}

	if err := h.adUsecase.TrackView(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "View recorded"})
}

// TrackClick bumps an ad's click counter
// POST /api/v1/ads/:id/click
func (h *AdHandler) TrackClick(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid ad id"))
		return
	}

	if err := h.adUsecase.TrackClick(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Click recorded"})
}

// List returns a filtered page of ads
// GET /api/v1/ads?marketId=&merchantId=&all=
func (h *AdHandler) List(c *gin.Context) {
	var filter entities.AdFilter

	if raw := c.Query("marketId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid marketId"))
			return
		}
		filter.MarketID = uuid.NullUUID{UUID: id, Valid: true}
	}
	if raw := c.Query("merchantId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid merchantId"))
			return
		}
		filter.MerchantID = uuid.NullUUID{UUID: id, Valid: true}
	}
	filter.All = c.Query("all") == "true"

	params := utils.ParsePageParams(c)
	ads, total, err := h.adUsecase.List(c.Request.Context(), filter, params.PageSize, params.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, utils.NewPage(ads, total, params))
}
