package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"soko.backend/internal/interfaces/http/response"
	"soko.backend/internal/usecases"
	"soko.backend/pkg/utils"
)

// StatsHandler handles admin dashboard endpoints
type StatsHandler struct {
	statsUsecase *usecases.StatsUsecase
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsUsecase *usecases.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

// Platform returns platform-wide counts and revenue figures
// GET /api/v1/stats
func (h *StatsHandler) Platform(c *gin.Context) {
	stats, err := h.statsUsecase.Platform(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// Transactions returns a page of payment transactions
// GET /api/v1/stats/transactions
func (h *StatsHandler) Transactions(c *gin.Context) {
	params := utils.ParsePageParams(c)

	txns, total, err := h.statsUsecase.Transactions(c.Request.Context(), params.PageSize, params.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, utils.NewPage(txns, total, params))
}
