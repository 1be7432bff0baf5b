package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/models"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/service"
)

// PricingHandler exposes the price calculator directly
type PricingHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(service *service.ProductService, logger *slog.Logger) *PricingHandler {
	return &PricingHandler{
		service: service,
		logger:  logger,
	}
}

// Quote handles POST /api/pricing/quote
func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warn("failed to decode quote request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, h.service.Quote(req), h.logger)
}

// Season handles GET /api/pricing/season
func (h *PricingHandler) Season(w http.ResponseWriter, r *http.Request) {
	now := h.service.Now()
	resp := models.SeasonResponse{
		Date:       now.Format(time.DateOnly),
		Multiplier: 1.0,
	}

	if season, ok := h.service.CurrentSeason(); ok {
		resp.Season = season.Name
		resp.Start = season.Start.String()
		resp.End = season.End.String()
		resp.Multiplier = season.Multiplier
	}

	WriteJSON(w, http.StatusOK, resp, h.logger)
}
