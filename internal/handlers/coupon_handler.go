package handlers

import (
	"log/slog"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/coupon"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/models"
)

// couponCalculator is the interface for coupon validation and discounts
type couponCalculator interface {
	ValidateCoupon(code string) coupon.Validation
	CalculateDiscount(subtotal decimal.Decimal, code string) coupon.Result
	Stats() coupon.Stats
}

// CouponHandler handles HTTP requests for coupons
type CouponHandler struct {
	calculator couponCalculator
	logger     *slog.Logger
}

// NewCouponHandler creates a new CouponHandler
func NewCouponHandler(calculator couponCalculator, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{
		calculator: calculator,
		logger:     logger,
	}
}

// ValidateCoupon handles GET /api/coupon/{couponCode}
func (h *CouponHandler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	couponCode := chi.URLParam(r, "couponCode")

	v := h.calculator.ValidateCoupon(couponCode)
	if !v.Valid {
		WriteJSON(w, http.StatusNotFound, models.CouponValidation{
			Valid:   false,
			Coupon:  couponCode,
			Message: v.Message,
		}, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, models.CouponValidation{
		Valid:       true,
		Coupon:      v.Code,
		Discount:    v.Rate.InexactFloat64(),
		Description: v.Description,
	}, h.logger)
}

// ApplyCoupon handles POST /api/coupon/apply
// Unknown codes are not an HTTP error; the result carries the message.
func (h *CouponHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req models.ApplyCouponRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warn("failed to decode apply coupon request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if req.Subtotal < 0 || math.IsInf(req.Subtotal, 0) || math.IsNaN(req.Subtotal) {
		WriteError(w, http.StatusBadRequest, "Subtotal must be a non-negative number", h.logger)
		return
	}

	res := h.calculator.CalculateDiscount(decimal.NewFromFloat(req.Subtotal), req.CouponCode)

	WriteJSON(w, http.StatusOK, models.DiscountResult{
		Subtotal:       res.Subtotal.InexactFloat64(),
		DiscountAmount: res.DiscountAmount.InexactFloat64(),
		FinalAmount:    res.FinalAmount.InexactFloat64(),
		CouponCode:     res.Code,
		Description:    res.Description,
		Error:          res.Error,
	}, h.logger)
}

// GetStats handles GET /api/coupon/stats (for debugging/monitoring)
func (h *CouponHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.calculator.Stats(), h.logger)
}
