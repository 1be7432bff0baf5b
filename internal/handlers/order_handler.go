package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/models"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/service"
)

// checkoutErrors maps service rejections to client errors. Anything else is a 500.
var checkoutErrors = []struct {
	err     error
	message string
}{
	{service.ErrEmptyOrder, "Order must contain at least one item"},
	{service.ErrInvalidQuantity, "Quantity must be positive"},
	{service.ErrInvalidProduct, "Invalid product"},
}

// OrderHandler serves checkout
type OrderHandler struct {
	orders *service.OrderService
	log    *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		log:    log,
	}
}

// CreateOrder handles POST /api/order. A rejected coupon is not an error;
// the order is priced in full and carries couponError.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), req)
	if err != nil {
		status, message := checkoutStatus(err)
		if status == http.StatusInternalServerError {
			h.log.Error("checkout failed", "error", err)
		} else {
			h.log.Warn("checkout rejected", "error", err, "items", len(req.Items))
		}
		WriteError(w, status, message, h.log)
		return
	}

	h.log.Info("order placed",
		"order_id", order.ID,
		"user_type", order.UserType,
		"lines", len(order.Lines),
		"subtotal", order.Subtotal,
		"discount", order.Discount,
		"total", order.Total,
		"coupon", order.CouponCode,
		"coupon_error", order.CouponError,
	)
	WriteJSON(w, http.StatusOK, order, h.log)
}

func checkoutStatus(err error) (int, string) {
	for _, e := range checkoutErrors {
		if errors.Is(err, e.err) {
			return http.StatusBadRequest, e.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}
