package models

// CouponValidation is the response for a coupon lookup
type CouponValidation struct {
	Valid       bool    `json:"valid"`
	Coupon      string  `json:"coupon"`
	Discount    float64 `json:"discount,omitempty"`
	Description string  `json:"description,omitempty"`
	Message     string  `json:"message,omitempty"`
}

// ApplyCouponRequest asks for the discount a coupon grants on a subtotal
type ApplyCouponRequest struct {
	Subtotal   float64 `json:"subtotal"`
	CouponCode string  `json:"couponCode"`
}

// DiscountResult is the discount outcome. Error is set for unknown codes.
type DiscountResult struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalAmount    float64 `json:"finalAmount"`
	CouponCode     string  `json:"couponCode,omitempty"`
	Description    string  `json:"description,omitempty"`
	Error          string  `json:"error,omitempty"`
}
