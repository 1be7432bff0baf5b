package models

// OrderRequest represents an incoming checkout request
type OrderRequest struct {
	CouponCode string      `json:"couponCode,omitempty"`
	UserType   string      `json:"userType,omitempty"`
	Items      []OrderItem `json:"items"`
}

// OrderItem represents a single item in an order
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderLine is a priced order item
type OrderLine struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// Order represents a confirmed order.
// CouponError is set when a supplied coupon was rejected; the order still
// goes through at full price.
type Order struct {
	ID                string          `json:"id"`
	UserType          string          `json:"userType"`
	Items             []OrderItem     `json:"items"`
	Products          []PricedProduct `json:"products"`
	Lines             []OrderLine     `json:"lines"`
	Subtotal          float64         `json:"subtotal"`
	Discount          float64         `json:"discount"`
	Total             float64         `json:"total"`
	CouponCode        string          `json:"couponCode,omitempty"`
	CouponDescription string          `json:"couponDescription,omitempty"`
	CouponError       string          `json:"couponError,omitempty"`
}
