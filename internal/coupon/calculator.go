package coupon

import (
	"github.com/shopspring/decimal"
)

// InvalidCodeMessage is reported for any code that is not in the registry.
const InvalidCodeMessage = "Invalid coupon code"

// Validation is the outcome of checking a code.
type Validation struct {
	Valid       bool
	Code        string
	Rate        decimal.Decimal
	Description string
	Message     string
}

// Result is the discount a code grants on a subtotal.
// Error is set instead of returning an error so callers can show it inline.
type Result struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
	Code           string
	Description    string
	Error          string
}

// Applied reports whether a discount was granted.
func (r Result) Applied() bool {
	return r.Error == ""
}

// Calculator computes coupon discounts. It holds no mutable state.
type Calculator struct {
	registry *Registry
}

// NewCalculator returns a Calculator over registry, or over DefaultRegistry when nil.
func NewCalculator(registry *Registry) *Calculator {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Calculator{registry: registry}
}

// Registry returns the registry the calculator reads.
func (c *Calculator) Registry() *Registry {
	return c.registry
}

// Stats reports the registry contents.
func (c *Calculator) Stats() Stats {
	return c.registry.Stats()
}

// ValidateCoupon looks code up case-insensitively.
func (c *Calculator) ValidateCoupon(code string) Validation {
	rule, ok := c.registry.Lookup(code)
	if !ok {
		return Validation{
			Valid:   false,
			Code:    CanonicalCode(code),
			Message: InvalidCodeMessage,
		}
	}
	return Validation{
		Valid:       true,
		Code:        rule.Code,
		Rate:        rule.Rate,
		Description: rule.Description,
	}
}

// CalculateDiscount applies code to subtotal. The amount is the exact
// product subtotal × rate; callers round when they present or charge it.
func (c *Calculator) CalculateDiscount(subtotal decimal.Decimal, code string) Result {
	v := c.ValidateCoupon(code)
	if !v.Valid {
		return Result{
			Subtotal:       subtotal,
			DiscountAmount: decimal.Zero,
			FinalAmount:    subtotal,
			Code:           v.Code,
			Error:          v.Message,
		}
	}

	amount := subtotal.Mul(v.Rate)

	return Result{
		Subtotal:       subtotal,
		DiscountAmount: amount,
		FinalAmount:    subtotal.Sub(amount),
		Code:           v.Code,
		Description:    v.Description,
	}
}
