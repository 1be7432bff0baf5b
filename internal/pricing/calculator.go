// Package pricing computes sellable unit prices from a catalog base price and
// a set of independent multiplicative adjustment factors.
//
// A price is
//
//	basePrice × time × demand × inventory × user
//
// rounded to the cent, half away from zero. Every factor is neutral (1.0)
// until it is applied. Nothing in this package performs I/O or keeps shared
// mutable state, so prices can be computed on any request path without
// coordination.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the precision final prices are rounded to.
const CurrencyPlaces = 2

// Factors is the breakdown of multipliers applied to a base price.
type Factors struct {
	Time      decimal.Decimal
	Demand    decimal.Decimal
	Inventory decimal.Decimal
	User      decimal.Decimal
}

// Product returns the combined multiplier.
func (f Factors) Product() decimal.Decimal {
	return f.Time.Mul(f.Demand).Mul(f.Inventory).Mul(f.User)
}

// Calculation is an immutable price builder. Each With method returns a new
// Calculation, so a partially built value can be shared as a template.
type Calculation struct {
	rules     Rules
	basePrice decimal.Decimal
	time      decimal.Decimal
	demand    decimal.Decimal
	inventory decimal.Decimal
	user      decimal.Decimal
}

// New starts a calculation with DefaultRules.
func New() Calculation {
	return NewWithRules(DefaultRules())
}

// NewWithRules starts a calculation whose markups come from rules.
func NewWithRules(rules Rules) Calculation {
	return Calculation{rules: rules.orDefault()}
}

// WithBasePrice sets the catalog price. Negative or non-finite prices become 0.
func (c Calculation) WithBasePrice(price float64) Calculation {
	if !finite(price) || price < 0 {
		c.basePrice = decimal.Zero
		return c
	}
	c.basePrice = decimal.NewFromFloat(price)
	return c
}

// WithTimeFactor sets the seasonal multiplier directly.
func (c Calculation) WithTimeFactor(multiplier float64) Calculation {
	c.time = TimeFactor(multiplier)
	return c
}

// WithDemand marks the price up when salesVelocity is strictly greater than threshold.
func (c Calculation) WithDemand(salesVelocity, threshold float64) Calculation {
	c.demand = c.rulesOrDefault().DemandFactor(salesVelocity, threshold)
	return c
}

// WithInventory marks the price up when currentStock is at or below minStock.
func (c Calculation) WithInventory(currentStock, minStock float64) Calculation {
	c.inventory = c.rulesOrDefault().InventoryFactor(currentStock, minStock)
	return c
}

// WithUser applies the category discount for userType.
func (c Calculation) WithUser(userType string) Calculation {
	c.user = c.rulesOrDefault().UserFactor(userType)
	return c
}

// BasePrice returns the normalized base price.
func (c Calculation) BasePrice() decimal.Decimal {
	return c.basePrice
}

// Factors returns the applied factors, with unset ones reported as 1.
func (c Calculation) Factors() Factors {
	return Factors{
		Time:      orNeutral(c.time),
		Demand:    orNeutral(c.demand),
		Inventory: orNeutral(c.inventory),
		User:      orNeutral(c.user),
	}
}

// Price returns the final price rounded to the cent.
func (c Calculation) Price() decimal.Decimal {
	return c.basePrice.Mul(c.Factors().Product()).Round(CurrencyPlaces)
}

// Float64 returns Price as a float64 for JSON and templates.
func (c Calculation) Float64() float64 {
	return c.Price().InexactFloat64()
}

func (c Calculation) rulesOrDefault() Rules {
	return c.rules.orDefault()
}

// orNeutral treats the zero decimal as "never applied". No factor function
// ever returns zero, so the two cannot be confused.
func orNeutral(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return neutral
	}
	return d
}

// Inputs carries everything a price depends on, supplied together.
type Inputs struct {
	BasePrice float64
	// SeasonalMultiplier is resolved by the caller, usually from a Calendar.
	// Zero means neutral.
	SeasonalMultiplier float64
	SalesVelocity      float64
	Stock              float64
	UserType           string
}

// Quote is the outcome of a price calculation.
type Quote struct {
	BasePrice    decimal.Decimal
	Factors      Factors
	UserCategory UserCategory
	Price        decimal.Decimal
}

// Calculate prices in using the thresholds and markups in rules.
// A zero Rules value behaves like DefaultRules.
func Calculate(in Inputs, rules Rules) Quote {
	rules = rules.orDefault()

	c := NewWithRules(rules).
		WithBasePrice(in.BasePrice).
		WithTimeFactor(in.SeasonalMultiplier).
		WithDemand(in.SalesVelocity, rules.DemandThreshold).
		WithInventory(in.Stock, rules.MinStock).
		WithUser(in.UserType)

	return Quote{
		BasePrice:    c.BasePrice(),
		Factors:      c.Factors(),
		UserCategory: ParseUserCategory(in.UserType),
		Price:        c.Price(),
	}
}

// RoundCurrency rounds v to the cent, half away from zero.
// Non-finite values round to 0.
func RoundCurrency(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(CurrencyPlaces).InexactFloat64()
}
