package pricing

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// UserCategory identifies the kind of shopper a price is computed for.
type UserCategory string

const (
	UserRegular UserCategory = "regular"
	UserStudent UserCategory = "student"
	UserFaculty UserCategory = "faculty"
	UserAlumni  UserCategory = "alumni"
)

// Defaults used for any Rules field left at zero.
const (
	DefaultDemandThreshold = 10
	DefaultDemandMarkup    = 1.1
	DefaultMinStock        = 5
	DefaultScarcityMarkup  = 1.15
)

var neutral = decimal.NewFromInt(1)

// ParseUserCategory maps any string onto a known category.
// Unrecognized values, including the empty string, map to UserRegular.
func ParseUserCategory(s string) UserCategory {
	switch UserCategory(strings.ToLower(strings.TrimSpace(s))) {
	case UserStudent:
		return UserStudent
	case UserFaculty:
		return UserFaculty
	case UserAlumni:
		return UserAlumni
	default:
		return UserRegular
	}
}

// Rules holds the thresholds and multipliers the factor functions apply.
type Rules struct {
	DemandThreshold float64
	DemandMarkup    float64
	MinStock        float64
	ScarcityMarkup  float64
	UserFactors     map[UserCategory]float64
}

// DefaultRules returns the marketplace pricing rules.
func DefaultRules() Rules {
	return Rules{
		DemandThreshold: DefaultDemandThreshold,
		DemandMarkup:    DefaultDemandMarkup,
		MinStock:        DefaultMinStock,
		ScarcityMarkup:  DefaultScarcityMarkup,
		UserFactors:     defaultUserFactors(),
	}
}

func defaultUserFactors() map[UserCategory]float64 {
	return map[UserCategory]float64{
		UserStudent: 0.90,
		UserFaculty: 0.85,
		UserAlumni:  0.95,
	}
}

// Validate reports whether the rules produce sane multipliers.
func (r Rules) Validate() error {
	if !finite(r.DemandThreshold) || !finite(r.MinStock) {
		return fmt.Errorf("thresholds must be finite")
	}
	if !finite(r.DemandMarkup) || r.DemandMarkup <= 0 {
		return fmt.Errorf("demand markup must be positive, got %v", r.DemandMarkup)
	}
	if !finite(r.ScarcityMarkup) || r.ScarcityMarkup <= 0 {
		return fmt.Errorf("scarcity markup must be positive, got %v", r.ScarcityMarkup)
	}
	for category, f := range r.UserFactors {
		if !finite(f) || f <= 0 || f > 1 {
			return fmt.Errorf("user factor for %q must be in (0, 1], got %v", category, f)
		}
	}
	return nil
}

// orDefault fills each zero field with its default, keeping the rest.
// A nil UserFactors map gets the default discounts.
func (r Rules) orDefault() Rules {
	if r.DemandThreshold == 0 {
		r.DemandThreshold = DefaultDemandThreshold
	}
	if r.DemandMarkup == 0 {
		r.DemandMarkup = DefaultDemandMarkup
	}
	if r.MinStock == 0 {
		r.MinStock = DefaultMinStock
	}
	if r.ScarcityMarkup == 0 {
		r.ScarcityMarkup = DefaultScarcityMarkup
	}
	if r.UserFactors == nil {
		r.UserFactors = defaultUserFactors()
	}
	return r
}

// TimeFactor converts a caller-resolved seasonal multiplier into a factor.
// Non-finite and non-positive multipliers are neutral.
func TimeFactor(multiplier float64) decimal.Decimal {
	if !finite(multiplier) || multiplier <= 0 {
		return neutral
	}
	return decimal.NewFromFloat(multiplier)
}

// DemandFactor applies the markup when velocity is strictly above threshold.
func (r Rules) DemandFactor(velocity, threshold float64) decimal.Decimal {
	if !finite(velocity) || !finite(threshold) {
		return neutral
	}
	if velocity > threshold {
		return markup(r.DemandMarkup, DefaultDemandMarkup)
	}
	return neutral
}

// InventoryFactor applies the scarcity markup when stock is at or below minStock.
func (r Rules) InventoryFactor(stock, minStock float64) decimal.Decimal {
	if !finite(stock) || !finite(minStock) {
		return neutral
	}
	if stock <= minStock {
		return markup(r.ScarcityMarkup, DefaultScarcityMarkup)
	}
	return neutral
}

// UserFactor is total over strings; unknown categories are neutral.
func (r Rules) UserFactor(userType string) decimal.Decimal {
	f, ok := r.UserFactors[ParseUserCategory(userType)]
	if !ok || !finite(f) || f <= 0 {
		return neutral
	}
	return decimal.NewFromFloat(f)
}

// markup never returns zero: an unset markup means the default one.
func markup(m, def float64) decimal.Decimal {
	if m == 0 || !finite(m) {
		m = def
	}
	return decimal.NewFromFloat(m)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
