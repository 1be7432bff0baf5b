// Package coupon validates coupon codes against an immutable registry and
// computes the discount a valid code grants on a subtotal.
package coupon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Rule is a single coupon definition.
type Rule struct {
	Code        string
	Rate        decimal.Decimal
	Description string
}

// NewRule builds a Rule with a canonical code.
func NewRule(code string, rate float64, description string) Rule {
	return Rule{
		Code:        CanonicalCode(code),
		Rate:        decimal.NewFromFloat(rate),
		Description: description,
	}
}

// DefaultRules are the built-in marketplace coupons.
func DefaultRules() []Rule {
	return []Rule{
		NewRule("STUDENT", 0.10, "10% Student Discount"),
		NewRule("FACULTY", 0.15, "15% Faculty Discount"),
		NewRule("ALUMNI", 0.05, "5% Alumni Discount"),
	}
}

// CanonicalCode is the registry key for a user supplied code.
func CanonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Registry is a read-only set of rules keyed by canonical code.
// It is safe for concurrent use.
type Registry struct {
	rules map[string]Rule
	codes []string
}

// Stats summarizes a registry.
type Stats struct {
	TotalRules int      `json:"total_rules"`
	Codes      []string `json:"codes"`
}

// NewRegistry validates rules and freezes them into a Registry.
func NewRegistry(rules []Rule) (*Registry, error) {
	r := &Registry{
		rules: make(map[string]Rule, len(rules)),
		codes: make([]string, 0, len(rules)),
	}

	one := decimal.NewFromInt(1)
	for i, rule := range rules {
		code := CanonicalCode(rule.Code)
		if code == "" {
			return nil, fmt.Errorf("rule %d: code is required", i)
		}
		if rule.Rate.IsNegative() || rule.Rate.GreaterThan(one) {
			return nil, fmt.Errorf("rule %s: rate must be within [0, 1], got %s", code, rule.Rate)
		}
		if _, exists := r.rules[code]; exists {
			return nil, fmt.Errorf("rule %s: duplicate code", code)
		}

		rule.Code = code
		r.rules[code] = rule
		r.codes = append(r.codes, code)
	}
	sort.Strings(r.codes)

	return r, nil
}

// DefaultRegistry returns a Registry over DefaultRules.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultRules())
	if err != nil {
		panic(fmt.Sprintf("coupon: default rules are invalid: %v", err))
	}
	return r
}

// Lookup finds the rule for code, ignoring case and surrounding space.
func (r *Registry) Lookup(code string) (Rule, bool) {
	rule, ok := r.rules[CanonicalCode(code)]
	return rule, ok
}

// Len returns the number of rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

// Rules returns the rules ordered by code.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, 0, len(r.codes))
	for _, code := range r.codes {
		out = append(out, r.rules[code])
	}
	return out
}

// Stats reports the registry size and codes.
func (r *Registry) Stats() Stats {
	codes := make([]string, len(r.codes))
	copy(codes, r.codes)
	return Stats{TotalRules: len(r.rules), Codes: codes}
}

// Merge overlays rule sets in order; a later rule replaces an earlier one
// with the same canonical code. The result keeps first-seen order.
func Merge(sets ...[]Rule) []Rule {
	index := make(map[string]int)
	var merged []Rule
	for _, set := range sets {
		for _, rule := range set {
			code := CanonicalCode(rule.Code)
			rule.Code = code
			if i, ok := index[code]; ok {
				merged[i] = rule
				continue
			}
			index[code] = len(merged)
			merged = append(merged, rule)
		}
	}
	return merged
}
