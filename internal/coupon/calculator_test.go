package coupon

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestCalculator_ValidateCoupon(t *testing.T) {
	calc := NewCalculator(nil)

	tests := []struct {
		name        string
		code        string
		wantValid   bool
		wantRate    string
		wantDesc    string
		wantMessage string
	}{
		{name: "student upper", code: "STUDENT", wantValid: true, wantRate: "0.10", wantDesc: "10% Student Discount"},
		{name: "student lower", code: "student", wantValid: true, wantRate: "0.10", wantDesc: "10% Student Discount"},
		{name: "faculty mixed", code: "FaCuLtY", wantValid: true, wantRate: "0.15", wantDesc: "15% Faculty Discount"},
		{name: "alumni padded", code: " alumni ", wantValid: true, wantRate: "0.05", wantDesc: "5% Alumni Discount"},
		{name: "unknown", code: "BOGUS", wantMessage: InvalidCodeMessage},
		{name: "unknown mixed case", code: "BoGuS", wantMessage: InvalidCodeMessage},
		{name: "empty", code: "", wantMessage: InvalidCodeMessage},
		{name: "prefix only", code: "STUD", wantMessage: InvalidCodeMessage},
		{name: "superstring", code: "STUDENTS", wantMessage: InvalidCodeMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := calc.ValidateCoupon(tt.code)

			assert.Equal(t, tt.wantValid, v.Valid)
			assert.Equal(t, tt.wantMessage, v.Message)
			assert.Equal(t, tt.wantDesc, v.Description)
			if tt.wantValid {
				assert.True(t, dec(tt.wantRate).Equal(v.Rate), "rate %s", v.Rate)
			}
		})
	}
}

func TestCalculator_CalculateDiscount(t *testing.T) {
	calc := NewCalculator(nil)

	t.Run("valid student coupon", func(t *testing.T) {
		r := calc.CalculateDiscount(dec("100.00"), "student")

		assert.True(t, r.Applied())
		assert.Equal(t, "10.00", r.DiscountAmount.StringFixed(2))
		assert.Equal(t, "90.00", r.FinalAmount.StringFixed(2))
		assert.Equal(t, "10% Student Discount", r.Description)
		assert.Equal(t, "STUDENT", r.Code)
		assert.Empty(t, r.Error)
	})

	t.Run("invalid coupon", func(t *testing.T) {
		r := calc.CalculateDiscount(dec("100.00"), "BOGUS")

		assert.False(t, r.Applied())
		assert.True(t, r.DiscountAmount.IsZero())
		assert.Equal(t, "100.00", r.FinalAmount.StringFixed(2))
		assert.Equal(t, InvalidCodeMessage, r.Error)
		assert.Empty(t, r.Description)
	})

	t.Run("empty code keeps subtotal", func(t *testing.T) {
		r := calc.CalculateDiscount(dec("42.42"), "")

		assert.True(t, r.DiscountAmount.IsZero())
		assert.True(t, r.FinalAmount.Equal(dec("42.42")))
	})

	t.Run("discount is not rounded", func(t *testing.T) {
		r := calc.CalculateDiscount(dec("19.99"), "FACULTY")

		assertDecimalEqual(t, "2.9985", r.DiscountAmount)
		assertDecimalEqual(t, "16.9915", r.FinalAmount)

		r = calc.CalculateDiscount(dec("33.33"), "faculty")
		assertDecimalEqual(t, "4.9995", r.DiscountAmount)
		assertDecimalEqual(t, "28.3305", r.FinalAmount)
	})
}

func TestCalculator_DiscountInvariants(t *testing.T) {
	registry, err := NewRegistry(append(DefaultRules(),
		NewRule("FREE", 1, "Everything free"),
		NewRule("NOTHING", 0, "No discount"),
	))
	require.NoError(t, err)
	calc := NewCalculator(registry)

	subtotals := []string{"0", "0.004", "0.005", "0.01", "1", "9.99", "33.33", "100", "12345.67"}
	codes := []string{"student", "FACULTY", "Alumni", "free", "nothing", "bogus", ""}

	for _, s := range subtotals {
		for _, code := range codes {
			subtotal := dec(s)
			r := calc.CalculateDiscount(subtotal, code)

			assert.False(t, r.FinalAmount.IsNegative(), "subtotal %s code %q", s, code)
			assert.True(t, r.FinalAmount.Add(r.DiscountAmount).Equal(subtotal), "subtotal %s code %q", s, code)

			rule, ok := registry.Lookup(code)
			if !ok {
				assert.True(t, r.DiscountAmount.IsZero())
				assert.True(t, r.FinalAmount.Equal(subtotal))
				continue
			}
			want := subtotal.Mul(rule.Rate)
			assert.True(t, want.Equal(r.DiscountAmount), "subtotal %s code %q: want %s got %s", s, code, want, r.DiscountAmount)
		}
	}
}

func TestCalculator_ConcurrentUse(t *testing.T) {
	calc := NewCalculator(nil)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code := []string{"student", "faculty", "alumni", "nope"}[i%4]
			r := calc.CalculateDiscount(dec("200"), code)
			assert.False(t, r.FinalAmount.IsNegative())
		}(i)
	}
	wg.Wait()
}
