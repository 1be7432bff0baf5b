package pricing

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/pkg/clock"
)

func date(month time.Month, day int) time.Time {
	return time.Date(2026, month, day, 12, 0, 0, 0, time.UTC)
}

func TestCalendar_DefaultSeasons(t *testing.T) {
	cal := DefaultCalendar()

	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{name: "before fall rush", at: date(time.August, 14), want: 1.0},
		{name: "fall rush first day", at: date(time.August, 15), want: 1.1},
		{name: "fall rush last day", at: date(time.September, 15), want: 1.1},
		{name: "after fall rush", at: date(time.September, 16), want: 1.0},
		{name: "new year", at: date(time.January, 1), want: 1.0},
		{name: "spring rush", at: date(time.January, 20), want: 1.1},
		{name: "summer", at: date(time.June, 30), want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cal.Multiplier(tt.at))
		})
	}
}

func TestCalendar_WrapAroundWindow(t *testing.T) {
	cal, err := NewCalendar([]Season{{
		Name:       "winter-break",
		Start:      MonthDay{Month: time.December, Day: 15},
		End:        MonthDay{Month: time.January, Day: 5},
		Multiplier: 1.2,
	}})
	require.NoError(t, err)

	assert.Equal(t, 1.2, cal.Multiplier(date(time.December, 31)))
	assert.Equal(t, 1.2, cal.Multiplier(date(time.January, 5)))
	assert.Equal(t, 1.0, cal.Multiplier(date(time.January, 6)))
	assert.Equal(t, 1.0, cal.Multiplier(date(time.December, 14)))
}

func TestCalendar_FirstMatchWins(t *testing.T) {
	cal, err := NewCalendar([]Season{
		{Name: "a", Start: MonthDay{time.March, 1}, End: MonthDay{time.March, 31}, Multiplier: 1.3},
		{Name: "b", Start: MonthDay{time.March, 10}, End: MonthDay{time.March, 20}, Multiplier: 1.05},
	})
	require.NoError(t, err)

	s, ok := cal.Current(date(time.March, 15))
	require.True(t, ok)
	assert.Equal(t, "a", s.Name)
}

func TestCalendar_WithClock(t *testing.T) {
	clk := clock.NewFixed(date(time.August, 20))
	cal := DefaultCalendar()

	assert.Equal(t, 1.1, cal.Multiplier(clk.Now()))

	clk.Advance(30 * 24 * time.Hour)
	assert.Equal(t, 1.0, cal.Multiplier(clk.Now()))
}

func TestNewCalendar_Validation(t *testing.T) {
	_, err := NewCalendar([]Season{{Start: MonthDay{time.May, 1}, End: MonthDay{time.May, 2}, Multiplier: 1.1}})
	assert.Error(t, err, "missing name")

	_, err = NewCalendar([]Season{{Name: "x", Multiplier: 1.1}})
	assert.Error(t, err, "missing bounds")

	_, err = NewCalendar([]Season{{Name: "x", Start: MonthDay{time.May, 1}, End: MonthDay{time.May, 2}, Multiplier: 0}})
	assert.Error(t, err, "zero multiplier")

	var nilCal *Calendar
	assert.Equal(t, 1.0, nilCal.Multiplier(date(time.August, 20)))
}

func TestParseMonthDay(t *testing.T) {
	md, err := ParseMonthDay("02-29")
	require.NoError(t, err)
	assert.Equal(t, MonthDay{Month: time.February, Day: 29}, md)
	assert.Equal(t, "02-29", md.String())

	for _, bad := range []string{"13-01", "02-30", "8-15", "", "08/15"} {
		_, err := ParseMonthDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultRules(), cfg.Rules)
		assert.Len(t, cfg.Calendar.Seasons(), 2)
	})

	t.Run("overrides from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pricing.yaml")
		doc := `
demand:
  threshold: 25
inventory:
  min_stock: 2
  markup: 1.2
user_factors:
  student: 0.8
seasons:
  - name: finals-week
    start: "12-01"
    end: "12-14"
    multiplier: 1.05
`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 25.0, cfg.Rules.DemandThreshold)
		assert.Equal(t, 1.1, cfg.Rules.DemandMarkup)
		assert.Equal(t, 2.0, cfg.Rules.MinStock)
		assert.Equal(t, 1.2, cfg.Rules.ScarcityMarkup)
		assert.Equal(t, 0.8, cfg.Rules.UserFactors[UserStudent])
		assert.Equal(t, 0.85, cfg.Rules.UserFactors[UserFaculty])

		seasons := cfg.Calendar.Seasons()
		require.Len(t, seasons, 1)
		assert.Equal(t, "finals-week", seasons[0].Name)
		assert.Equal(t, 1.05, cfg.Calendar.Multiplier(date(time.December, 7)))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid documents", func(t *testing.T) {
		docs := map[string]string{
			"unknown key":      "surge: 2\n",
			"bad markup":       "demand:\n  markup: -1\n",
			"regular factor":   "user_factors:\n  regular: 0.5\n",
			"bad season date":  "seasons:\n  - name: x\n    start: \"13-01\"\n    end: \"01-01\"\n    multiplier: 1.1\n",
			"factor above one": "user_factors:\n  alumni: 1.5\n",
		}
		for name, doc := range docs {
			_, err := ParseConfig([]byte(doc))
			assert.Error(t, err, name)
		}
	})

	t.Run("empty document gives defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("\n"))
		require.NoError(t, err)
		assert.Equal(t, DefaultRules(), cfg.Rules)
	})
}
