package pricing

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// MonthDay is a calendar day without a year, written as "MM-DD".
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay parses "MM-DD".
func ParseMonthDay(s string) (MonthDay, error) {
	// 2024 is a leap year, so "02-29" parses.
	t, err := time.Parse("2006-01-02", "2024-"+s)
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid month-day %q: expected MM-DD", s)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

// UnmarshalYAML decodes a "MM-DD" scalar.
func (md *MonthDay) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMonthDay(s)
	if err != nil {
		return err
	}
	*md = parsed
	return nil
}

// MarshalYAML encodes the value as "MM-DD".
func (md MonthDay) MarshalYAML() (any, error) {
	return md.String(), nil
}

func (md MonthDay) key() int {
	return int(md.Month)*100 + md.Day
}

// Season is a recurring window of the year with its own price multiplier.
// A window whose End falls before its Start wraps across the new year.
type Season struct {
	Name       string   `yaml:"name"`
	Start      MonthDay `yaml:"start"`
	End        MonthDay `yaml:"end"`
	Multiplier float64  `yaml:"multiplier"`
}

// Contains reports whether t falls inside the window, bounds included.
func (s Season) Contains(t time.Time) bool {
	k := int(t.Month())*100 + t.Day()
	start, end := s.Start.key(), s.End.key()
	if start <= end {
		return k >= start && k <= end
	}
	return k >= start || k <= end
}

// Calendar resolves the seasonal multiplier for a date.
// It is read-only after construction.
type Calendar struct {
	seasons []Season
}

// DefaultSeasons are the semester-start rushes.
func DefaultSeasons() []Season {
	return []Season{
		{
			Name:       "fall-semester-rush",
			Start:      MonthDay{Month: time.August, Day: 15},
			End:        MonthDay{Month: time.September, Day: 15},
			Multiplier: 1.1,
		},
		{
			Name:       "spring-semester-rush",
			Start:      MonthDay{Month: time.January, Day: 8},
			End:        MonthDay{Month: time.January, Day: 31},
			Multiplier: 1.1,
		},
	}
}

// DefaultCalendar returns a Calendar over DefaultSeasons.
func DefaultCalendar() *Calendar {
	c, _ := NewCalendar(DefaultSeasons())
	return c
}

// NewCalendar validates seasons and returns a Calendar. Earlier seasons win
// when windows overlap.
func NewCalendar(seasons []Season) (*Calendar, error) {
	for i, s := range seasons {
		if s.Name == "" {
			return nil, fmt.Errorf("season %d: name is required", i)
		}
		if s.Start.Month == 0 || s.End.Month == 0 {
			return nil, fmt.Errorf("season %q: start and end are required", s.Name)
		}
		if !finite(s.Multiplier) || s.Multiplier <= 0 {
			return nil, fmt.Errorf("season %q: multiplier must be positive, got %v", s.Name, s.Multiplier)
		}
	}

	copied := make([]Season, len(seasons))
	copy(copied, seasons)
	return &Calendar{seasons: copied}, nil
}

// Current returns the season containing t, if any.
func (c *Calendar) Current(t time.Time) (Season, bool) {
	if c == nil {
		return Season{}, false
	}
	for _, s := range c.seasons {
		if s.Contains(t) {
			return s, true
		}
	}
	return Season{}, false
}

// Multiplier returns the multiplier of the season containing t, or 1.0.
func (c *Calendar) Multiplier(t time.Time) float64 {
	if s, ok := c.Current(t); ok {
		return s.Multiplier
	}
	return 1.0
}

// Seasons returns a copy of the configured windows.
func (c *Calendar) Seasons() []Season {
	if c == nil {
		return nil
	}
	out := make([]Season, len(c.seasons))
	copy(out, c.seasons)
	return out
}
