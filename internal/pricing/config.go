package pricing

import (
	"bytes"
	"io"
	"os"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

// Config is the loaded pricing configuration.
type Config struct {
	Rules    Rules
	Calendar *Calendar
}

// DefaultConfig returns DefaultRules and DefaultCalendar.
func DefaultConfig() *Config {
	return &Config{
		Rules:    DefaultRules(),
		Calendar: DefaultCalendar(),
	}
}

// fileConfig mirrors the YAML document. Absent keys keep their defaults.
type fileConfig struct {
	Demand *struct {
		Threshold *float64 `yaml:"threshold"`
		Markup    *float64 `yaml:"markup"`
	} `yaml:"demand"`
	Inventory *struct {
		MinStock *float64 `yaml:"min_stock"`
		Markup   *float64 `yaml:"markup"`
	} `yaml:"inventory"`
	UserFactors map[string]float64 `yaml:"user_factors"`
	Seasons     *[]Season          `yaml:"seasons"`
}

// LoadConfig reads a YAML pricing file. An empty path yields DefaultConfig.
//
//	demand:
//	  threshold: 10
//	  markup: 1.1
//	inventory:
//	  min_stock: 5
//	  markup: 1.15
//	user_factors:
//	  student: 0.90
//	seasons:
//	  - name: fall-semester-rush
//	    start: "08-15"
//	    end: "09-15"
//	    multiplier: 1.1
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read pricing config")
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "pricing config %s", path)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML pricing document over the defaults.
func ParseConfig(data []byte) (*Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode")
	}

	rules := DefaultRules()
	if d := fc.Demand; d != nil {
		if d.Threshold != nil {
			rules.DemandThreshold = *d.Threshold
		}
		if d.Markup != nil {
			rules.DemandMarkup = *d.Markup
		}
	}
	if inv := fc.Inventory; inv != nil {
		if inv.MinStock != nil {
			rules.MinStock = *inv.MinStock
		}
		if inv.Markup != nil {
			rules.ScarcityMarkup = *inv.Markup
		}
	}
	for name, f := range fc.UserFactors {
		category := ParseUserCategory(name)
		if category == UserRegular {
			return nil, errors.Errorf("user factor %q: only student, faculty and alumni are configurable", name)
		}
		rules.UserFactors[category] = f
	}
	if err := rules.Validate(); err != nil {
		return nil, errors.Wrap(err, "rules")
	}

	seasons := DefaultSeasons()
	if fc.Seasons != nil {
		seasons = *fc.Seasons
	}
	calendar, err := NewCalendar(seasons)
	if err != nil {
		return nil, errors.Wrap(err, "seasons")
	}

	return &Config{Rules: rules, Calendar: calendar}, nil
}
