// Package scenario loads budget inputs from TOML, YAML or JSON files.
//
// A file holds either the fields of a single scenario at the top level or a
// "scenarios" list. With a list, top-level fields are shared by every entry
// and each entry overrides them. Fields missing everywhere take the caller's
// defaults.
package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/payreal/internal/engine"
)

// ErrUnsupportedFormat is returned for file extensions other than .toml,
// .yaml, .yml and .json.
var ErrUnsupportedFormat = errors.New("unsupported scenario format")

// Scenario is one named set of budget inputs.
type Scenario struct {
	Name  string
	Input engine.BudgetInput
}

type fields struct {
	Name          string   `toml:"name" yaml:"name" json:"name"`
	GrossAnnual   *float64 `toml:"gross_annual" yaml:"gross_annual" json:"gross_annual"`
	City          *string  `toml:"city" yaml:"city" json:"city"`
	WalksToWork   *bool    `toml:"walks_to_work" yaml:"walks_to_work" json:"walks_to_work"`
	FamilySupport *float64 `toml:"family_support" yaml:"family_support" json:"family_support"`
	HouseUpkeep   *float64 `toml:"house_upkeep" yaml:"house_upkeep" json:"house_upkeep"`
	GoalAmount    *float64 `toml:"goal_amount" yaml:"goal_amount" json:"goal_amount"`
}

type document struct {
	fields    `yaml:",inline"`
	Scenarios []fields `toml:"scenarios" yaml:"scenarios" json:"scenarios"`
}

func (f fields) apply(in engine.BudgetInput) engine.BudgetInput {
	if f.GrossAnnual != nil {
		in.GrossAnnual = *f.GrossAnnual
	}
	if f.City != nil {
		in.City = engine.City(*f.City)
	}
	if f.WalksToWork != nil {
		in.WalksToWork = *f.WalksToWork
	}
	if f.FamilySupport != nil {
		in.FamilySupport = *f.FamilySupport
	}
	if f.HouseUpkeep != nil {
		in.HouseUpkeep = *f.HouseUpkeep
	}
	if f.GoalAmount != nil {
		in.GoalAmount = *f.GoalAmount
	}
	return in
}

// Load reads the scenario file at path. The format follows the extension.
func Load(path string, defaults engine.BudgetInput) ([]Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("accessing scenario file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	scenarios, err := Parse(data, filepath.Ext(path), defaults)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

// Parse decodes scenarios from data. format is a file extension such as
// ".yaml"; the leading dot is optional.
func Parse(data []byte, format string, defaults engine.BudgetInput) ([]Scenario, error) {
	var doc document

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	shared := doc.fields.apply(defaults)

	if len(doc.Scenarios) == 0 {
		s := Scenario{Name: doc.Name, Input: shared}
		if s.Name == "" {
			s.Name = defaultName(s.Input, 0)
		}
		if err := s.Input.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		return []Scenario{s}, nil
	}

	out := make([]Scenario, 0, len(doc.Scenarios))
	for i, f := range doc.Scenarios {
		s := Scenario{Name: f.Name, Input: f.apply(shared)}
		if s.Name == "" {
			s.Name = defaultName(s.Input, i)
		}
		if err := s.Input.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func defaultName(in engine.BudgetInput, i int) string {
	city := string(in.City)
	if city == "" {
		city = string(engine.CityOther)
	}
	return fmt.Sprintf("#%d %s", i+1, city)
}

// Names returns the scenario names in order.
func Names(scenarios []Scenario) []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	return names
}
