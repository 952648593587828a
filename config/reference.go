package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"revenue-check/models"
)

// DefaultReference returns the hand-known December 2025 figures.
func DefaultReference() models.Reference {
	return models.Reference{
		Period:            "December 2025",
		CompleteTotal:     1432298.73,
		MissingOrderTotal: 1416226.73,
		MissingOrder:      9715,
		ExpectedByRep: []models.RepExpectation{
			{Salesperson: "BenW", Total: 291879.50},
			{Salesperson: "Zalak", Total: 393355.20},
			{Salesperson: "DerekW", Total: 318966.95},
			{Salesperson: "BrandonG", Total: 267930.38},
			{Salesperson: "Jared", Total: 160166.70},
		},
	}
}

// referenceFile mirrors models.Reference with presence tracking,
// so an explicit zero in the YAML is kept rather than replaced by a default.
type referenceFile struct {
	Period            *string                 `yaml:"period"`
	CompleteTotal     *float64                `yaml:"complete_total"`
	MissingOrderTotal *float64                `yaml:"missing_order_total"`
	MissingOrder      *int64                  `yaml:"missing_order"`
	ExpectedByRep     []models.RepExpectation `yaml:"expected_by_rep"`
}

// LoadReference reads reference totals from a YAML file.
// An empty path returns the defaults. Keys absent from the file keep their default value;
// keys present override it, zero included. expected_by_rep is replaced as a whole when present.
func LoadReference(path string) (models.Reference, error) {
	ref := DefaultReference()
	if path == "" {
		return ref, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Reference{}, fmt.Errorf("reference: read %q: %w", path, err)
	}

	var override referenceFile
	if err := yaml.Unmarshal(data, &override); err != nil {
		return models.Reference{}, fmt.Errorf("reference: parse %q: %w", path, err)
	}
	ref = merge(ref, override)

	if err := ref.Validate(); err != nil {
		return models.Reference{}, err
	}
	return ref, nil
}

// Apply returns the reference with the config's period and target order overrides applied.
func (c *Config) Apply(ref models.Reference) models.Reference {
	if c.Period != "" {
		ref.Period = c.Period
	}
	if c.TargetOrder > 0 {
		ref.MissingOrder = c.TargetOrder
	}
	return ref
}

func merge(base models.Reference, override referenceFile) models.Reference {
	if override.Period != nil {
		base.Period = *override.Period
	}
	if override.CompleteTotal != nil {
		base.CompleteTotal = *override.CompleteTotal
	}
	if override.MissingOrderTotal != nil {
		base.MissingOrderTotal = *override.MissingOrderTotal
	}
	if override.MissingOrder != nil {
		base.MissingOrder = *override.MissingOrder
	}
	if override.ExpectedByRep != nil {
		base.ExpectedByRep = override.ExpectedByRep
	}
	return base
}
