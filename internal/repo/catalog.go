package repo

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// SeedHabit is one entry of the default-habit catalog, consumed only at
// first-run seeding.
type SeedHabit struct {
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	ColorIndex  int    `yaml:"colorIndex"`
	DailyTarget int    `yaml:"dailyTarget"`
	Goal        int    `yaml:"goal"`
}

// DefaultCatalog returns the embedded seed catalog.
func DefaultCatalog() ([]SeedHabit, error) {
	var seeds []SeedHabit
	if err := yaml.Unmarshal(catalogYAML, &seeds); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	return seeds, nil
}
