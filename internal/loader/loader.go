// Package loader constructs countries from YAML topology files. The core
// never parses external formats itself; this is the topology provider the
// simulation is wired up with.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tmorvan/statesim/internal/country"
	"github.com/tmorvan/statesim/internal/market"
	"github.com/tmorvan/statesim/internal/models"
)

// BuildingYAML is one building entry in a topology file
type BuildingYAML struct {
	Name     string  `yaml:"name"`
	Kind     string  `yaml:"kind"`
	Level    int     `yaml:"level"`
	MaxLevel int     `yaml:"max_level"`
	Method   string  `yaml:"method,omitempty"`
	Cash     float64 `yaml:"cash,omitempty"`
}

// StateYAML is one state entry in a topology file
type StateYAML struct {
	ID           string             `yaml:"id"`
	ExportTariff *float64           `yaml:"export_tariff,omitempty"`
	Ledger       map[string]float64 `yaml:"ledger,omitempty"`
	Buildings    []BuildingYAML     `yaml:"buildings"`
}

// TopologyYAML is the root document of a topology file
type TopologyYAML struct {
	Country string      `yaml:"country"`
	States  []StateYAML `yaml:"states"`
}

// LoadCountry reads a topology file and builds a country against the given
// kind catalog.
func LoadCountry(path string, catalog *models.KindCatalog) (*country.Country, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topology: %w", err)
	}

	var topo TopologyYAML
	if err := yaml.Unmarshal(data, &topo); err != nil {
		return nil, fmt.Errorf("parse topology: %w", err)
	}

	return BuildCountry(&topo, catalog)
}

// BuildCountry turns a parsed topology into a live country
func BuildCountry(topo *TopologyYAML, catalog *models.KindCatalog) (*country.Country, error) {
	if topo.Country == "" {
		return nil, fmt.Errorf("topology: country id is required")
	}
	if len(topo.States) == 0 {
		return nil, fmt.Errorf("topology: at least one state is required")
	}

	c := country.New(topo.Country)
	seen := make(map[string]bool, len(topo.States))
	for _, sy := range topo.States {
		if seen[sy.ID] {
			return nil, fmt.Errorf("topology: duplicate state id %q", sy.ID)
		}
		seen[sy.ID] = true

		state, err := buildState(&sy, catalog)
		if err != nil {
			return nil, err
		}
		c.AddState(state)
	}
	return c, nil
}

func buildState(sy *StateYAML, catalog *models.KindCatalog) (*market.State, error) {
	if sy.ID == "" {
		return nil, fmt.Errorf("topology: state id is required")
	}

	state := market.NewState(sy.ID)
	if sy.ExportTariff != nil {
		state.ExportTariff = *sy.ExportTariff
	}

	for _, by := range sy.Buildings {
		kind, ok := catalog.Kind(by.Kind)
		if !ok {
			return nil, fmt.Errorf("state %s: unknown building kind %q", sy.ID, by.Kind)
		}
		name := by.Name
		if name == "" {
			name = kind.DisplayName
		}
		b, err := models.NewBuilding(name, kind, by.Level, by.MaxLevel, by.Method)
		if err != nil {
			return nil, fmt.Errorf("state %s: %w", sy.ID, err)
		}
		b.CashReserve = by.Cash
		if err := state.AddBuilding(b); err != nil {
			return nil, err
		}
	}

	// Seeded after buildings so explicit quantities win over the
	// per-building top-up.
	for _, good := range models.AllGoodTypes() {
		if qty, ok := sy.Ledger[string(good)]; ok {
			state.SeedStock(good, qty)
		}
	}
	for name := range sy.Ledger {
		if !models.IsKnownGood(models.GoodType(name)) {
			return nil, fmt.Errorf("state %s: unknown good %q in ledger", sy.ID, name)
		}
	}

	return state, nil
}
