package loader

import (
	"fmt"
	"math/rand"

	"github.com/tmorvan/statesim/internal/country"
	"github.com/tmorvan/statesim/internal/market"
	"github.com/tmorvan/statesim/internal/models"
)

// Seed stock per tradeable good in randomly sampled states
const sampledSeedStock = 1000.0

// RandomState samples a plausible starting state from the catalog: every
// state gets a construction sector and a tool workshop, plus the four
// resource extractors at randomized levels and methods.
func RandomState(id string, rng *rand.Rand, catalog *models.KindCatalog) (*market.State, error) {
	state := market.NewState(id)

	type slot struct {
		kind     string
		minLevel int
		maxLevel int
		cap      int
	}
	slots := []slot{
		{kind: "construction_sector", minLevel: 1, maxLevel: 3, cap: 10},
		{kind: "tool_workshop", minLevel: 1, maxLevel: 3, cap: 20},
		{kind: "wheat_farm", minLevel: 1, maxLevel: 5, cap: 99},
		{kind: "logging_camp", minLevel: 1, maxLevel: 5, cap: 99},
		{kind: "iron_mine", minLevel: 1, maxLevel: 5, cap: 99},
		{kind: "coal_mine", minLevel: 1, maxLevel: 5, cap: 99},
	}

	for _, sl := range slots {
		kind, ok := catalog.Kind(sl.kind)
		if !ok {
			return nil, fmt.Errorf("sampler: catalog has no kind %q", sl.kind)
		}
		level := sl.minLevel + rng.Intn(sl.maxLevel-sl.minLevel+1)
		method := kind.Methods[rng.Intn(len(kind.Methods))].Name
		b, err := models.NewBuilding(kind.DisplayName, kind, level, sl.cap, method)
		if err != nil {
			return nil, err
		}
		if err := state.AddBuilding(b); err != nil {
			return nil, err
		}
	}

	for _, good := range models.AllGoodTypes() {
		if good == models.Construction {
			state.SeedStock(good, 0)
			continue
		}
		state.SeedStock(good, sampledSeedStock)
	}

	return state, nil
}

// RandomCountry samples a single-state country for policy-training runs
func RandomCountry(id string, rng *rand.Rand, catalog *models.KindCatalog) (*country.Country, error) {
	state, err := RandomState(id+"_S1", rng, catalog)
	if err != nil {
		return nil, err
	}
	return country.New(id, state), nil
}
