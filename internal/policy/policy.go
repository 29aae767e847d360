// Package policy is the boundary to the external decision process. The core
// only promises candidates in deterministic order and a flat daily record;
// how candidates are scored is the caller's business. The learned policies
// that train against this interface live outside this repository.
package policy

import (
	"math/rand"

	"github.com/tmorvan/statesim/internal/models"
)

// Policy chooses exactly one action per day from the enumerated candidates
type Policy interface {
	Name() string
	Choose(record map[string]float64, candidates []models.Action) models.Action
}

// Random picks uniformly from the candidate list
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a seeded random policy
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (p *Random) Name() string { return "random" }

func (p *Random) Choose(record map[string]float64, candidates []models.Action) models.Action {
	if len(candidates) == 0 {
		return models.NoAction("", "")
	}
	return candidates[p.rng.Intn(len(candidates))]
}

// Expander is a fixed reference heuristic: take the first available upgrade,
// otherwise do nothing. Deterministic, used as a baseline and in tests.
type Expander struct{}

func (Expander) Name() string { return "expander" }

func (Expander) Choose(record map[string]float64, candidates []models.Action) models.Action {
	for _, a := range candidates {
		if a.Kind == models.ActionUpgrade {
			return a
		}
	}
	for _, a := range candidates {
		if a.Kind == models.ActionNone {
			return a
		}
	}
	return models.NoAction("", "")
}

// ByName returns the built-in policy with the given name
func ByName(name string, seed int64) (Policy, bool) {
	switch name {
	case "random":
		return NewRandom(seed), true
	case "expander":
		return Expander{}, true
	}
	return nil, false
}
