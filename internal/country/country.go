// Package country validates and applies externally chosen actions against
// the states it owns, and tracks the single in-flight construction project.
package country

import (
	"fmt"

	"github.com/tmorvan/statesim/internal/market"
	"github.com/tmorvan/statesim/internal/models"
)

// Project is the one in-progress building upgrade. Progress is contributed
// currency; the upgrade completes when it reaches the target's build cost.
type Project struct {
	StateID      string
	BuildingName string
	Progress     float64
}

// Country owns an ordered set of states and the construction slot
type Country struct {
	ID string

	states  map[string]*market.State
	order   []string
	project *Project
}

// New creates a country owning the given states
func New(id string, states ...*market.State) *Country {
	c := &Country{
		ID:     id,
		states: make(map[string]*market.State, len(states)),
	}
	for _, s := range states {
		c.AddState(s)
	}
	return c
}

// AddState registers a state; duplicate ids are ignored
func (c *Country) AddState(s *market.State) {
	if _, exists := c.states[s.ID]; exists {
		return
	}
	c.states[s.ID] = s
	c.order = append(c.order, s.ID)
}

// States returns the states in registration order
func (c *Country) States() []*market.State {
	out := make([]*market.State, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.states[id])
	}
	return out
}

// State returns the state with the given id
func (c *Country) State(id string) (*market.State, error) {
	s, ok := c.states[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownState, id)
	}
	return s, nil
}

// Construction returns a copy of the in-progress project, if any
func (c *Country) Construction() (Project, bool) {
	if c.project == nil {
		return Project{}, false
	}
	return *c.project, true
}

// Apply validates and executes one chosen action. A rejected action changes
// nothing; the caller proceeds with the tick as if NoAction had been chosen.
func (c *Country) Apply(a models.Action) error {
	if a.Kind == models.ActionNone {
		return nil
	}

	state, err := c.State(a.StateID)
	if err != nil {
		return err
	}
	building, err := state.Building(a.BuildingName)
	if err != nil {
		return err
	}

	switch a.Kind {
	case models.ActionSwapMethod:
		return building.SwapMethod(a.NewMethod)

	case models.ActionUpgrade:
		if c.project != nil {
			return fmt.Errorf("%w: construction of %s already in progress",
				models.ErrInvalidTransition, c.project.BuildingName)
		}
		if building.Level >= building.MaxLevel {
			return fmt.Errorf("%w: %s is already at max level %d",
				models.ErrInvalidTransition, building.Name, building.MaxLevel)
		}
		c.project = &Project{StateID: a.StateID, BuildingName: a.BuildingName}
		return nil

	case models.ActionDowngrade:
		if building.Level <= 1 {
			return fmt.Errorf("%w: cannot downgrade %s below level 1",
				models.ErrInvalidTransition, building.Name)
		}
		building.Level--
		return nil

	default:
		return fmt.Errorf("unhandled action kind %d", a.Kind)
	}
}

// ContributeConstruction adds externally supplied effort to the current
// project. When accumulated progress reaches the target's build cost the
// building gains one level, the project clears, and true is returned.
func (c *Country) ContributeConstruction(amount float64) bool {
	if c.project == nil {
		return false
	}
	c.project.Progress += amount

	state, err := c.State(c.project.StateID)
	if err != nil {
		return false
	}
	building, err := state.Building(c.project.BuildingName)
	if err != nil {
		return false
	}

	if c.project.Progress < building.BuildCost {
		return false
	}

	building.Level++
	c.project = nil
	return true
}

// Candidates enumerates every legal-looking action for the current day:
// all method swaps away from the active method, an upgrade when the
// construction slot is free and the building has room to grow, a downgrade
// for any standing building, and always a NoAction.
func (c *Country) Candidates() []models.Action {
	var options []models.Action

	for _, id := range c.order {
		state := c.states[id]
		for _, b := range state.Buildings {
			current := b.ActiveMethod()
			for _, method := range b.Kind.MethodNames() {
				if method != current {
					options = append(options, models.SwapMethod(id, b.Name, method))
				}
			}

			if c.project == nil && b.Level < b.MaxLevel {
				options = append(options, models.Upgrade(id, b.Name))
			}

			if b.Level >= 1 {
				options = append(options, models.Downgrade(id, b.Name))
			}

			options = append(options, models.NoAction(id, b.Name))
		}
	}

	return options
}
