// Package market owns the per-state product ledger and drives the daily
// market-clearing and production pass.
package market

import (
	"fmt"

	"github.com/tmorvan/statesim/internal/models"
)

// DefaultExportTariff is carried on every state as a pass-through attribute;
// the pricing algorithm does not consume it.
const DefaultExportTariff = 0.05

// State is one region: an ordered set of buildings and the product ledger
// they trade against. Buildings and ledger entries are owned exclusively by
// the state and mutated in place during a tick by a single writer.
type State struct {
	ID           string
	Buildings    []*models.Building
	Ledger       map[models.GoodType]*models.Product
	ExportTariff float64
}

// NewState creates an empty state
func NewState(id string) *State {
	return &State{
		ID:           id,
		Ledger:       make(map[models.GoodType]*models.Product),
		ExportTariff: DefaultExportTariff,
	}
}

// AddBuilding appends a building and tops the ledger up with one week's
// input requirement so the site is not starved on its first tick. Names are
// allocation keys, so they must be unique within the state.
func (s *State) AddBuilding(b *models.Building) error {
	for _, existing := range s.Buildings {
		if existing.Name == b.Name {
			return fmt.Errorf("state %s: duplicate building name %q", s.ID, b.Name)
		}
	}
	s.Buildings = append(s.Buildings, b)

	for good, required := range b.BuyOrders() {
		if p, ok := s.Ledger[good]; ok {
			p.AddStock(required)
		} else {
			s.Ledger[good] = models.NewLedgerProduct(good, required)
		}
	}
	return nil
}

// SeedStock sets the ledger quantity for a good, creating the entry at its
// reference price when absent.
func (s *State) SeedStock(good models.GoodType, quantity float64) {
	if p, ok := s.Ledger[good]; ok {
		p.Quantity = quantity
		return
	}
	s.Ledger[good] = models.NewLedgerProduct(good, quantity)
}

// Building returns the named building, or an error naming what was missing
func (s *State) Building(name string) (*models.Building, error) {
	for _, b := range s.Buildings {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %q in state %s", models.ErrUnknownBuilding, name, s.ID)
}

// TotalCash sums the cash reserves of all buildings
func (s *State) TotalCash() float64 {
	var total float64
	for _, b := range s.Buildings {
		total += b.CashReserve
	}
	return total
}
