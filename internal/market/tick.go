package market

import "github.com/tmorvan/statesim/internal/models"

// TickResult reports what one market pass did, keyed by building name
type TickResult struct {
	Allocations map[string]map[models.GoodType]float64
	Productions map[string]map[models.GoodType]float64
}

// DemandSupply aggregates buy and sell orders across all buildings
func (s *State) DemandSupply() (demand, supply map[models.GoodType]float64) {
	demand = make(map[models.GoodType]float64)
	supply = make(map[models.GoodType]float64)

	for _, b := range s.Buildings {
		for good, qty := range b.BuyOrders() {
			demand[good] += qty
		}
		for good, qty := range b.SellOrders() {
			supply[good] += qty
		}
	}
	return demand, supply
}

// UpdatePrices adjusts every ledger price from the aggregate orders.
// Goods are visited in the closed enum order so price paths are identical
// across runs.
func (s *State) UpdatePrices(demand, supply map[models.GoodType]float64) {
	for _, good := range models.AllGoodTypes() {
		p, ok := s.Ledger[good]
		if !ok {
			continue
		}
		p.AdjustPrice(demand[good], supply[good], models.DefaultAdjustmentRate)
	}
}

// AllocateStock splits each good's on-hand quantity across the buildings
// that require it, proportional to each building's share of the total
// requirement. A single pass, no fairness correction and no carry-over.
func (s *State) AllocateStock() map[string]map[models.GoodType]float64 {
	totalRequired := make(map[models.GoodType]float64)
	for _, b := range s.Buildings {
		for good, qty := range b.BuyOrders() {
			totalRequired[good] += qty
		}
	}

	allocations := make(map[string]map[models.GoodType]float64, len(s.Buildings))
	for _, b := range s.Buildings {
		allocations[b.Name] = make(map[models.GoodType]float64)
	}

	for _, good := range models.AllGoodTypes() {
		p, ok := s.Ledger[good]
		if !ok || p.Quantity <= 0 || totalRequired[good] <= 0 {
			continue
		}
		for _, b := range s.Buildings {
			required := b.BuyOrders()[good]
			if required <= 0 {
				continue
			}
			allocations[b.Name][good] = required / totalRequired[good] * p.Quantity
		}
	}

	return allocations
}

// Tick runs one full market day in fixed order: aggregate orders, update
// prices, ration stock, then settle each building in list order. Later
// buildings observe ledger credits from earlier ones within the same tick;
// that sequencing is part of the model.
func (s *State) Tick() *TickResult {
	demand, supply := s.DemandSupply()
	s.UpdatePrices(demand, supply)

	allocations := s.AllocateStock()

	result := &TickResult{
		Allocations: allocations,
		Productions: make(map[string]map[models.GoodType]float64, len(s.Buildings)),
	}

	for _, b := range s.Buildings {
		allocated := allocations[b.Name]
		b.UpdateShortagePenalty(allocated)

		for good, qty := range allocated {
			if p, ok := s.Ledger[good]; ok {
				p.RemoveStock(qty)
			}
		}

		produced := b.DailyProduction()
		result.Productions[b.Name] = produced

		for good, qty := range produced {
			if p, ok := s.Ledger[good]; ok {
				p.AddStock(qty)
			} else {
				s.Ledger[good] = models.NewLedgerProduct(good, qty)
			}
		}

		b.SettleCash(s.Ledger)
	}

	return result
}
