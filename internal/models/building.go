package models

import "fmt"

// Shortage penalty tuning
const (
	// MaxShortagePenalty caps the throughput penalty from input shortages
	MaxShortagePenalty = 0.5

	// shortagePenaltyStep is how much the penalty ratchets up per short tick
	shortagePenaltyStep = 0.01
)

// Building is one production site inside a state. All flows scale with
// Level; a level 0 building is mothballed and produces nothing. Cash may go
// negative, there is no bankruptcy in the core.
type Building struct {
	Name            string
	Kind            *BuildingKind
	BuildCost       float64
	CashReserve     float64
	Level           int
	MaxLevel        int
	ShortagePenalty float64

	active *ProductionMethod
}

// NewBuilding creates a building of the given kind running the named method.
// An empty method name selects the kind's default.
func NewBuilding(name string, kind *BuildingKind, level, maxLevel int, method string) (*Building, error) {
	if method == "" {
		method = kind.DefaultMethod
	}
	m, ok := kind.Method(method)
	if !ok {
		return nil, fmt.Errorf("%w: %q for kind %q", ErrInvalidProductionMethod, method, kind.Name)
	}
	if level < 0 || level > maxLevel {
		return nil, fmt.Errorf("building %q: level %d outside [0, %d]", name, level, maxLevel)
	}
	return &Building{
		Name:      name,
		Kind:      kind,
		BuildCost: kind.BuildCost,
		Level:     level,
		MaxLevel:  maxLevel,
		active:    m,
	}, nil
}

// ActiveMethod returns the name of the active production method
func (b *Building) ActiveMethod() string {
	if b.active == nil {
		return ""
	}
	return b.active.Name
}

// ActiveMethodIndex returns the active method's position in the kind's
// definition order, or -1 if no method is active.
func (b *Building) ActiveMethodIndex() int {
	if b.active == nil {
		return -1
	}
	return b.Kind.MethodIndex(b.active.Name)
}

// SwapMethod atomically replaces the production, consumption and staffing
// configuration. Unknown method names are rejected and leave the building
// untouched.
func (b *Building) SwapMethod(name string) error {
	m, ok := b.Kind.Method(name)
	if !ok {
		return fmt.Errorf("%w: %q is not available for %s", ErrInvalidProductionMethod, name, b.Name)
	}
	b.active = m
	return nil
}

func (b *Building) production() map[GoodType]float64 {
	if b.active == nil {
		return nil
	}
	return b.active.Production
}

func (b *Building) consumption() map[GoodType]float64 {
	if b.active == nil {
		return nil
	}
	return b.active.Consumption
}

// ThroughputBonus returns the level-scaling bonus: flat 1.0 up to level 1,
// then +0.01 per level above the first.
func (b *Building) ThroughputBonus() float64 {
	if b.Level > 1 {
		return 1 + float64(b.Level-1)*0.01
	}
	return 1.0
}

// ThroughputMultiplier combines the level bonus with the shortage penalty,
// floored at zero.
func (b *Building) ThroughputMultiplier() float64 {
	m := 1 + b.ThroughputBonus()/100 - b.ShortagePenalty
	if m < 0 {
		return 0
	}
	return m
}

// BuyOrders sizes the building's market demand: full weekly consumption per
// level, unaffected by throughput.
func (b *Building) BuyOrders() map[GoodType]float64 {
	orders := make(map[GoodType]float64, len(b.consumption()))
	for good, qty := range b.consumption() {
		orders[good] = qty * float64(b.Level)
	}
	return orders
}

// SellOrders sizes the building's market supply, scaled by throughput
func (b *Building) SellOrders() map[GoodType]float64 {
	mult := b.ThroughputMultiplier()
	orders := make(map[GoodType]float64, len(b.production()))
	for good, qty := range b.production() {
		orders[good] = qty * float64(b.Level) * mult
	}
	return orders
}

// DailyProduction returns the goods actually produced this day
func (b *Building) DailyProduction() map[GoodType]float64 {
	mult := b.ThroughputMultiplier()
	out := make(map[GoodType]float64, len(b.production()))
	for good, qty := range b.production() {
		out[good] = qty * float64(b.Level) * mult / 7
	}
	return out
}

// DailyConsumption returns the goods actually consumed this day
func (b *Building) DailyConsumption() map[GoodType]float64 {
	mult := b.ThroughputMultiplier()
	out := make(map[GoodType]float64, len(b.consumption()))
	for good, qty := range b.consumption() {
		out[good] = qty * float64(b.Level) * mult / 7
	}
	return out
}

// Wages returns the daily wage bill across all employee roles
func (b *Building) Wages() float64 {
	if b.active == nil {
		return 0
	}
	var total float64
	for _, e := range b.active.Employees {
		total += e.Wage * float64(e.Count) * float64(b.Level) / 365
	}
	return total
}

// ConsumptionCost values the weekly input requirement at current local prices
func (b *Building) ConsumptionCost(ledger map[GoodType]*Product) float64 {
	var total float64
	for good, qty := range b.consumption() {
		if p, ok := ledger[good]; ok {
			total += qty * float64(b.Level) * p.LocalPrice
		}
	}
	return total
}

// ProductionValue values today's output at current local prices
func (b *Building) ProductionValue(ledger map[GoodType]*Product) float64 {
	var total float64
	for good, qty := range b.DailyProduction() {
		if p, ok := ledger[good]; ok {
			total += qty * p.LocalPrice
		}
	}
	return total
}

// SettleCash books today's revenue against the wage bill. Input costs are
// tracked for reporting but not debited, matching the reference accounting.
func (b *Building) SettleCash(ledger map[GoodType]*Product) {
	b.CashReserve += b.ProductionValue(ledger) - b.Wages()
}

// UpdateShortagePenalty ratchets the penalty up by one step when any input
// was rationed below requirement this tick, bounded by the worst shortage
// ratio and the hard cap. Full supply resets the penalty outright.
func (b *Building) UpdateShortagePenalty(allocated map[GoodType]float64) {
	var maxRatio float64
	for good, qty := range b.consumption() {
		required := qty * float64(b.Level)
		if required <= 0 {
			continue
		}
		got := allocated[good]
		if got < required {
			ratio := 1 - got/required
			if ratio > maxRatio {
				maxRatio = ratio
			}
		}
	}

	if maxRatio > 0 {
		p := b.ShortagePenalty + shortagePenaltyStep
		if p > MaxShortagePenalty {
			p = MaxShortagePenalty
		}
		if p > maxRatio {
			p = maxRatio
		}
		b.ShortagePenalty = p
	} else {
		b.ShortagePenalty = 0
	}
}
