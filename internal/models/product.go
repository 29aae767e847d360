package models

import "math"

// Pricing constants
const (
	// DefaultMaxPriceCap bounds the local price at base_price * cap
	DefaultMaxPriceCap = 1.75

	// DefaultAdjustmentRate is the fraction of the gap to the target price
	// closed per tick
	DefaultAdjustmentRate = 0.05

	// idlePriceDecay relaxes the price toward base when nothing is demanded
	idlePriceDecay = 0.98
)

// Product is one ledger entry: the price and stock of a single good within
// one state. Owned exclusively by the state market that holds it.
type Product struct {
	Good        GoodType
	BasePrice   float64
	LocalPrice  float64
	Quantity    float64
	MaxPriceCap float64
}

// NewProduct creates a ledger entry priced at base
func NewProduct(good GoodType, basePrice, quantity float64) *Product {
	return &Product{
		Good:        good,
		BasePrice:   basePrice,
		LocalPrice:  basePrice,
		Quantity:    quantity,
		MaxPriceCap: DefaultMaxPriceCap,
	}
}

// NewLedgerProduct creates a ledger entry for a known good at its reference price
func NewLedgerProduct(good GoodType, quantity float64) *Product {
	return NewProduct(good, BaseGoodPrice(good), quantity)
}

// AdjustPrice moves the local price one step toward supply/demand
// equilibrium. With no buy orders at all the price decays toward base
// instead; with demand but no supply it drifts toward the cap. The result
// is always clamped to [base, base*cap].
func (p *Product) AdjustPrice(totalDemand, totalSupply, rate float64) {
	switch {
	case totalDemand == 0:
		p.LocalPrice *= idlePriceDecay
	case totalSupply > 0:
		target := p.BasePrice * (totalDemand / totalSupply)
		p.LocalPrice += rate * (target - p.LocalPrice)
	default:
		p.LocalPrice += rate * (p.BasePrice*p.MaxPriceCap - p.LocalPrice)
	}

	// clamped on every path, decay included
	p.LocalPrice = math.Max(p.BasePrice, math.Min(p.LocalPrice, p.BasePrice*p.MaxPriceCap))
}

// AddStock credits produced quantity to the ledger entry
func (p *Product) AddStock(amount float64) {
	p.Quantity += amount
	if p.Quantity < 0 {
		p.Quantity = 0
	}
}

// RemoveStock deducts allocated quantity, floored at zero
func (p *Product) RemoveStock(amount float64) {
	p.Quantity -= amount
	if p.Quantity < 0 {
		p.Quantity = 0
	}
}
