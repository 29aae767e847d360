package models

// GoodType represents the tradeable goods in a state economy
type GoodType string

const (
	Wood         GoodType = "wood"
	Tools        GoodType = "tools"
	Iron         GoodType = "iron"
	Coal         GoodType = "coal"
	Wheat        GoodType = "wheat"
	Construction GoodType = "construction"
)

// AllGoodTypes returns all good types in deterministic order
func AllGoodTypes() []GoodType {
	return []GoodType{Wood, Tools, Iron, Coal, Wheat, Construction}
}

// BaseGoodPrice returns the reference price for a good.
// Construction is priced at zero: it is an accounting good, never traded.
func BaseGoodPrice(g GoodType) float64 {
	switch g {
	case Wood:
		return 10.0
	case Tools:
		return 20.0
	case Iron:
		return 15.0
	case Coal:
		return 8.0
	case Wheat:
		return 5.0
	case Construction:
		return 0.0
	}
	return 0.0
}

// IsKnownGood reports whether g is one of the closed set of goods
func IsKnownGood(g GoodType) bool {
	switch g {
	case Wood, Tools, Iron, Coal, Wheat, Construction:
		return true
	}
	return false
}
