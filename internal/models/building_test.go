package models

import (
	"errors"
	"math"
	"testing"
)

func testKind(t *testing.T, name string) *BuildingKind {
	t.Helper()
	kind, ok := DefaultCatalog().Kind(name)
	if !ok {
		t.Fatalf("catalog has no kind %q", name)
	}
	return kind
}

func TestNewBuildingDefaults(t *testing.T) {
	kind := testKind(t, "logging_camp")

	b, err := NewBuilding("Camp", kind, 1, 5, "")
	if err != nil {
		t.Fatalf("NewBuilding: %v", err)
	}
	if b.ActiveMethod() != "SimpleForestry" {
		t.Errorf("ActiveMethod = %q, want default SimpleForestry", b.ActiveMethod())
	}
	if b.BuildCost != 200 {
		t.Errorf("BuildCost = %v, want 200", b.BuildCost)
	}
}

func TestNewBuildingValidation(t *testing.T) {
	kind := testKind(t, "logging_camp")

	if _, err := NewBuilding("Camp", kind, 1, 5, "Bogus"); !errors.Is(err, ErrInvalidProductionMethod) {
		t.Errorf("unknown method: err = %v, want ErrInvalidProductionMethod", err)
	}
	if _, err := NewBuilding("Camp", kind, 6, 5, ""); err == nil {
		t.Error("level above max: want error, got nil")
	}
	if _, err := NewBuilding("Camp", kind, -1, 5, ""); err == nil {
		t.Error("negative level: want error, got nil")
	}
}

func TestThroughputBonus(t *testing.T) {
	kind := testKind(t, "logging_camp")

	tests := []struct {
		level int
		want  float64
	}{
		{0, 1.0},
		{1, 1.0},
		{2, 1.01},
		{10, 1.09},
		{50, 1.49},
	}

	for _, tt := range tests {
		b, err := NewBuilding("Camp", kind, tt.level, 99, "")
		if err != nil {
			t.Fatalf("level %d: %v", tt.level, err)
		}
		if got := b.ThroughputBonus(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("level %d: ThroughputBonus = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestThroughputMultiplier(t *testing.T) {
	kind := testKind(t, "logging_camp")
	b, err := NewBuilding("Camp", kind, 5, 99, "")
	if err != nil {
		t.Fatal(err)
	}

	want := 1 + 1.04/100
	if got := b.ThroughputMultiplier(); math.Abs(got-want) > 1e-9 {
		t.Errorf("no penalty: multiplier = %v, want %v", got, want)
	}

	b.ShortagePenalty = MaxShortagePenalty
	want = 1 + 1.04/100 - 0.5
	if got := b.ThroughputMultiplier(); math.Abs(got-want) > 1e-9 {
		t.Errorf("max penalty: multiplier = %v, want %v", got, want)
	}

	b.ShortagePenalty = 1.2
	if got := b.ThroughputMultiplier(); got != 0 {
		t.Errorf("oversized penalty: multiplier = %v, want 0", got)
	}
}

func TestOrdersScaleWithLevel(t *testing.T) {
	kind := testKind(t, "logging_camp")
	b, err := NewBuilding("Camp", kind, 2, 99, "")
	if err != nil {
		t.Fatal(err)
	}

	buy := b.BuyOrders()
	if got := buy[Tools]; got != 10 {
		t.Errorf("BuyOrders[tools] = %v, want 10", got)
	}

	// sell side carries the throughput multiplier, buy side does not
	sell := b.SellOrders()
	want := 30.0 * 2 * (1 + 1.01/100)
	if got := sell[Wood]; math.Abs(got-want) > 1e-9 {
		t.Errorf("SellOrders[wood] = %v, want %v", got, want)
	}
}

func TestLevelZeroIsIdle(t *testing.T) {
	kind := testKind(t, "logging_camp")
	b, err := NewBuilding("Camp", kind, 0, 5, "")
	if err != nil {
		t.Fatal(err)
	}

	for good, qty := range b.SellOrders() {
		if qty != 0 {
			t.Errorf("SellOrders[%s] = %v, want 0", good, qty)
		}
	}
	for good, qty := range b.DailyProduction() {
		if qty != 0 {
			t.Errorf("DailyProduction[%s] = %v, want 0", good, qty)
		}
	}
	if b.Wages() != 0 {
		t.Errorf("Wages = %v, want 0", b.Wages())
	}
}

func TestDailyFlowsAreWeeklyOverSeven(t *testing.T) {
	kind := testKind(t, "logging_camp")
	b, err := NewBuilding("Camp", kind, 1, 5, "")
	if err != nil {
		t.Fatal(err)
	}

	if got, want := b.DailyProduction()[Wood], 30.0/7; math.Abs(got-want) > 1e-9 {
		t.Errorf("DailyProduction[wood] = %v, want %v", got, want)
	}
	if got, want := b.DailyConsumption()[Tools], 5.0/7; math.Abs(got-want) > 1e-9 {
		t.Errorf("DailyConsumption[tools] = %v, want %v", got, want)
	}
}

func TestWages(t *testing.T) {
	kind := testKind(t, "logging_camp")

	b, err := NewBuilding("Camp", kind, 1, 5, "")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b.Wages(), 5000.0/365; math.Abs(got-want) > 1e-9 {
		t.Errorf("level 1 Wages = %v, want %v", got, want)
	}

	b.Level = 3
	if got, want := b.Wages(), 3*5000.0/365; math.Abs(got-want) > 1e-9 {
		t.Errorf("level 3 Wages = %v, want %v", got, want)
	}
}

func TestWagesMixedRates(t *testing.T) {
	kind := testKind(t, "construction_sector")
	b, err := NewBuilding("Sector", kind, 1, 10, "IronBuilding")
	if err != nil {
		t.Fatal(err)
	}

	want := (1.2*1200 + 1.0*1800) / 365
	if got := b.Wages(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Wages = %v, want %v", got, want)
	}
}

func TestSwapMethod(t *testing.T) {
	kind := testKind(t, "logging_camp")
	b, err := NewBuilding("Camp", kind, 1, 5, "")
	if err != nil {
		t.Fatal(err)
	}

	if err := b.SwapMethod("SawMills"); err != nil {
		t.Fatalf("SwapMethod: %v", err)
	}
	if b.ActiveMethod() != "SawMills" {
		t.Errorf("ActiveMethod = %q, want SawMills", b.ActiveMethod())
	}

	if err := b.SwapMethod("SteamDonkeys"); !errors.Is(err, ErrInvalidProductionMethod) {
		t.Errorf("err = %v, want ErrInvalidProductionMethod", err)
	}
	if b.ActiveMethod() != "SawMills" {
		t.Errorf("rejected swap changed method to %q", b.ActiveMethod())
	}
}

func TestSettleCash(t *testing.T) {
	kind := testKind(t, "logging_camp")
	b, err := NewBuilding("Camp", kind, 1, 5, "")
	if err != nil {
		t.Fatal(err)
	}

	ledger := map[GoodType]*Product{
		Wood:  NewLedgerProduct(Wood, 100),
		Tools: NewLedgerProduct(Tools, 100),
	}

	b.SettleCash(ledger)

	// input costs are reported but never debited
	want := 30.0/7*10 - 5000.0/365
	if math.Abs(b.CashReserve-want) > 1e-9 {
		t.Errorf("CashReserve = %v, want %v", b.CashReserve, want)
	}
}

func TestShortagePenaltyRatchet(t *testing.T) {
	kind := testKind(t, "logging_camp")
	b, err := NewBuilding("Camp", kind, 2, 5, "")
	if err != nil {
		t.Fatal(err)
	}

	// requires 10 tools, gets 5: penalty steps up each short tick
	short := map[GoodType]float64{Tools: 5}
	b.UpdateShortagePenalty(short)
	if b.ShortagePenalty != 0.01 {
		t.Errorf("after 1 short tick: penalty = %v, want 0.01", b.ShortagePenalty)
	}
	b.UpdateShortagePenalty(short)
	if b.ShortagePenalty != 0.02 {
		t.Errorf("after 2 short ticks: penalty = %v, want 0.02", b.ShortagePenalty)
	}

	// full supply resets outright
	b.UpdateShortagePenalty(map[GoodType]float64{Tools: 10})
	if b.ShortagePenalty != 0 {
		t.Errorf("after full supply: penalty = %v, want 0", b.ShortagePenalty)
	}
}

func TestShortagePenaltyBoundedByWorstRatio(t *testing.T) {
	kind := testKind(t, "logging_camp")
	b, err := NewBuilding("Camp", kind, 2, 5, "")
	if err != nil {
		t.Fatal(err)
	}

	// 99.5% supplied: the step would overshoot the actual shortage
	b.UpdateShortagePenalty(map[GoodType]float64{Tools: 9.95})
	if math.Abs(b.ShortagePenalty-0.005) > 1e-9 {
		t.Errorf("penalty = %v, want shortage ratio 0.005", b.ShortagePenalty)
	}
}

func TestShortagePenaltyCap(t *testing.T) {
	kind := testKind(t, "logging_camp")
	b, err := NewBuilding("Camp", kind, 2, 5, "")
	if err != nil {
		t.Fatal(err)
	}

	b.ShortagePenalty = 0.495
	empty := map[GoodType]float64{}
	b.UpdateShortagePenalty(empty)
	if b.ShortagePenalty != MaxShortagePenalty {
		t.Errorf("penalty = %v, want cap %v", b.ShortagePenalty, MaxShortagePenalty)
	}
	b.UpdateShortagePenalty(empty)
	if b.ShortagePenalty != MaxShortagePenalty {
		t.Errorf("penalty moved past cap: %v", b.ShortagePenalty)
	}
}
