package models

import "testing"

func TestActionKindStrings(t *testing.T) {
	tests := []struct {
		kind ActionKind
		want string
	}{
		{ActionSwapMethod, "SwapProductionMethod"},
		{ActionUpgrade, "Upgrade"},
		{ActionDowngrade, "Downgrade"},
		{ActionNone, "NoAction"},
		{ActionKind(0), "Unknown"},
		{ActionKind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ActionKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestActionKindEncodingStartsAtOne(t *testing.T) {
	// 0 is reserved for "no action present" in feature vectors
	kinds := AllActionKinds()
	for i, k := range kinds {
		if int(k) != i+1 {
			t.Errorf("kind %s = %d, want %d", k, int(k), i+1)
		}
	}
}

func TestActionConstructors(t *testing.T) {
	a := SwapMethod("S1", "Camp", "SawMills")
	if a.Kind != ActionSwapMethod || a.NewMethod != "SawMills" {
		t.Errorf("SwapMethod = %+v", a)
	}

	for _, a := range []Action{Upgrade("S1", "Camp"), Downgrade("S1", "Camp"), NoAction("S1", "Camp")} {
		if a.NewMethod != "" {
			t.Errorf("%s: NewMethod = %q, want empty", a.Kind, a.NewMethod)
		}
		if a.StateID != "S1" || a.BuildingName != "Camp" {
			t.Errorf("%s: target = %s/%s", a.Kind, a.StateID, a.BuildingName)
		}
	}
}
