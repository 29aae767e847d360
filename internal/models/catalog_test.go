package models

import "testing"

func TestDefaultCatalogKinds(t *testing.T) {
	catalog := DefaultCatalog()

	wantOrder := []string{
		"logging_camp", "coal_mine", "tool_workshop",
		"wheat_farm", "iron_mine", "construction_sector",
	}
	got := catalog.Names()
	if len(got) != len(wantOrder) {
		t.Fatalf("catalog has %d kinds, want %d", len(got), len(wantOrder))
	}
	for i, name := range wantOrder {
		if got[i] != name {
			t.Errorf("kind[%d] = %q, want %q", i, got[i], name)
		}
	}
}

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	catalog := DefaultCatalog()

	catalog.Each(func(k *BuildingKind) {
		if k.BuildCost <= 0 {
			t.Errorf("%s: build cost %v", k.Name, k.BuildCost)
		}
		if _, ok := k.Method(k.DefaultMethod); !ok {
			t.Errorf("%s: default method %q is not defined", k.Name, k.DefaultMethod)
		}

		for _, m := range k.Methods {
			for good := range m.Production {
				if !IsKnownGood(good) {
					t.Errorf("%s/%s produces unknown good %q", k.Name, m.Name, good)
				}
			}
			for good := range m.Consumption {
				if !IsKnownGood(good) {
					t.Errorf("%s/%s consumes unknown good %q", k.Name, m.Name, good)
				}
			}
			for _, e := range m.Employees {
				if e.Wage <= 0 || e.Count < 0 {
					t.Errorf("%s/%s: employee %s wage=%v count=%d", k.Name, m.Name, e.Name, e.Wage, e.Count)
				}
			}
		}
	})
}

func TestCatalogLookups(t *testing.T) {
	catalog := DefaultCatalog()

	kind, ok := catalog.Kind("iron_mine")
	if !ok {
		t.Fatal("iron_mine not registered")
	}
	if kind.MethodIndex("PicksShovels") != 0 || kind.MethodIndex("AtmosphericEnginePump") != 1 {
		t.Errorf("method order: %v", kind.MethodNames())
	}
	if kind.MethodIndex("Bogus") != -1 {
		t.Error("unknown method should index to -1")
	}

	if _, ok := catalog.Kind("gold_mine"); ok {
		t.Error("unknown kind lookup should fail")
	}
}

func TestGoodPricesClosedSet(t *testing.T) {
	if len(AllGoodTypes()) != 6 {
		t.Fatalf("want 6 goods, got %d", len(AllGoodTypes()))
	}
	for _, good := range AllGoodTypes() {
		if !IsKnownGood(good) {
			t.Errorf("%s not recognized", good)
		}
	}
	if IsKnownGood("gold") {
		t.Error("gold should not be a known good")
	}
	if BaseGoodPrice(Construction) != 0 {
		t.Errorf("construction base price = %v, want 0", BaseGoodPrice(Construction))
	}
}
