package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tmorvan/statesim/internal/models"
)

const sampleTopology = `
country: C1
states:
  - id: S1
    export_tariff: 0.1
    ledger:
      wood: 500
      tools: 250
    buildings:
      - name: Old Camp
        kind: logging_camp
        level: 3
        max_level: 10
        method: SawMills
        cash: 1000
      - kind: construction_sector
        level: 1
        max_level: 5
  - id: S2
    buildings:
      - kind: wheat_farm
        level: 2
        max_level: 20
`

func writeTopology(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "topology.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCountry(t *testing.T) {
	path := writeTopology(t, sampleTopology)

	c, err := LoadCountry(path, models.DefaultCatalog())
	if err != nil {
		t.Fatalf("LoadCountry: %v", err)
	}

	if c.ID != "C1" {
		t.Errorf("country id = %q, want C1", c.ID)
	}
	states := c.States()
	if len(states) != 2 || states[0].ID != "S1" || states[1].ID != "S2" {
		t.Fatalf("states = %v", states)
	}

	s1 := states[0]
	if s1.ExportTariff != 0.1 {
		t.Errorf("S1 tariff = %v, want 0.1", s1.ExportTariff)
	}

	camp, err := s1.Building("Old Camp")
	if err != nil {
		t.Fatal(err)
	}
	if camp.Level != 3 || camp.MaxLevel != 10 {
		t.Errorf("camp level = %d/%d, want 3/10", camp.Level, camp.MaxLevel)
	}
	if camp.ActiveMethod() != "SawMills" {
		t.Errorf("camp method = %q, want SawMills", camp.ActiveMethod())
	}
	if camp.CashReserve != 1000 {
		t.Errorf("camp cash = %v, want 1000", camp.CashReserve)
	}

	// unnamed buildings take the kind's display name
	if _, err := s1.Building("Construction Sector"); err != nil {
		t.Errorf("display-named building: %v", err)
	}

	// explicit ledger seeds override the per-building top-up
	if got := s1.Ledger[models.Wood].Quantity; got != 500 {
		t.Errorf("wood stock = %v, want 500", got)
	}
	if got := s1.Ledger[models.Tools].Quantity; got != 250 {
		t.Errorf("tools stock = %v, want 250", got)
	}

	// unlisted states keep the default tariff
	if states[1].ExportTariff != 0.05 {
		t.Errorf("S2 tariff = %v, want default 0.05", states[1].ExportTariff)
	}
}

func TestLoadCountryMissingFile(t *testing.T) {
	if _, err := LoadCountry(filepath.Join(t.TempDir(), "absent.yaml"), models.DefaultCatalog()); err == nil {
		t.Error("want error for missing file")
	}
}

func TestBuildCountryValidation(t *testing.T) {
	tests := []struct {
		name     string
		topology string
		wantErr  string
	}{
		{
			name:     "no country id",
			topology: "states:\n  - id: S1\n    buildings: []\n",
			wantErr:  "country id",
		},
		{
			name:     "no states",
			topology: "country: C1\nstates: []\n",
			wantErr:  "at least one state",
		},
		{
			name:     "no state id",
			topology: "country: C1\nstates:\n  - buildings: []\n",
			wantErr:  "state id",
		},
		{
			name: "unknown kind",
			topology: `country: C1
states:
  - id: S1
    buildings:
      - kind: gold_mine
        level: 1
        max_level: 5
`,
			wantErr: "unknown building kind",
		},
		{
			name: "unknown method",
			topology: `country: C1
states:
  - id: S1
    buildings:
      - kind: logging_camp
        level: 1
        max_level: 5
        method: SteamDonkeys
`,
			wantErr: "SteamDonkeys",
		},
		{
			name: "unknown ledger good",
			topology: `country: C1
states:
  - id: S1
    ledger:
      gold: 100
    buildings:
      - kind: wheat_farm
        level: 1
        max_level: 5
`,
			wantErr: "unknown good",
		},
		{
			name: "duplicate state id",
			topology: `country: C1
states:
  - id: S1
    buildings: []
  - id: S1
    buildings: []
`,
			wantErr: "duplicate state id",
		},
		{
			name: "duplicate building names",
			topology: `country: C1
states:
  - id: S1
    buildings:
      - kind: wheat_farm
        level: 1
        max_level: 5
      - kind: wheat_farm
        level: 2
        max_level: 5
`,
			wantErr: "duplicate building name",
		},
		{
			name: "level above max",
			topology: `country: C1
states:
  - id: S1
    buildings:
      - kind: wheat_farm
        level: 7
        max_level: 5
`,
			wantErr: "level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTopology(t, tt.topology)
			_, err := LoadCountry(path, models.DefaultCatalog())
			if err == nil {
				t.Fatal("want error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
