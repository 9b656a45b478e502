package warehouse

import (
	"math"
	"strings"
	"testing"
)

// palletTestConfig builds a small single-section warehouse for assignment
// tests: 2 floors × 2 rows × 2 columns, 200 cm cells, no wall gaps.
func palletTestConfig(pallets ...PalletConfig) Config {
	return Config{
		Dimensions:  Dimensions{Width: 400, Length: 400, Height: 400, Unit: "cm"},
		NumSections: 1,
		Sections: []SectionConfig{{
			NumFloors:  2,
			NumRows:    2,
			NumColumns: 2,
			Pallets:    pallets,
		}},
	}
}

func findRack(t *testing.T, tree *Tree, idx Indices) Rack {
	t.Helper()
	for _, s := range tree.Sections {
		for _, r := range s.Racks {
			if r.Indices == idx {
				return r
			}
		}
	}
	t.Fatalf("rack %+v not found", idx)
	return Rack{}
}

func TestAssignPalletMatchAndClamp(t *testing.T) {
	cfg := palletTestConfig(PalletConfig{
		Type:       "euro",
		Color:      "#336699",
		Dimensions: Dimensions{Width: 500, Length: 500, Height: 500, Unit: "cm"},
		Position:   PalletPosition{Floor: 1, Row: 1, Column: 1},
	})

	tree, warnings, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}

	rack := findRack(t, tree, Indices{Floor: 1, Row: 1, Col: 1, Depth: 1})
	if len(rack.Pallets) != 1 {
		t.Fatalf("rack holds %d pallets, want 1", len(rack.Pallets))
	}

	p := rack.Pallets[0]
	if p.Type != "euro" || p.Color != "#336699" {
		t.Errorf("pallet = %+v, want type euro color #336699", p)
	}

	// Oversized 500 cm pallet clamps to 90%/90%/80% of the 200 cm cell.
	wantDims := Dimensions{Width: 180, Length: 180, Height: 160, Unit: "cm"}
	if p.Dims != wantDims {
		t.Errorf("pallet dims = %+v, want %+v", p.Dims, wantDims)
	}

	// Centered in the footprint, fixed clearance above the cell floor.
	wantPos := Vec3{X: 10, Y: 10, Z: palletClearanceCM}
	if p.Position != wantPos {
		t.Errorf("pallet position = %+v, want %+v", p.Position, wantPos)
	}
}

func TestAssignPalletKeepsSmallDims(t *testing.T) {
	cfg := palletTestConfig(PalletConfig{
		Type:       "half",
		Dimensions: Dimensions{Width: 80, Length: 60, Height: 15, Unit: "cm"},
		Position:   PalletPosition{Floor: 2, Row: 2, Column: 2},
	})

	tree, _, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	rack := findRack(t, tree, Indices{Floor: 2, Row: 2, Col: 2, Depth: 1})
	p := rack.Pallets[0]
	if p.Dims != (Dimensions{Width: 80, Length: 60, Height: 15, Unit: "cm"}) {
		t.Errorf("pallet dims = %+v, want unchanged", p.Dims)
	}
	if math.Abs(p.Position.X-(rack.Position.X+60)) > Tolerance {
		t.Errorf("pallet X = %v, want centered at %v", p.Position.X, rack.Position.X+60)
	}
	if p.Color != DefaultColor {
		t.Errorf("pallet color = %q, want default %q", p.Color, DefaultColor)
	}
}

func TestAssignPalletSkips(t *testing.T) {
	tests := []struct {
		name     string
		pallet   PalletConfig
		dualSide bool
		wantMsg  string
	}{
		{
			name: "column out of range names index and maximum",
			pallet: PalletConfig{
				Type:     "euro",
				Position: PalletPosition{Floor: 1, Row: 1, Column: 5},
			},
			wantMsg: "column 5 exceeds maximum 2",
		},
		{
			name: "floor out of range",
			pallet: PalletConfig{
				Type:     "euro",
				Position: PalletPosition{Floor: 9, Row: 1, Column: 1},
			},
			wantMsg: "floor 9 exceeds maximum 2",
		},
		{
			name: "depth out of range",
			pallet: PalletConfig{
				Type:     "euro",
				Position: PalletPosition{Floor: 1, Row: 1, Column: 1, Depth: 2},
			},
			wantMsg: "depth 2 exceeds maximum 1",
		},
		{
			name: "incomplete position",
			pallet: PalletConfig{
				Type:     "euro",
				Position: PalletPosition{Row: 1, Column: 1}, // floor missing
			},
			wantMsg: "position incomplete",
		},
		{
			name: "side on single-sided section",
			pallet: PalletConfig{
				Type:     "euro",
				Position: PalletPosition{Side: SideLeft, Floor: 1, Row: 1, Column: 1},
			},
			wantMsg: "single-sided",
		},
		{
			name: "unknown side tag on dual-sided section",
			pallet: PalletConfig{
				Type:     "euro",
				Position: PalletPosition{Side: "top", Floor: 1, Row: 1, Column: 1},
			},
			dualSide: true,
			wantMsg:  `side "top"`,
		},
		{
			name: "missing side on dual-sided section",
			pallet: PalletConfig{
				Type:     "euro",
				Position: PalletPosition{Floor: 1, Row: 1, Column: 1},
			},
			dualSide: true,
			wantMsg:  `side ""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := palletTestConfig(tt.pallet)
			if tt.dualSide {
				cfg.Sections[0].DualSide = true
				cfg.Sections[0].AisleWidth = 40
			}

			tree, warnings, err := Compute(cfg)
			if err != nil {
				t.Fatalf("Compute() error: %v", err)
			}
			if tree.PalletCount() != 0 {
				t.Errorf("tree holds %d pallets, want 0", tree.PalletCount())
			}
			if len(warnings) != 1 {
				t.Fatalf("warnings = %v, want exactly 1", warnings)
			}
			w := warnings[0]
			if w.Section != 1 || w.Pallet != 1 || w.Type != "euro" {
				t.Errorf("warning = %+v, want section 1 pallet 1 type euro", w)
			}
			if !strings.Contains(w.Message, tt.wantMsg) {
				t.Errorf("warning message %q does not contain %q", w.Message, tt.wantMsg)
			}
		})
	}
}

func TestAssignPalletSkipDoesNotAffectOthers(t *testing.T) {
	cfg := palletTestConfig(
		PalletConfig{
			Type:     "good",
			Position: PalletPosition{Floor: 1, Row: 1, Column: 1},
		},
		PalletConfig{
			Type:     "stray",
			Position: PalletPosition{Floor: 1, Row: 1, Column: 5},
		},
		PalletConfig{
			Type:     "also-good",
			Position: PalletPosition{Floor: 2, Row: 1, Column: 2},
		},
	)

	tree, warnings, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if tree.PalletCount() != 2 {
		t.Errorf("tree holds %d pallets, want 2", tree.PalletCount())
	}
	if len(warnings) != 1 || warnings[0].Pallet != 2 {
		t.Errorf("warnings = %v, want one for pallet 2", warnings)
	}
	if tree.RackCount() != 8 {
		t.Errorf("tree holds %d racks, want 8", tree.RackCount())
	}
}

func TestAssignMultiplePalletsSameCell(t *testing.T) {
	// Overlapping assignments are allowed; no collision detection runs.
	same := PalletPosition{Floor: 1, Row: 2, Column: 1}
	cfg := palletTestConfig(
		PalletConfig{Type: "first", Position: same},
		PalletConfig{Type: "second", Position: same},
	)

	tree, warnings, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}

	rack := findRack(t, tree, Indices{Floor: 1, Row: 2, Col: 1, Depth: 1})
	if len(rack.Pallets) != 2 {
		t.Fatalf("rack holds %d pallets, want 2", len(rack.Pallets))
	}
	if rack.Pallets[0].Type != "first" || rack.Pallets[1].Type != "second" {
		t.Errorf("pallet order = %s, %s; want config order", rack.Pallets[0].Type, rack.Pallets[1].Type)
	}
}
