package warehouse

// Pallet containment limits. A pallet never occupies more than these
// fractions of its rack cell, and sits a fixed clearance above the cell
// floor, so the containment invariant holds regardless of configured size.
const (
	maxPalletWidthFrac  = 0.9
	maxPalletLengthFrac = 0.9
	maxPalletHeightFrac = 0.8
	palletClearanceCM   = 2.0
)

// assignPallets maps each configured pallet onto the rack cell whose
// indices exactly match its logical position. Matching is direct index
// equality; there is no nearest-neighbor or partial match. Pallets that
// cannot be matched are skipped with a Warning and never abort the
// computation.
//
// Multiple pallets may land on the same rack cell. No stacking or collision
// detection is performed; overlapping assignments are passed through as-is.
func assignPallets(sec SectionConfig, sectionNo int, racks []Rack) []Warning {
	var warnings []Warning

	byIndex := make(map[Indices]int, len(racks))
	for i, r := range racks {
		byIndex[r.Indices] = i
	}

	for pi, p := range sec.Pallets {
		pos := p.Position
		warn := func(format string, args ...any) {
			warnings = append(warnings, placementWarning(sectionNo, pi+1, p.Type, format, args...))
		}

		if pos.Floor < 1 || pos.Row < 1 || pos.Column < 1 || pos.Depth < 1 {
			warn("position incomplete: floor, row and column must be positive 1-based indices")
			continue
		}

		side := pos.Side
		if sec.DualSide {
			if side != SideLeft && side != SideRight {
				warn("side %q is not one of %q or %q", side, SideLeft, SideRight)
				continue
			}
		} else if side != "" {
			warn("section is single-sided, side %q not allowed", side)
			continue
		}

		if pos.Floor > sec.NumFloors {
			warn("floor %d exceeds maximum %d", pos.Floor, sec.NumFloors)
			continue
		}
		if pos.Row > sec.NumRows {
			warn("row %d exceeds maximum %d", pos.Row, sec.NumRows)
			continue
		}
		if pos.Column > sec.NumColumns {
			warn("column %d exceeds maximum %d", pos.Column, sec.NumColumns)
			continue
		}
		if pos.Depth > sec.Depth {
			warn("depth %d exceeds maximum %d", pos.Depth, sec.Depth)
			continue
		}

		idx := Indices{Floor: pos.Floor, Row: pos.Row, Col: pos.Column, Depth: pos.Depth, Side: side}
		ri, ok := byIndex[idx]
		if !ok {
			// All ranges checked above, so this cannot happen for a grid
			// produced by placeGrid; guard anyway rather than panic.
			warn("no rack cell at floor %d row %d column %d depth %d", pos.Floor, pos.Row, pos.Column, pos.Depth)
			continue
		}

		racks[ri].Pallets = append(racks[ri].Pallets, fitPallet(p, racks[ri]))
	}
	return warnings
}

// fitPallet clamps the pallet to its rack cell, centers it within the cell
// footprint, and anchors it at a fixed clearance above the cell floor.
func fitPallet(p PalletConfig, rack Rack) Pallet {
	d := p.Dimensions
	w := max(0, min(d.Width, rack.Dimensions.Width*maxPalletWidthFrac))
	l := max(0, min(d.Length, rack.Dimensions.Length*maxPalletLengthFrac))
	h := max(0, min(d.Height, rack.Dimensions.Height*maxPalletHeightFrac))

	return Pallet{
		Type:  p.Type,
		Color: p.Color,
		Dims:  Dimensions{Width: w, Length: l, Height: h, Unit: d.Unit},
		Position: Vec3{
			X: rack.Position.X + (rack.Dimensions.Width-w)/2,
			Y: rack.Position.Y + (rack.Dimensions.Length-l)/2,
			Z: rack.Position.Z + palletClearanceCM,
		},
	}
}
