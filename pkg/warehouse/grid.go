package warehouse

import "fmt"

// sideSpec describes one rack grid within a section. Single-sided sections
// have one untagged side spanning the full width; dual-sided sections have
// a left and a right side flanking the central aisle.
type sideSpec struct {
	tag      string
	mirrored bool
}

// placeGrid produces the full rack cell set for one placed section.
//
// Column slot offsets are accumulated once per side from the wall gap and
// the (uniform or custom) inter-column gaps; rows and floors divide their
// available extent evenly. The right side of a dual-sided section is the
// mirror image of the left around the section centerline, so column 1 sits
// at the outer wall on both sides.
//
// placeGrid assumes a normalized, validated config. A custom gap array of
// the wrong length here is a programming error, not a user error.
func placeGrid(n Config, sec SectionConfig, box sectionBox) []Rack {
	slots := sec.slotCount()
	if len(sec.CustomGaps) > 0 && len(sec.CustomGaps) != slots-1 {
		panic(fmt.Sprintf("warehouse: custom gap count %d does not match %d column slots; config not validated",
			len(sec.CustomGaps), slots))
	}

	sideWidth := box.width
	sides := []sideSpec{{tag: ""}}
	if sec.DualSide {
		sideWidth = (box.width - sec.AisleWidth) / 2
		sides = []sideSpec{{tag: SideLeft}, {tag: SideRight, mirrored: true}}
	}

	availWidth := sideWidth - sec.WallGaps.Left - sec.WallGaps.Right
	availLength := n.Dimensions.Length - sec.WallGaps.Front - sec.WallGaps.Back
	gridHeight := n.Dimensions.Height - n.HeightSafetyMargin

	var gapSum float64
	for _, g := range sec.CustomGaps {
		gapSum += g
	}

	colWidth := (availWidth - gapSum) / float64(slots)
	rowLength := availLength / float64(sec.NumRows)
	floorHeight := gridHeight / float64(sec.NumFloors)

	// Relative offset of each column slot from the side's outer wall, in
	// slot order (depth-major, matching slot numbering below).
	rel := make([]float64, slots)
	x := sec.WallGaps.Left
	for s := 0; s < slots; s++ {
		if s > 0 && len(sec.CustomGaps) > 0 {
			x += sec.CustomGaps[s-1]
		}
		rel[s] = x
		x += colWidth
	}

	dims := Dimensions{Width: colWidth, Length: rowLength, Height: floorHeight, Unit: n.Dimensions.Unit}
	racks := make([]Rack, 0, sec.rackCount())

	for _, side := range sides {
		for f := 1; f <= sec.NumFloors; f++ {
			for r := 1; r <= sec.NumRows; r++ {
				for c := 1; c <= sec.NumColumns; c++ {
					for d := 1; d <= sec.Depth; d++ {
						slot := (d-1)*sec.NumColumns + c
						offset := rel[slot-1]
						rackX := box.origin.X + offset
						if side.mirrored {
							rackX = box.origin.X + box.width - offset - colWidth
						}
						idx := Indices{Floor: f, Row: r, Col: c, Depth: d, Side: side.tag}
						racks = append(racks, Rack{
							ID:      rackID(box.index+1, idx),
							Indices: idx,
							Position: Vec3{
								X: rackX,
								Y: sec.WallGaps.Front + float64(r-1)*rowLength,
								Z: float64(f-1) * floorHeight,
							},
							Dimensions: dims,
							Pallets:    []Pallet{},
						})
					}
				}
			}
		}
	}
	return racks
}

// rackID builds a stable rack identifier from the section number and indices.
func rackID(section int, idx Indices) string {
	if idx.Side != "" {
		return fmt.Sprintf("rack-%d-%s-f%d-r%d-c%d-d%d", section, idx.Side, idx.Floor, idx.Row, idx.Col, idx.Depth)
	}
	return fmt.Sprintf("rack-%d-f%d-r%d-c%d-d%d", section, idx.Floor, idx.Row, idx.Col, idx.Depth)
}
