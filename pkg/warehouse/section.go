package warehouse

// sectionExtent derives the width of one section by dividing the warehouse
// width evenly among n sections after subtracting total gap space.
func sectionExtent(warehouseWidth, gap float64, n int) float64 {
	return (warehouseWidth - gap*float64(n-1)) / float64(n)
}

// sectionBox is a placed section before its rack grid exists.
type sectionBox struct {
	index  int // 0-based
	origin Vec3
	width  float64
}

// placeSections positions the configured number of sections along the X
// axis, advancing by section extent plus the inter-section gap. The config
// must be normalized and validated: a non-positive derived extent is caught
// by the validator, never here.
func placeSections(n Config) []sectionBox {
	width := sectionExtent(n.Dimensions.Width, n.SectionGap, n.NumSections)

	boxes := make([]sectionBox, n.NumSections)
	for i := range boxes {
		boxes[i] = sectionBox{
			index:  i,
			origin: Vec3{X: float64(i) * (width + n.SectionGap)},
			width:  width,
		}
	}
	return boxes
}
