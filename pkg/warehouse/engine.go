package warehouse

import "fmt"

// Tolerance for floating point comparisons on placement axes, in
// centimeters. Gap conservation holds within this bound.
const Tolerance = 1e-6

// Compute runs the full layout pipeline on cfg and returns the resulting
// tree together with any placement warnings.
//
// The config is normalized to centimeters, then validated; if validation
// finds any violation the returned error is a *ValidationError carrying
// every ConfigError, and no tree is produced. A successful computation
// always returns a complete tree; pallets that could not be placed appear
// in the warning list instead.
//
// Compute retains no state between invocations and the returned tree is
// never mutated by the engine afterwards.
func Compute(cfg Config) (*Tree, []Warning, error) {
	n := cfg.Normalized()

	if errs := validateNormalized(n); len(errs) > 0 {
		return nil, nil, &ValidationError{Errors: errs}
	}

	boxes := placeSections(n)

	sections := make([]Section, len(boxes))
	warnings := []Warning{}
	for i, box := range boxes {
		sec := n.Sections[i]
		racks := placeGrid(n, sec, box)
		warnings = append(warnings, assignPallets(sec, i+1, racks)...)

		sections[i] = Section{
			ID:       fmt.Sprintf("section-%d", i+1),
			Position: box.origin,
			Dimensions: Dimensions{
				Width:  box.width,
				Length: n.Dimensions.Length,
				Height: n.Dimensions.Height,
				Unit:   n.Dimensions.Unit,
			},
			Racks: racks,
		}
	}

	tree := &Tree{
		WarehouseDimensions: n.Dimensions,
		Sections:            sections,
	}
	return tree, warnings, nil
}
