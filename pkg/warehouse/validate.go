package warehouse

import (
	"fmt"

	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/errors"
)

// Minimum usable rack cell dimensions, in centimeters. A config whose
// derived cell sizes fall below these cannot hold a pallet.
const (
	minRackWidthCM   = 1.0
	minRackLengthCM  = 1.0
	minFloorHeightCM = 10.0
)

// Safety caps checked before placement. They bound total allocation for a
// single computation; configs above them are rejected outright.
const (
	MaxRackCells = 250_000
	MaxPallets   = 50_000
)

// Validate checks all structural and numeric constraints on the config and
// returns every violation found. It never fails fast: a config with several
// problems reports all of them in one call. An empty result means the config
// is usable by Compute.
func Validate(cfg Config) []ConfigError {
	return validateNormalized(cfg.Normalized())
}

// validateNormalized runs all checks against an already-normalized config.
func validateNormalized(n Config) []ConfigError {
	var errs []ConfigError

	dims := n.Dimensions
	if dims.Width <= 0 {
		errs = append(errs, configErr(errors.ErrCodeInvalidDimension,
			"dimensions.width", "must be positive, got %v", dims.Width))
	}
	if dims.Length <= 0 {
		errs = append(errs, configErr(errors.ErrCodeInvalidDimension,
			"dimensions.length", "must be positive, got %v", dims.Length))
	}
	if dims.Height <= 0 {
		errs = append(errs, configErr(errors.ErrCodeInvalidDimension,
			"dimensions.height", "must be positive, got %v", dims.Height))
	}

	if n.HeightSafetyMargin < 0 {
		errs = append(errs, configErr(errors.ErrCodeInvalidDimension,
			"height_safety_margin", "must not be negative, got %v", n.HeightSafetyMargin))
	} else if n.HeightSafetyMargin >= dims.Height {
		errs = append(errs, configErr(errors.ErrCodeInvalidDimension,
			"height_safety_margin", "must be less than height %v, got %v", dims.Height, n.HeightSafetyMargin))
	}

	if n.NumSections < 1 {
		errs = append(errs, configErr(errors.ErrCodeInvalidDimension,
			"num_sections", "must be at least 1, got %d", n.NumSections))
	}
	if len(n.Sections) != n.NumSections {
		errs = append(errs, configErr(errors.ErrCodeInvalidConfig,
			"sections", "expected %d section configs, got %d", n.NumSections, len(n.Sections)))
	}
	if n.SectionGap < 0 {
		errs = append(errs, configErr(errors.ErrCodeInvalidDimension,
			"section_gap", "must not be negative, got %v", n.SectionGap))
	}

	// Section width is shared by all per-section gap checks. It is only
	// meaningful once the warehouse-level values above are sane.
	sectionWidth := 0.0
	haveSectionWidth := dims.Width > 0 && n.NumSections >= 1 && n.SectionGap >= 0
	if haveSectionWidth {
		sectionWidth = sectionExtent(dims.Width, n.SectionGap, n.NumSections)
		if sectionWidth <= 0 {
			errs = append(errs, configErr(errors.ErrCodeGapOverflow,
				"section_gap", "section gaps consume the full warehouse width %v, no space left for sections", dims.Width))
			haveSectionWidth = false
		}
	}

	for i, sec := range n.Sections {
		errs = append(errs, validateSection(i, sec, n, sectionWidth, haveSectionWidth)...)
	}

	errs = append(errs, validateLimits(n)...)
	return errs
}

// validateSection checks one section's grid shape and spacing.
func validateSection(i int, sec SectionConfig, n Config, sectionWidth float64, haveSectionWidth bool) []ConfigError {
	var errs []ConfigError
	field := func(name string) string { return fmt.Sprintf("sections[%d].%s", i, name) }

	countsOK := true
	for _, c := range []struct {
		name  string
		value int
	}{
		{"num_floors", sec.NumFloors},
		{"num_rows", sec.NumRows},
		{"num_columns", sec.NumColumns},
		{"depth", sec.Depth},
	} {
		if c.value < 1 {
			countsOK = false
			errs = append(errs, configErr(errors.ErrCodeInvalidDimension,
				field(c.name), "must be at least 1, got %d", c.value))
		}
	}

	gapsOK := true
	for _, g := range []struct {
		name  string
		value float64
	}{
		{"wall_gaps.front", sec.WallGaps.Front},
		{"wall_gaps.back", sec.WallGaps.Back},
		{"wall_gaps.left", sec.WallGaps.Left},
		{"wall_gaps.right", sec.WallGaps.Right},
		{"aisle_width", sec.AisleWidth},
	} {
		if g.value < 0 {
			gapsOK = false
			errs = append(errs, configErr(errors.ErrCodeInvalidDimension,
				field(g.name), "must not be negative, got %v", g.value))
		}
	}
	for j, g := range sec.CustomGaps {
		if g < 0 {
			gapsOK = false
			errs = append(errs, configErr(errors.ErrCodeInvalidDimension,
				fmt.Sprintf("%s[%d]", field("custom_gaps"), j), "must not be negative, got %v", g))
		}
	}

	if n.Dimensions.Length > 0 && sec.WallGaps.Front+sec.WallGaps.Back >= n.Dimensions.Length {
		errs = append(errs, configErr(errors.ErrCodeGapOverflow,
			field("wall_gaps"), "front and back gaps (%v) must be less than section length %v",
			sec.WallGaps.Front+sec.WallGaps.Back, n.Dimensions.Length))
	}

	if !haveSectionWidth || !gapsOK {
		return errs
	}

	sideWidth := sectionWidth
	if sec.DualSide {
		if sec.AisleWidth >= sectionWidth {
			errs = append(errs, configErr(errors.ErrCodeGapOverflow,
				field("aisle_width"), "central aisle %v must be less than section width %v",
				sec.AisleWidth, sectionWidth))
			return errs
		}
		sideWidth = (sectionWidth - sec.AisleWidth) / 2
	}

	if sec.WallGaps.Left+sec.WallGaps.Right >= sideWidth {
		errs = append(errs, configErr(errors.ErrCodeGapOverflow,
			field("wall_gaps"), "left and right gaps (%v) must be less than side width %v",
			sec.WallGaps.Left+sec.WallGaps.Right, sideWidth))
		return errs
	}

	if !countsOK {
		return errs
	}

	availWidth := sideWidth - sec.WallGaps.Left - sec.WallGaps.Right
	slots := sec.slotCount()

	if len(sec.CustomGaps) > 0 && len(sec.CustomGaps) != slots-1 {
		errs = append(errs, configErr(errors.ErrCodeInvalidConfig,
			field("custom_gaps"), "expected %d gaps for %d column slots, got %d",
			slots-1, slots, len(sec.CustomGaps)))
		return errs
	}

	var gapSum float64
	for _, g := range sec.CustomGaps {
		gapSum += g
	}
	if gapSum >= availWidth {
		errs = append(errs, configErr(errors.ErrCodeGapOverflow,
			field("custom_gaps"), "custom gaps sum to %v, leaving no space for racks in available width %v",
			gapSum, availWidth))
		return errs
	}

	// Derived cell dimensions must remain usable.
	colWidth := (availWidth - gapSum) / float64(slots)
	if colWidth < minRackWidthCM {
		errs = append(errs, configErr(errors.ErrCodeInvalidDimension,
			field("num_columns"), "derived rack width %.2fcm is below the %.0fcm minimum", colWidth, minRackWidthCM))
	}
	if n.Dimensions.Length > 0 {
		rowLength := (n.Dimensions.Length - sec.WallGaps.Front - sec.WallGaps.Back) / float64(sec.NumRows)
		if rowLength >= 0 && rowLength < minRackLengthCM {
			errs = append(errs, configErr(errors.ErrCodeInvalidDimension,
				field("num_rows"), "derived rack length %.2fcm is below the %.0fcm minimum", rowLength, minRackLengthCM))
		}
	}
	if gridHeight := n.Dimensions.Height - n.HeightSafetyMargin; gridHeight > 0 {
		floorHeight := gridHeight / float64(sec.NumFloors)
		if floorHeight < minFloorHeightCM {
			errs = append(errs, configErr(errors.ErrCodeInvalidDimension,
				field("num_floors"), "derived floor height %.2fcm is below the %.0fcm minimum", floorHeight, minFloorHeightCM))
		}
	}

	return errs
}

// validateLimits enforces the upfront allocation caps.
func validateLimits(n Config) []ConfigError {
	var errs []ConfigError

	racks, pallets := 0, 0
	for _, sec := range n.Sections {
		if sec.NumFloors < 1 || sec.NumRows < 1 || sec.NumColumns < 1 || sec.Depth < 1 {
			continue // counts already flagged; a product would be meaningless
		}
		racks += sec.rackCount()
		pallets += len(sec.Pallets)
	}

	if racks > MaxRackCells {
		errs = append(errs, configErr(errors.ErrCodeResourceLimit,
			"sections", "config produces %d rack cells, limit is %d", racks, MaxRackCells))
	}
	if pallets > MaxPallets {
		errs = append(errs, configErr(errors.ErrCodeResourceLimit,
			"sections", "config holds %d pallets, limit is %d", pallets, MaxPallets))
	}
	return errs
}
