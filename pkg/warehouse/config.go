package warehouse

import (
	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/units"
)

// =============================================================================
// Configuration Model
// =============================================================================

// Dimensions is a 3D extent with an optional unit symbol.
// After normalization the unit is always canonical centimeters.
type Dimensions struct {
	Width  float64 `json:"width" toml:"width" bson:"width"`
	Length float64 `json:"length" toml:"length" bson:"length"`
	Height float64 `json:"height" toml:"height" bson:"height"`
	Unit   string  `json:"unit,omitempty" toml:"unit,omitempty" bson:"unit,omitempty"`
}

// Config is the root warehouse configuration.
//
// All quantities may be given in any supported unit; Normalized converts
// them to centimeters. The engine consumes normalized configs only.
type Config struct {
	Dimensions Dimensions `json:"dimensions" toml:"dimensions" bson:"dimensions"`

	// HeightSafetyMargin is clearance reserved below the ceiling, in the
	// same unit as Dimensions. Rack grids span Height − margin.
	HeightSafetyMargin float64 `json:"height_safety_margin,omitempty" toml:"height_safety_margin,omitempty" bson:"height_safety_margin,omitempty"`

	NumSections    int     `json:"num_sections" toml:"num_sections" bson:"num_sections"`
	SectionGap     float64 `json:"section_gap" toml:"section_gap" bson:"section_gap"`
	SectionGapUnit string  `json:"section_gap_unit,omitempty" toml:"section_gap_unit,omitempty" bson:"section_gap_unit,omitempty"`

	Sections []SectionConfig `json:"sections" toml:"sections" bson:"sections"`
}

// WallGaps is the clearance between a section's rack grid and the section
// boundary, per wall.
type WallGaps struct {
	Front float64 `json:"front" toml:"front" bson:"front"`
	Back  float64 `json:"back" toml:"back" bson:"back"`
	Left  float64 `json:"left" toml:"left" bson:"left"`
	Right float64 `json:"right" toml:"right" bson:"right"`
	Unit  string  `json:"unit,omitempty" toml:"unit,omitempty" bson:"unit,omitempty"`
}

// SectionConfig describes one repeating section's rack grid.
//
// The same shape serves single-sided and dual-sided sections: when DualSide
// is set, the grid is mirrored onto the left and right halves of the section
// around a central aisle of AisleWidth.
type SectionConfig struct {
	NumFloors  int `json:"num_floors" toml:"num_floors" bson:"num_floors"`
	NumRows    int `json:"num_rows" toml:"num_rows" bson:"num_rows"`
	NumColumns int `json:"num_columns" toml:"num_columns" bson:"num_columns"`

	// Depth is the number of column slots stacked behind each primary
	// column for multi-deep storage. Zero means 1.
	Depth int `json:"depth,omitempty" toml:"depth,omitempty" bson:"depth,omitempty"`

	DualSide       bool    `json:"dual_side,omitempty" toml:"dual_side,omitempty" bson:"dual_side,omitempty"`
	AisleWidth     float64 `json:"aisle_width,omitempty" toml:"aisle_width,omitempty" bson:"aisle_width,omitempty"`
	AisleWidthUnit string  `json:"aisle_width_unit,omitempty" toml:"aisle_width_unit,omitempty" bson:"aisle_width_unit,omitempty"`

	WallGaps WallGaps `json:"wall_gaps" toml:"wall_gaps" bson:"wall_gaps"`

	// CustomGaps overrides uniform column spacing. When supplied its length
	// must equal NumColumns×Depth − 1; values share WallGaps.Unit.
	CustomGaps []float64 `json:"custom_gaps,omitempty" toml:"custom_gaps,omitempty" bson:"custom_gaps,omitempty"`

	Pallets []PalletConfig `json:"pallets,omitempty" toml:"pallets,omitempty" bson:"pallets,omitempty"`
}

// PalletConfig describes one pallet and its logical rack address.
// The section is implicit: pallets belong to the SectionConfig listing them.
type PalletConfig struct {
	Type       string         `json:"type" toml:"type" bson:"type"`
	Weight     float64        `json:"weight,omitempty" toml:"weight,omitempty" bson:"weight,omitempty"`
	Dimensions Dimensions     `json:"dimensions" toml:"dimensions" bson:"dimensions"`
	Color      string         `json:"color,omitempty" toml:"color,omitempty" bson:"color,omitempty"`
	Position   PalletPosition `json:"position" toml:"position" bson:"position"`
}

// PalletPosition is a 1-based logical rack address.
type PalletPosition struct {
	// Side is "left" or "right" for dual-sided sections, empty otherwise.
	Side   string `json:"side,omitempty" toml:"side,omitempty" bson:"side,omitempty"`
	Floor  int    `json:"floor" toml:"floor" bson:"floor"`
	Row    int    `json:"row" toml:"row" bson:"row"`
	Column int    `json:"column" toml:"column" bson:"column"`
	// Depth addresses multi-deep slots. Zero means 1.
	Depth int `json:"depth,omitempty" toml:"depth,omitempty" bson:"depth,omitempty"`
}

// Side tags for dual-sided sections.
const (
	SideLeft  = "left"
	SideRight = "right"
)

// DefaultColor is assigned to pallets with no configured color.
const DefaultColor = "#8B4513"

// =============================================================================
// Normalization
// =============================================================================

// Normalized returns a deep copy of the config with every quantity converted
// to canonical centimeters, unit fields rewritten to "cm", and zero-valued
// Depth fields defaulted to 1. The receiver is not modified.
func (c Config) Normalized() Config {
	u := c.Dimensions.Unit
	out := c
	out.Dimensions = normalizeDimensions(c.Dimensions)
	out.HeightSafetyMargin = units.ToCM(c.HeightSafetyMargin, u)
	out.SectionGap = units.ToCM(c.SectionGap, c.SectionGapUnit)
	out.SectionGapUnit = units.Canonical

	out.Sections = make([]SectionConfig, len(c.Sections))
	for i, sec := range c.Sections {
		out.Sections[i] = sec.normalized()
	}
	return out
}

func (s SectionConfig) normalized() SectionConfig {
	out := s
	if out.Depth == 0 {
		out.Depth = 1
	}

	gapUnit := s.WallGaps.Unit
	out.WallGaps = WallGaps{
		Front: units.ToCM(s.WallGaps.Front, gapUnit),
		Back:  units.ToCM(s.WallGaps.Back, gapUnit),
		Left:  units.ToCM(s.WallGaps.Left, gapUnit),
		Right: units.ToCM(s.WallGaps.Right, gapUnit),
		Unit:  units.Canonical,
	}

	aisleUnit := s.AisleWidthUnit
	if aisleUnit == "" {
		aisleUnit = units.Canonical
	}
	out.AisleWidth = units.ToCM(s.AisleWidth, aisleUnit)
	out.AisleWidthUnit = units.Canonical

	if len(s.CustomGaps) > 0 {
		out.CustomGaps = make([]float64, len(s.CustomGaps))
		for i, g := range s.CustomGaps {
			out.CustomGaps[i] = units.ToCM(g, gapUnit)
		}
	}

	out.Pallets = make([]PalletConfig, len(s.Pallets))
	for i, p := range s.Pallets {
		np := p
		np.Dimensions = normalizeDimensions(p.Dimensions)
		if np.Position.Depth == 0 {
			np.Position.Depth = 1
		}
		if np.Color == "" {
			np.Color = DefaultColor
		}
		out.Pallets[i] = np
	}
	return out
}

func normalizeDimensions(d Dimensions) Dimensions {
	return Dimensions{
		Width:  units.ToCM(d.Width, d.Unit),
		Length: units.ToCM(d.Length, d.Unit),
		Height: units.ToCM(d.Height, d.Unit),
		Unit:   units.Canonical,
	}
}

// slotCount returns the number of column slots per side (columns × depth).
func (s SectionConfig) slotCount() int {
	depth := s.Depth
	if depth == 0 {
		depth = 1
	}
	return s.NumColumns * depth
}

// sideCount returns 2 for dual-sided sections, 1 otherwise.
func (s SectionConfig) sideCount() int {
	if s.DualSide {
		return 2
	}
	return 1
}

// rackCount returns the total number of rack cells the section produces.
func (s SectionConfig) rackCount() int {
	return s.sideCount() * s.NumFloors * s.NumRows * s.slotCount()
}
