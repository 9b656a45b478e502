package warehouse

import (
	"strings"
	"testing"

	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/errors"
)

// validConfig returns a config that passes validation: two sections of
// 4 floors × 8 rows × 4 columns with uniform 100 cm wall gaps.
func validConfig() Config {
	section := SectionConfig{
		NumFloors:  4,
		NumRows:    8,
		NumColumns: 4,
		WallGaps:   WallGaps{Front: 100, Back: 100, Left: 100, Right: 100, Unit: "cm"},
	}
	return Config{
		Dimensions:  Dimensions{Width: 3000, Length: 6000, Height: 1500, Unit: "cm"},
		NumSections: 2,
		Sections:    []SectionConfig{section, section},
	}
}

func TestValidateAcceptsUsableConfig(t *testing.T) {
	if errs := Validate(validConfig()); len(errs) != 0 {
		t.Fatalf("Validate() = %v, want no errors", errs)
	}
}

func TestValidateAggregatesAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Dimensions.Width = -50
	cfg.HeightSafetyMargin = 1500 // equal to height

	errs := Validate(cfg)
	if len(errs) < 2 {
		t.Fatalf("Validate() returned %d errors, want at least 2: %v", len(errs), errs)
	}

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	if !fields["dimensions.width"] {
		t.Error("missing violation for dimensions.width")
	}
	if !fields["height_safety_margin"] {
		t.Error("missing violation for height_safety_margin")
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantCode errors.Code
		field    string
	}{
		{
			name:     "zero width",
			mutate:   func(c *Config) { c.Dimensions.Width = 0 },
			wantCode: errors.ErrCodeInvalidDimension,
			field:    "dimensions.width",
		},
		{
			name:     "negative length",
			mutate:   func(c *Config) { c.Dimensions.Length = -1 },
			wantCode: errors.ErrCodeInvalidDimension,
			field:    "dimensions.length",
		},
		{
			name:     "negative safety margin",
			mutate:   func(c *Config) { c.HeightSafetyMargin = -10 },
			wantCode: errors.ErrCodeInvalidDimension,
			field:    "height_safety_margin",
		},
		{
			name:     "zero sections",
			mutate:   func(c *Config) { c.NumSections = 0; c.Sections = nil },
			wantCode: errors.ErrCodeInvalidDimension,
			field:    "num_sections",
		},
		{
			name:     "section count mismatch",
			mutate:   func(c *Config) { c.NumSections = 3 },
			wantCode: errors.ErrCodeInvalidConfig,
			field:    "sections",
		},
		{
			name:     "negative section gap",
			mutate:   func(c *Config) { c.SectionGap = -5 },
			wantCode: errors.ErrCodeInvalidDimension,
			field:    "section_gap",
		},
		{
			name:     "section gap swallows width",
			mutate:   func(c *Config) { c.SectionGap = 3000 },
			wantCode: errors.ErrCodeGapOverflow,
			field:    "section_gap",
		},
		{
			name:     "zero floors",
			mutate:   func(c *Config) { c.Sections[0].NumFloors = 0 },
			wantCode: errors.ErrCodeInvalidDimension,
			field:    "sections[0].num_floors",
		},
		{
			name:     "negative wall gap",
			mutate:   func(c *Config) { c.Sections[1].WallGaps.Back = -1 },
			wantCode: errors.ErrCodeInvalidDimension,
			field:    "sections[1].wall_gaps.back",
		},
		{
			name:     "front and back gaps exceed length",
			mutate: func(c *Config) {
				c.Sections[0].WallGaps.Front = 3000
				c.Sections[0].WallGaps.Back = 3000
			},
			wantCode: errors.ErrCodeGapOverflow,
			field:    "sections[0].wall_gaps",
		},
		{
			name: "left and right gaps exceed side width",
			mutate: func(c *Config) {
				c.Sections[0].WallGaps.Left = 800
				c.Sections[0].WallGaps.Right = 700
			},
			wantCode: errors.ErrCodeGapOverflow,
			field:    "sections[0].wall_gaps",
		},
		{
			name: "central aisle exceeds section width",
			mutate: func(c *Config) {
				c.Sections[0].DualSide = true
				c.Sections[0].AisleWidth = 1500
			},
			wantCode: errors.ErrCodeGapOverflow,
			field:    "sections[0].aisle_width",
		},
		{
			name:     "custom gap array length mismatch",
			mutate:   func(c *Config) { c.Sections[0].CustomGaps = []float64{10, 20} },
			wantCode: errors.ErrCodeInvalidConfig,
			field:    "sections[0].custom_gaps",
		},
		{
			name:     "custom gaps swallow available width",
			mutate:   func(c *Config) { c.Sections[0].CustomGaps = []float64{500, 500, 400} },
			wantCode: errors.ErrCodeGapOverflow,
			field:    "sections[0].custom_gaps",
		},
		{
			name:     "negative custom gap",
			mutate:   func(c *Config) { c.Sections[0].CustomGaps = []float64{10, -1, 10} },
			wantCode: errors.ErrCodeInvalidDimension,
			field:    "sections[0].custom_gaps[1]",
		},
		{
			name: "rack cell count over limit",
			mutate: func(c *Config) {
				c.Sections[0].NumFloors = 100
				c.Sections[0].NumRows = 100
				c.Sections[0].NumColumns = 26
			},
			wantCode: errors.ErrCodeResourceLimit,
			field:    "sections",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			errs := Validate(cfg)
			if len(errs) == 0 {
				t.Fatal("Validate() returned no errors, want at least one")
			}
			for _, e := range errs {
				if e.Code == tt.wantCode && e.Field == tt.field {
					return
				}
			}
			t.Errorf("no error with code %s on field %s, got %v", tt.wantCode, tt.field, errs)
		})
	}
}

func TestValidateNormalizesUnitsFirst(t *testing.T) {
	// 30 m wide = 3000 cm; valid even though the raw number is small.
	cfg := validConfig()
	cfg.Dimensions = Dimensions{Width: 30, Length: 60, Height: 15, Unit: "m"}
	cfg.Sections[0].WallGaps = WallGaps{Front: 1, Back: 1, Left: 1, Right: 1, Unit: "m"}
	cfg.Sections[1].WallGaps = cfg.Sections[0].WallGaps

	if errs := Validate(cfg); len(errs) != 0 {
		t.Fatalf("Validate() = %v, want no errors", errs)
	}
}

func TestValidateDerivedCellMinimums(t *testing.T) {
	cfg := validConfig()
	cfg.Sections[0].NumFloors = 200 // 1500 cm / 200 floors = 7.5 cm < 10 cm

	errs := Validate(cfg)
	found := false
	for _, e := range errs {
		if e.Field == "sections[0].num_floors" && strings.Contains(e.Message, "floor height") {
			found = true
		}
	}
	if !found {
		t.Errorf("no derived floor height violation in %v", errs)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Errors: []ConfigError{
		configErr(errors.ErrCodeInvalidDimension, "dimensions.width", "must be positive, got 0"),
	}}
	want := "invalid config: INVALID_DIMENSION: dimensions.width: must be positive, got 0"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
