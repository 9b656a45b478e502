package units

import "testing"

func TestToCM(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
		want  float64
	}{
		{
			name:  "centimeters pass through",
			value: 25,
			unit:  "cm",
			want:  25,
		},
		{
			name:  "meters",
			value: 10,
			unit:  "m",
			want:  1000,
		},
		{
			name:  "kilometers",
			value: 0.5,
			unit:  "km",
			want:  50000,
		},
		{
			name:  "millimeters",
			value: 150,
			unit:  "mm",
			want:  15,
		},
		{
			name:  "inches",
			value: 10,
			unit:  "in",
			want:  25.4,
		},
		{
			name:  "feet",
			value: 2,
			unit:  "ft",
			want:  60.96,
		},
		{
			name:  "yards",
			value: 1,
			unit:  "yd",
			want:  91.44,
		},
		{
			name:  "uppercase symbol",
			value: 3,
			unit:  "M",
			want:  300,
		},
		{
			name:  "unknown symbol passes through",
			value: 42,
			unit:  "furlong",
			want:  42,
		},
		{
			name:  "empty symbol passes through",
			value: 7,
			unit:  "",
			want:  7,
		},
		{
			name:  "zero value",
			value: 0,
			unit:  "ft",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToCM(tt.value, tt.unit); got != tt.want {
				t.Errorf("ToCM(%v, %q) = %v, want %v", tt.value, tt.unit, got, tt.want)
			}
		})
	}
}

func TestKnown(t *testing.T) {
	for _, unit := range []string{"cm", "m", "km", "mm", "in", "ft", "yd", "FT"} {
		if !Known(unit) {
			t.Errorf("Known(%q) = false, want true", unit)
		}
	}
	for _, unit := range []string{"", "furlong", "cubit"} {
		if Known(unit) {
			t.Errorf("Known(%q) = true, want false", unit)
		}
	}
}
