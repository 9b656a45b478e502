// Package units converts length quantities between measurement units.
//
// All downstream layout computation works in centimeters. This package is
// the single conversion boundary: configuration values arrive with a unit
// symbol and leave as canonical centimeters.
//
// Unknown unit symbols convert with a factor of 1.0 rather than failing.
// Configuration passes through here before validation, and a hard failure
// on an unrecognized symbol would mask the more useful dimension errors
// the validator reports afterwards.
package units

import "strings"

// Canonical is the unit symbol all quantities are normalized to.
const Canonical = "cm"

// factors maps lowercase unit symbols to their centimeter factor.
var factors = map[string]float64{
	"cm": 1.0,
	"m":  100.0,
	"km": 100000.0,
	"mm": 0.1,
	"in": 2.54,
	"ft": 30.48,
	"yd": 91.44,
}

// ToCM converts value from the given unit to centimeters.
// Unit symbols are matched case-insensitively. Unknown symbols are treated
// as a 1.0 factor, so the value passes through unchanged.
func ToCM(value float64, unit string) float64 {
	f, ok := factors[strings.ToLower(unit)]
	if !ok {
		return value
	}
	return value * f
}

// Known reports whether unit is a recognized symbol.
func Known(unit string) bool {
	_, ok := factors[strings.ToLower(unit)]
	return ok
}
