// Package metric maps health measurement types to display units and parsing
// rules for raw input values.
package metric

import (
	"strconv"
	"strings"
)

const TypeBloodPressure = "blood_pressure"

// units is the fixed type→unit table. Types missing here fall through to
// "decimal, no unit".
var units = map[string]string{
	"weight":          "kg",
	TypeBloodPressure: "mmHg",
	"blood_sugar":     "mmol/L",
	"heart_rate":      "beats/min",
	"temperature":     "℃",
	"sleep":           "hours",
	"exercise":        "minutes",
	"water":           "ml",
	"calories":        "kcal",
	"steps":           "steps",
}

// Unit returns the display unit for a data type, "" for unrecognized types.
func Unit(dataType string) string {
	return units[dataType]
}

// ParseDecimal extracts a decimal from raw input by stripping every rune that
// is not a digit or a dot. Malformed input yields nil rather than an error.
func ParseDecimal(raw string) *float64 {
	if raw == "" {
		return nil
	}
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseBloodPressure splits a "systolic/diastolic" string such as "130/80".
// Returns nils when the input does not have exactly two integer parts.
func ParseBloodPressure(raw string) (systolic, diastolic *int) {
	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return nil, nil
	}
	sys, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, nil
	}
	dia, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, nil
	}
	return &sys, &dia
}
