package units

import "github.com/aalvaropc/unitconv/internal/domain"

// scale converts between a unit and its category's canonical unit.
//
// When perCanonical is false, factor is canonical units per unit (kilometers: 1000).
// When true, factor is units per canonical unit (feet: 3.28084). Keeping both
// forms lets each constant be applied exactly as written, multiply or divide.
type scale struct {
	factor       float64
	perCanonical bool
	offset       float64
}

// Offsets are applied only when non-zero so -0 passes through unchanged.
func (s scale) toCanonical(v float64) float64 {
	x := v
	if s.offset != 0 {
		x -= s.offset
	}
	if s.perCanonical {
		return x / s.factor
	}
	return x * s.factor
}

func (s scale) fromCanonical(c float64) float64 {
	var x float64
	if s.perCanonical {
		x = c * s.factor
	} else {
		x = c / s.factor
	}
	if s.offset != 0 {
		x += s.offset
	}
	return x
}

type table struct {
	canonical string
	order     domain.UnitList
	scales    map[string]scale
}

var (
	lengthTable = table{
		canonical: "meters",
		order:     domain.UnitList{"meters", "kilometers", "feet", "yards", "miles"},
		scales: map[string]scale{
			"meters":     {factor: 1},
			"kilometers": {factor: 1000},
			"feet":       {factor: 3.28084, perCanonical: true},
			"yards":      {factor: 1.09361, perCanonical: true},
			"miles":      {factor: 1609.34},
		},
	}

	temperatureTable = table{
		canonical: "Celsius",
		order:     domain.UnitList{"Celsius", "Fahrenheit"},
		scales: map[string]scale{
			"Celsius":    {factor: 1},
			"Fahrenheit": {factor: 1.8, perCanonical: true, offset: 32},
		},
	}
)

// tableFor returns the table for c. ok is false for declared categories without data.
func tableFor(c domain.Category) (t table, ok bool, err error) {
	switch c {
	case domain.CategoryLength:
		return lengthTable, true, nil
	case domain.CategoryTemperature:
		return temperatureTable, true, nil
	case domain.CategoryTime, domain.CategoryVolume:
		return table{}, false, nil
	default:
		return table{}, false, domain.InvalidCategoryError("units.table", string(c))
	}
}
