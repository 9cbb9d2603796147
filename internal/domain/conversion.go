package domain

import (
	"fmt"
	"strings"
)

// UnitList is an ordered sequence of unit names belonging to one Category.
type UnitList []string

// ConversionRequest is an immutable description of a single conversion.
type ConversionRequest struct {
	Value    float64  `json:"value"`
	Source   string   `json:"from"`
	Target   string   `json:"to"`
	Category Category `json:"category"`
}

// ConversionResult holds the converted value and the canonical intermediate.
type ConversionResult struct {
	Request       ConversionRequest `json:"request"`
	Value         float64           `json:"result"`
	Canonical     float64           `json:"canonical"`
	CanonicalUnit string            `json:"canonical_unit"`
}

// Selection is the unit list for a category plus its default (target, source) pair.
type Selection struct {
	Category    Category
	Units       UnitList
	Target      string
	Source      string
	HasDefaults bool
}

// Policy decides how unknown unit names are treated by the conversion engine.
type Policy string

const (
	// PolicyStrict fails with ErrUnknownUnit.
	PolicyStrict Policy = "strict"
	// PolicyLenient treats unknown units as already canonical (identity stage).
	PolicyLenient Policy = "lenient"
)

// ParsePolicy maps a config/flag value to a Policy. Empty means strict.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyStrict, "":
		return PolicyStrict, nil
	case PolicyLenient:
		return PolicyLenient, nil
	default:
		return "", fmt.Errorf("unsupported policy %q (expected strict|lenient): %w", s, ErrInvalidConfig)
	}
}
