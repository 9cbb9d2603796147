package domain

import "strings"

// Category is a measurement kind. It determines which units are comparable.
type Category string

const (
	CategoryTemperature Category = "temperature"
	CategoryLength      Category = "length"
	CategoryTime        Category = "time"
	CategoryVolume      Category = "volume"
)

// Categories returns every declared category in picker order.
func Categories() []Category {
	return []Category{CategoryTemperature, CategoryLength, CategoryTime, CategoryVolume}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTemperature, CategoryLength, CategoryTime, CategoryVolume:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }

// ParseCategory maps a user-provided name to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", InvalidCategoryError("domain.parse_category", s)
	}
	return c, nil
}
