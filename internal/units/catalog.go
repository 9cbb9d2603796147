package units

import (
	"strings"

	"github.com/aalvaropc/unitconv/internal/domain"
)

// Catalog maps categories to their ordered unit lists.
type Catalog struct{}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// UnitsFor returns a copy of the unit list for c.
//
// time and volume are declared without unit data and fail with ErrUnsupportedCategory.
// Anything outside the declared set fails with ErrInvalidCategory.
func (*Catalog) UnitsFor(c domain.Category) (domain.UnitList, error) {
	t, ok, err := tableFor(c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.UnsupportedCategoryError("units.units_for", c)
	}
	out := make(domain.UnitList, len(t.order))
	copy(out, t.order)
	return out, nil
}

// Supported reports whether c has unit data.
func (*Catalog) Supported(c domain.Category) bool {
	_, ok, err := tableFor(c)
	return ok && err == nil
}

// Categories returns every declared category in picker order.
func (*Catalog) Categories() []domain.Category {
	return domain.Categories()
}

// ResolveUnit finds name in c's unit list ignoring case and returns its canonical spelling.
func (*Catalog) ResolveUnit(c domain.Category, name string) (string, bool) {
	t, ok, err := tableFor(c)
	if err != nil || !ok {
		return "", false
	}
	in := strings.TrimSpace(name)
	for _, u := range t.order {
		if strings.EqualFold(u, in) {
			return u, true
		}
	}
	return "", false
}

// DefaultSelection seeds a form with two distinct units: target is the first entry,
// source the second. A single-entry list uses that entry for both. ok is false
// for an empty list.
func DefaultSelection(units domain.UnitList) (target, source string, ok bool) {
	switch {
	case len(units) >= 2:
		return units[0], units[1], true
	case len(units) == 1:
		return units[0], units[0], true
	default:
		return "", "", false
	}
}
