package usecase

import (
	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
	"github.com/aalvaropc/unitconv/internal/units"
)

type SelectUnits struct {
	catalog ports.UnitCatalog
}

func NewSelectUnits(catalog ports.UnitCatalog) *SelectUnits {
	return &SelectUnits{catalog: catalog}
}

// Execute returns the unit list and default (target, source) pair for a category.
//
// For categories without unit data the returned Selection still names the category,
// has HasDefaults=false, and the error is ErrUnsupportedCategory so callers can
// disable conversion instead of showing garbage.
func (uc *SelectUnits) Execute(c domain.Category) (domain.Selection, error) {
	sel := domain.Selection{Category: c}

	list, err := uc.catalog.UnitsFor(c)
	if err != nil {
		return sel, err
	}

	sel.Units = list
	sel.Target, sel.Source, sel.HasDefaults = units.DefaultSelection(list)
	return sel, nil
}
