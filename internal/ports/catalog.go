package ports

import "github.com/aalvaropc/unitconv/internal/domain"

// UnitCatalog answers which units belong to a category.
type UnitCatalog interface {
	UnitsFor(c domain.Category) (domain.UnitList, error)
	ResolveUnit(c domain.Category, name string) (string, bool)
	Supported(c domain.Category) bool
	Categories() []domain.Category
}
