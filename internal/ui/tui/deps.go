package tui

import (
	"log/slog"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

type Deps struct {
	Catalog ports.UnitCatalog
	Select  *usecase.SelectUnits
	Convert *usecase.ConvertValue

	// Category is the one shown when the form opens. Empty means length.
	Category domain.Category

	Logger *slog.Logger
	Debug  bool

	// LogPath is shown in the footer when Debug is set.
	LogPath string
}
