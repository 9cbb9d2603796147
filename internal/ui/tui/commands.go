package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/unitconv/internal/domain"
)

const toastTTL = 3 * time.Second

func cmdChooseCategory(c domain.Category) tea.Cmd {
	return func() tea.Msg {
		return categoryChosenMsg{category: c}
	}
}

func cmdClearToast() tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastClearedMsg{}
	})
}
