package tui

import "github.com/aalvaropc/unitconv/internal/domain"

// categoryChosenMsg is sent when a category is picked from the categories screen.
type categoryChosenMsg struct {
	category domain.Category
}

type toastClearedMsg struct{}
