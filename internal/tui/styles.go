package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/davidwl/keyhint/pkg/config"
)

// Styles bundles the lipgloss styles of the picker, built once from config.
type Styles struct {
	Matched  lipgloss.Style
	Selected lipgloss.Style
	Keys     lipgloss.Style
	Group    lipgloss.Style
	Modifier lipgloss.Style
	Dim      lipgloss.Style
}

// NewStyles derives the picker styles from the [ui] config section.
func NewStyles(ui config.UIConfig) Styles {
	return Styles{
		Matched:  lipgloss.NewStyle().Foreground(lipgloss.Color(ui.HighlightColor)).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color(ui.SelectedColor)).Bold(true),
		Keys:     lipgloss.NewStyle().Foreground(lipgloss.Color(ui.KeysColor)),
		Group:    lipgloss.NewStyle().Italic(true),
		Modifier: lipgloss.NewStyle().Foreground(lipgloss.Color(ui.SelectedColor)),
		Dim:      lipgloss.NewStyle().Faint(true),
	}
}
