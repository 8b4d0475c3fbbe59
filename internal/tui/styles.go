package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"

	"feeddeck/internal/carousel"
)

type Styles struct {
	flavor catppuccin.Flavor
}

func NewStyles(themeName string) *Styles {
	flavor := flavorFromName(themeName)
	return &Styles{flavor: flavor}
}

func flavorFromName(name string) catppuccin.Flavor {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	case "mocha":
		return catppuccin.Mocha
	default:
		return catppuccin.Mocha
	}
}

func (s *Styles) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(s.flavor.Mauve().Hex))
}

func (s *Styles) SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Subtext0().Hex))
}

func (s *Styles) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Overlay0().Hex))
}

func (s *Styles) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Red().Hex)).
		Bold(true)
}

func (s *Styles) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Teal().Hex))
}

// ColumnStyle returns the bordered box style for a column, tiered by its
// distance from the focused column.
func (s *Styles) ColumnStyle(state carousel.FocusState) lipgloss.Style {
	base := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	switch state {
	case carousel.FocusFocused:
		return base.
			BorderForeground(lipgloss.Color(s.flavor.Mauve().Hex)).
			Foreground(lipgloss.Color(s.flavor.Text().Hex))
	case carousel.FocusAdjacent:
		return base.
			BorderForeground(lipgloss.Color(s.flavor.Surface2().Hex)).
			Foreground(lipgloss.Color(s.flavor.Subtext0().Hex))
	default:
		return base.
			BorderForeground(lipgloss.Color(s.flavor.Surface0().Hex)).
			Foreground(lipgloss.Color(s.flavor.Overlay0().Hex))
	}
}

func (s *Styles) ColumnTitleStyle(state carousel.FocusState) lipgloss.Style {
	if state == carousel.FocusFocused {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(s.flavor.Mauve().Hex))
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Subtext0().Hex))
}

func (s *Styles) TOCFocusedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(s.flavor.Mauve().Hex))
}

func (s *Styles) TOCHoverStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Teal().Hex))
}

func (s *Styles) TOCStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Subtext0().Hex))
}

func (s *Styles) TOCDescriptionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Overlay1().Hex)).
		Italic(true)
}

func (s *Styles) StatusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Subtext0().Hex))
}
