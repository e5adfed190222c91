package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	fallbackBackground = "#1a1b26"
	fallbackColour     = "#c0caf5"
)

// Styles are derived from the configured palette; inverting the palette and
// re-deriving swaps every surface.
type Styles struct {
	Title  lipgloss.Style
	Prompt lipgloss.Style
	Notice lipgloss.Style
	Faint  lipgloss.Style
	Clock  lipgloss.Style
}

// NewStyles builds the style set from the palette colours. Values that do
// not parse as hex colours fall back to the defaults.
func NewStyles(background, colour string) Styles {
	bg := parseHex(background, fallbackBackground)
	fg := parseHex(colour, fallbackColour)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),
		Notice: lipgloss.NewStyle().
			Foreground(fg).
			Italic(true),
		Faint: lipgloss.NewStyle().
			Foreground(fg).
			Faint(true),
		Clock: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Bold(true).
			Padding(0, 1),
	}
}

func parseHex(value, fallback string) lipgloss.Color {
	if _, err := colorful.Hex(value); err != nil {
		value = fallback
	}
	return lipgloss.Color(value)
}
