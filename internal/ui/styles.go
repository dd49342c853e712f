package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/uddict/dictation-app/cli/internal/config"
	"github.com/uddict/dictation-app/cli/internal/ui/components"
)

// Styles holds every style the screens draw with. It is built once from the
// configured theme and passed down; nothing reads colours from globals.
type Styles struct {
	Frame components.Frame

	Banner   lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Accent   lipgloss.Style
	ReadOnly lipgloss.Style
	Divider  lipgloss.Style

	// Markdown is the glamour style name used by the preview; "auto"
	// follows the terminal background.
	Markdown string
}

// PaletteFromTheme converts configured hex colours into a component palette.
func PaletteFromTheme(t config.Theme) components.Palette {
	return components.Palette{
		Primary:    lipgloss.Color(t.Primary),
		Secondary:  lipgloss.Color(t.Secondary),
		Accent:     lipgloss.Color(t.Accent),
		Background: lipgloss.Color(t.Background),
		Text:       lipgloss.Color(t.Text),
		Muted:      lipgloss.Color(t.Muted),
		Success:    lipgloss.Color(t.Success),
		Error:      lipgloss.Color(t.Error),
		Border:     lipgloss.Color(t.Border),
	}
}

// NewStyles builds the style set for theme.
func NewStyles(theme config.Theme) Styles {
	p := PaletteFromTheme(theme)
	return Styles{
		Frame: components.NewFrame(p),

		Banner: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted),
		Section: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),
		Value: lipgloss.NewStyle().
			Foreground(p.Text),
		Selected: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Success: lipgloss.NewStyle().
			Foreground(p.Success),
		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(p.Accent),
		ReadOnly: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Secondary).
			Bold(true).
			Padding(0, 1),
		Divider: lipgloss.NewStyle().
			Foreground(p.Border),

		Markdown: "auto",
	}
}

// DefaultStyles uses the default theme.
func DefaultStyles() Styles {
	return NewStyles(config.DefaultTheme())
}
