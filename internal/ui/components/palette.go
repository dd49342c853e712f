package components

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colours every component draws with.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
}

// DefaultPalette matches the default configuration theme.
func DefaultPalette() Palette {
	return Palette{
		Primary:    "#3f51b5",
		Secondary:  "#7986cb",
		Accent:     "#ff7043",
		Background: "#16161d",
		Text:       "#d7d9da",
		Muted:      "#9ba0bf",
		Success:    "#3f866b",
		Error:      "#c0504d",
		Border:     "#273540",
	}
}

// Frame renders boxes, dialogs, tables and hints in one palette.
type Frame struct {
	Palette Palette

	box       lipgloss.Style
	boxActive lipgloss.Style
	header    lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	muted     lipgloss.Style

	errBorder lipgloss.Style
	errHeader lipgloss.Style
	errBody   lipgloss.Style

	removed lipgloss.Style
	added   lipgloss.Style

	hintKey  lipgloss.Style
	hintDesc lipgloss.Style
	segment  lipgloss.Style

	gridLine      lipgloss.Style
	gridActive    lipgloss.Style
	gridActiveSep lipgloss.Style
}

// NewFrame builds the component styles for p.
func NewFrame(p Palette) Frame {
	rounded := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	return Frame{
		Palette:   p,
		box:       rounded.BorderForeground(p.Border),
		boxActive: rounded.BorderForeground(p.Primary),
		header:    lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		label:     lipgloss.NewStyle().Foreground(p.Secondary).Bold(true),
		value:     lipgloss.NewStyle().Foreground(p.Text),
		muted:     lipgloss.NewStyle().Foreground(p.Muted),

		errBorder: rounded.BorderForeground(p.Error),
		errHeader: lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		errBody:   lipgloss.NewStyle().Foreground(p.Text),

		removed: lipgloss.NewStyle().Foreground(p.Error),
		added:   lipgloss.NewStyle().Foreground(p.Accent),

		hintKey: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Muted).
			Bold(true).
			Padding(0, 1),
		hintDesc: lipgloss.NewStyle().Foreground(p.Muted),
		segment: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Border).
			Padding(0, 1).
			MarginRight(1),

		gridLine: lipgloss.NewStyle().Foreground(p.Border),
		gridActive: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Border).
			Bold(true),
		gridActiveSep: lipgloss.NewStyle().
			Foreground(p.Border).
			Background(p.Border),
	}
}
