// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds every style the views render with. Two fixed palettes are
// provided; the active one follows the persisted dark-mode flag rather
// than terminal background detection.
type Theme struct {
	Dark bool

	// Title is the style for the application title
	Title lipgloss.Style

	// Subtitle is for pane headings
	Subtitle lipgloss.Style

	// Pane is the border style for an unfocused pane
	Pane lipgloss.Style

	// PaneFocused is the border style for the focused pane
	PaneFocused lipgloss.Style

	// Item is the base style for a list row
	Item lipgloss.Style

	// ItemSelected is the style for the row under the cursor
	ItemSelected lipgloss.Style

	// Suggestion rows in the autocomplete dropdown
	Suggestion         lipgloss.Style
	SuggestionSelected lipgloss.Style

	// MirrorName is for mirror display labels
	MirrorName lipgloss.Style

	// Command is for generated install commands
	Command lipgloss.Style

	// StatusBar styles
	StatusBar        lipgloss.Style
	StatusBarSuccess lipgloss.Style

	// Help overlay styles
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Hint is for the key hint line
	Hint lipgloss.Style
}

type palette struct {
	highlight lipgloss.Color
	subtle    lipgloss.Color
	success   lipgloss.Color
	text      lipgloss.Color
	selection lipgloss.Color
	statusFg  lipgloss.Color
	statusBg  lipgloss.Color
}

var darkPalette = palette{
	highlight: lipgloss.Color("#7D56F4"),
	subtle:    lipgloss.Color("#999999"),
	success:   lipgloss.Color("#66FF66"),
	text:      lipgloss.Color("#DDDDDD"),
	selection: lipgloss.Color("#2A2A2A"),
	statusFg:  lipgloss.Color("#DDDDDD"),
	statusBg:  lipgloss.Color("#1F1F1F"),
}

var lightPalette = palette{
	highlight: lipgloss.Color("#874BFD"),
	subtle:    lipgloss.Color("#666666"),
	success:   lipgloss.Color("#00AA00"),
	text:      lipgloss.Color("#333333"),
	selection: lipgloss.Color("#EEEEEE"),
	statusFg:  lipgloss.Color("#333333"),
	statusBg:  lipgloss.Color("#E8E8E8"),
}

// New builds the theme for the given mode.
func New(dark bool) Theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return Theme{
		Dark: dark,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.highlight),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.subtle),

		Pane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.subtle).
			Padding(0, 1),

		PaneFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.highlight).
			Padding(0, 1),

		Item: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(p.text),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Background(p.selection),

		Suggestion: lipgloss.NewStyle().
			PaddingLeft(3).
			Foreground(p.subtle),

		SuggestionSelected: lipgloss.NewStyle().
			PaddingLeft(3).
			Bold(true).
			Foreground(p.highlight),

		MirrorName: lipgloss.NewStyle().
			Foreground(p.text),

		Command: lipgloss.NewStyle().
			Foreground(p.highlight),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.statusFg).
			Background(p.statusBg).
			Padding(0, 1),

		StatusBarSuccess: lipgloss.NewStyle().
			Foreground(p.success).
			Background(p.statusBg).
			Bold(true),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.highlight),

		HelpDesc: lipgloss.NewStyle().
			Foreground(p.subtle),

		Hint: lipgloss.NewStyle().
			Foreground(p.subtle).
			Faint(true),
	}
}
