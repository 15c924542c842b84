package tui

import "github.com/charmbracelet/lipgloss"

// Base16 is a base16 palette. Base00..Base07 run darkest to lightest
// and cover backgrounds, status bars and line highlighting; Base08..
// Base0F are the accent colours.
type Base16 struct {
	Base00, Base01, Base02, Base03 lipgloss.Color
	Base04, Base05, Base06, Base07 lipgloss.Color
	Base08, Base09, Base0A, Base0B lipgloss.Color
	Base0C, Base0D, Base0E, Base0F lipgloss.Color
}

// Icy is the default palette, a cold cyan-on-near-black scheme.
var Icy = Base16{
	Base00: lipgloss.Color("#021012"),
	Base01: lipgloss.Color("#031619"),
	Base02: lipgloss.Color("#041f23"),
	Base03: lipgloss.Color("#052e34"),
	Base04: lipgloss.Color("#064048"),
	Base05: lipgloss.Color("#095b67"),
	Base06: lipgloss.Color("#0c7c8c"),
	Base07: lipgloss.Color("#109cb0"),
	Base08: lipgloss.Color("#16c1d9"),
	Base09: lipgloss.Color("#b3ebf2"),
	Base0A: lipgloss.Color("#80deea"),
	Base0B: lipgloss.Color("#4dd0e1"),
	Base0C: lipgloss.Color("#26c6da"),
	Base0D: lipgloss.Color("#00bcd4"),
	Base0E: lipgloss.Color("#00acc1"),
	Base0F: lipgloss.Color("#01090c"),
}

// Palettes maps settings names to palettes.
var Palettes = map[string]Base16{
	"icy": Icy,
}

// PaletteByName returns the named palette, falling back to Icy.
func PaletteByName(name string) Base16 {
	if palette, ok := Palettes[name]; ok {
		return palette
	}
	return Icy
}

// PipelineTheme styles one pipeline column.
type PipelineTheme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Card     CardTheme
}

// CardTheme styles one issue card.
type CardTheme struct {
	Number lipgloss.Style
	Text   lipgloss.Style
	Border lipgloss.Style
}

// StatusTheme styles the bottom status bar.
type StatusTheme struct {
	Indicator lipgloss.Style
	Text      lipgloss.Style
	Error     lipgloss.Style
}

// Theme holds every style the dashboard renders with. It is built once
// from a palette and passed through construction; nothing reads theme
// state from globals.
type Theme struct {
	Divider           lipgloss.Style
	PipelineFocused   PipelineTheme
	PipelineUnfocused PipelineTheme
	Status            StatusTheme
}

// NewTheme derives the dashboard styles from a base16 palette.
func NewTheme(p Base16) Theme {
	return Theme{
		Divider: lipgloss.NewStyle().Foreground(p.Base0F),
		PipelineFocused: PipelineTheme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Base00).Background(p.Base0D).Align(lipgloss.Center),
			Subtitle: lipgloss.NewStyle().Foreground(p.Base00).Background(p.Base04).Align(lipgloss.Center),
			Card: CardTheme{
				Number: lipgloss.NewStyle().Foreground(p.Base06),
				Text:   lipgloss.NewStyle().Foreground(p.Base09),
				Border: lipgloss.NewStyle().Foreground(p.Base05),
			},
		},
		PipelineUnfocused: PipelineTheme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Base0D).Background(p.Base01).Align(lipgloss.Center),
			Subtitle: lipgloss.NewStyle().Foreground(p.Base04).Background(p.Base01).Align(lipgloss.Center),
			Card: CardTheme{
				Number: lipgloss.NewStyle().Foreground(p.Base05),
				Text:   lipgloss.NewStyle().Foreground(p.Base06),
				Border: lipgloss.NewStyle().Foreground(p.Base02),
			},
		},
		Status: StatusTheme{
			Indicator: lipgloss.NewStyle().Bold(true).Foreground(p.Base0E),
			Text:      lipgloss.NewStyle().Foreground(p.Base04),
			Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5555")),
		},
	}
}
