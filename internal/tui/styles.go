package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/overlap/internal/tui/theme"
)

// Styles holds all lipgloss styles for the viewer, derived from a theme.
type Styles struct {
	palette *theme.Palette

	TitleStyle  lipgloss.Style
	InfoStyle   lipgloss.Style
	RulerStyle  lipgloss.Style
	WindowStyle lipgloss.Style
	LabelStyle  lipgloss.Style

	// Timeline bars
	BarStyle         lipgloss.Style // Candidate interval
	BarFilteredStyle lipgloss.Style // Dropped by the business-day filter
	BarSelectedStyle lipgloss.Style // Member of the selected pair

	// Pair list
	PairStyle         lipgloss.Style
	PairSelectedStyle lipgloss.Style
	MinutesStyle      lipgloss.Style

	SectionStyle lipgloss.Style
	StatusStyle  lipgloss.Style
	EmptyStyle   lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	return &Styles{
		palette: p,

		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextOnAccent).
			Background(p.Accent).
			Padding(0, 1),
		InfoStyle:   lipgloss.NewStyle().Foreground(p.FgMuted),
		RulerStyle:  lipgloss.NewStyle().Foreground(p.FgMuted),
		WindowStyle: lipgloss.NewStyle().Foreground(p.Window).Background(p.WindowBg),
		LabelStyle:  lipgloss.NewStyle().Foreground(p.Fg),

		BarStyle:         lipgloss.NewStyle().Foreground(p.Interval),
		BarFilteredStyle: lipgloss.NewStyle().Foreground(p.FilteredBg),
		BarSelectedStyle: lipgloss.NewStyle().Foreground(p.Overlap).Bold(true),

		PairStyle: lipgloss.NewStyle().Foreground(p.Fg),
		PairSelectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextOnOverlap).
			Background(p.Overlap),
		MinutesStyle: lipgloss.NewStyle().Foreground(p.FgMuted),

		SectionStyle: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		StatusStyle:  lipgloss.NewStyle().Foreground(p.Warning),
		EmptyStyle:   lipgloss.NewStyle().Italic(true).Foreground(p.FgMuted),
	}
}
