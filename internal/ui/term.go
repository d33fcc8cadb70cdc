package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Values: cyan so settings stand out from their keys
	colorValue = color.New(color.FgCyan)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// isTerminal reports whether both stdin and stdout are attached to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// applyColor disables color output when the config turns it off.
// When enabled, fatih/color still honors NO_COLOR and non-terminal output.
func applyColor(enabled bool) {
	if !enabled {
		DisableColor()
	}
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatValue(s string) string {
	return colorValue.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
