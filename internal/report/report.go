// Package report renders overlapping pairs as text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/javiermolinar/overlap/internal/interval"
)

// Report messages.
const (
	Header    = "Overlapping times:"
	NoOverlap = "No overlapping times"
)

var (
	colorHeader = color.New(color.Bold)
	colorMuted  = color.New(color.FgWhite, color.Faint)
)

// Options configures report output.
type Options struct {
	Summary bool // Append a pair count and total overlapping minutes
}

// Line formats one pair as "(9:00am - 10:00am) and (9:30am - 10:30am)".
func Line(p interval.Pair) string {
	return p.First.String() + " and " + p.Second.String()
}

// Lines formats every pair, in order.
func Lines(pairs []interval.Pair) []string {
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, Line(p))
	}
	return lines
}

// Text returns the uncolored report.
func Text(pairs []interval.Pair) string {
	if len(pairs) == 0 {
		return NoOverlap + "\n"
	}
	return Header + "\n" + strings.Join(Lines(pairs), "\n") + "\n"
}

// Write writes the report to w.
func Write(w io.Writer, pairs []interval.Pair, opts Options) error {
	if len(pairs) == 0 {
		_, err := fmt.Fprintln(w, NoOverlap)
		return err
	}

	if _, err := fmt.Fprintln(w, colorHeader.Sprint(Header)); err != nil {
		return err
	}
	for _, line := range Lines(pairs) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if opts.Summary {
		if _, err := fmt.Fprintln(w, colorMuted.Sprint(Summary(pairs))); err != nil {
			return err
		}
	}
	return nil
}

// Summary describes how many pairs overlap and for how long in total.
func Summary(pairs []interval.Pair) string {
	total := 0
	for _, p := range pairs {
		total += p.Minutes()
	}
	noun := "pairs"
	if len(pairs) == 1 {
		noun = "pair"
	}
	return fmt.Sprintf("%d %s, %s overlapping", len(pairs), noun, FormatDuration(total))
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
