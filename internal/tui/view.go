package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/overlap/internal/clock"
	"github.com/javiermolinar/overlap/internal/interval"
	"github.com/javiermolinar/overlap/internal/report"
)

const (
	labelWidth       = 18 // "12:00am-12:00pm" plus padding
	minTimelineWidth = 24
	// title, info, blank, ruler, blank, section, blank, status, help
	chromeLines = 9
)

// View renders the viewer.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderRuler())
	b.WriteString("\n")

	pairRows, timelineRows := m.rowBudget()
	for _, line := range m.renderTimeline(timelineRows) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.SectionStyle.Render(report.Header))
	b.WriteString("\n")
	for _, line := range m.renderPairs(pairRows) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(m.styles.StatusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderHeader() string {
	title := "overlap"
	if m.source != "" {
		title += "  " + m.source
	}

	window := "none"
	if m.window != nil {
		window = m.window.String()
	}
	info := fmt.Sprintf("Business day: %s  |  %d intervals  |  %d candidates  |  %d pairs",
		window, len(m.intervals), len(m.kept), len(m.pairs))
	if m.config.Report.Summary && len(m.pairs) > 0 {
		info += "  |  " + report.Summary(m.pairs)
	}

	return m.styles.TitleStyle.Render(title) + "\n" +
		m.styles.InfoStyle.Render(ansi.Truncate(info, m.width, "…"))
}

// timelineWidth is the number of columns covering the 24h day.
func (m Model) timelineWidth() int {
	return max(m.width-labelWidth-1, minTimelineWidth)
}

// column maps a minute of the day to a timeline column.
func (m Model) column(minute int) int {
	return minute * m.timelineWidth() / clock.MinutesPerDay
}

// renderRuler draws hour marks every six hours, with the business day shaded.
func (m Model) renderRuler() string {
	width := m.timelineWidth()
	ruler := []rune(strings.Repeat("·", width))
	for hour := 0; hour < 24; hour += 6 {
		label := []rune(clock.Format(hour * 60))
		col := m.column(hour * 60)
		for i, r := range label {
			if col+i < width {
				ruler[col+i] = r
			}
		}
	}

	prefix := strings.Repeat(" ", labelWidth)
	if m.window == nil {
		return prefix + m.styles.RulerStyle.Render(string(ruler))
	}

	start, end := m.column(m.window.Start), min(m.barEnd(m.column(m.window.Start), m.window.End), width)
	return prefix +
		m.styles.RulerStyle.Render(string(ruler[:start])) +
		m.styles.WindowStyle.Render(string(ruler[start:end])) +
		m.styles.RulerStyle.Render(string(ruler[end:]))
}

func (m Model) barEnd(startCol, endMinute int) int {
	return max(m.column(endMinute), startCol+1)
}

// renderTimeline draws one bar per interval, keeping the selected pair in view.
func (m Model) renderTimeline(rows int) []string {
	if len(m.intervals) == 0 {
		return []string{m.styles.EmptyStyle.Render("No intervals")}
	}

	selected, hasSelection := m.Selected()
	offset := 0
	if hasSelection {
		offset = m.scrollOffset(selected.First, rows)
	}
	last := min(offset+rows, len(m.intervals))

	lines := make([]string, 0, last-offset)
	for _, iv := range m.intervals[offset:last] {
		style := m.styles.BarStyle
		switch {
		case hasSelection && (iv == selected.First || iv == selected.Second):
			style = m.styles.BarSelectedStyle
		case !m.kept[iv]:
			style = m.styles.BarFilteredStyle
		}

		label := fmt.Sprintf("%s-%s", clock.Format(iv.Start), clock.Format(iv.End))
		startCol := m.column(iv.Start)
		bar := strings.Repeat(" ", startCol) + style.Render(strings.Repeat("█", m.barEnd(startCol, iv.End)-startCol))
		lines = append(lines, m.styles.LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, label))+bar)
	}
	if last < len(m.intervals) {
		lines = append(lines, m.styles.InfoStyle.Render(fmt.Sprintf("… %d more", len(m.intervals)-last)))
	}
	return lines
}

// scrollOffset returns the first row to draw so that iv is visible.
func (m Model) scrollOffset(iv interval.Interval, rows int) int {
	idx := 0
	for i, candidate := range m.intervals {
		if candidate == iv {
			idx = i
			break
		}
	}
	if idx < rows {
		return 0
	}
	return min(idx-rows/2, len(m.intervals)-rows)
}

// renderPairs draws the pair list around the selection.
func (m Model) renderPairs(rows int) []string {
	if len(m.pairs) == 0 {
		return []string{m.styles.EmptyStyle.Render(report.NoOverlap)}
	}

	offset := 0
	if m.selected >= rows {
		offset = m.selected - rows + 1
	}
	last := min(offset+rows, len(m.pairs))

	lines := make([]string, 0, last-offset)
	for i := offset; i < last; i++ {
		p := m.pairs[i]
		text := ansi.Truncate(report.Line(p), m.width-10, "…")
		minutes := m.styles.MinutesStyle.Render(report.FormatDuration(p.Minutes()))
		if i == m.selected {
			lines = append(lines, m.styles.PairSelectedStyle.Render("▸ "+text)+"  "+minutes)
			continue
		}
		lines = append(lines, m.styles.PairStyle.Render("  "+text)+"  "+minutes)
	}
	return lines
}

// rowBudget splits the available height between the pair list and the timeline.
func (m Model) rowBudget() (pairRows, timelineRows int) {
	avail := max(m.height-chromeLines, 4)
	pairRows = max(min(len(m.pairs), avail/3), 1)
	timelineRows = max(avail-pairRows, 1)
	return pairRows, timelineRows
}
