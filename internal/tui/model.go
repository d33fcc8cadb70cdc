// Package tui provides the terminal timeline viewer for an overlap report.
package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/overlap/internal/config"
	"github.com/javiermolinar/overlap/internal/debuglog"
	"github.com/javiermolinar/overlap/internal/interval"
	"github.com/javiermolinar/overlap/internal/schedule"
	"github.com/javiermolinar/overlap/internal/tui/theme"
)

// Default terminal size until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// Model is the viewer model.
type Model struct {
	// Dependencies
	config *config.Config
	log    *debuglog.Logger
	copy   func(string) error

	// Theme and styles
	theme  *theme.Theme
	styles *Styles
	keys   keyMap
	help   help.Model

	// Report data
	source    string
	window    *interval.Interval
	intervals []interval.Interval // every interval, stably sorted
	kept      map[interval.Interval]bool
	pairs     []interval.Pair

	// State
	selected  int
	statusMsg string

	// Terminal dimensions
	width  int
	height int
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the debug logger.
func WithLogger(l *debuglog.Logger) ModelOption {
	return func(m *Model) {
		m.log = l
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) {
		m.copy = write
	}
}

// New creates a viewer model for a loaded schedule and its overlapping pairs.
func New(s *schedule.Schedule, pairs []interval.Pair, cfg *config.Config, opts ...ModelOption) Model {
	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}

	kept := make(map[interval.Interval]bool)
	for _, iv := range s.Candidates() {
		kept[iv] = true
	}

	m := Model{
		config:    cfg,
		copy:      clipboard.WriteAll,
		theme:     t,
		styles:    NewStyles(t),
		keys:      defaultKeyMap(),
		help:      help.New(),
		source:    s.Source,
		window:    s.Window,
		intervals: interval.Sort(s.Intervals),
		kept:      kept,
		pairs:     pairs,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.help.Width = m.width

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// Selected returns the selected pair, if any.
func (m Model) Selected() (interval.Pair, bool) {
	if m.selected < 0 || m.selected >= len(m.pairs) {
		return interval.Pair{}, false
	}
	return m.pairs[m.selected], true
}

// Run starts the viewer.
func Run(s *schedule.Schedule, pairs []interval.Pair, cfg *config.Config, log *debuglog.Logger) error {
	model := New(s, pairs, cfg, WithLogger(log))
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
