package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/overlap/internal/config"
	"github.com/javiermolinar/overlap/internal/debuglog"
	"github.com/javiermolinar/overlap/internal/interval"
	"github.com/javiermolinar/overlap/internal/report"
	"github.com/javiermolinar/overlap/internal/schedule"
	"github.com/javiermolinar/overlap/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// errNotTerminal is returned by the viewer when stdout is not a terminal.
var errNotTerminal = errors.New("view requires an interactive terminal")

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string
	root       *cobra.Command
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, configPath: config.DefaultConfigPath()}
	applyColor(cfg.UI.Color)

	a.root = &cobra.Command{
		Use:   "overlap FILE",
		Short: "Report overlapping time intervals",
		Long: `Overlap reads a list of time intervals, one "start,end" pair per line
in 12-hour clock format, and reports every pair of intervals that overlap.

A line such as "#BDAY:9:00am,5:00pm" restricts the report to intervals
inside the business day. The window can also be set in the config file.

Example:
  overlap times.csv`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReport(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.viewCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "overlap %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view FILE",
		Short: "Browse overlapping intervals on a timeline",
		Long: `Open an interactive timeline of the intervals in FILE.

Use j/k to move between overlapping pairs, y to copy the report and q to quit.

Example:
  overlap view times.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNotTerminal
			}
			return a.runView(cmd.Context(), args[0])
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.ExecuteContext(context.Background())
}

func (a *App) runReport(ctx context.Context, w io.Writer, path string) error {
	log, err := debuglog.Open(a.config.Debug.Enabled, a.config.Debug.LogPath)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	_, pairs, err := a.analyze(ctx, log, path)
	if err != nil {
		return err
	}
	return report.Write(w, pairs, report.Options{Summary: a.config.Report.Summary})
}

func (a *App) runView(ctx context.Context, path string) error {
	log, err := debuglog.Open(a.config.Debug.Enabled, a.config.Debug.LogPath)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	s, pairs, err := a.analyze(ctx, log, path)
	if err != nil {
		return err
	}
	return tui.Run(s, pairs, a.config, log)
}

// analyze loads path and collects its overlapping pairs, logging each stage.
func (a *App) analyze(ctx context.Context, log *debuglog.Logger, path string) (*schedule.Schedule, []interval.Pair, error) {
	opts, err := a.config.ScheduleOptions()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	s, err := schedule.Load(ctx, path, opts)
	if err != nil {
		log.LogError("load", err)
		return nil, nil, err
	}
	log.LogLoad(s.Source, s.Lines, len(s.Intervals), s.Window)

	start := time.Now()
	sorted := interval.Sort(s.Intervals)
	candidates := interval.Filter(sorted, s.Window)
	log.LogFilter(s.Window, len(sorted), len(candidates))

	pairs := interval.Collect(interval.Sweep(candidates))
	log.LogDetect(len(candidates), len(pairs), time.Since(start))
	return s, pairs, nil
}
