package ui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/overlap/internal/config"
	"github.com/javiermolinar/overlap/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the configuration",
		Long: `Print the effective configuration and the file it is read from.

If no config file exists, creates one with default values.
Environment variables (OVERLAP_*) override the file.

Example:
  overlap config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runConfig(cmd.OutOrStdout())
		},
	}
}

func (a *App) runConfig(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "Config file: %s\n\n", a.configPath)

	_, err := os.Stat(a.configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		_, _ = fmt.Fprintln(w, "No config file found. Creating with default values...")
		if err := config.Default().SaveTo(a.configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		_, _ = fmt.Fprintf(w, "Created %s\n\n", a.configPath)
	case err != nil:
		return fmt.Errorf("checking config file: %w", err)
	}

	printConfig(w, a.config)
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	_, _ = fmt.Fprintln(w, formatHeader("Current configuration:"))
	_, _ = fmt.Fprintln(w, formatMuted(strings.Repeat("─", min(termWidth(), 36))))

	_, _ = fmt.Fprintln(w, formatHeader("[report]"))
	if cfg.HasBusinessDay() {
		printSetting(w, "business_day_start", cfg.Report.BusinessDayStart)
		printSetting(w, "business_day_end", cfg.Report.BusinessDayEnd)
	} else {
		printSetting(w, "business_day", "(none)")
	}
	printSetting(w, "skip_header", strconv.FormatBool(cfg.Report.SkipHeader))
	printSetting(w, "marker_prefix", cfg.Report.MarkerPrefix)
	printSetting(w, "summary", strconv.FormatBool(cfg.Report.Summary))

	_, _ = fmt.Fprintln(w, "\n"+formatHeader("[ui]"))
	printSetting(w, "theme", cfg.UI.Theme)
	printSetting(w, "color", strconv.FormatBool(cfg.UI.Color))

	_, _ = fmt.Fprintln(w, "\n"+formatHeader("[debug]"))
	printSetting(w, "enabled", strconv.FormatBool(cfg.Debug.Enabled))
	printSetting(w, "log_path", cfg.Debug.LogPath)

	_, _ = fmt.Fprintf(w, "\n%s\n", formatMuted("Themes: "+strings.Join(theme.Available(), ", ")))
}

func printSetting(w io.Writer, key, value string) {
	_, _ = fmt.Fprintf(w, "  %-18s = %s\n", key, formatValue(value))
}
