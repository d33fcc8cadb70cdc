// Package schedule reads interval records from line-oriented text input.
package schedule

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/javiermolinar/overlap/internal/clock"
	"github.com/javiermolinar/overlap/internal/interval"
)

// DefaultMarkerPrefix marks the line that declares the business-day window.
const DefaultMarkerPrefix = "#BDAY:"

// ErrMalformedRecord is returned when a line does not split into two fields.
var ErrMalformedRecord = errors.New("record must have exactly two comma-separated fields")

// LineError ties a record error to its position in the input.
type LineError struct {
	Line int    // 1-based line number
	Text string // raw line content
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Options configures how input is read.
type Options struct {
	SkipHeader   bool               // Allow a non-record first line
	MarkerPrefix string             // Start-field prefix of the window declaration
	Window       *interval.Interval // Window used when the input declares none
}

// DefaultOptions returns the reader defaults: header skipped, "#BDAY:" marker, no window.
func DefaultOptions() Options {
	return Options{
		SkipHeader:   true,
		MarkerPrefix: DefaultMarkerPrefix,
	}
}

// Schedule is the parsed content of one input.
type Schedule struct {
	Source    string
	Intervals []interval.Interval
	Window    *interval.Interval // nil when no business day applies
	Lines     int                // lines consumed, header included
}

// Load opens path and reads it.
func Load(ctx context.Context, path string, opts Options) (*Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening schedule: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := Read(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s.Source = path
	return s, nil
}

// Read parses records from r. The first malformed line aborts the read.
func Read(ctx context.Context, r io.Reader, opts Options) (*Schedule, error) {
	s := &Schedule{Window: opts.Window}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.Lines++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		iv, err := parseRecord(line, opts.MarkerPrefix)
		if err != nil {
			if s.Lines == 1 && opts.SkipHeader && isHeader(line, opts.MarkerPrefix, err) {
				continue
			}
			return nil, &LineError{Line: s.Lines, Text: line, Err: err}
		}

		if isMarker(line, opts.MarkerPrefix) {
			s.Window = &iv
			continue
		}
		s.Intervals = append(s.Intervals, iv)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning input: %w", err)
	}

	return s, nil
}

func isMarker(line, prefix string) bool {
	return prefix != "" && strings.HasPrefix(line, prefix)
}

// isHeader reports whether a first line that failed to parse is a column header.
// Markers and well-formed records with reversed times are never headers.
func isHeader(line, prefix string, err error) bool {
	return !isMarker(line, prefix) && !errors.Is(err, interval.ErrInvalidInterval)
}

// parseRecord splits "START,END" and converts both fields to an interval.
// A marker prefix on the start field is stripped first.
func parseRecord(line, prefix string) (interval.Interval, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return interval.Interval{}, ErrMalformedRecord
	}

	startField := fields[0]
	if isMarker(startField, prefix) {
		startField = strings.TrimPrefix(startField, prefix)
	}

	start, err := clock.Parse(startField)
	if err != nil {
		return interval.Interval{}, fmt.Errorf("start time: %w", err)
	}
	end, err := clock.Parse(fields[1])
	if err != nil {
		return interval.Interval{}, fmt.Errorf("end time: %w", err)
	}
	return interval.New(start, end)
}

// Candidates returns the intervals that go into overlap detection:
// stably sorted, then restricted to the window when one is set.
func (s *Schedule) Candidates() []interval.Interval {
	return interval.Filter(interval.Sort(s.Intervals), s.Window)
}

// Overlaps returns every overlapping pair among the candidates, in sweep order.
func (s *Schedule) Overlaps() []interval.Pair {
	return interval.Collect(interval.Find(s.Intervals, s.Window))
}
