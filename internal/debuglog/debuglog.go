// Package debuglog writes structured debug events as JSON lines.
package debuglog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/javiermolinar/overlap/internal/interval"
)

// DefaultPath is the log file used when none is configured.
const DefaultPath = "overlap-debug.log"

// Logger logs pipeline events to a file. A nil or disabled Logger is a no-op.
type Logger struct {
	mu  sync.Mutex
	w   io.Writer
	c   io.Closer
	seq int
	now func() time.Time
}

// Open creates the log file at path. When enabled is false it returns a no-op logger.
func Open(enabled bool, path string) (*Logger, error) {
	if !enabled {
		return nil, nil
	}
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating debug log: %w", err)
	}

	l := &Logger{w: f, c: f, now: time.Now}
	l.Log("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     l.now().Format(time.RFC3339),
	})
	return l, nil
}

// New returns a logger writing to w. Used by tests and callers that own the writer.
func New(w io.Writer) *Logger {
	return &Logger{w: w, now: time.Now}
}

// Close writes the end marker and closes the underlying file.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.Log("DEBUG_END", map[string]any{
		"time": l.now().Format(time.RFC3339),
	})
	if l.c != nil {
		return l.c.Close()
	}
	return nil
}

// Enabled reports whether events are recorded.
func (l *Logger) Enabled() bool {
	return l != nil && l.w != nil
}

// Log writes a structured log entry.
func (l *Logger) Log(event string, data map[string]any) {
	if !l.Enabled() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	entry := map[string]any{
		"seq":   l.seq,
		"ts":    l.now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(l.w, "%s\n", b)
}

// LogLoad logs the result of reading an input.
func (l *Logger) LogLoad(source string, lines, intervals int, window *interval.Interval) {
	if !l.Enabled() {
		return
	}
	l.Log("LOAD", map[string]any{
		"source":    source,
		"lines":     lines,
		"intervals": intervals,
		"window":    windowString(window),
	})
}

// LogFilter logs how many intervals survived the business-day filter.
func (l *Logger) LogFilter(window *interval.Interval, before, after int) {
	if !l.Enabled() {
		return
	}
	l.Log("FILTER", map[string]any{
		"window": windowString(window),
		"before": before,
		"after":  after,
	})
}

// LogDetect logs the number of overlapping pairs found.
func (l *Logger) LogDetect(candidates, pairs int, elapsed time.Duration) {
	if !l.Enabled() {
		return
	}
	l.Log("DETECT", map[string]any{
		"candidates": candidates,
		"pairs":      pairs,
		"elapsed_us": elapsed.Microseconds(),
	})
}

// LogKeyPress logs a key press in the viewer.
func (l *Logger) LogKeyPress(key string) {
	if !l.Enabled() {
		return
	}
	l.Log("KEY_PRESS", map[string]any{
		"key": key,
	})
}

// LogError logs an error.
func (l *Logger) LogError(context string, err error) {
	if !l.Enabled() || err == nil {
		return
	}
	l.Log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

func windowString(w *interval.Interval) string {
	if w == nil {
		return "none"
	}
	return w.String()
}
