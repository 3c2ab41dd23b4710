// Package logger provides debug logging for wiki-push.
// When debug mode is enabled via the --debug flag, diagnostic messages
// about scanning, rendering and remote requests are printed to stderr.
// User-facing progress is not logged here; commands write it to their own output.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu     sync.RWMutex
	debug  bool
	output io.Writer = os.Stderr
)

// SetDebug enables or disables debug logging.
func SetDebug(v bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = v
}

// IsDebug returns true if debug mode is enabled.
func IsDebug() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debug
}

// SetOutput sets the writer for debug logs. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !debug {
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}

// Debug prints a diagnostic message.
func Debug(format string, args ...any) {
	logf("DEBUG", format, args...)
}

// Info prints an informational message.
func Info(format string, args ...any) {
	logf("INFO", format, args...)
}

// Warn prints a warning.
func Warn(format string, args ...any) {
	logf("WARN", format, args...)
}

// Section prints a section header, used to separate the phases of a run.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if debug {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Request logs one remote HTTP exchange.
func Request(method, url string, status int, elapsed time.Duration) {
	logf("HTTP", "%s %s -> %d (%s)", method, url, status, elapsed.Round(time.Millisecond))
}
