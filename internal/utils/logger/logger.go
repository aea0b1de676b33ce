// Package logger provides the small set of colored console helpers WrapForge
// uses for its informational and error output, in the same shape the
// teacher CLI exposes (LogInfo/LogVerbose/LogError/...), grounded on
// github.com/fatih/color rather than hand-rolled ANSI escapes.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Logger writes colored, leveled messages to a writer. The zero value is
// not usable; construct one with New.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// New returns a Logger writing to out.
func New(out io.Writer) *Logger {
	return &Logger{out: out}
}

// Default is the package-level logger used by the CLI entrypoint.
var Default = New(os.Stderr)

// SetVerbose toggles whether LogVerbose emits anything.
func (l *Logger) SetVerbose(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = v
}

// SetVerbose toggles verbosity on the package-level default logger.
func SetVerbose(v bool) { Default.SetVerbose(v) }

func (l *Logger) write(c *color.Color, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, c.Sprintf(format, args...))
}

// LogInfo prints an informational message (always shown).
func (l *Logger) LogInfo(format string, args ...interface{}) {
	l.write(color.New(color.FgWhite), "[*] "+format, args...)
}

// LogVerbose prints a message only when verbose mode is enabled.
func (l *Logger) LogVerbose(format string, args ...interface{}) {
	l.mu.Lock()
	v := l.verbose
	l.mu.Unlock()
	if !v {
		return
	}
	l.write(color.New(color.FgCyan), format, args...)
}

// LogSuccess prints a success message.
func (l *Logger) LogSuccess(format string, args ...interface{}) {
	l.write(color.New(color.FgGreen), "[+] "+format, args...)
}

// LogError prints an error message.
func (l *Logger) LogError(format string, args ...interface{}) {
	l.write(color.New(color.FgRed), "[!] "+format, args...)
}

func LogInfo(format string, args ...interface{})    { Default.LogInfo(format, args...) }
func LogVerbose(format string, args ...interface{}) { Default.LogVerbose(format, args...) }
func LogSuccess(format string, args ...interface{}) { Default.LogSuccess(format, args...) }
func LogError(format string, args ...interface{})   { Default.LogError(format, args...) }
