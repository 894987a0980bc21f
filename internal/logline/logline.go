package logline

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gookit/color"
)

const stampLayout = "2006-01-02 15:04:05"

// Logger prints timestamped, leveled lines of the form
// [2006-01-02 15:04:05] LEVEL: message. Every line is written with a
// single Write call so interleaving with other writers stays line based.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	now     func() time.Time
	colored bool
}

type Option func(*Logger)

func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		l.w = w
	}
}

func WithNow(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// WithColor renders level labels with ANSI colors. Keep it off when the
// output is meant to be parsed.
func WithColor(colored bool) Option {
	return func(l *Logger) {
		l.colored = colored
	}
}

func New(options ...Option) *Logger {
	l := &Logger{w: os.Stdout, now: time.Now}
	for _, option := range options {
		option(l)
	}
	return l
}

var levelColors = map[string]color.Color{
	"DEBUG":   color.FgCyan,
	"INFO":    color.FgGreen,
	"WARNING": color.FgYellow,
	"ERROR":   color.FgRed,
	"SUCCESS": color.FgLightGreen,
}

// Logf prints a single log line with the given level label.
func (l *Logger) Logf(level, format string, args ...interface{}) {
	label := level
	if l.colored {
		if c, ok := levelColors[level]; ok {
			label = c.Render(level)
		}
	}
	line := fmt.Sprintf("[%s] %s: %s\n", l.now().Format(stampLayout), label, fmt.Sprintf(format, args...))
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, line)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.Logf("INFO", format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Logf("WARNING", format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logf("ERROR", format, args...)
}
