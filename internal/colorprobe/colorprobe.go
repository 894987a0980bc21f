package colorprobe

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"

	"github.com/jevi061/outfix/internal/fixture"
)

type namedColor struct {
	name string
	c    color.Color
}

// The 16 color SGR table a capture pipeline must preserve: standard
// foregrounds are codes 31 to 37, bright ones 91 to 97.
var standardColors = []namedColor{
	{"Red", color.FgRed},
	{"Green", color.FgGreen},
	{"Yellow", color.FgYellow},
	{"Blue", color.FgBlue},
	{"Magenta", color.FgMagenta},
	{"Cyan", color.FgCyan},
	{"White", color.FgWhite},
}

var brightColors = []namedColor{
	{"Bright Red", color.FgLightRed},
	{"Bright Green", color.FgLightGreen},
	{"Bright Yellow", color.FgLightYellow},
	{"Bright Blue", color.FgLightBlue},
	{"Bright Magenta", color.FgLightMagenta},
	{"Bright Cyan", color.FgLightCyan},
	{"Bright White", color.FgLightWhite},
}

type logEntry struct {
	level   string
	c       color.Color
	message string
}

var logEntries = []logEntry{
	{"INFO", color.FgGreen, "Application started successfully"},
	{"DEBUG", color.FgCyan, "Loading configuration file"},
	{"WARNING", color.FgYellow, "Configuration file not found, using defaults"},
	{"ERROR", color.FgRed, "Failed to connect to database"},
	{"INFO", color.FgGreen, "Retrying connection..."},
	{"SUCCESS", color.FgLightGreen, "Connected to database successfully"},
}

// Probe prints every named color wrapped in its ANSI escape sequence,
// then a short simulated log stream with colored level labels.
type Probe struct {
	out   io.Writer
	sleep func(time.Duration)
}

var _ fixture.Fixture = (*Probe)(nil)

type Option func(*Probe)

func WithOutput(w io.Writer) Option {
	return func(p *Probe) {
		p.out = w
	}
}

func WithSleep(sleep func(time.Duration)) Option {
	return func(p *Probe) {
		p.sleep = sleep
	}
}

func New(options ...Option) *Probe {
	p := &Probe{out: os.Stdout, sleep: time.Sleep}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *Probe) Name() string {
	return "colors"
}

func (p *Probe) Desc() string {
	return "ANSI colored text and a simulated colored log stream"
}

func (p *Probe) Run(ctx context.Context) error {
	// The probe validates that a runner preserves escape sequences, so
	// render colors even when stdout is a pipe.
	color.ForceOpenColor()

	fmt.Fprintln(p.out, "ANSI Color Test")
	fmt.Fprintln(p.out, strings.Repeat("=", 25))

	for _, nc := range standardColors {
		fmt.Fprintln(p.out, nc.c.Render(nc.name+" text"))
		p.sleep(500 * time.Millisecond)
	}

	fmt.Fprintln(p.out, "\nBright colors:")
	for _, nc := range brightColors {
		fmt.Fprintln(p.out, nc.c.Render(nc.name+" text"))
		p.sleep(500 * time.Millisecond)
	}

	fmt.Fprintln(p.out, "\nReal-time log simulation:")
	for _, e := range logEntries {
		fmt.Fprintf(p.out, "%s %s\n", e.c.Render("["+e.level+"]"), e.message)
		p.sleep(time.Second)
	}

	fmt.Fprintln(p.out, "\nColor test completed!")
	return nil
}
