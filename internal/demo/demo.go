package demo

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jevi061/outfix/internal/fixture"
)

const loremLine = "Lorem ipsum dolor sit amet, consectetur adipiscing elit."

const (
	progressSteps = 10
	longLines     = 20
)

// Demo emits a fixed sequence of output meant to exercise a script
// runner's real time capture: staged progress lines, one line on each of
// stdout and stderr, then a burst of long output.
type Demo struct {
	stdout io.Writer
	stderr io.Writer
	sleep  func(time.Duration)
}

var _ fixture.Fixture = (*Demo)(nil)

type Option func(*Demo)

func WithStdout(w io.Writer) Option {
	return func(d *Demo) {
		d.stdout = w
	}
}

func WithStderr(w io.Writer) Option {
	return func(d *Demo) {
		d.stderr = w
	}
}

// WithSleep replaces the pause between output stages, used by tests to
// run the fixture instantly.
func WithSleep(sleep func(time.Duration)) Option {
	return func(d *Demo) {
		d.sleep = sleep
	}
}

func New(options ...Option) *Demo {
	d := &Demo{stdout: os.Stdout, stderr: os.Stderr, sleep: time.Sleep}
	for _, option := range options {
		option(d)
	}
	return d
}

func (d *Demo) Name() string {
	return "demo"
}

func (d *Demo) Desc() string {
	return "staged progress, mixed stdout/stderr and long output"
}

// Run emits the demo sequence. Interruption is deliberately unhandled,
// a runner is expected to observe the resulting process failure.
func (d *Demo) Run(ctx context.Context) error {
	fmt.Fprintln(d.stdout, "=== Output Capture Demo ===")
	fmt.Fprintf(d.stdout, "Fixture: %s\n", d.Name())
	fmt.Fprintf(d.stdout, "PID: %d\n", os.Getpid())
	fmt.Fprintln(d.stdout)

	fmt.Fprintln(d.stdout, "Starting demonstration...")
	d.sleep(time.Second)

	for i := 1; i <= progressSteps; i++ {
		fmt.Fprintf(d.stdout, "Progress: %d/%d (%d%%)\n", i, progressSteps, i*100/progressSteps)
		d.sleep(500 * time.Millisecond)
	}

	fmt.Fprintln(d.stdout)
	fmt.Fprintln(d.stdout, "Testing different output types:")
	fmt.Fprintln(d.stdout, "This goes to stdout")
	fmt.Fprintln(d.stderr, "This goes to stderr")

	fmt.Fprintln(d.stdout, "\nGenerating long output:")
	for i := 1; i <= longLines; i++ {
		fmt.Fprintf(d.stdout, "Line %d: %s\n", i, loremLine)
		if i%5 == 0 {
			d.sleep(300 * time.Millisecond)
		}
	}

	fmt.Fprintln(d.stdout, "\n✓ Demo completed successfully!")
	fmt.Fprintln(d.stdout, "Total execution time: ~8 seconds")
	return nil
}
