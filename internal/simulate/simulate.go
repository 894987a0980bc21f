package simulate

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
	"github.com/rs/xid"

	"github.com/jevi061/outfix/internal/fixture"
	"github.com/jevi061/outfix/internal/logline"
)

const (
	stepsPerTask    = 10
	warnProbability = 0.1
	interTaskPause  = 500 * time.Millisecond
)

var green = color.Green.Render

// Simulator runs through a plan of fake tasks, printing a timestamped
// log line per step so a script runner has a realistic job to capture.
type Simulator struct {
	plan  *Plan
	log   *logline.Logger
	out   io.Writer
	sleep func(time.Duration)
	rand  *rand.Rand
	spin  bool
	id    string
}

var _ fixture.Fixture = (*Simulator)(nil)

type Option func(*Simulator)

func WithLogger(log *logline.Logger) Option {
	return func(s *Simulator) {
		s.log = log
	}
}

// WithOutput sets the writer for the final per task recap.
func WithOutput(w io.Writer) Option {
	return func(s *Simulator) {
		s.out = w
	}
}

func WithSleep(sleep func(time.Duration)) Option {
	return func(s *Simulator) {
		s.sleep = sleep
	}
}

// WithRand replaces the warning randomness source, used by tests.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulator) {
		s.rand = r
	}
}

// WithSpinner shows an idle spinner on stderr during inter task pauses.
// Enable it only when attached to a terminal.
func WithSpinner(spin bool) Option {
	return func(s *Simulator) {
		s.spin = spin
	}
}

func New(plan *Plan, options ...Option) *Simulator {
	s := &Simulator{
		plan:  plan,
		out:   os.Stdout,
		sleep: time.Sleep,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		id:    xid.New().String(),
	}
	for _, option := range options {
		option(s)
	}
	if s.log == nil {
		s.log = logline.New()
	}
	return s
}

func (s *Simulator) Name() string {
	return "task"
}

func (s *Simulator) Desc() string {
	return "multi task job with timestamped logs and random warnings"
}

type result struct {
	task    *Task
	elapsed time.Duration
}

// Run executes the plan. It returns fixture.ErrInterrupted once the
// context is canceled, after logging a single warning line.
func (s *Simulator) Run(ctx context.Context) error {
	s.log.Infof("Task simulation starting")
	s.log.Infof("Runtime: %s", runtime.Version())
	s.log.Infof("Run id: %s", s.id)

	var sp *spinner.Spinner
	if s.spin {
		sp = spinner.New(spinner.CharSets[11], 100*time.Millisecond,
			spinner.WithHiddenCursor(true), spinner.WithFinalMSG(""), spinner.WithWriter(os.Stderr))
	}

	results := make([]result, 0, len(s.plan.Tasks))
	for i, t := range s.plan.Tasks {
		startAt := time.Now()
		if err := s.runTask(ctx, t); err != nil {
			return err
		}
		results = append(results, result{task: t, elapsed: time.Since(startAt)})
		if i < len(s.plan.Tasks)-1 {
			if sp != nil {
				sp.Start()
			}
			err := s.pause(ctx, interTaskPause)
			if sp != nil {
				sp.Stop()
			}
			if err != nil {
				return err
			}
		}
	}

	s.log.Infof("All tasks completed successfully")
	s.log.Infof("Summary: %d tasks executed, 0 errors", len(results))
	s.printRecap(results)
	return nil
}

func (s *Simulator) runTask(ctx context.Context, t *Task) error {
	s.log.Infof("Starting %s", t.Name)
	stepDuration := t.Duration / stepsPerTask
	for i := 0; i <= stepsPerTask; i++ {
		progress := float64(i) / stepsPerTask * 100
		s.log.Infof("%s progress: %.1f%%", t.Name, progress)
		if i < stepsPerTask {
			if err := s.pause(ctx, stepDuration); err != nil {
				return err
			}
			if s.rand.Float64() < warnProbability {
				s.log.Warnf("Minor issue in %s (step %d)", t.Name, i+1)
			}
		}
	}
	s.log.Infof("Completed %s", t.Name)
	return nil
}

// pause sleeps for d, checking for cancellation around the sleep. Steps
// are short, so polling keeps interruption prompt enough without racing
// the sleep itself.
func (s *Simulator) pause(ctx context.Context, d time.Duration) error {
	if err := s.checkInterrupt(ctx); err != nil {
		return err
	}
	if d > 0 {
		s.sleep(d)
	}
	return s.checkInterrupt(ctx)
}

func (s *Simulator) checkInterrupt(ctx context.Context) error {
	select {
	case <-ctx.Done():
		s.log.Warnf("Simulation interrupted by user")
		return fmt.Errorf("task simulation: %w", fixture.ErrInterrupted)
	default:
		return nil
	}
}

func (s *Simulator) printRecap(results []result) {
	max := 0
	for _, r := range results {
		if w := runewidth.StringWidth(r.task.Name); w > max {
			max = w
		}
	}
	for _, r := range results {
		name := r.task.Name
		if w := runewidth.StringWidth(name); w < max {
			name = name + strings.Repeat(" ", max-w)
		}
		fmt.Fprintf(s.out, "Task: %s    Status: %s    Time: %s\n", name, green("Success"), r.elapsed.Round(time.Millisecond))
	}
}
