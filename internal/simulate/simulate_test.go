package simulate

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jevi061/outfix/internal/fixture"
	"github.com/jevi061/outfix/internal/logline"
)

func newTestSimulator(plan *Plan, out *bytes.Buffer) *Simulator {
	logger := logline.New(
		logline.WithWriter(out),
		logline.WithNow(func() time.Time { return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC) }),
	)
	return New(plan,
		WithLogger(logger),
		WithOutput(out),
		WithSleep(func(time.Duration) {}),
		WithRand(rand.New(rand.NewSource(42))),
	)
}

func logLines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestProgressSequencePerTask(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s := newTestSimulator(DefaultPlan(), &out)
	require.NoError(t, s.Run(context.Background()))

	for _, name := range []string{"Data Processing", "File Analysis", "Report Generation"} {
		prefix := fmt.Sprintf("] INFO: %s progress: ", name)
		var got []string
		for _, line := range logLines(&out) {
			if i := strings.Index(line, prefix); i >= 0 {
				got = append(got, line[i+len(prefix):])
			}
		}
		want := []string{"0.0%", "10.0%", "20.0%", "30.0%", "40.0%", "50.0%",
			"60.0%", "70.0%", "80.0%", "90.0%", "100.0%"}
		assert.Equal(t, want, got, "progress sequence for %s", name)
	}
}

func TestWarningsNameTaskAndStep(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s := newTestSimulator(DefaultPlan(), &out)
	require.NoError(t, s.Run(context.Background()))

	warnRe := regexp.MustCompile(`WARNING: Minor issue in (Data Processing|File Analysis|Report Generation) \(step ([1-9]|10)\)$`)
	for _, line := range logLines(&out) {
		if strings.Contains(line, "WARNING") {
			assert.Regexp(t, warnRe, line)
		}
	}
}

func TestSummaryAndRecap(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s := newTestSimulator(DefaultPlan(), &out)
	require.NoError(t, s.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "INFO: All tasks completed successfully")
	assert.Contains(t, output, "INFO: Summary: 3 tasks executed, 0 errors")
	for _, name := range []string{"Starting Data Processing", "Completed Data Processing",
		"Starting File Analysis", "Completed File Analysis",
		"Starting Report Generation", "Completed Report Generation"} {
		assert.Contains(t, output, name)
	}
	// aligned recap line per task
	recapRe := regexp.MustCompile(`(?m)^Task: .+    Status: .*Success.*    Time: `)
	assert.Len(t, recapRe.FindAllString(output, -1), 3)
}

func TestInterruptStopsOutput(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	s := newTestSimulator(DefaultPlan(), &out)
	err := s.Run(ctx)
	require.ErrorIs(t, err, fixture.ErrInterrupted)

	lines := logLines(&out)
	require.NotEmpty(t, lines)
	last := lines[len(lines)-1]
	assert.Contains(t, last, "WARNING: Simulation interrupted by user")
	assert.Equal(t, 1, strings.Count(out.String(), "interrupted by user"))
	assert.NotContains(t, out.String(), "Summary:")
}

func TestPauseDurations(t *testing.T) {
	t.Parallel()

	plan, err := ParsePlan([]byte("tasks:\n  - name: Build\n    duration: 1s\n  - name: Ship\n    duration: 2s\n"))
	require.NoError(t, err)

	var out bytes.Buffer
	var slept []time.Duration
	logger := logline.New(logline.WithWriter(&out))
	s := New(plan,
		WithLogger(logger),
		WithOutput(&out),
		WithSleep(func(d time.Duration) { slept = append(slept, d) }),
		WithRand(rand.New(rand.NewSource(1))),
	)
	require.NoError(t, s.Run(context.Background()))

	// 10 steps per task at duration/10, plus one pause between the two tasks
	require.Len(t, slept, 21)
	assert.Equal(t, 100*time.Millisecond, slept[0])
	assert.Equal(t, interTaskPause, slept[10])
	assert.Equal(t, 200*time.Millisecond, slept[11])
}

func TestRunIDIsLogged(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s := newTestSimulator(DefaultPlan(), &out)
	require.NoError(t, s.Run(context.Background()))

	assert.Regexp(t, `INFO: Run id: \w+`, out.String())
}
