package simulate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPlan(t *testing.T) {
	t.Parallel()

	plan := DefaultPlan()
	require.Len(t, plan.Tasks, 3)
	assert.Equal(t, "Data Processing", plan.Tasks[0].Name)
	assert.Equal(t, 3*time.Second, plan.Tasks[0].Duration)
	assert.Equal(t, "File Analysis", plan.Tasks[1].Name)
	assert.Equal(t, 2*time.Second, plan.Tasks[1].Duration)
	assert.Equal(t, "Report Generation", plan.Tasks[2].Name)
	assert.Equal(t, 4*time.Second, plan.Tasks[2].Duration)
}

func TestParsePlanRejectsEmptyPlan(t *testing.T) {
	t.Parallel()

	_, err := ParsePlan([]byte("tasks: []\n"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, err.Error(), "no tasks")
}

func TestParsePlanRejectsNamelessTask(t *testing.T) {
	t.Parallel()

	_, err := ParsePlan([]byte("tasks:\n  - duration: 1s\n"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, err.Error(), "requires a name")
}

func TestParsePlanRejectsBadDuration(t *testing.T) {
	t.Parallel()

	_, err := ParsePlan([]byte("tasks:\n  - name: Build\n    duration: banana\n"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestParsePlanRejectsNegativeDuration(t *testing.T) {
	t.Parallel()

	_, err := ParsePlan([]byte("tasks:\n  - name: Build\n    duration: -2s\n"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Build", pe.Target)
}

func TestParsePlanAllowsMissingDuration(t *testing.T) {
	t.Parallel()

	plan, err := ParsePlan([]byte("tasks:\n  - name: Build\n"))
	require.NoError(t, err)
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, time.Duration(0), plan.Tasks[0].Duration)
}

func TestParsePlanFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Planfile.yml")
	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - name: Build\n    duration: 250ms\n"), 0o644))

	plan, err := ParsePlanFile(path)
	require.NoError(t, err)
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, 250*time.Millisecond, plan.Tasks[0].Duration)

	_, err = ParsePlanFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
