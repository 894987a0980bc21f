package simulate

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Plan is the ordered list of tasks a simulation runs through.
type Plan struct {
	Tasks []*Task `yaml:"tasks"`
}

// Task is one simulated unit of work: a display name and how long the
// whole task should appear to take.
type Task struct {
	Name     string
	Duration time.Duration
}

// ParseError reports an invalid plan definition.
type ParseError struct {
	Target string
	Err    error
}

func (pe *ParseError) Error() string {
	return pe.Err.Error()
}

func (pe *ParseError) Unwrap() error {
	return pe.Err
}

func (t *Task) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%d:%d require mappings for task", node.Line, node.Column)
	}
	var raw struct {
		Name     string `yaml:"name"`
		Duration string `yaml:"duration"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	t.Name = strings.TrimSpace(raw.Name)
	if raw.Duration != "" {
		d, err := time.ParseDuration(raw.Duration)
		if err != nil {
			return fmt.Errorf("%d:%d invalid duration for task %s: %w", node.Line, node.Column, t.Name, err)
		}
		t.Duration = d
	}
	return nil
}

// ParsePlan decodes and validates a YAML plan.
func ParsePlan(data []byte) (*Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, &ParseError{Err: err}
	}
	if len(plan.Tasks) == 0 {
		return nil, &ParseError{Err: fmt.Errorf("plan defines no tasks")}
	}
	for _, t := range plan.Tasks {
		if t == nil || t.Name == "" {
			return nil, &ParseError{Err: fmt.Errorf("every task requires a name")}
		}
		if t.Duration < 0 {
			return nil, &ParseError{Target: t.Name, Err: fmt.Errorf("task %s has negative duration", t.Name)}
		}
	}
	return &plan, nil
}

// ParsePlanFile loads a plan from a YAML file.
func ParsePlanFile(path string) (*Plan, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlan(data)
}

const defaultPlanYAML = `
tasks:
  - name: Data Processing
    duration: 3s
  - name: File Analysis
    duration: 2s
  - name: Report Generation
    duration: 4s
`

// DefaultPlan returns the built-in three task plan.
func DefaultPlan() *Plan {
	plan, err := ParsePlan([]byte(defaultPlanYAML))
	if err != nil {
		panic("simulate: invalid built-in plan: " + err.Error())
	}
	return plan
}
