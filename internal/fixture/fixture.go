package fixture

import (
	"context"
	"errors"
)

// Fixture is a runnable console output fixture. Fixtures exist to feed a
// script runner predictable output: progress lines, mixed streams, ANSI
// colors and timestamped logs.
type Fixture interface {
	Name() string
	Desc() string
	Run(ctx context.Context) error
}

// ErrInterrupted reports that a fixture stopped because the user interrupted it.
var ErrInterrupted = errors.New("interrupted by user")

// Exit codes are the machine readable contract between fixtures and the
// script runner driving them.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitInterrupted = 130
)

// ExitCode maps the error returned by a fixture run to its process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInterrupted):
		return ExitInterrupted
	default:
		return ExitError
	}
}

// Info describes an available fixture for listing.
type Info struct {
	Name      string
	Desc      string
	ExitCodes string
}

// All returns the fixtures shipped with outfix.
func All() []Info {
	return []Info{
		{Name: "demo", Desc: "staged progress, mixed stdout/stderr and long output", ExitCodes: "0"},
		{Name: "task", Desc: "multi task job with timestamped logs and random warnings", ExitCodes: "0,1,130"},
		{Name: "colors", Desc: "ANSI colored text and a simulated colored log stream", ExitCodes: "0"},
	}
}
