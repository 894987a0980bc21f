package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jevi061/outfix/internal/demo"
	"github.com/jevi061/outfix/internal/fixture"
)

func NewDemoCmd() *cobra.Command {
	var demoCmd = &cobra.Command{
		Use:   "demo",
		Args:  cobra.MatchAll(cobra.NoArgs),
		Short: "Emit staged demo output",
		Long:  `Emit a fixed sequence of progress lines, stdout/stderr writes and long output for capture validation`,
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(runFixture(demo.New()))
		},
	}
	return demoCmd
}

// runFixture runs a fixture to completion and maps its error to the
// process exit code contract.
func runFixture(f fixture.Fixture) int {
	err := f.Run(context.Background())
	if err != nil && !errors.Is(err, fixture.ErrInterrupted) {
		fmt.Fprintln(os.Stderr, err)
	}
	return fixture.ExitCode(err)
}
