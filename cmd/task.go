package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jevi061/outfix/internal/fixture"
	"github.com/jevi061/outfix/internal/logline"
	"github.com/jevi061/outfix/internal/logsink"
	"github.com/jevi061/outfix/internal/simulate"
)

var (
	planfile string
	logfile  string
)

func NewTaskCmd() *cobra.Command {
	var taskCmd = &cobra.Command{
		Use:   "task",
		Args:  cobra.MatchAll(cobra.NoArgs),
		Short: "Simulate a multi task job",
		Long:  `Run a plan of simulated tasks with timestamped progress logs and occasional random warnings, exiting 0, 1 or 130`,
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(runTaskSimulation(planfile, logfile))
		},
	}
	taskCmd.PersistentFlags().StringVarP(&planfile, "planfile", "f", "", "YAML plan file, defaults to the built-in plan")
	taskCmd.PersistentFlags().StringVarP(&logfile, "log-file", "l", "", "mirror log lines to a file")
	return taskCmd
}

func runTaskSimulation(planfile, logfile string) int {
	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	sink := logsink.New(logsink.NopCloser(os.Stdout))
	if logfile != "" {
		f, err := os.Create(logfile)
		if err != nil {
			logline.New().Errorf("Unexpected error: %v", err)
			return fixture.ExitError
		}
		sink.Add(f)
	}
	defer sink.Close()
	logger := logline.New(logline.WithWriter(sink), logline.WithColor(interactive))

	plan := simulate.DefaultPlan()
	if planfile != "" {
		p, err := simulate.ParsePlanFile(planfile)
		if err != nil {
			var pe *simulate.ParseError
			if errors.As(err, &pe) {
				logger.Errorf("Invalid plan %s: %v", planfile, err)
			} else {
				logger.Errorf("Unexpected error: %v", err)
			}
			return fixture.ExitError
		}
		plan = p
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)
	defer func() {
		signal.Stop(signals)
		close(signals)
	}()
	go func() {
		if _, ok := <-signals; ok {
			cancel()
		}
	}()

	sim := simulate.New(plan,
		simulate.WithLogger(logger),
		simulate.WithSpinner(interactive))
	if err := sim.Run(ctx); err != nil {
		if errors.Is(err, fixture.ErrInterrupted) {
			return fixture.ExitInterrupted
		}
		logger.Errorf("Unexpected error: %v", err)
		return fixture.ExitError
	}
	return fixture.ExitOK
}
