package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const examplePlan = `# Plan for the task fixture: ordered tasks with display durations.
tasks:
  - name: Data Processing
    duration: 3s
  - name: File Analysis
    duration: 2s
  - name: Report Generation
    duration: 4s
`

func NewInitCmd() *cobra.Command {
	var planfile = "./Planfile.yml"
	var initCmd = &cobra.Command{
		Use:   "init",
		Short: "Init a base Planfile",
		Long:  `Create an example plan file for the task fixture`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := writeExamplePlan(planfile); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	return initCmd
}

func writeExamplePlan(path string) error {
	_, err := os.Stat(path)
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("there is already a plan file at %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(examplePlan); err != nil {
		return err
	}
	return nil
}
