package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "outfix",
	Short: "Console output fixtures for script runners",
	Long:  `Fixtures that emit progress lines, mixed stdout/stderr, ANSI colors and timestamped task logs to validate real-time output capture`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Usage()
	},
}

func Execute() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewDemoCmd())
	rootCmd.AddCommand(NewTaskCmd())
	rootCmd.AddCommand(NewColorsCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
