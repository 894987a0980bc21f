package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show outfix version",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("version:", "1.0.0")
	},
}
