package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jevi061/outfix/internal/colorprobe"
)

func NewColorsCmd() *cobra.Command {
	var colorsCmd = &cobra.Command{
		Use:   "colors",
		Args:  cobra.MatchAll(cobra.NoArgs),
		Short: "Emit ANSI colored output",
		Long:  `Emit every standard and bright foreground color plus a simulated colored log stream`,
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(runFixture(colorprobe.New()))
		},
	}
	return colorsCmd
}
