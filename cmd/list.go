package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jevi061/outfix/internal/fixture"
	"github.com/jevi061/outfix/internal/termsize"
)

func NewListCmd() *cobra.Command {
	boxStyle := table.StyleLight
	boxStyle.Options = table.OptionsNoBordersAndSeparators
	boxStyle.Options.SeparateHeader = true

	var listCmd = &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Args:    cobra.MatchAll(cobra.NoArgs),
		Short:   "List available fixtures",
		Long:    `List the output fixtures this binary can run, with their exit code contracts`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(os.Stdout, "Available fixtures:")
			fmt.Fprintln(os.Stdout, strings.Repeat("-", termsize.DefaultWidth(40)))
			tw := table.NewWriter()
			tw.SetStyle(boxStyle)
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Fixture", "Exit Codes", "Desc"})
			for _, info := range fixture.All() {
				tw.AppendRow(table.Row{info.Name, info.ExitCodes, info.Desc})
			}
			tw.Render()
		},
	}
	return listCmd
}
