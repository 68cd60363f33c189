package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"martianoff/galaseq/internal/pipeline"
)

var (
	opsPretty bool
	opsCSV    bool
)

var plainStyle = table.Style{
	Name:   "StylePlain",
	Box:    table.StyleBoxDefault,
	Color:  table.ColorOptionsDefault,
	Format: table.FormatOptionsDefault,
	HTML:   table.DefaultHTMLOptions,
	Options: table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateFooter:  false,
		SeparateHeader:  false,
		SeparateRows:    false,
	},
	Title: table.TitleOptionsDefault,
}

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List supported pipeline operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.AppendHeader(table.Row{"Op", "Arg", "Description"})
		tw.AppendRows(lo.Map(pipeline.Ops(), func(op pipeline.Op, _ int) table.Row {
			return table.Row{op.Name, op.Arg, op.Help}
		}))

		tw.SetStyle(plainStyle)
		if opsPretty {
			tw.SetStyle(table.StyleColoredGreenWhiteOnBlack)
		}
		if opsCSV {
			tw.RenderCSV()
		} else {
			tw.Render()
		}
		return nil
	},
}

func init() {
	opsCmd.Flags().BoolVar(&opsPretty, "pretty", false, "Colored table output")
	opsCmd.Flags().BoolVar(&opsCSV, "csv", false, "CSV output")
}
