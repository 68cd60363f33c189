package commands

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"martianoff/galaseq/internal/pipeline"
)

// Version information, set at build time with -ldflags -X.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of seqtool",
	Long: `Print the seqtool version and the number of pipeline operations it
supports. Use --ops to also list their names.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		ops := pipeline.Ops()
		fmt.Fprintf(out, "seqtool version %s (%d ops)\n", Version, len(ops))
		if GitCommit != "unknown" {
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		}
		if BuildDate != "unknown" {
			fmt.Fprintf(out, "  Build date: %s\n", BuildDate)
		}
		if versionOps {
			names := lo.Map(ops, func(op pipeline.Op, _ int) string { return op.Name })
			fmt.Fprintf(out, "  Ops: %s\n", strings.Join(names, ", "))
		}
	},
}

var versionOps bool

func init() {
	versionCmd.Flags().BoolVar(&versionOps, "ops", false, "List supported operation names")
}
