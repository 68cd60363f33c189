package commands

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"martianoff/galaseq/internal/pipeline"
	"martianoff/galaseq/opt"
)

var (
	runSteps          []string
	runPipelineFile   string
	runSeparator      string
	runChunkSeparator string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Apply a pipeline to the lines of a file or stdin",
	Long: `Run reads lines from file, or stdin when no file is given, passes them
through the pipeline and writes the resulting records to stdout.

Steps are written as op or op:arg. Flags are applied after the steps of
a pipeline file.

Examples:
  seqtool run words.txt --step unique --step sort
  seqtool run --step grep:error --step tail:10 < app.log
  seqtool run -p pipeline.yaml data.txt
  seqtool run --step chunk:3 --chunk-separator , data.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringArrayVarP(&runSteps, "step", "s", nil, "Pipeline step op[:arg] (repeatable)")
	runCmd.Flags().StringVarP(&runPipelineFile, "pipeline", "p", "", "YAML pipeline definition")
	runCmd.Flags().StringVar(&runSeparator, "separator", "", "Output record separator (default from SEQTOOL_SEPARATOR)")
	runCmd.Flags().StringVar(&runChunkSeparator, "chunk-separator", "", "Separator for chunk and split-at (default from SEQTOOL_CHUNK_SEPARATOR)")
}

func runRun(cmd *cobra.Command, args []string) error {
	var steps []pipeline.Step
	sep := opt.None[string]()
	chunkSep := opt.None[string]()

	if runPipelineFile != "" {
		def, err := pipeline.LoadFile(runPipelineFile)
		if err != nil {
			return err
		}
		logger.Debug("loaded pipeline", "file", runPipelineFile, "steps", len(def.Steps))
		steps = append(steps, def.Steps...)
		sep, chunkSep = def.Separator, def.ChunkSeparator
	}

	flagSteps, err := pipeline.ParseSteps(runSteps)
	if err != nil {
		return err
	}
	steps = append(steps, flagSteps...)

	if cmd.Flags().Changed("separator") {
		sep = opt.Some(runSeparator)
	}
	if cmd.Flags().Changed("chunk-separator") {
		chunkSep = opt.Some(runChunkSeparator)
	}

	p, err := pipeline.New(steps,
		pipeline.WithChunkSeparator(chunkSep.GetOr(cfg.ChunkSeparator)),
		pipeline.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	n, err := p.Run(in, cmd.OutOrStdout(), sep.GetOr(cfg.Separator))
	if err != nil {
		return err
	}
	logger.Debug("done", "records", n)
	return nil
}

// openInput returns the named file, or stdin for "-" or no argument. Stdin
// is never closed.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Error("input not found", "file", args[0])
		}
		return nil, err
	}
	return f, nil
}
