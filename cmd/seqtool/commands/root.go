// Package commands provides the CLI commands for the seqtool tool.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"martianoff/galaseq/internal/config"
)

var (
	envFile  string
	logLevel string

	cfg    = config.DefaultConfig()
	logger = log.Default()
)

var rootCmd = &cobra.Command{
	Use:   "seqtool",
	Short: "Lazy line-processing pipelines",
	Long: `seqtool streams lines through a pipeline of sequence operations.

Usage:
  seqtool run [file] --step grep:^a --step take:3   Apply steps given as flags
  seqtool run [file] --pipeline p.yaml              Apply steps from a file
  seqtool ops                                       List supported operations
  seqtool version                                   Print version

Configuration is read from the environment and an optional .env file:
  SEQTOOL_LOG_LEVEL        debug, info, warn or error (default info)
  SEQTOOL_SEPARATOR        written after every output record (default \n)
  SEQTOOL_CHUNK_SEPARATOR  joins grouped records (default space)`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load(envFile)
		if logLevel != "" {
			lvl, err := log.ParseLevel(strings.ToLower(logLevel))
			if err != nil {
				return err
			}
			cfg.LogLevel = lvl
		}
		logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			Level:  cfg.LogLevel,
			Prefix: "seqtool",
		})
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(opsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load if present")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override SEQTOOL_LOG_LEVEL")
}
