// Package cmd provides the root command and CLI setup for gowc.
package cmd

import (
	"log/slog"
	"os"

	"github.com/mouse-blink/gowc/internal/adapter"
	"github.com/mouse-blink/gowc/internal/controller"
	"github.com/mouse-blink/gowc/internal/domain"
	"github.com/mouse-blink/gowc/internal/logging"
	m "github.com/mouse-blink/gowc/internal/model"
	"github.com/spf13/cobra"
)

var fsAdapter adapter.SourceFSAdapter
var counter domain.Counter
var newWorkflow func(logger *slog.Logger) domain.Workflow

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	counter = domain.NewCounter(fsAdapter)
	newWorkflow = func(logger *slog.Logger) domain.Workflow {
		return domain.NewWorkflow(fsAdapter, counter, logger)
	}
}

var linesFlag bool
var wordsFlag bool
var bytesFlag bool
var tableFlag bool
var verbosityFlag string

// rootCmd represents the base command.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gowc [-lwc] [file...]",
		Short: "Count lines, words and bytes",
		Long: `gowc prints line, word and byte counts for each file, and a total row
when more than one file is given. With no file it reads standard input.

Words are runs of ASCII letters, digits, underscores and hyphens. A last line
without a trailing newline is not counted as a line.

Examples:
  gowc notes.txt           all three counts
  gowc -l *.go             line counts and a total
  cat notes.txt | gowc -w  word count of standard input`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseVerbosity(verbosityFlag)
			if err != nil {
				return err
			}

			logger := logging.NewLogger(cmd.ErrOrStderr(), level)

			paths := parsePaths(args)
			if len(paths) == 0 && controller.IsTTY(cmd.InOrStdin()) {
				logger.Info("reading standard input until end of file")
			}

			return newWorkflow(logger).Count(domain.CountArgs{
				Paths:   paths,
				Stdin:   cmd.InOrStdin(),
				Metrics: m.NewMetrics(linesFlag, wordsFlag, bytesFlag),
				UI:      controller.NewUI(cmd, tableFlag),
			})
		},
	}
	cmd.Flags().BoolVarP(&linesFlag, "lines", "l", false, "print the line count")
	cmd.Flags().BoolVarP(&wordsFlag, "words", "w", false, "print the word count")
	cmd.Flags().BoolVarP(&bytesFlag, "bytes", "c", false, "print the byte count")
	cmd.Flags().BoolVarP(&tableFlag, "table", "t", false, "render the counts as a table")
	cmd.Flags().StringVar(&verbosityFlag, "verbosity", logging.Warning.String(), "diagnostic level on stderr (Verbose, Info, Warning, Error, Off)")

	return cmd
}

// Execute runs the root command and exits with status 1 on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
