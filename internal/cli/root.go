// Package cli implements the aoc2023 commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rcliao/aoc2023/internal/days"
	"github.com/rcliao/aoc2023/internal/journal"
	"github.com/rcliao/aoc2023/internal/samples"
)

var (
	inputDir    string
	journalPath string
	record      bool
	useSample   bool
	verbose     bool

	logger = zap.NewNop()
)

// RootCmd runs the units named on the command line, in order.
var RootCmd = &cobra.Command{
	Use:   "aoc2023 [unit...]",
	Short: "Advent of Code 2023 solutions",
	Long: `Runs each named unit (day_01 ... day_07) once, in the order given, and prints
its answers. Inputs are read from <input-dir>/<unit>.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = loggerConfig(verbose).Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: runRoot,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&inputDir, "input-dir", "i", "", "Directory holding puzzle inputs (default: $AOC_INPUT_DIR or ./input)")
	RootCmd.PersistentFlags().StringVarP(&journalPath, "journal", "j", "", "Answer journal path (default: $AOC_JOURNAL or ~/.aoc2023/journal.db)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")
	RootCmd.Flags().BoolVarP(&record, "record", "r", false, "Record answers in the journal")
	RootCmd.Flags().BoolVarP(&useSample, "sample", "s", false, "Use each unit's worked example instead of its input file")
}

func runRoot(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		return
	}

	r := &Runner{
		Registry:  days.Registry(),
		InputDir:  getInputDir(),
		UseSample: useSample,
		Logger:    logger,
		Out:       cmd.OutOrStdout(),
	}
	if useSample {
		set, err := samples.Load()
		if err != nil {
			exitErr("load samples", err)
		}
		r.Samples = set
	}
	if record {
		j, err := openJournal()
		if err != nil {
			exitErr("open journal", err)
		}
		defer j.Close()
		r.Journal = j
		r.RunID = j.NewRunID()
	}

	if err := r.Run(cmd.Context(), args); err != nil {
		exitErr("run", err)
	}
}

// loggerConfig builds the stderr JSON logger. Stack traces are off at every
// level.
func loggerConfig(verbose bool) zap.Config {
	config := zap.NewProductionConfig()
	config.DisableStacktrace = true
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config
}

func getInputDir() string {
	if inputDir != "" {
		return inputDir
	}
	if env := os.Getenv("AOC_INPUT_DIR"); env != "" {
		return env
	}
	return "input"
}

func getJournalPath() string {
	if journalPath != "" {
		return journalPath
	}
	if env := os.Getenv("AOC_JOURNAL"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".aoc2023", "journal.db")
}

func openJournal() (*journal.Journal, error) {
	return journal.Open(getJournalPath())
}

func exitErr(msg string, err error) {
	logger.Error(msg, zap.Error(err))
	_ = logger.Sync()
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
