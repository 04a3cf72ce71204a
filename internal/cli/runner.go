package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/rcliao/aoc2023/internal/journal"
	"github.com/rcliao/aoc2023/internal/model"
	"github.com/rcliao/aoc2023/internal/puzzle"
	"github.com/rcliao/aoc2023/internal/samples"
)

// Recorder stores answers after they are printed.
type Recorder interface {
	Record(ctx context.Context, p journal.RecordParams) ([]model.Entry, error)
}

// Runner executes units one after another and prints their answers.
type Runner struct {
	Registry  *puzzle.Registry
	InputDir  string
	UseSample bool
	Samples   samples.Set
	Journal   Recorder // nil disables recording
	RunID     string   // generated when empty
	Logger    *zap.Logger
	Out       io.Writer
}

// Run executes the named units in order. It stops at the first failure;
// units before it have already printed their answers.
func (r *Runner) Run(ctx context.Context, names []string) error {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	runID := r.RunID
	if runID == "" {
		runID = ulid.Make().String()
	}
	log = log.With(zap.String("run_id", runID))

	for _, name := range names {
		u, err := r.Registry.Lookup(name)
		if err != nil {
			return err
		}
		input, err := r.input(name)
		if err != nil {
			return err
		}

		start := time.Now()
		log.Debug("unit started", zap.String("unit", name), zap.Int("input_bytes", len(input)))
		answers, err := u.Solve(input)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		for _, a := range answers {
			fmt.Fprintln(r.Out, a.String())
		}
		log.Debug("unit finished",
			zap.String("unit", name),
			zap.Int("answers", len(answers)),
			zap.Duration("elapsed", time.Since(start)))

		if r.Journal != nil {
			_, err := r.Journal.Record(ctx, journal.RecordParams{
				RunID:   runID,
				Unit:    name,
				Input:   input,
				Sample:  r.UseSample,
				Answers: answers,
			})
			if err != nil {
				return fmt.Errorf("record %s: %w", name, err)
			}
		}
	}
	return nil
}

func (r *Runner) input(name string) (string, error) {
	if r.UseSample {
		in, ok := r.Samples.First(name)
		if !ok {
			return "", fmt.Errorf("%s: no worked example", name)
		}
		return in, nil
	}
	b, err := os.ReadFile(filepath.Join(r.InputDir, name))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}
