// Package domain holds the counting rules and the per-source driver loop.
package domain

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mouse-blink/gowc/internal/adapter"
	"github.com/mouse-blink/gowc/internal/controller"
	m "github.com/mouse-blink/gowc/internal/model"
)

var errNoInput = errors.New("no input: pass file paths or a standard input stream")

// CountArgs describes one run of the counter.
type CountArgs struct {
	Paths   []m.Path
	Stdin   io.Reader
	Metrics m.Metrics
	UI      controller.UI
}

// Workflow drives counting over every input and reports the results.
type Workflow interface {
	Count(args CountArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	counter   Counter
	logger    *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, counter Counter, logger *slog.Logger) Workflow {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &workflow{
		fsAdapter: fsAdapter,
		counter:   counter,
		logger:    logger,
	}
}

// Count measures each file in order, or standard input when no file is
// given, and prints a total row when more than one file was counted.
// The first file that cannot be read stops the run.
func (w *workflow) Count(args CountArgs) error {
	if args.UI == nil {
		return errors.New("count: missing UI")
	}

	sources, err := w.sources(args)
	if err != nil {
		return err
	}

	if err := args.UI.Start(); err != nil {
		return err
	}

	err = w.report(sources, args)

	if closeErr := args.UI.Close(); err == nil {
		err = closeErr
	}

	return err
}

func (w *workflow) sources(args CountArgs) ([]m.Source, error) {
	if len(args.Paths) > 0 {
		sources := make([]m.Source, 0, len(args.Paths))
		for _, path := range args.Paths {
			sources = append(sources, m.FileSource(path))
		}

		return sources, nil
	}

	if args.Stdin == nil {
		return nil, errNoInput
	}

	fragments, err := w.fsAdapter.ReadFragments(args.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read standard input: %w", err)
	}

	w.logger.Debug("buffered standard input", "fragments", len(fragments))

	return []m.Source{m.BufferedSource(fragments)}, nil
}

func (w *workflow) report(sources []m.Source, args CountArgs) error {
	var totals m.Counts

	for _, source := range sources {
		counts, err := w.counter.Count(source, args.Metrics)
		if err != nil {
			w.logger.Error("cannot count source", "path", source.Path, "error", err)

			return err
		}

		w.logger.Debug("counted source",
			"path", source.Path,
			"lines", counts.Lines,
			"words", counts.Words,
			"bytes", counts.Bytes,
		)

		totals = totals.Add(counts)

		if err := args.UI.DisplayCounts(source, counts, args.Metrics); err != nil {
			return err
		}
	}

	if len(args.Paths) > 1 {
		return args.UI.DisplayTotal(totals, args.Metrics)
	}

	return nil
}
