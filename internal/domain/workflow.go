package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/codeclimate-community/codeclimate-clippy/internal/adapter"
	m "github.com/codeclimate-community/codeclimate-clippy/internal/model"
)

// AnalyzeArgs holds the options of a single analysis run.
type AnalyzeArgs struct {
	IncludePaths m.IncludePaths
	// SkipMalformed turns malformed records and unknown levels into warnings.
	SkipMalformed bool
}

// Workflow runs the linter and translates its diagnostics into issues.
type Workflow interface {
	Analyze(ctx context.Context, args AnalyzeArgs) error
}

type workflow struct {
	linter   adapter.LinterRunnerAdapter
	streamer RecordStreamer
	writer   adapter.IssueWriterAdapter
}

// NewWorkflow constructs a Workflow backed by the given adapters.
func NewWorkflow(linter adapter.LinterRunnerAdapter, streamer RecordStreamer, writer adapter.IssueWriterAdapter) Workflow {
	return &workflow{
		linter:   linter,
		streamer: streamer,
		writer:   writer,
	}
}

// analyzeStats counts what happened to the values of one run.
type analyzeStats struct {
	emitted  int
	filtered int
	ignored  int
	skipped  int
}

// Analyze streams the linter output and writes one issue per included
// compiler message, in linter order. Issues written before a fatal error are
// still flushed.
func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) error {
	// A fatal error cancels runCtx, which kills the linter.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stdout, err := w.linter.Stream(runCtx)
	if err != nil {
		slog.Error("Failed to start linter", "error", err)
		return fmt.Errorf("run linter: %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	values, decodeErrs := w.streamer.Stream(groupCtx, stdout)
	filter := NewIncludeFilter(args.IncludePaths)
	stats := &analyzeStats{}

	// Single consumer: issues keep the linter's order.
	group.Go(func() error {
		for {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			case value, ok := <-values:
				if !ok {
					return nil
				}

				if err := w.handleValue(groupCtx, value, filter, args, stats); err != nil {
					return err
				}
			}
		}
	})

	group.Go(func() error {
		select {
		case <-groupCtx.Done():
			return nil
		case err, ok := <-decodeErrs:
			if ok && err != nil {
				slog.Warn("Linter output is not valid JSON, ignoring the rest", "error", err)
			}

			return nil
		}
	})

	runErr := group.Wait()
	if runErr != nil {
		cancel()
	}

	_ = stdout.Close()

	if err := w.writer.Flush(ctx); err != nil && runErr == nil {
		runErr = err
	}

	slog.Info("Analysis finished",
		"emitted", stats.emitted,
		"filtered", stats.filtered,
		"ignored", stats.ignored,
		"skipped", stats.skipped,
	)

	return runErr
}

func (w *workflow) handleValue(ctx context.Context, value json.RawMessage, filter *IncludeFilter, args AnalyzeArgs, stats *analyzeStats) error {
	record, relevant, err := DecodeRecord(value)
	if err != nil {
		return w.recordFailure(err, args, stats)
	}

	if !relevant {
		stats.ignored++
		return nil
	}

	included, err := filter.Includes(record)
	if err != nil {
		return w.recordFailure(err, args, stats)
	}

	if !included {
		slog.Debug("Record outside include paths", "srcPath", *record.Target.SrcPath)
		stats.filtered++

		return nil
	}

	issue, err := ParseIssue(record)
	if err != nil {
		return w.recordFailure(err, args, stats)
	}

	if err := w.writer.Write(ctx, issue); err != nil {
		slog.Error("Failed to write issue", "checkName", issue.CheckName, "error", err)
		return fmt.Errorf("emit issue: %w", err)
	}

	stats.emitted++

	return nil
}

func (w *workflow) recordFailure(err error, args AnalyzeArgs, stats *analyzeStats) error {
	skippable := errors.Is(err, m.ErrMalformedRecord) || errors.Is(err, m.ErrUnknownSeverity)
	if args.SkipMalformed && skippable {
		slog.Warn("Skipping record", "error", err)
		stats.skipped++

		return nil
	}

	slog.Error("Failed to translate record", "error", err)

	return fmt.Errorf("translate record: %w", err)
}
