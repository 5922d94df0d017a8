// Package combine collects the text files of a project and concatenates them
// into one document, each file rendered as a header line and a fenced body.
package combine

import (
	"fmt"
	"time"

	"toai/pkg/ignore"

	"go.uber.org/zap"
)

// RunCombine orchestrates one dump: it compiles the ignore patterns, walks the
// root, and writes the combined document to the selected sink.
func RunCombine(args *Arguments, sinks Sinks, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := args.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	destination := args.Destination()
	logger.Info("Starting combination process",
		zap.String("directory", args.root()),
		zap.Stringer("destination", destination))

	root, err := CanonicalRoot(args.root())
	if err != nil {
		logger.Error("Failed to resolve directory path", zap.Error(err))
		return nil, err
	}

	tokens := ignore.BuildTokens(args.NoIgnoreDefault, args.IgnorePatterns)
	patterns := ignore.Compile(tokens, logger)

	var exact *ignore.ExactSet
	if relOutput, ok := OutputExclusion(root, args.Output); ok {
		logger.Debug("Excluding output file from its own listing", zap.String("path", relOutput))
		exact = ignore.NewExactSet(relOutput)
	}

	files, err := CollectFiles(root, patterns, exact, logger)
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return nil, fmt.Errorf("failed to collect files: %w", err)
	}

	if len(files) == 0 {
		logger.Warn("No files to process after filtering.")
	}

	opts := writeOptions{tree: args.Tree, skipUnreadable: args.SkipUnreadable}

	var (
		written int
		skipped []string
	)
	switch destination {
	case DestinationFile:
		written, skipped, err = writeToFile(args.Output, root, files, opts, logger)
	case DestinationStdout:
		written, skipped, err = writeToStdout(sinks, root, files, opts, logger)
	default:
		written, skipped, err = writeToClipboard(sinks, root, files, opts, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write combined output: %w", err)
	}

	result := &Result{
		Root:        root,
		Files:       files,
		Skipped:     skipped,
		Destination: destination,
		Bytes:       written,
	}

	logger.Info("Combination process completed",
		zap.Int("totalFiles", len(files)-len(skipped)),
		zap.Int("skippedFiles", len(skipped)),
		zap.Int("bytes", written),
		zap.Duration("elapsed", time.Since(startTime)))
	return result, nil
}
