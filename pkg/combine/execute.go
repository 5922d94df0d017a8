// File: pkg/combine/execute.go
package combine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// writeToFile writes the document to path, creating parent directories as needed.
func writeToFile(path, root string, files []string, opts writeOptions, logger *zap.Logger) (int, []string, error) {
	if err := ensureDirectory(filepath.Dir(path), logger); err != nil {
		return 0, nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	outFile, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", path), zap.Error(err))
		return 0, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	n, skipped, err := WriteCombined(outFile, root, files, opts, logger)
	if closeErr := outFile.Close(); closeErr != nil {
		logger.Error("Failed to close output file", zap.String("file", path), zap.Error(closeErr))
		err = errors.Join(err, fmt.Errorf("failed to close output file: %w", closeErr))
	}
	return n, skipped, err
}

// writeToStdout writes the document to the stdout sink.
func writeToStdout(sinks Sinks, root string, files []string, opts writeOptions, logger *zap.Logger) (int, []string, error) {
	if sinks.Stdout == nil {
		return 0, nil, errors.New("no stdout sink configured")
	}
	return WriteCombined(sinks.Stdout, root, files, opts, logger)
}

// writeToClipboard renders the whole document in memory and hands it to the clipboard sink.
func writeToClipboard(sinks Sinks, root string, files []string, opts writeOptions, logger *zap.Logger) (int, []string, error) {
	if sinks.Clipboard == nil {
		return 0, nil, errors.New("no clipboard sink configured")
	}

	var doc strings.Builder
	n, skipped, err := WriteCombined(&doc, root, files, opts, logger)
	if err != nil {
		return n, skipped, err
	}

	if err := sinks.Clipboard.Copy(doc.String()); err != nil {
		logger.Error("Failed to copy to clipboard", zap.Error(err))
		return n, skipped, fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return n, skipped, nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}
