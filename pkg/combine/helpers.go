// File: pkg/combine/helpers.go
package combine

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"
)

// writeOptions controls how the combined document is rendered.
type writeOptions struct {
	tree           bool
	skipUnreadable bool
}

// WriteCombined writes the block of every file in files to w, in order. It
// returns the number of bytes written and the files skipped as unreadable.
func WriteCombined(w io.Writer, root string, files []string, opts writeOptions, logger *zap.Logger) (int, []string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	writer := bufio.NewWriter(w)
	written := 0
	var skipped []string

	write := func(s string) error {
		n, err := writer.WriteString(s)
		written += n
		return err
	}

	if opts.tree {
		treeContent := GenerateTree(filepath.Base(root), files)
		if err := write(formatBlock("Tree", treeContent)); err != nil {
			logger.Error("Failed to write tree content", zap.Error(err))
			return written, skipped, fmt.Errorf("failed to write tree content: %w", err)
		}
	}

	for _, relPath := range files {
		block, err := FormatFile(root, relPath, logger)
		if err != nil {
			if opts.skipUnreadable {
				logger.Warn("Skipping unreadable file", zap.String("filePath", relPath), zap.Error(err))
				skipped = append(skipped, relPath)
				continue
			}
			logger.Error("Failed to read file", zap.String("filePath", relPath), zap.Error(err))
			return written, skipped, err
		}

		if err := write(block); err != nil {
			logger.Error("Failed to write file content",
				zap.String("contentPath", relPath),
				zap.Error(err))
			return written, skipped, fmt.Errorf("failed to write content: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output", zap.Error(err))
		return written, skipped, fmt.Errorf("failed to flush output: %w", err)
	}
	return written, skipped, nil
}
