package combine

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const fence = "```"

// FormatFile reads the file at root/relPath and returns its block in the
// combined document: a header line naming the path, then the content inside a
// fence, then a blank line.
func FormatFile(root, relPath string, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	filePath := filepath.Join(root, relPath)
	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	logger.Debug("Read file content",
		zap.String("filePath", relPath),
		zap.Int("contentSizeBytes", len(fileBytes)))

	return formatBlock(relPath, decodeLossy(fileBytes)), nil
}

// formatBlock renders one file block.
func formatBlock(relPath, content string) string {
	return "# " + relPath + "\n" + fence + "\n" + content + fence + "\n\n"
}

// decodeLossy decodes b as UTF-8, replacing ill-formed sequences with U+FFFD.
func decodeLossy(b []byte) string {
	out, _, err := transform.Bytes(runes.ReplaceIllFormed(), b)
	if err != nil {
		// ReplaceIllFormed never reports errors for complete input.
		return string(b)
	}
	return string(out)
}
