package main

import (
	"fmt"
	"os"
	"strings"

	"toai/cmd"
	"toai/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	err := cmd.Execute()

	logger := logging.Logger
	if logger == nil {
		// Flag parsing failed before the logger was configured.
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err != nil {
		syncLogger(logger)
		logger.Fatal("to-ai execution failed", zap.Error(err))
	}
	syncLogger(logger)
}

// syncLogger flushes the logger. Sync on a terminal or pipe returns EINVAL on
// some platforms, which is not worth reporting.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		lowerErr := strings.ToLower(syncErr.Error())
		if !strings.Contains(lowerErr, "invalid argument") && !strings.Contains(lowerErr, "inappropriate ioctl") {
			fmt.Fprintf(os.Stderr, "Logger sync failed: %v\n", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
