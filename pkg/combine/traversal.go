// File: pkg/combine/traversal.go
package combine

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"toai/pkg/ignore"

	"go.uber.org/zap"
)

// CanonicalRoot resolves path to an absolute directory path with symlinks evaluated.
func CanonicalRoot(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root %s: %w", absPath, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to stat root %s: %w", resolved, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("root %s: %w", resolved, ErrNotDirectory)
	}
	return resolved, nil
}

// CollectFiles walks root depth-first and returns the sorted, root-relative
// paths of every regular file that is neither exactly excluded nor matched by
// a pattern. Matching directories are pruned before they are read. Any
// directory read error aborts the walk.
func CollectFiles(root string, patterns *ignore.PatternSet, exact *ignore.ExactSet, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	canonicalRoot, err := CanonicalRoot(root)
	if err != nil {
		return nil, err
	}

	logger.Debug("Starting file traversal",
		zap.String("root", canonicalRoot),
		zap.Int("patterns", patterns.Len()),
		zap.Int("exactExclusions", exact.Len()))

	var files []string
	if err := walkDir(canonicalRoot, canonicalRoot, patterns, exact, &files, logger); err != nil {
		return nil, err
	}

	slices.Sort(files)
	logger.Debug("Completed file traversal", zap.Int("files", len(files)))
	return files, nil
}

// walkDir appends the included files below dir to acc.
func walkDir(dir, root string, patterns *ignore.PatternSet, exact *ignore.ExactSet, acc *[]string, logger *zap.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to relativize %s: %w", path, err)
		}

		if exact.Contains(relPath) {
			logger.Debug("Skipping excluded path", zap.String("path", relPath))
			continue
		}

		if matched, pattern := patterns.MatchesPathWithPattern(relPath); matched {
			logger.Debug("Skipping ignored path",
				zap.String("path", relPath),
				zap.String("pattern", pattern),
				zap.Bool("dir", entry.IsDir()))
			continue
		}

		switch {
		case entry.IsDir():
			if err := walkDir(path, root, patterns, exact, acc, logger); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			*acc = append(*acc, relPath)
		}
	}
	return nil
}

// OutputExclusion returns the root-relative path of output when it lies inside
// root. Relative output paths are resolved against the working directory.
func OutputExclusion(root, output string) (string, bool) {
	if output == "" {
		return "", false
	}

	absOutput, err := filepath.Abs(output)
	if err != nil {
		return "", false
	}

	relPath, err := filepath.Rel(root, resolveExisting(absOutput))
	if err != nil || relPath == "." || relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", false
	}
	return relPath, true
}

// resolveExisting evaluates symlinks on the longest existing prefix of path and
// re-attaches the remainder, so paths that do not exist yet still compare
// against a canonical root.
func resolveExisting(path string) string {
	var rest []string
	current := path
	for {
		if resolved, err := filepath.EvalSymlinks(current); err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...)
		}
		parent := filepath.Dir(current)
		if parent == current {
			return path
		}
		rest = append([]string{filepath.Base(current)}, rest...)
		current = parent
	}
}
