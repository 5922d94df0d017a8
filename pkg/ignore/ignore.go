package ignore

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// PatternSet is a compiled, read-only collection of glob patterns.
// A path is ignored when any member matches it.
type PatternSet struct {
	patterns []string    // Validated doublestar patterns.
	logger   *zap.Logger // Logger for debug information.
}

// Compile normalizes the given tokens and compiles them into a PatternSet.
// Patterns with malformed glob syntax are dropped; compilation never fails.
func Compile(tokens []string, logger *zap.Logger) *PatternSet {
	if logger == nil {
		logger = zap.NewNop()
	}

	ps := &PatternSet{logger: logger}
	seen := make(map[string]struct{})

	for _, pattern := range Normalize(tokens) {
		if !doublestar.ValidatePattern(pattern) {
			logger.Debug("Dropping invalid ignore pattern", zap.String("pattern", pattern))
			continue
		}
		if _, dup := seen[pattern]; dup {
			continue
		}
		seen[pattern] = struct{}{}
		ps.patterns = append(ps.patterns, pattern)
	}

	logger.Debug("Compiled ignore patterns",
		zap.Int("tokens", len(tokens)),
		zap.Int("patterns", len(ps.patterns)))
	return ps
}

// Len returns the number of compiled patterns.
func (ps *PatternSet) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.patterns)
}

// Patterns returns a copy of the compiled patterns.
func (ps *PatternSet) Patterns() []string {
	if ps == nil {
		return nil
	}
	return append([]string(nil), ps.patterns...)
}

// MatchesPath checks if a root-relative path matches any pattern in the set.
func (ps *PatternSet) MatchesPath(path string) bool {
	matches, _ := ps.MatchesPathWithPattern(path)
	return matches
}

// MatchesPathWithPattern checks if a root-relative path matches any pattern and
// returns the first pattern that matched.
func (ps *PatternSet) MatchesPathWithPattern(path string) (bool, string) {
	if ps == nil {
		return false, ""
	}

	normalizedPath := normalizePath(path)
	for _, pattern := range ps.patterns {
		if doublestar.MatchUnvalidated(pattern, normalizedPath) {
			return true, pattern
		}
	}
	return false, ""
}

// ExactSet holds root-relative paths that are excluded unconditionally.
type ExactSet struct {
	paths map[string]struct{}
}

// NewExactSet builds an ExactSet from root-relative paths.
func NewExactSet(paths ...string) *ExactSet {
	es := &ExactSet{paths: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		if p == "" {
			continue
		}
		es.paths[filepath.Clean(p)] = struct{}{}
	}
	return es
}

// Contains reports whether path is excluded.
func (es *ExactSet) Contains(path string) bool {
	if es == nil || len(es.paths) == 0 {
		return false
	}
	_, ok := es.paths[filepath.Clean(path)]
	return ok
}

// Len returns the number of excluded paths.
func (es *ExactSet) Len() int {
	if es == nil {
		return 0
	}
	return len(es.paths)
}

// normalizePath converts OS-specific path separators to forward slashes.
func normalizePath(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}
