package ignore

import (
	"os"
	"strings"
)

// recursivePrefix is the multi-segment wildcard that anchors a pattern at any depth.
const recursivePrefix = "**/"

// HasWildcards reports whether p contains glob metacharacters.
func HasWildcards(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// HasSeparator reports whether p contains a path separator.
func HasSeparator(p string) bool {
	return strings.ContainsAny(p, `/\`) || strings.ContainsRune(p, os.PathSeparator)
}

// Normalize expands ignore tokens into glob patterns.
//
// A literal name such as "node_modules" ignores that name as a whole path
// segment at any depth, together with its subtree. A bare wildcard such as
// "*.png" is matched against the basename at any depth. A wildcard that
// already carries a separator, or starts with "**/", is kept verbatim.
func Normalize(tokens []string) []string {
	out := make([]string, 0, len(tokens)*2)
	for _, token := range tokens {
		p := strings.TrimSpace(token)
		if p == "" {
			continue
		}

		if HasWildcards(p) {
			if HasSeparator(p) || strings.HasPrefix(p, recursivePrefix) {
				out = append(out, p)
			} else {
				out = append(out, recursivePrefix+p)
			}
			continue
		}

		out = append(out, recursivePrefix+p+"/**", recursivePrefix+p)
	}
	return out
}

// BuildTokens assembles the token list for a run: the default list unless
// suppressed, followed by the extra tokens in order.
func BuildTokens(noDefault bool, extra ...[]string) []string {
	var tokens []string
	if !noDefault {
		tokens = DefaultTokens()
	}
	for _, list := range extra {
		tokens = append(tokens, list...)
	}
	return tokens
}
