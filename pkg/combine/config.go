// File: pkg/combine/config.go
package combine

// Arguments holds the configuration options for a single dump run.
type Arguments struct {
	Path            string   // Traversal root; defaults to the current directory.
	Output          string   // Destination file; empty when another sink is used.
	Stdout          bool     // Write to standard output instead of the clipboard.
	IgnorePatterns  []string // Additional ignore tokens, appended to the defaults.
	NoIgnoreDefault bool     // Suppress the built-in ignore list.
	SkipUnreadable  bool     // Skip files that cannot be read instead of aborting.
	Tree            bool     // Prepend a tree of the included files to the dump.
}

// Destination returns the sink the arguments select.
func (a *Arguments) Destination() Destination {
	switch {
	case a.Output != "":
		return DestinationFile
	case a.Stdout:
		return DestinationStdout
	default:
		return DestinationClipboard
	}
}

// Validate checks the arguments for conflicting options.
func (a *Arguments) Validate() error {
	if a.Output != "" && a.Stdout {
		return ErrConflictingSinks
	}
	return nil
}

// root returns the traversal root, falling back to the current directory.
func (a *Arguments) root() string {
	if a.Path == "" {
		return "."
	}
	return a.Path
}
