package combine

import (
	"errors"
	"io"
)

// Destination identifies where the combined document is written.
type Destination int

const (
	DestinationClipboard Destination = iota // System clipboard (default).
	DestinationStdout                       // Standard output.
	DestinationFile                         // A named file.
)

// String returns the destination name used in log fields.
func (d Destination) String() string {
	switch d {
	case DestinationStdout:
		return "stdout"
	case DestinationFile:
		return "file"
	default:
		return "clipboard"
	}
}

var (
	// ErrNotDirectory is returned when the traversal root is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrConflictingSinks is returned when both an output file and stdout are requested.
	ErrConflictingSinks = errors.New("--output and --stdout are mutually exclusive")
)

// Clipboard receives the combined document when no other sink is selected.
type Clipboard interface {
	Copy(text string) error
}

// Sinks bundles the process-level outputs a run may write to.
type Sinks struct {
	Stdout    io.Writer
	Clipboard Clipboard
}

// Result summarizes a completed run.
type Result struct {
	Root        string      // Canonical traversal root.
	Files       []string    // Included files, root-relative and sorted.
	Skipped     []string    // Files omitted because they could not be read.
	Destination Destination // Sink the document was written to.
	Bytes       int         // Size of the written document.
}
