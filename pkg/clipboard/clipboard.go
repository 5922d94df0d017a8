// Package clipboard copies text to the system clipboard.
//
// The native clipboard is tried first. When no clipboard utility is available
// (headless sessions, SSH) and the terminal is interactive, the text is sent as
// an OSC 52 escape sequence so the terminal emulator can set the clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	native "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// ErrUnavailable is returned when neither the native clipboard nor the
// terminal fallback can be used.
var ErrUnavailable = errors.New("clipboard is not available")

// System writes to the operating system clipboard.
type System struct {
	// Terminal receives the OSC 52 fallback sequence.
	Terminal *os.File

	logger      *zap.Logger
	unsupported func() bool
	writeNative func(string) error
	isTerminal  func(fd int) bool
}

// New returns a System clipboard that falls back to OSC 52 on stderr.
func New(logger *zap.Logger) *System {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &System{
		Terminal:    os.Stderr,
		logger:      logger,
		unsupported: func() bool { return native.Unsupported },
		writeNative: native.WriteAll,
		isTerminal:  term.IsTerminal,
	}
}

// Copy places text on the clipboard.
func (s *System) Copy(text string) error {
	if !s.unsupported() {
		err := s.writeNative(text)
		if err == nil {
			s.logger.Debug("Copied to native clipboard", zap.Int("bytes", len(text)))
			return nil
		}
		s.logger.Debug("Native clipboard failed", zap.Error(err))
		if !s.canUseTerminal() {
			return fmt.Errorf("failed to write clipboard: %w", err)
		}
	}

	if !s.canUseTerminal() {
		return ErrUnavailable
	}
	return s.writeOSC52(s.Terminal, text)
}

func (s *System) canUseTerminal() bool {
	return s.Terminal != nil && s.isTerminal(int(s.Terminal.Fd()))
}

// writeOSC52 emits the escape sequence that asks the terminal to set the clipboard.
func (s *System) writeOSC52(w io.Writer, text string) error {
	if _, err := osc52.New(text).WriteTo(w); err != nil {
		return fmt.Errorf("failed to write OSC 52 sequence: %w", err)
	}
	s.logger.Debug("Copied via OSC 52 terminal sequence", zap.Int("bytes", len(text)))
	return nil
}
