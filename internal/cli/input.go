package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	skimerr "github.com/tessro/skim/internal/errors"
	"github.com/tessro/skim/internal/wizard"
)

// textSource describes where a command may take its text from.
type textSource struct {
	Args      []string
	Stdin     io.Reader
	Piped     bool
	Clipboard bool

	// readClipboard is swapped out in tests.
	readClipboard func() (string, error)
}

// stdinPiped reports whether stdin is redirected from a file or pipe.
func stdinPiped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// newTextSource builds a source from command arguments and the process stdin.
func newTextSource(args []string, useClipboard bool) textSource {
	return textSource{
		Args:          args,
		Stdin:         os.Stdin,
		Piped:         stdinPiped(),
		Clipboard:     useClipboard,
		readClipboard: clipboard.ReadAll,
	}
}

// Resolve returns the text to read. Arguments win over the clipboard, which
// wins over piped stdin.
func (s textSource) Resolve() (string, error) {
	if wizard.NeedsText(s.Args, s.Piped, s.Clipboard) {
		return "", skimerr.ErrNoInput
	}

	switch {
	case len(s.Args) > 0:
		return strings.Join(s.Args, " "), nil

	case s.Clipboard:
		read := s.readClipboard
		if read == nil || clipboard.Unsupported {
			return "", skimerr.ErrClipboard
		}
		text, err := read()
		if err != nil {
			return "", fmt.Errorf("%w: %w", skimerr.ErrClipboard, err)
		}
		return text, nil

	default:
		data, err := io.ReadAll(s.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
}
