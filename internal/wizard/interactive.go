package wizard

import (
	"os"

	"golang.org/x/term"
)

// Interactive provides interactive fallback functionality.
type Interactive struct {
	enabled bool
	rates   []int
}

// NewInteractive creates a new interactive handler offering rates.
func NewInteractive(rates []int) *Interactive {
	return &Interactive{
		enabled: true,
		rates:   rates,
	}
}

// SetEnabled enables or disables interactive mode.
func (i *Interactive) SetEnabled(enabled bool) {
	i.enabled = enabled
}

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// CanInteract returns true if interactive mode is available.
func (i *Interactive) CanInteract() bool {
	return i.enabled && IsTerminal()
}

// PromptRate launches the rate picker if interactive mode is available.
// It returns current unchanged when the picker cannot run.
func (i *Interactive) PromptRate(current int) (int, error) {
	if !i.CanInteract() || len(i.rates) == 0 {
		return current, nil
	}
	return RunRatePicker(i.rates, current)
}

// NeedsText returns true if no text was supplied by any source.
func NeedsText(args []string, stdinPiped, clipboard bool) bool {
	return len(args) == 0 && !stdinPiped && !clipboard
}
