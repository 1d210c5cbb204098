package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrEmptyText      = errors.New("no words to read")
	ErrInvalidRate    = errors.New("invalid rate")
	ErrNoInput        = errors.New("no input text")
	ErrNotInteractive = errors.New("not an interactive terminal")
	ErrClipboard      = errors.New("clipboard unavailable")
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// SkimError wraps an error with a user-friendly suggestion.
type SkimError struct {
	Err        error
	Suggestion string
}

func (e *SkimError) Error() string {
	return e.Err.Error()
}

func (e *SkimError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &SkimError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var skimErr *SkimError
	if errors.As(err, &skimErr) && skimErr.Suggestion != "" {
		return skimErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrEmptyText) || errors.Is(err, ErrNoInput) {
		return "Pass text as arguments, pipe it on stdin, or use --clipboard"
	}

	if errors.Is(err, ErrInvalidRate) || strings.Contains(errStr, "wpm") {
		return "Run 'skim rates' to see the selectable rates; any positive value works"
	}

	if errors.Is(err, ErrNotInteractive) {
		return "Use --plain to stream words without the terminal UI"
	}

	if errors.Is(err, ErrClipboard) {
		return "Install xclip, xsel or wl-clipboard, or pipe the text on stdin instead"
	}

	if errors.Is(err, ErrConfigNotFound) {
		return "Run 'skim config init' to create a configuration file"
	}

	if errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Run 'skim config show' to inspect the loaded configuration"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
