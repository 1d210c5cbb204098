package config

import (
	"errors"
	"fmt"
	"text/template"

	skimerr "github.com/tessro/skim/internal/errors"
)

const maxUpcoming = 20

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Reader.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("reader: %w", err))
	}
	if err := c.Stream.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("stream: %w", err))
	}
	if err := c.TUI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tui: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", skimerr.ErrInvalidConfig, errors.Join(errs...))
}

// Validate checks ReaderConfig for errors.
func (c *ReaderConfig) Validate() error {
	if c.WPM <= 0 {
		return fmt.Errorf("wpm must be positive, got %d", c.WPM)
	}
	for _, r := range c.Rates {
		if r <= 0 {
			return fmt.Errorf("rates must be positive, got %d", r)
		}
	}
	return nil
}

// Validate checks StreamConfig for errors.
func (c *StreamConfig) Validate() error {
	if c.Format != "" {
		if _, err := template.New("format").Parse(c.Format); err != nil {
			return fmt.Errorf("invalid format template: %w", err)
		}
	}
	return nil
}

// Validate checks TUIConfig for errors.
func (c *TUIConfig) Validate() error {
	if c.Upcoming < 0 || c.Upcoming > maxUpcoming {
		return fmt.Errorf("upcoming must be between 0 and %d", maxUpcoming)
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	switch c.Format {
	case "", "text", "json":
		// valid
	default:
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Format)
	}
	return nil
}
