package config

import "github.com/tessro/skim/internal/core"

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Reader: ReaderConfig{
			WPM:   core.DefaultRate,
			Rates: append([]int(nil), core.Rates...),
		},
		Stream: StreamConfig{
			Emoji: true,
		},
		TUI: TUIConfig{
			Upcoming:     3,
			ShowProgress: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Reader
	if c.Reader.WPM == 0 {
		c.Reader.WPM = d.Reader.WPM
	}
	if len(c.Reader.Rates) == 0 {
		c.Reader.Rates = d.Reader.Rates
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}
