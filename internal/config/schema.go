package config

// Config is the root configuration structure.
type Config struct {
	Reader ReaderConfig `toml:"reader" json:"reader"`
	Stream StreamConfig `toml:"stream" json:"stream"`
	TUI    TUIConfig    `toml:"tui" json:"tui"`
	Log    LogConfig    `toml:"log" json:"log"`
}

// ReaderConfig holds reading rate settings.
type ReaderConfig struct {
	WPM   int   `toml:"wpm" json:"wpm"`
	Rates []int `toml:"rates" json:"rates"`
}

// StreamConfig holds settings for plain streaming output.
type StreamConfig struct {
	Emoji     bool   `toml:"emoji" json:"emoji"`
	Timestamp bool   `toml:"timestamp" json:"timestamp"`
	Position  bool   `toml:"position" json:"position"`
	Format    string `toml:"format" json:"format"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Inline       bool `toml:"inline" json:"inline"`
	Upcoming     int  `toml:"upcoming" json:"upcoming"`
	ShowProgress bool `toml:"show_progress" json:"show_progress"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level" json:"level"`
	File   string `toml:"file" json:"file"`
	Format string `toml:"format" json:"format"`
}
