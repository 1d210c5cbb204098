package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	skimerr "github.com/tessro/skim/internal/errors"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.skimrc, $XDG_CONFIG_HOME/skim/config.toml, ~/.config/skim/config.toml
func Load() (*Config, error) {
	cfg := Default()

	path := FindConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", skimerr.ErrConfigNotFound, path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultPath returns the path new config files are written to.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".skimrc"
	}
	return filepath.Join(home, ".skimrc")
}

// FindConfigFile returns the first existing config file path.
func FindConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".skimrc"),
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "skim", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Reader
	if v := os.Getenv("SKIM_READER_WPM"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Reader.WPM = i
		}
	}

	// Stream
	if v := os.Getenv("SKIM_STREAM_EMOJI"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Stream.Emoji = b
		}
	}
	if v := os.Getenv("SKIM_STREAM_FORMAT"); v != "" {
		cfg.Stream.Format = v
	}

	// TUI
	if v := os.Getenv("SKIM_TUI_INLINE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.TUI.Inline = b
		}
	}
	if v := os.Getenv("SKIM_TUI_UPCOMING"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.TUI.Upcoming = i
		}
	}

	// Log
	if v := os.Getenv("SKIM_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SKIM_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("SKIM_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// Write encodes cfg as TOML to path, creating parent directories.
func Write(path string, cfg any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	_, _ = fmt.Fprintln(f, "# Skim Configuration")
	_, _ = fmt.Fprintln(f, "# https://github.com/tessro/skim")
	_, _ = fmt.Fprintln(f, "")

	encoder := toml.NewEncoder(f)
	encoder.Indent = "  "
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
