package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/tessro/skim/internal/config"
	skimerr "github.com/tessro/skim/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for viewing and editing skim configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration values.`,
	RunE:  runConfigShow,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration file",
	Long:  `Open the configuration file in your default editor.`,
	RunE:  runConfigEdit,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  `Create a new configuration file with default values.`,
	RunE:  runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Supported keys:
  reader.wpm          Starting rate in words per minute
  reader.rates        Selectable rates, comma separated (e.g. 100,200,300)
  stream.emoji        Emoji in --plain output (true/false)
  stream.timestamp    Timestamps in --plain output (true/false)
  stream.position     Word positions in --plain output (true/false)
  stream.format       Template for --plain output
  tui.inline          Run the UI without the alternate screen (true/false)
  tui.upcoming        Number of upcoming words to preview
  tui.show_progress   Show the progress bar (true/false)
  log.level           debug, info, warn or error
  log.file            Log file path
  log.format          text or json

Examples:
  skim config set reader.wpm 450
  skim config set reader.rates 250,350,450`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configSetRateCmd = &cobra.Command{
	Use:   "set-rate",
	Short: "Interactively select the default rate",
	Long:  `Shows a picker to select the starting reading rate.`,
	RunE:  runConfigSetRate,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetRateCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(cfg)
	}

	// Pretty print as TOML
	encoder := toml.NewEncoder(os.Stdout)
	encoder.Indent = "  "
	return encoder.Encode(cfg)
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", skimerr.ErrConfigNotFound, configPath)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"nano", "vim", "vi", "notepad"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Set EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	return editorCmd.Run()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists at %s", configPath)
	}

	if err := config.Write(configPath, config.Default()); err != nil {
		return err
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{
			"status": "created",
			"path":   configPath,
		})
	} else {
		fmt.Printf("Created config file: %s\n", configPath)
		fmt.Println("\nNext steps:")
		fmt.Println("  1. Pick your starting rate with 'skim config set-rate'")
		fmt.Println("  2. Run 'skim read' with some text")
	}

	return nil
}

func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if path := config.FindConfigFile(); path != "" {
		return path
	}
	return config.DefaultPath()
}

// parseConfigValue converts value to the type stored under key.
func parseConfigValue(key, value string) (any, error) {
	switch key {
	case "reader.wpm", "tui.upcoming":
		i, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("value must be an integer for %s", key)
		}
		return i, nil

	case "reader.rates":
		var rates []int
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			i, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("rates must be comma separated integers: %q", part)
			}
			rates = append(rates, i)
		}
		return rates, nil

	case "stream.emoji", "stream.timestamp", "stream.position", "tui.inline", "tui.show_progress":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("value must be true or false for %s", key)
		}
		return b, nil

	case "stream.format", "log.level", "log.file", "log.format":
		return value, nil
	}

	return nil, fmt.Errorf("unknown config key %q. Run 'skim config set --help' for supported keys", key)
}

// setConfigValue applies key=value to the TOML document in data and returns
// the updated document, rejecting values that would not validate.
func setConfigValue(data []byte, key, value string) (map[string]any, error) {
	typedValue, err := parseConfigValue(key, value)
	if err != nil {
		return nil, err
	}

	rawConfig := make(map[string]any)
	if _, err := toml.Decode(string(data), &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	section, field, _ := strings.Cut(key, ".")

	sectionMap, ok := rawConfig[section].(map[string]any)
	if !ok {
		sectionMap = make(map[string]any)
		rawConfig[section] = sectionMap
	}
	sectionMap[field] = typedValue

	encoded, err := toml.Marshal(rawConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	check := config.Default()
	if _, err := toml.Decode(string(encoded), check); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	check.ApplyDefaults()
	if err := check.Validate(); err != nil {
		return nil, err
	}

	return rawConfig, nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	configPath := getConfigPath()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", skimerr.ErrConfigNotFound, configPath)
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	rawConfig, err := setConfigValue(data, key, value)
	if err != nil {
		return err
	}

	if err := config.Write(configPath, rawConfig); err != nil {
		return err
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{
			"status": "updated",
			"key":    key,
			"value":  value,
		})
	} else {
		fmt.Printf("Set %s = %s\n", key, value)
	}

	return nil
}

func runConfigSetRate(cmd *cobra.Command, args []string) error {
	interactive := newInteractive()
	if !interactive.CanInteract() {
		return skimerr.WithSuggestion(skimerr.ErrNotInteractive,
			"Run 'skim config set reader.wpm <rate>' instead")
	}

	wpm, err := interactive.PromptRate(cfg.Reader.WPM)
	if err != nil {
		return fmt.Errorf("selection cancelled: %w", err)
	}

	return runConfigSet(cmd, []string{"reader.wpm", strconv.Itoa(wpm)})
}
