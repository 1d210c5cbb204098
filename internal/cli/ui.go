package cli

import (
	"github.com/spf13/cobra"
	skimerr "github.com/tessro/skim/internal/errors"
	"github.com/tessro/skim/internal/playback"
	"github.com/tessro/skim/internal/tui"
	"github.com/tessro/skim/internal/wizard"
)

var uiWPM int

var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui"},
	Short:   "Launch the interactive reader",
	Long: `Launch the terminal reader with an empty editor.

Paste or type text, pick a rate and press ctrl+s to start.

Keyboard shortcuts:
  ctrl+s       Start reading
  Tab          Switch between text and rates
  Space        Stop/resume
  r            Reset to the first word
  +/-          Faster/slower
  1-7          Pick a rate
  Esc          Back to the editor
  ?            Help
  q, Ctrl+C    Quit`,
	RunE: runUI,
}

func init() {
	uiCmd.Flags().IntVarP(&uiWPM, "wpm", "w", 0, "reading rate in words per minute (default from config)")
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	if !wizard.IsTerminal() {
		return skimerr.WithSuggestion(skimerr.ErrNotInteractive,
			"Use 'skim read --plain' to stream words without the terminal UI")
	}

	wpm := cfg.Reader.WPM
	if cmd.Flags().Changed("wpm") {
		wpm = uiWPM
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	ctrl := playback.New(
		playback.WithLogger(logger),
		playback.WithChoices(cfg.Reader.Rates),
		playback.WithRate(wpm),
	)
	defer ctrl.Close()

	return tui.Run(ctrl, tui.Options{
		Upcoming:     cfg.TUI.Upcoming,
		ShowProgress: cfg.TUI.ShowProgress,
		Inline:       cfg.TUI.Inline,
	})
}
