package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tessro/skim/internal/core"
	skimerr "github.com/tessro/skim/internal/errors"
	"github.com/tessro/skim/internal/playback"
	"github.com/tessro/skim/internal/stream"
	"github.com/tessro/skim/internal/tui"
	"github.com/tessro/skim/internal/wizard"
)

var (
	readWPM       int
	readPickRate  bool
	readPlain     bool
	readClipboard bool
	readNoEmoji   bool
	readTimestamp bool
	readPosition  bool
	readFormat    string
)

var readCmd = &cobra.Command{
	Use:   "read [text...]",
	Short: "Read text one word at a time",
	Long: `Flash text one word at a time at the configured rate.

Text comes from the arguments, from stdin when it is piped, or from the
clipboard with --clipboard. Reading opens the terminal UI unless --plain is
given or stdout is not a terminal, in which case words are streamed to
stdout at the reading pace.

Examples:
  skim read "The quick brown fox"
  skim read --wpm 500 < article.txt
  pbpaste | skim read --plain --position`,
	RunE: runRead,
}

func init() {
	readCmd.Flags().IntVarP(&readWPM, "wpm", "w", 0, "reading rate in words per minute (default from config)")
	readCmd.Flags().BoolVarP(&readPickRate, "pick-rate", "p", false, "choose the rate interactively")
	readCmd.Flags().BoolVar(&readPlain, "plain", false, "stream words to stdout instead of the terminal UI")
	readCmd.Flags().BoolVar(&readClipboard, "clipboard", false, "read text from the clipboard")
	readCmd.Flags().BoolVar(&readNoEmoji, "no-emoji", false, "disable emoji in --plain output")
	readCmd.Flags().BoolVarP(&readTimestamp, "timestamp", "t", false, "show timestamps in --plain output")
	readCmd.Flags().BoolVar(&readPosition, "position", false, "show word positions in --plain output")
	readCmd.Flags().StringVarP(&readFormat, "format", "f", "", "custom format template for --plain output")

	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	text, err := newTextSource(args, readClipboard).Resolve()
	if err != nil {
		return err
	}
	if core.WordCount(text) == 0 {
		return skimerr.ErrEmptyText
	}

	wpm, err := resolveRate(cmd)
	if err != nil {
		return err
	}

	plain := readPlain || !wizard.IsTerminal()

	var console io.Writer
	if plain {
		console = os.Stderr
	}
	logger, closeLog, err := newLogger(console)
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

	if plain {
		ctx, cancel := signalContext(cmd.Context())
		defer cancel()
		return runPlain(ctx, ctrl, text, cmd.OutOrStdout(), plainFormatter())
	}

	return tui.Run(ctrl, tui.Options{
		Text:         text,
		AutoStart:    true,
		Upcoming:     cfg.TUI.Upcoming,
		ShowProgress: cfg.TUI.ShowProgress,
		Inline:       cfg.TUI.Inline,
	})
}

// resolveRate picks the starting rate from --wpm, the config and the
// interactive picker.
func resolveRate(cmd *cobra.Command) (int, error) {
	wpm := cfg.Reader.WPM
	if cmd.Flags().Changed("wpm") {
		wpm = readWPM
	}
	if _, err := core.NewRateController(wpm); err != nil {
		return 0, err
	}

	if !readPickRate {
		return wpm, nil
	}

	interactive := newInteractive()
	if !interactive.CanInteract() {
		return 0, skimerr.WithSuggestion(skimerr.ErrNotInteractive,
			"Drop --pick-rate and pass --wpm instead, e.g. --wpm "+strconv.Itoa(wpm))
	}
	picked, err := interactive.PromptRate(wpm)
	if err != nil {
		return 0, fmt.Errorf("selection cancelled: %w", err)
	}
	return picked, nil
}

// newInteractive returns the picker helper. JSON mode is for scripts, so it
// never prompts.
func newInteractive() *wizard.Interactive {
	interactive := wizard.NewInteractive(cfg.Reader.Rates)
	interactive.SetEnabled(!JSONOutput())
	return interactive
}

func plainFormatter() *stream.Formatter {
	format := cfg.Stream.Format
	if readFormat != "" {
		format = readFormat
	}
	return stream.NewFormatter(
		stream.WithEmoji(cfg.Stream.Emoji && !readNoEmoji),
		stream.WithTimestamp(cfg.Stream.Timestamp || readTimestamp),
		stream.WithPosition(cfg.Stream.Position || readPosition),
		stream.WithTemplate(format),
	)
}

// signalContext returns a context canceled on Ctrl+C or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// runPlain reads text through ctrl and prints each event to out until the
// text is finished or ctx is done.
func runPlain(ctx context.Context, ctrl *playback.Controller, text string, out io.Writer, formatter *stream.Formatter) error {
	watcher := stream.NewWatcher(ctrl)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- watcher.Start(ctx)
	}()

	if !ctrl.Start(text) {
		cancel()
		<-errCh
		return skimerr.ErrEmptyText
	}

	for {
		select {
		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			_, _ = fmt.Fprintln(out, formatter.Format(event))
			if event.Type == stream.EventFinish {
				return nil
			}

		case err := <-errCh:
			if err == context.Canceled {
				ctrl.Stop()
				return nil
			}
			return err
		}
	}
}
