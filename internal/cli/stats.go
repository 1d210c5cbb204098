package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tessro/skim/internal/core"
	skimerr "github.com/tessro/skim/internal/errors"
	"github.com/tessro/skim/internal/tui/components"
)

var statsClipboard bool

var statsCmd = &cobra.Command{
	Use:   "stats [text...]",
	Short: "Count words and estimate reading time",
	Long: `Count the words in a text and estimate how long it takes to read at
each selectable rate. Text is taken from the same places as 'skim read'.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsClipboard, "clipboard", false, "read text from the clipboard")
	rootCmd.AddCommand(statsCmd)
}

type textStats struct {
	Words     int            `json:"words"`
	Estimates []rateEstimate `json:"estimates"`
}

type rateEstimate struct {
	WPM     int     `json:"wpm"`
	Seconds float64 `json:"seconds"`
}

func computeStats(text string, rates []int) textStats {
	words := core.WordCount(text)
	stats := textStats{Words: words}
	for _, wpm := range rates {
		stats.Estimates = append(stats.Estimates, rateEstimate{
			WPM:     wpm,
			Seconds: (core.IntervalFor(wpm) * time.Duration(words)).Seconds(),
		})
	}
	return stats
}

func runStats(cmd *cobra.Command, args []string) error {
	text, err := newTextSource(args, statsClipboard).Resolve()
	if err != nil {
		return err
	}

	stats := computeStats(text, cfg.Reader.Rates)
	if stats.Words == 0 {
		return skimerr.ErrEmptyText
	}
	return printStats(os.Stdout, stats)
}

func printStats(out io.Writer, stats textStats) error {
	if JSONOutput() {
		return writeJSON(out, stats)
	}

	noun := "words"
	if stats.Words == 1 {
		noun = "word"
	}
	_, _ = fmt.Fprintf(out, "%s %s\n\n", humanize.Comma(int64(stats.Words)), noun)

	table := NewTableWriter(out, "RATE", "TIME")
	for _, e := range stats.Estimates {
		table.Row(fmt.Sprintf("%d wpm", e.WPM), components.FormatDuration(time.Duration(e.Seconds * float64(time.Second))))
	}
	table.Flush()
	return nil
}
