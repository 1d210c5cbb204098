package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tessro/skim/internal/core"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "List selectable reading rates",
	Long:  `Show the rates offered by the rate picker and the time each word is shown.`,
	RunE:  runRates,
}

func init() {
	rootCmd.AddCommand(ratesCmd)
}

type rateInfo struct {
	WPM        int   `json:"wpm"`
	IntervalMs int64 `json:"interval_ms"`
	Current    bool  `json:"current"`
}

func rateTable(choices []int, current int) []rateInfo {
	rates := make([]rateInfo, 0, len(choices))
	for _, wpm := range choices {
		rates = append(rates, rateInfo{
			WPM:        wpm,
			IntervalMs: core.IntervalFor(wpm).Milliseconds(),
			Current:    wpm == current,
		})
	}
	return rates
}

func runRates(cmd *cobra.Command, args []string) error {
	return printRates(os.Stdout, rateTable(cfg.Reader.Rates, cfg.Reader.WPM))
}

func printRates(out io.Writer, rates []rateInfo) error {
	if JSONOutput() {
		return writeJSON(out, rates)
	}

	table := NewTableWriter(out, "", "RATE", "PER WORD")
	for i, r := range rates {
		marker := " "
		if r.Current {
			marker = "●"
		}
		table.Row(marker, fmt.Sprintf("%d. %d wpm", i+1, r.WPM), fmt.Sprintf("%d ms", r.IntervalMs))
	}
	table.Flush()
	return nil
}
