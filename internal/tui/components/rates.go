package components

import (
	"strconv"
	"strings"

	"github.com/tessro/skim/internal/tui/styles"
)

// RatePicker displays the selectable reading rates in a row
type RatePicker struct{}

// NewRatePicker creates a new RatePicker component
func NewRatePicker() *RatePicker {
	return &RatePicker{}
}

// Render renders the rates, marking the current one
func (r *RatePicker) Render(rates []int, current int, focused bool) string {
	var b strings.Builder
	b.WriteString(styles.PanelTitle("WPM", focused))

	custom := true
	for _, rate := range rates {
		label := strconv.Itoa(rate)
		if rate == current {
			custom = false
			b.WriteString(styles.Selected.Render(label))
		} else {
			b.WriteString(styles.Unselected.Render(label))
		}
	}

	// A rate set outside the menu still shows up
	if custom && current > 0 {
		b.WriteString(styles.Selected.Render(strconv.Itoa(current) + "*"))
	}

	return b.String()
}
