package wizard

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/tessro/skim/internal/core"
)

// RateOptions builds picker options for rates, labelled with their
// per-word interval. A current rate outside the list is offered as well.
func RateOptions(rates []int, current int) []huh.Option[int] {
	choices := slices.Clone(rates)
	if current > 0 && !slices.Contains(choices, current) {
		choices = append(choices, current)
		slices.Sort(choices)
	}

	options := make([]huh.Option[int], 0, len(choices))
	for _, r := range choices {
		label := fmt.Sprintf("%d wpm  (%d ms per word)", r, core.IntervalFor(r).Milliseconds())
		options = append(options, huh.NewOption(label, r).Selected(r == current))
	}
	return options
}

// RunRatePicker shows a select form and returns the chosen rate.
func RunRatePicker(rates []int, current int) (int, error) {
	selected := current

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Reading speed").
				Description("Words per minute").
				Options(RateOptions(rates, current)...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return current, err
	}
	return selected, nil
}
