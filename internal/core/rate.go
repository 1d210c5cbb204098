package core

import (
	"fmt"
	"slices"
	"time"

	skimerr "github.com/tessro/skim/internal/errors"
)

// DefaultRate is the reading rate in words per minute used when none is set.
const DefaultRate = 300

// Rates are the selectable reading rates in words per minute.
var Rates = []int{100, 200, 300, 400, 500, 600, 700}

// RateController holds the current reading rate. It is not safe for
// concurrent use; the playback controller guards it with its own lock.
type RateController struct {
	wpm     int
	choices []int
}

// NewRateController creates a controller at the given rate.
func NewRateController(wpm int) (*RateController, error) {
	r := &RateController{
		wpm:     DefaultRate,
		choices: Rates,
	}
	if err := r.SetRate(wpm); err != nil {
		return nil, err
	}
	return r, nil
}

// SetRate stores wpm. Any positive value is accepted, whether or not it is
// one of the selectable choices. Non-positive values are rejected and the
// current rate is kept.
func (r *RateController) SetRate(wpm int) error {
	if wpm <= 0 {
		return fmt.Errorf("%w: %d wpm must be positive", skimerr.ErrInvalidRate, wpm)
	}
	r.wpm = wpm
	return nil
}

// Rate returns the current rate in words per minute.
func (r *RateController) Rate() int {
	return r.wpm
}

// Interval returns the time each word stays on screen.
func (r *RateController) Interval() time.Duration {
	return IntervalFor(r.wpm)
}

// IntervalMs returns Interval in whole milliseconds.
func (r *RateController) IntervalMs() int64 {
	return 60000 / int64(r.wpm)
}

// Choices returns the selectable rates in ascending order.
func (r *RateController) Choices() []int {
	return r.choices
}

// SetChoices replaces the selectable rates. The list must be non-empty and
// hold only positive values; it is stored sorted and without duplicates.
func (r *RateController) SetChoices(choices []int) error {
	if len(choices) == 0 {
		return fmt.Errorf("%w: no selectable rates", skimerr.ErrInvalidRate)
	}
	for _, c := range choices {
		if c <= 0 {
			return fmt.Errorf("%w: %d wpm must be positive", skimerr.ErrInvalidRate, c)
		}
	}
	sorted := slices.Clone(choices)
	slices.Sort(sorted)
	r.choices = slices.Compact(sorted)
	return nil
}

// Next selects the smallest choice above the current rate. It returns false
// if the rate is already at or above the fastest choice.
func (r *RateController) Next() bool {
	for _, c := range r.choices {
		if c > r.wpm {
			r.wpm = c
			return true
		}
	}
	return false
}

// Prev selects the largest choice below the current rate. It returns false
// if the rate is already at or below the slowest choice.
func (r *RateController) Prev() bool {
	for i := len(r.choices) - 1; i >= 0; i-- {
		if r.choices[i] < r.wpm {
			r.wpm = r.choices[i]
			return true
		}
	}
	return false
}

// Estimate returns how long it takes to show words words at the current rate.
func (r *RateController) Estimate(words int) time.Duration {
	if words <= 0 {
		return 0
	}
	return time.Duration(words) * r.Interval()
}

// IntervalFor returns the per-word interval for wpm, or 0 if wpm is not
// positive.
func IntervalFor(wpm int) time.Duration {
	if wpm <= 0 {
		return 0
	}
	return time.Minute / time.Duration(wpm)
}
