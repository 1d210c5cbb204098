package core

import (
	"errors"
	"slices"
	"testing"
	"time"

	skimerr "github.com/tessro/skim/internal/errors"
)

func TestRateControllerDefaults(t *testing.T) {
	r, err := NewRateController(DefaultRate)
	if err != nil {
		t.Fatalf("NewRateController() error = %v", err)
	}
	if r.Rate() != 300 {
		t.Errorf("Rate() = %d, want 300", r.Rate())
	}
	if !slices.Equal(r.Choices(), []int{100, 200, 300, 400, 500, 600, 700}) {
		t.Errorf("Choices() = %v", r.Choices())
	}
}

func TestRateControllerInterval(t *testing.T) {
	tests := []struct {
		wpm    int
		wantMs int64
		want   time.Duration
	}{
		{300, 200, 200 * time.Millisecond},
		{600, 100, 100 * time.Millisecond},
		{100, 600, 600 * time.Millisecond},
		{60, 1000, time.Second},
		{1000, 60, 60 * time.Millisecond},
	}

	for _, tt := range tests {
		r, err := NewRateController(tt.wpm)
		if err != nil {
			t.Fatalf("NewRateController(%d) error = %v", tt.wpm, err)
		}
		if got := r.IntervalMs(); got != tt.wantMs {
			t.Errorf("IntervalMs() at %d wpm = %d, want %d", tt.wpm, got, tt.wantMs)
		}
		if got := r.Interval(); got != tt.want {
			t.Errorf("Interval() at %d wpm = %v, want %v", tt.wpm, got, tt.want)
		}
	}
}

func TestRateControllerAcceptsAnyPositive(t *testing.T) {
	r, _ := NewRateController(DefaultRate)

	if err := r.SetRate(250); err != nil {
		t.Fatalf("SetRate(250) error = %v", err)
	}
	if r.Rate() != 250 {
		t.Errorf("Rate() = %d, want 250", r.Rate())
	}
}

func TestRateControllerRejectsNonPositive(t *testing.T) {
	r, _ := NewRateController(400)

	for _, wpm := range []int{0, -100} {
		err := r.SetRate(wpm)
		if !errors.Is(err, skimerr.ErrInvalidRate) {
			t.Errorf("SetRate(%d) error = %v, want ErrInvalidRate", wpm, err)
		}
		if r.Rate() != 400 {
			t.Errorf("Rate() after SetRate(%d) = %d, want unchanged 400", wpm, r.Rate())
		}
	}

	if _, err := NewRateController(0); err == nil {
		t.Error("NewRateController(0) should fail")
	}
}

func TestRateControllerStepping(t *testing.T) {
	r, _ := NewRateController(300)

	if !r.Next() || r.Rate() != 400 {
		t.Errorf("Next() from 300 = %d, want 400", r.Rate())
	}
	if !r.Prev() || !r.Prev() || r.Rate() != 200 {
		t.Errorf("Prev() twice from 400 = %d, want 200", r.Rate())
	}

	_ = r.SetRate(250)
	if !r.Next() || r.Rate() != 300 {
		t.Errorf("Next() from 250 = %d, want 300", r.Rate())
	}

	_ = r.SetRate(700)
	if r.Next() {
		t.Error("Next() at the fastest choice should report false")
	}
	_ = r.SetRate(100)
	if r.Prev() {
		t.Error("Prev() at the slowest choice should report false")
	}
}

func TestRateControllerSetChoices(t *testing.T) {
	r, _ := NewRateController(300)

	if err := r.SetChoices([]int{450, 150, 150, 900}); err != nil {
		t.Fatalf("SetChoices() error = %v", err)
	}
	if !slices.Equal(r.Choices(), []int{150, 450, 900}) {
		t.Errorf("Choices() = %v, want sorted and unique", r.Choices())
	}
	if err := r.SetChoices(nil); err == nil {
		t.Error("SetChoices(nil) should fail")
	}
	if err := r.SetChoices([]int{100, -1}); err == nil {
		t.Error("SetChoices with a negative rate should fail")
	}
}

func TestRateControllerEstimate(t *testing.T) {
	r, _ := NewRateController(300)

	if got := r.Estimate(300); got != time.Minute {
		t.Errorf("Estimate(300) = %v, want 1m", got)
	}
	if got := r.Estimate(0); got != 0 {
		t.Errorf("Estimate(0) = %v, want 0", got)
	}
}
