package wizard

import "testing"

func TestNeedsText(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		piped     bool
		clipboard bool
		want      bool
	}{
		{"nothing", nil, false, false, true},
		{"args", []string{"hello"}, false, false, false},
		{"stdin", nil, true, false, false},
		{"clipboard", nil, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsText(tt.args, tt.piped, tt.clipboard); got != tt.want {
				t.Errorf("NeedsText() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPromptRateDisabled(t *testing.T) {
	i := NewInteractive([]int{100, 200})
	i.SetEnabled(false)

	got, err := i.PromptRate(250)
	if err != nil {
		t.Fatalf("PromptRate() error = %v", err)
	}
	if got != 250 {
		t.Errorf("PromptRate() = %d, want the current rate back", got)
	}
}

func TestRateOptions(t *testing.T) {
	opts := RateOptions([]int{100, 300, 600}, 250)

	if len(opts) != 4 {
		t.Fatalf("len(options) = %d, want 4", len(opts))
	}
	want := []int{100, 250, 300, 600}
	for i, o := range opts {
		if o.Value != want[i] {
			t.Errorf("options[%d].Value = %d, want %d", i, o.Value, want[i])
		}
	}
	if opts[2].Key != "300 wpm  (200 ms per word)" {
		t.Errorf("options[2].Key = %q", opts[2].Key)
	}

	if got := RateOptions([]int{100, 300}, 300); len(got) != 2 {
		t.Errorf("current rate in list was duplicated: %d options", len(got))
	}
}
