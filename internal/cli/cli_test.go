package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tessro/skim/internal/clock"
	"github.com/tessro/skim/internal/config"
	"github.com/tessro/skim/internal/core"
	skimerr "github.com/tessro/skim/internal/errors"
	"github.com/tessro/skim/internal/playback"
	"github.com/tessro/skim/internal/stream"
)

func TestTextSourceResolve(t *testing.T) {
	clip := func() (string, error) { return "from clipboard", nil }

	tests := []struct {
		name    string
		src     textSource
		want    string
		wantErr error
	}{
		{
			name:    "nothing supplied",
			src:     textSource{},
			wantErr: skimerr.ErrNoInput,
		},
		{
			name: "args joined",
			src:  textSource{Args: []string{"hello", "world"}},
			want: "hello world",
		},
		{
			name: "args win over stdin",
			src:  textSource{Args: []string{"args"}, Stdin: strings.NewReader("stdin"), Piped: true},
			want: "args",
		},
		{
			name: "piped stdin",
			src:  textSource{Stdin: strings.NewReader("piped text\n"), Piped: true},
			want: "piped text\n",
		},
		{
			name: "clipboard",
			src:  textSource{Clipboard: true, readClipboard: clip},
			want: "from clipboard",
		},
		{
			name: "clipboard failure",
			src: textSource{Clipboard: true, readClipboard: func() (string, error) {
				return "", errors.New("no xclip")
			}},
			wantErr: skimerr.ErrClipboard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.src.Resolve()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseConfigValue(t *testing.T) {
	tests := []struct {
		key, value string
		want       any
		wantErr    bool
	}{
		{"reader.wpm", "450", 450, false},
		{"reader.wpm", "fast", nil, true},
		{"tui.inline", "true", true, false},
		{"tui.show_progress", "nope", nil, true},
		{"log.level", "debug", "debug", false},
		{"bogus.key", "1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			got, err := parseConfigValue(tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseConfigValue() = %v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseConfigValue() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseConfigValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseConfigRates(t *testing.T) {
	got, err := parseConfigValue("reader.rates", "250, 350,450")
	if err != nil {
		t.Fatalf("parseConfigValue() error = %v", err)
	}
	rates, ok := got.([]int)
	if !ok || len(rates) != 3 || rates[0] != 250 || rates[2] != 450 {
		t.Errorf("parseConfigValue() = %v, want [250 350 450]", got)
	}
}

func TestSetConfigValue(t *testing.T) {
	data := []byte("[reader]\nwpm = 300\n\n[log]\nlevel = \"info\"\n")

	raw, err := setConfigValue(data, "reader.wpm", "500")
	if err != nil {
		t.Fatalf("setConfigValue() error = %v", err)
	}
	reader := raw["reader"].(map[string]any)
	if reader["wpm"] != 500 {
		t.Errorf("reader.wpm = %v, want 500", reader["wpm"])
	}
	if _, ok := raw["log"]; !ok {
		t.Error("existing sections should be kept")
	}

	raw, err = setConfigValue(data, "tui.upcoming", "5")
	if err != nil {
		t.Fatalf("setConfigValue() error = %v", err)
	}
	if raw["tui"].(map[string]any)["upcoming"] != 5 {
		t.Error("new section not created")
	}
}

func TestSetConfigValueRejectsInvalid(t *testing.T) {
	data := []byte("[reader]\nwpm = 300\n")

	_, err := setConfigValue(data, "reader.wpm", "-10")
	if !errors.Is(err, skimerr.ErrInvalidConfig) {
		t.Errorf("setConfigValue() error = %v, want ErrInvalidConfig", err)
	}

	_, err = setConfigValue(data, "log.level", "loud")
	if !errors.Is(err, skimerr.ErrInvalidConfig) {
		t.Errorf("setConfigValue() error = %v, want ErrInvalidConfig", err)
	}
}

func TestComputeStats(t *testing.T) {
	text := strings.Repeat("word ", 600)
	stats := computeStats(text, []int{300, 600})

	if stats.Words != 600 {
		t.Fatalf("Words = %d, want 600", stats.Words)
	}
	if len(stats.Estimates) != 2 {
		t.Fatalf("len(Estimates) = %d, want 2", len(stats.Estimates))
	}
	if stats.Estimates[0].Seconds != 120 {
		t.Errorf("300 wpm estimate = %v s, want 120", stats.Estimates[0].Seconds)
	}
	if stats.Estimates[1].Seconds != 60 {
		t.Errorf("600 wpm estimate = %v s, want 60", stats.Estimates[1].Seconds)
	}
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	stats := computeStats(strings.Repeat("w ", 1500), []int{300})

	if err := printStats(&buf, stats); err != nil {
		t.Fatalf("printStats() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "1,500 words") {
		t.Errorf("output missing humanized count:\n%s", out)
	}
	if !strings.Contains(out, "5:00") {
		t.Errorf("output missing estimate:\n%s", out)
	}
}

func TestPrintRates(t *testing.T) {
	var buf bytes.Buffer
	if err := printRates(&buf, rateTable([]int{300, 600}, 300)); err != nil {
		t.Fatalf("printRates() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"300 wpm", "200 ms", "600 wpm", "100 ms", "●"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// syncBuffer guards a bytes.Buffer written by runPlain and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunPlainStreamsWords(t *testing.T) {
	fc := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctrl := playback.New(playback.WithClock(fc))
	defer ctrl.Close()

	var out syncBuffer
	formatter := stream.NewFormatter(stream.WithEmoji(false))

	done := make(chan error, 1)
	go func() {
		done <- runPlain(context.Background(), ctrl, "one two three", &out, formatter)
	}()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("runPlain() error = %v", err)
			}
			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			var words []string
			for _, l := range lines {
				if l == "one" || l == "two" || l == "three" {
					words = append(words, l)
				}
			}
			if strings.Join(words, " ") != "one two three" {
				t.Errorf("streamed words = %v, output:\n%s", words, out.String())
			}
			if ctrl.IsPlaying() {
				t.Error("controller still playing after finish")
			}
			return
		case <-deadline:
			t.Fatalf("runPlain did not finish, output:\n%s", out.String())
		default:
			fc.Advance(core.IntervalFor(core.DefaultRate))
			time.Sleep(time.Millisecond)
		}
	}
}

func TestRunPlainCanceled(t *testing.T) {
	fc := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctrl := playback.New(playback.WithClock(fc))
	defer ctrl.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runPlain(ctx, ctrl, "a b c", &syncBuffer{}, stream.NewFormatter())
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("runPlain() error = %v, want nil on cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runPlain did not return after cancel")
	}
}

// gatedWriter blocks every write until the gate is opened.
type gatedWriter struct {
	gate chan struct{}
	out  syncBuffer
}

func (w *gatedWriter) Write(p []byte) (int, error) {
	<-w.gate
	return w.out.Write(p)
}

func TestRunPlainBlockedOutputKeepsEveryWord(t *testing.T) {
	fc := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctrl := playback.New(playback.WithClock(fc))
	defer ctrl.Close()

	words := make([]string, 200)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}

	w := &gatedWriter{gate: make(chan struct{})}
	done := make(chan error, 1)
	go func() {
		done <- runPlain(context.Background(), ctrl, strings.Join(words, " "), w, stream.NewFormatter(stream.WithEmoji(false)))
	}()

	deadline := time.Now().Add(5 * time.Second)
	for !ctrl.IsPlaying() {
		if time.Now().After(deadline) {
			t.Fatal("reading never started")
		}
		time.Sleep(time.Millisecond)
	}

	// The whole text plays out while stdout is stuck.
	for range 250 {
		fc.Advance(core.IntervalFor(core.DefaultRate))
	}
	close(w.gate)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runPlain() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runPlain did not return after the text finished")
	}

	want := make(map[string]bool, len(words))
	for _, word := range words {
		want[word] = true
	}
	var got []string
	for _, line := range strings.Split(strings.TrimSpace(w.out.String()), "\n") {
		if want[line] {
			got = append(got, line)
		}
	}
	if strings.Join(got, " ") != strings.Join(words, " ") {
		t.Errorf("printed %d of %d words in order", len(got), len(words))
	}
}

func TestPickRateInJSONModeSuggestsWPM(t *testing.T) {
	prevCfg, prevJSON, prevPick := cfg, jsonOut, readPickRate
	t.Cleanup(func() {
		cfg, jsonOut, readPickRate = prevCfg, prevJSON, prevPick
	})

	cfg = config.Default()
	jsonOut = true
	readPickRate = true

	if newInteractive().CanInteract() {
		t.Error("CanInteract() = true in JSON mode")
	}

	_, err := resolveRate(readCmd)
	if !errors.Is(err, skimerr.ErrNotInteractive) {
		t.Fatalf("resolveRate() error = %v, want ErrNotInteractive", err)
	}
	if got := skimerr.GetSuggestion(err); !strings.Contains(got, "--wpm 300") {
		t.Errorf("GetSuggestion() = %q, want a --wpm hint", got)
	}
}
