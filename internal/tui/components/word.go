package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/skim/internal/core"
	"github.com/tessro/skim/internal/tui/styles"
)

// WordView displays the current word with its position and progress
type WordView struct {
	ShowProgress bool
}

// NewWordView creates a new WordView component
func NewWordView(showProgress bool) *WordView {
	return &WordView{ShowProgress: showProgress}
}

// Render renders the word centered in a width x height area
func (w *WordView) Render(snap core.Snapshot, upcoming []string, width, height int) string {
	var content string
	if snap.Word == "" {
		content = styles.Muted.Render("Nothing to read")
	} else {
		content = w.renderWord(snap, upcoming, width-4)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WordView) renderWord(snap core.Snapshot, upcoming []string, width int) string {
	lines := []string{
		styles.Word.Render(snap.Word),
		"",
	}

	current, total := snap.Position()
	position := fmt.Sprintf("%d / %d", current, total)
	lines = append(lines, styles.Subtitle.Render(position))

	if w.ShowProgress {
		barWidth := width / 2
		if barWidth < 10 {
			barWidth = 10
		}
		remaining := FormatDuration(snap.Remaining())
		lines = append(lines, "",
			styles.ProgressBar(snap.ProgressPercent(), barWidth)+" "+styles.Dim.Render(remaining))
	}

	if len(upcoming) > 0 {
		lines = append(lines, "", styles.Dim.Render(strings.Join(upcoming, " ")))
	}

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// StatusLine renders the playback indicator and rate
func StatusLine(snap core.Snapshot) string {
	icon := styles.StatusIcon(snap.IsPlaying(), snap.Finished)

	var state string
	switch {
	case snap.IsPlaying():
		state = "Reading"
	case snap.Finished:
		state = "Finished"
	case snap.Total > 0:
		state = "Stopped"
	default:
		state = "Idle"
	}

	return fmt.Sprintf("%s %s  %s", icon, state,
		styles.Highlight.Render(fmt.Sprintf("%d wpm", snap.Rate)))
}

// FormatDuration formats d as m:ss, or h:mm:ss from an hour up. Negative
// durations print as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
