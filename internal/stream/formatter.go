package stream

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// Formatter formats events for output.
type Formatter struct {
	showEmoji     bool
	showTimestamp bool
	showPosition  bool
	template      *template.Template
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithEmoji enables emoji output.
func WithEmoji(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showEmoji = enabled
	}
}

// WithTimestamp enables timestamp output.
func WithTimestamp(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showTimestamp = enabled
	}
}

// WithPosition prefixes words with their position in the text.
func WithPosition(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showPosition = enabled
	}
}

// WithTemplate sets a custom format template for word events.
func WithTemplate(tmpl string) FormatterOption {
	return func(f *Formatter) {
		if tmpl != "" {
			t, err := template.New("format").Parse(tmpl)
			if err == nil {
				f.template = t
			}
		}
	}
}

// NewFormatter creates a new formatter with the given options.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		showEmoji: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format formats an event as a string.
func (f *Formatter) Format(e Event) string {
	if f.template != nil {
		return f.formatTemplate(e)
	}
	return f.formatLine(e)
}

func (f *Formatter) formatLine(e Event) string {
	var parts []string

	if f.showTimestamp {
		parts = append(parts, e.Timestamp.Format("15:04:05.000"))
	}

	// Words are the payload; only status lines get an emoji.
	if e.Type == EventWord {
		if f.showPosition {
			current, total := e.Current.Position()
			parts = append(parts, fmt.Sprintf("[%d/%d]", current, total))
		}
		parts = append(parts, e.Current.Word)
		return strings.Join(parts, " ")
	}

	if f.showEmoji {
		parts = append(parts, eventEmoji(e.Type))
	}
	parts = append(parts, f.eventDescription(e))

	return strings.Join(parts, " ")
}

func (f *Formatter) formatTemplate(e Event) string {
	current, total := e.Current.Position()
	data := templateData{
		Type:      eventTypeName(e.Type),
		Emoji:     eventEmoji(e.Type),
		Timestamp: e.Timestamp,
		Time:      e.Timestamp.Format("15:04:05"),
		Word:      e.Current.Word,
		Position:  current,
		Total:     total,
		WPM:       e.Current.Rate,
		Playing:   e.Current.IsPlaying(),
	}

	var buf bytes.Buffer
	if err := f.template.Execute(&buf, data); err != nil {
		return f.formatLine(e)
	}
	return buf.String()
}

type templateData struct {
	Type      string
	Emoji     string
	Timestamp time.Time
	Time      string
	Word      string
	Position  int
	Total     int
	WPM       int
	Playing   bool
}

// eventDescription returns a human-readable description of the event.
func (f *Formatter) eventDescription(e Event) string {
	switch e.Type {
	case EventStart:
		return fmt.Sprintf("Reading %d words at %d wpm", e.Current.Total, e.Current.Rate)

	case EventStop:
		current, total := e.Current.Position()
		return fmt.Sprintf("Stopped at %d/%d", current, total)

	case EventResume:
		current, total := e.Current.Position()
		return fmt.Sprintf("Resumed at %d/%d", current, total)

	case EventFinish:
		return fmt.Sprintf("Finished %d words", e.Current.Total)

	case EventReset:
		return "Reset to the first word"

	case EventRateChange:
		return fmt.Sprintf("Rate: %d wpm (was %d)", e.Current.Rate, e.Previous.Rate)

	case EventWord:
		return e.Current.Word

	default:
		return "Unknown event"
	}
}

// eventEmoji returns an emoji for the event type.
func eventEmoji(t EventType) string {
	switch t {
	case EventStart:
		return "📖"
	case EventWord:
		return "▸"
	case EventStop:
		return "⏸️"
	case EventResume:
		return "▶️"
	case EventFinish:
		return "✅"
	case EventReset:
		return "⏮️"
	case EventRateChange:
		return "⏱️"
	default:
		return "❓"
	}
}

// eventTypeName returns the name of the event type.
func eventTypeName(t EventType) string {
	switch t {
	case EventStart:
		return "start"
	case EventWord:
		return "word"
	case EventStop:
		return "stop"
	case EventResume:
		return "resume"
	case EventFinish:
		return "finish"
	case EventReset:
		return "reset"
	case EventRateChange:
		return "rate_change"
	default:
		return "unknown"
	}
}

// String returns the event type name.
func (t EventType) String() string {
	return eventTypeName(t)
}
