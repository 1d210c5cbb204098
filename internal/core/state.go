package core

import (
	"encoding/json"
	"time"
)

// Status is the playback status of the reader.
type Status int

const (
	// StatusIdle is the resting state: before the first start, after a stop
	// or reset, and after the last word was shown. The index is retained.
	StatusIdle Status = iota
	StatusPlaying
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the status by name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Snapshot is a consistent view of the reader for the presentation layer.
type Snapshot struct {
	Word     string        `json:"word"`
	Index    int           `json:"index"`
	Total    int           `json:"total"`
	Status   Status        `json:"status"`
	Rate     int           `json:"wpm"`
	Interval time.Duration `json:"interval"`

	// Finished is set when playback stopped because the text ran out.
	Finished bool `json:"finished"`

	// Session increases by one every time a new text is started.
	Session uint64 `json:"session"`

	// Resets increases by one on every Reset, even one that leaves the
	// position where it was.
	Resets uint64 `json:"resets"`
}

// IsPlaying returns true if words are currently advancing.
func (s *Snapshot) IsPlaying() bool {
	return s != nil && s.Status == StatusPlaying
}

// Position returns the 1-based current position and the total word count.
func (s *Snapshot) Position() (current, total int) {
	if s == nil || s.Total == 0 {
		return 0, 0
	}
	return s.Index + 1, s.Total
}

// ProgressPercent returns reading progress as a percentage (0-100).
func (s *Snapshot) ProgressPercent() float64 {
	current, total := s.Position()
	if total == 0 {
		return 0
	}
	return float64(current) / float64(total) * 100
}

// Remaining returns the time left to show the rest of the words at the
// snapshot's interval.
func (s *Snapshot) Remaining() time.Duration {
	current, total := s.Position()
	if total == 0 {
		return 0
	}
	return time.Duration(total-current) * s.Interval
}
