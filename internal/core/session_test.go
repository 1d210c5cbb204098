package core

import (
	"slices"
	"testing"
	"time"
)

func TestSessionCurrent(t *testing.T) {
	s := &Session{Tokens: []string{"a", "b", "c"}, Index: 1}

	if got := s.Current(); got != "b" {
		t.Errorf("Current() = %q, want %q", got, "b")
	}

	s.Index = 3
	if got := s.Current(); got != "" {
		t.Errorf("Current() out of range = %q, want empty", got)
	}

	var empty *Session
	if got := empty.Current(); got != "" {
		t.Errorf("nil Current() = %q, want empty", got)
	}
}

func TestSessionUpcoming(t *testing.T) {
	s := &Session{Tokens: []string{"a", "b", "c", "d"}, Index: 0}

	if got := s.Upcoming(2); !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("Upcoming(2) = %q", got)
	}
	if got := s.Upcoming(10); !slices.Equal(got, []string{"b", "c", "d"}) {
		t.Errorf("Upcoming(10) = %q", got)
	}

	s.Index = 3
	if got := s.Upcoming(2); got != nil {
		t.Errorf("Upcoming at last word = %q, want nil", got)
	}
}

func TestSessionPosition(t *testing.T) {
	s := &Session{Tokens: []string{"a", "b", "c"}, Index: 2}

	current, total := s.Position()
	if current != 3 || total != 3 {
		t.Errorf("Position() = (%d, %d), want (3, 3)", current, total)
	}
	if !s.AtEnd() {
		t.Error("AtEnd() = false at the last word")
	}

	empty := &Session{}
	current, total = empty.Position()
	if current != 0 || total != 0 {
		t.Errorf("empty Position() = (%d, %d), want (0, 0)", current, total)
	}
	if empty.AtEnd() {
		t.Error("AtEnd() = true for an empty session")
	}
}

func TestSnapshotProgress(t *testing.T) {
	s := &Snapshot{Index: 1, Total: 4, Interval: 200 * time.Millisecond, Status: StatusPlaying}

	if !s.IsPlaying() {
		t.Error("IsPlaying() = false")
	}
	if got := s.ProgressPercent(); got != 50 {
		t.Errorf("ProgressPercent() = %v, want 50", got)
	}
	if got := s.Remaining(); got != 400*time.Millisecond {
		t.Errorf("Remaining() = %v, want 400ms", got)
	}

	idle := &Snapshot{}
	if idle.ProgressPercent() != 0 || idle.Remaining() != 0 {
		t.Error("empty snapshot should report no progress")
	}
}

func TestStatusString(t *testing.T) {
	if StatusIdle.String() != "idle" || StatusPlaying.String() != "playing" {
		t.Errorf("unexpected status names %q, %q", StatusIdle, StatusPlaying)
	}
	if Status(9).String() != "unknown" {
		t.Errorf("Status(9) = %q", Status(9))
	}
}
