package playback

import (
	"sync"
	"time"

	"github.com/tessro/skim/internal/clock"
)

// Scheduler owns the single pending wake-up of a playback session.
//
// A Scheduler has no lock of its own. Schedule, Cancel and Pending must be
// called with the locker given to NewScheduler held, and every fire takes
// that locker before touching state. Each arming carries a generation number;
// a fire whose generation is no longer current is dropped, so once Cancel
// returns no fire from an earlier arming reaches onFire, even one already in
// flight on another goroutine.
type Scheduler struct {
	clock clock.Clock
	mu    sync.Locker
	timer clock.Timer
	gen   uint64
}

// NewScheduler creates a scheduler that serializes fires through mu.
func NewScheduler(c clock.Clock, mu sync.Locker) *Scheduler {
	if c == nil {
		c = clock.System
	}
	return &Scheduler{
		clock: c,
		mu:    mu,
	}
}

// Schedule cancels any pending wake-up and arms a new one after interval().
// When it fires, onFire runs; if it returns true and did not cancel the
// scheduler, interval() is read again and the next wake-up is armed.
func (s *Scheduler) Schedule(interval func() time.Duration, onFire func() bool) {
	s.Cancel()
	s.arm(interval, onFire)
}

func (s *Scheduler) arm(interval func() time.Duration, onFire func() bool) {
	s.gen++
	gen := s.gen

	s.timer = s.clock.AfterFunc(interval(), func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if gen != s.gen {
			return
		}
		s.timer = nil

		if onFire() && gen == s.gen {
			s.arm(interval, onFire)
		}
	})
}

// Cancel stops the pending wake-up, if any. It is safe to call repeatedly.
func (s *Scheduler) Cancel() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Pending reports whether a wake-up is armed.
func (s *Scheduler) Pending() bool {
	return s.timer != nil
}
