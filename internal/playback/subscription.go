package playback

import (
	"sync"

	"github.com/tessro/skim/internal/core"
)

// subscription delivers snapshots to one subscriber in publish order.
// Publishing never blocks and never drops: snapshots queue until read.
type subscription struct {
	mu      sync.Mutex
	queue   []core.Snapshot
	closing bool

	wake chan struct{}
	out  chan core.Snapshot
	done chan struct{}
}

func newSubscription() *subscription {
	s := &subscription{
		wake: make(chan struct{}, 1),
		out:  make(chan core.Snapshot),
		done: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *subscription) push(snap core.Snapshot) {
	s.mu.Lock()
	s.queue = append(s.queue, snap)
	s.mu.Unlock()
	s.signal()
}

// finish delivers what is queued, then closes the channel.
func (s *subscription) finish() {
	s.mu.Lock()
	s.closing = true
	s.mu.Unlock()
	s.signal()
}

// cancel discards what is queued and closes the channel. Call at most once.
func (s *subscription) cancel() {
	close(s.done)
}

func (s *subscription) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscription) run() {
	defer close(s.out)

	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			closing := s.closing
			s.mu.Unlock()
			if closing {
				return
			}
			select {
			case <-s.wake:
				continue
			case <-s.done:
				return
			}
		}
		snap := s.queue[0]
		s.queue[0] = core.Snapshot{}
		s.queue = s.queue[1:]
		s.mu.Unlock()

		select {
		case s.out <- snap:
		case <-s.done:
			return
		}
	}
}
