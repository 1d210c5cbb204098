package stream

import (
	"context"
	"time"

	"github.com/tessro/skim/internal/core"
)

// EventType represents the type of reading event.
type EventType int

const (
	EventStart EventType = iota
	EventWord
	EventStop
	EventResume
	EventFinish
	EventReset
	EventRateChange
)

// Event represents a reader state change.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Previous  core.Snapshot
	Current   core.Snapshot
}

// Source is what a Watcher observes.
type Source interface {
	Snapshot() core.Snapshot
	Subscribe() (<-chan core.Snapshot, func())
}

// Watcher follows a reader's snapshots and emits events.
type Watcher struct {
	updates <-chan core.Snapshot
	cancel  func()
	prev    core.Snapshot
	now     func() time.Time
	events  chan Event
	done    chan struct{}
}

// NewWatcher creates a new state watcher. It subscribes immediately, so
// changes made between NewWatcher and Start are not missed; Start must be
// called to release the subscription.
func NewWatcher(source Source) *Watcher {
	updates, cancel := source.Subscribe()
	return &Watcher{
		updates: updates,
		cancel:  cancel,
		prev:    source.Snapshot(),
		now:     time.Now,
		events:  make(chan Event, 16),
		done:    make(chan struct{}),
	}
}

// Events returns the channel of reading events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start follows state changes until ctx is done, Stop is called or the
// source closes its subscription. Events are delivered in order and none are
// dropped, so a slow consumer holds the watcher back rather than losing words.
func (w *Watcher) Start(ctx context.Context) error {
	defer close(w.events)
	defer w.cancel()

	prev := w.prev

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case curr, ok := <-w.updates:
			if !ok {
				return nil
			}

			for _, e := range diffStates(prev, curr, w.now()) {
				select {
				case w.events <- e:
				case <-ctx.Done():
					return ctx.Err()
				case <-w.done:
					return nil
				}
			}

			prev = curr
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
}

// diffStates compares two snapshots and returns detected events.
func diffStates(prev, curr core.Snapshot, now time.Time) []Event {
	var events []Event
	add := func(t EventType) {
		events = append(events, Event{
			Type:      t,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	}

	// A new text replaces everything that came before.
	if curr.Session != prev.Session {
		add(EventStart)
		if curr.Word != "" {
			add(EventWord)
		}
		return events
	}

	if curr.Resets != prev.Resets {
		add(EventReset)
		return events
	}

	if prev.Rate != curr.Rate {
		add(EventRateChange)
	}

	switch {
	case prev.IsPlaying() && !curr.IsPlaying():
		if curr.Finished {
			add(EventFinish)
		} else {
			add(EventStop)
		}

	case !prev.IsPlaying() && curr.IsPlaying():
		add(EventResume)
		add(EventWord)

	case curr.IsPlaying() && curr.Index != prev.Index:
		add(EventWord)
	}

	return events
}
