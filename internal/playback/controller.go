// Package playback implements the RSVP reading engine: a state machine over
// a tokenized text, paced by a rate-driven scheduler.
package playback

import (
	"log/slog"
	"sync"

	"github.com/tessro/skim/internal/clock"
	"github.com/tessro/skim/internal/core"
)

// Controller is the playback state machine. All operations, including timer
// fires, are serialized by one mutex, so it is safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	rate    *core.RateController
	sched   *Scheduler
	session core.Session
	status  core.Status
	logger  *slog.Logger

	finished  bool
	sessionID uint64
	resets    uint64
	closed    bool

	subs   map[int]*subscription
	nextID int
}

var _ core.Reader = (*Controller)(nil)

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock driving the scheduler.
func WithClock(c clock.Clock) Option {
	return func(ctrl *Controller) {
		ctrl.sched = NewScheduler(c, &ctrl.mu)
	}
}

// WithLogger sets the logger for lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(ctrl *Controller) {
		if l != nil {
			ctrl.logger = l
		}
	}
}

// WithRate sets the initial rate in words per minute. Non-positive values
// leave the default in place.
func WithRate(wpm int) Option {
	return func(ctrl *Controller) {
		if err := ctrl.rate.SetRate(wpm); err != nil {
			ctrl.logger.Warn("ignoring initial rate", "wpm", wpm, "error", err)
		}
	}
}

// WithChoices sets the selectable rates used by StepRate.
func WithChoices(choices []int) Option {
	return func(ctrl *Controller) {
		if err := ctrl.rate.SetChoices(choices); err != nil {
			ctrl.logger.Warn("ignoring rate choices", "choices", choices, "error", err)
		}
	}
}

// New creates an idle controller.
func New(opts ...Option) *Controller {
	rate, _ := core.NewRateController(core.DefaultRate)
	c := &Controller{
		rate:   rate,
		logger: slog.Default(),
		subs:   make(map[int]*subscription),
	}
	c.sched = NewScheduler(clock.System, &c.mu)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start tokenizes text and begins a fresh session from its first word,
// replacing any session in progress. Text without words leaves the state
// untouched and returns false.
func (c *Controller) Start(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	tokens := core.Tokenize(text)
	if len(tokens) == 0 {
		c.logger.Debug("start ignored, no words")
		return false
	}

	c.sessionID++
	c.session = core.Session{Tokens: tokens}
	c.finished = false
	c.play()

	c.logger.Debug("playback started",
		"session", c.sessionID,
		"words", len(tokens),
		"wpm", c.rate.Rate())
	c.publish()
	return true
}

// Resume continues the retained words from the retained position without
// re-tokenizing. A session that ran to its end replays from the first word.
// It returns false if there is nothing to resume or playback is running.
func (c *Controller) Resume() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.session.IsEmpty() || c.status == core.StatusPlaying {
		return false
	}
	if c.session.AtEnd() {
		c.session.Index = 0
	}
	c.finished = false
	c.play()

	c.logger.Debug("playback resumed", "session", c.sessionID, "index", c.session.Index)
	c.publish()
	return true
}

func (c *Controller) play() {
	c.status = core.StatusPlaying
	c.sched.Schedule(c.rate.Interval, c.tick)
}

// Stop halts playback and keeps the current position. Stopping an idle
// controller does nothing.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != core.StatusPlaying {
		c.sched.Cancel()
		return
	}
	c.halt()

	c.logger.Debug("playback stopped", "session", c.sessionID, "index", c.session.Index)
	c.publish()
}

// Reset stops playback and rewinds to the first word. The words are kept, so
// Resume replays them.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.halt()
	c.session.Index = 0
	c.finished = false
	c.resets++

	c.logger.Debug("playback reset", "session", c.sessionID)
	c.publish()
}

// halt cancels the pending tick before leaving Playing.
func (c *Controller) halt() {
	c.sched.Cancel()
	c.status = core.StatusIdle
}

// Tick advances to the next word. At the last word it stops instead, leaving
// that word current. It returns whether playback continues, and does nothing
// unless playing.
func (c *Controller) Tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tick()
}

func (c *Controller) tick() bool {
	if c.status != core.StatusPlaying {
		return false
	}

	next := c.session.Index + 1
	if next >= c.session.Len() {
		c.halt()
		c.finished = true
		c.logger.Debug("playback finished", "session", c.sessionID, "words", c.session.Len())
		c.publish()
		return false
	}

	c.session.Index = next
	c.publish()
	return true
}

// SetRate changes the reading rate. The position is kept and the wait in
// progress runs out at the old interval; the next one uses the new rate.
func (c *Controller) SetRate(wpm int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.rate.SetRate(wpm); err != nil {
		return err
	}

	c.logger.Debug("rate changed", "wpm", wpm, "interval", c.rate.Interval())
	c.publish()
	return nil
}

// StepRate moves to the next faster (up) or slower selectable rate and
// returns the rate in effect afterwards.
func (c *Controller) StepRate(up bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var changed bool
	if up {
		changed = c.rate.Next()
	} else {
		changed = c.rate.Prev()
	}
	if changed {
		c.logger.Debug("rate changed", "wpm", c.rate.Rate(), "interval", c.rate.Interval())
		c.publish()
	}
	return c.rate.Rate()
}

// Rate returns the current rate in words per minute.
func (c *Controller) Rate() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate.Rate()
}

// Choices returns the selectable rates.
func (c *Controller) Choices() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.rate.Choices()...)
}

// CurrentWord returns the word on display, or "" when there is none.
func (c *Controller) CurrentWord() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Current()
}

// Progress returns the 1-based position of the current word and the total.
func (c *Controller) Progress() (current, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Position()
}

// IsPlaying reports whether words are advancing.
func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status == core.StatusPlaying
}

// Upcoming returns up to n words after the current one.
func (c *Controller) Upcoming(n int) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.session.Upcoming(n)...)
}

// Snapshot returns a consistent view of the controller.
func (c *Controller) Snapshot() core.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() core.Snapshot {
	return core.Snapshot{
		Word:     c.session.Current(),
		Index:    c.session.Index,
		Total:    c.session.Len(),
		Status:   c.status,
		Rate:     c.rate.Rate(),
		Interval: c.rate.Interval(),
		Finished: c.finished,
		Session:  c.sessionID,
		Resets:   c.resets,
	}
}

// Subscribe returns a channel receiving a snapshot after every change, in
// order and without gaps, and a function that ends the subscription.
// Snapshots queue for a subscriber that reads slowly.
func (c *Controller) Subscribe() (<-chan core.Snapshot, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		ch := make(chan core.Snapshot)
		close(ch)
		return ch, func() {}
	}

	id := c.nextID
	c.nextID++
	sub := newSubscription()
	c.subs[id] = sub

	var once sync.Once
	return sub.out, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
			sub.cancel()
		})
	}
}

func (c *Controller) publish() {
	snap := c.snapshot()
	for _, sub := range c.subs {
		sub.push(snap)
	}
}

// Close stops playback, releases the timer and ends all subscriptions.
// Further operations are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.halt()
	c.closed = true
	for id, sub := range c.subs {
		delete(c.subs, id)
		sub.finish()
	}
}

// Pending reports whether a tick is scheduled.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sched.Pending()
}
