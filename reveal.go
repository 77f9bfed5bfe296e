package carousel

import (
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// DefaultRevealDelay is how long the visible index lags the current index.
const DefaultRevealDelay = 500 * time.Millisecond

// revealer arms a one-shot timer per index change. Re-arming cancels the
// outstanding timer so only the most recent index is ever delivered.
type revealer struct {
	clock clockz.Clock
	delay time.Duration
	fire  func(gen uint64, index int)

	mu     sync.Mutex
	gen    uint64
	timer  clockz.Timer
	stop   chan struct{}
	state  RevealState
	closed bool
}

func newRevealer(clock clockz.Clock, delay time.Duration, fire func(gen uint64, index int)) *revealer {
	return &revealer{
		clock: clock,
		delay: delay,
		fire:  fire,
	}
}

// schedule arms a timer for index. It reports whether an outstanding timer
// was cancelled and the generation of the new timer. After close it does
// nothing and returns a zero generation.
func (r *revealer) schedule(index int) (cancelled bool, gen uint64) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return false, 0
	}
	cancelled = r.cancelLocked()
	r.gen++
	gen = r.gen
	stop := make(chan struct{})
	timer := r.clock.NewTimer(r.delay)
	r.timer = timer
	r.stop = stop
	r.state = RevealPending
	r.mu.Unlock()

	go r.wait(gen, index, timer, stop)
	return cancelled, gen
}

// wait blocks until the timer fires or the reveal is cancelled.
func (r *revealer) wait(gen uint64, index int, timer clockz.Timer, stop <-chan struct{}) {
	select {
	case <-stop:
		return
	case <-timer.C():
	}

	r.mu.Lock()
	if r.closed || gen != r.gen {
		r.mu.Unlock()
		return
	}
	r.timer = nil
	r.stop = nil
	r.state = RevealIdle
	r.mu.Unlock()

	r.fire(gen, index)
}

// current reports whether gen is the most recently armed timer.
func (r *revealer) current(gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.closed && gen == r.gen
}

// close cancels any outstanding timer and refuses further scheduling.
func (r *revealer) close() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	cancelled := r.cancelLocked()
	r.closed = true
	return cancelled
}

func (r *revealer) cancelLocked() bool {
	if r.stop == nil {
		return false
	}
	r.timer.Stop()
	close(r.stop)
	r.timer = nil
	r.stop = nil
	r.state = RevealIdle
	return true
}

// status returns whether a reveal is pending.
func (r *revealer) status() RevealState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}
