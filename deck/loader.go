package deck

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultDebounce is the default debounce duration for deck reloads.
const DefaultDebounce = 100 * time.Millisecond

// ApplyFunc receives each valid deck together with the one it replaces.
// prev is the zero Deck on the initial load.
type ApplyFunc func(ctx context.Context, prev, curr Deck) error

// Loader watches a deck source, decodes and validates what it emits, and
// applies valid decks. A bad deck never replaces a good one.
type Loader struct {
	watcher        Watcher
	apply          ApplyFunc
	debounce       time.Duration
	startupTimeout time.Duration
	syncMode       bool
	clock          clockz.Clock
	codec          Codec
	onStop         func(State)

	state   atomic.Int32
	current atomic.Pointer[Deck]
	lastErr atomic.Pointer[error]
	history *errorLog

	mu      sync.Mutex
	started bool

	// For sync mode: channel to receive changes
	changes <-chan []byte
}

// NewLoader creates a Loader over watcher. apply runs for every deck that
// decodes and validates.
//
// Example:
//
//	c := carousel.New[deck.Slide](nil, carousel.Uncontrolled{})
//	loader := deck.NewLoader(deck.NewFileWatcher("talk.yaml"), deck.Bind(c)).
//	    Debounce(200 * time.Millisecond)
//	if err := loader.Start(ctx); err != nil {
//	    log.Printf("initial deck failed: %v", err)
//	}
func NewLoader(watcher Watcher, apply ApplyFunc) *Loader {
	l := &Loader{
		watcher:  watcher,
		apply:    apply,
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
		codec:    AutoCodec{},
	}
	l.state.Store(int32(StateLoading))
	return l
}

// Debounce sets how long rapid changes are coalesced before reloading.
// Must be called before Start().
func (l *Loader) Debounce(d time.Duration) *Loader {
	l.debounce = d
	return l
}

// SyncMode disables the background goroutine: Start only processes the
// initial deck and Process handles the rest. Must be called before Start().
func (l *Loader) SyncMode() *Loader {
	l.syncMode = true
	return l
}

// Clock sets a custom clock for debounce and startup timeout.
// Must be called before Start().
func (l *Loader) Clock(clock clockz.Clock) *Loader {
	l.clock = clock
	return l
}

// Codec sets the deck codec. Default: AutoCodec. Must be called before Start().
func (l *Loader) Codec(codec Codec) *Loader {
	l.codec = codec
	return l
}

// StartupTimeout bounds how long Start waits for the initial deck.
// Default: no timeout. Must be called before Start().
func (l *Loader) StartupTimeout(d time.Duration) *Loader {
	l.startupTimeout = d
	return l
}

// ErrorHistorySize retains up to n recent errors for ErrorHistory.
// Must be called before Start().
func (l *Loader) ErrorHistorySize(n int) *Loader {
	l.history = newErrorLog(n)
	return l
}

// OnStop registers a callback receiving the final state when watching
// ends. Must be called before Start().
func (l *Loader) OnStop(fn func(State)) *Loader {
	l.onStop = fn
	return l
}

// State returns the current state of the Loader.
func (l *Loader) State() State {
	return State(l.state.Load())
}

// Current returns the applied deck, or false if none has been applied.
func (l *Loader) Current() (Deck, bool) {
	ptr := l.current.Load()
	if ptr == nil {
		return Deck{}, false
	}
	return *ptr, true
}

// LastError returns the last error encountered, or nil.
func (l *Loader) LastError() error {
	ptr := l.lastErr.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// ErrorHistory returns recent errors, oldest first. It is nil unless
// ErrorHistorySize was set.
func (l *Loader) ErrorHistory() []error {
	return l.history.snapshot()
}

// Start begins watching. It blocks until the initial deck is processed,
// then keeps watching in the background. An error from the initial deck is
// returned but watching continues. Start can only be called once.
func (l *Loader) Start(ctx context.Context) error {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return errors.New("deck loader already started")
	}
	l.started = true
	l.mu.Unlock()

	capitan.Emit(ctx, LoaderStarted,
		KeyDebounce.Field(l.debounce),
		KeyContentType.Field(l.codec.ContentType()),
	)

	changes, err := l.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	startupCtx := ctx
	if l.startupTimeout > 0 {
		var cancel context.CancelFunc
		startupCtx, cancel = l.clock.WithTimeout(ctx, l.startupTimeout)
		defer cancel()
	}

	var initialErr error
	select {
	case <-startupCtx.Done():
		if l.startupTimeout > 0 && errors.Is(startupCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("startup timeout: no deck within %v", l.startupTimeout)
		}
		return startupCtx.Err()
	case raw, ok := <-changes:
		if !ok {
			return errors.New("watcher closed before emitting a deck")
		}
		capitan.Emit(ctx, DeckChangeReceived)
		initialErr = l.process(ctx, raw)
	}

	if l.syncMode {
		l.changes = changes
		return initialErr
	}

	go l.watch(ctx, changes)

	return initialErr
}

// Process handles the next pending change in sync mode. It returns false
// outside sync mode, when nothing is pending, or once the source closed.
func (l *Loader) Process(ctx context.Context) bool {
	if !l.syncMode {
		return false
	}

	select {
	case raw, ok := <-l.changes:
		if !ok {
			return false
		}
		capitan.Emit(ctx, DeckChangeReceived)
		_ = l.process(ctx, raw) //nolint:errcheck // Errors stored via fail
		return true
	default:
		return false
	}
}

// process decodes, validates and applies one deck.
func (l *Loader) process(ctx context.Context, raw []byte) error {
	var next Deck
	if err := l.codec.Unmarshal(raw, &next); err != nil {
		l.fail(ctx, err)
		capitan.Emit(ctx, DeckDecodeFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("decode failed: %w", err)
	}

	if err := next.Validate(); err != nil {
		l.fail(ctx, err)
		capitan.Emit(ctx, DeckValidationFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("validation failed: %w", err)
	}

	var prev Deck
	if ptr := l.current.Load(); ptr != nil {
		prev = *ptr
	}

	if err := l.apply(ctx, prev, next); err != nil {
		l.fail(ctx, err)
		capitan.Emit(ctx, DeckApplyFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("apply failed: %w", err)
	}

	l.current.Store(&next)
	l.lastErr.Store(nil)
	l.history.reset()
	l.transition(ctx, StateHealthy)
	capitan.Emit(ctx, DeckApplySucceeded,
		KeySlides.Field(len(next.Slides)),
	)
	return nil
}

// fail records err and moves to Empty or Degraded depending on whether a
// deck was ever applied.
func (l *Loader) fail(ctx context.Context, err error) {
	e := err
	l.lastErr.Store(&e)
	l.history.record(err)

	next := StateDegraded
	if l.current.Load() == nil {
		next = StateEmpty
	}
	l.transition(ctx, next)
}

// transition updates the state and emits a change event if it moved.
func (l *Loader) transition(ctx context.Context, next State) {
	prev := State(l.state.Swap(int32(next)))
	if prev == next {
		return
	}
	capitan.Emit(ctx, LoaderStateChanged,
		KeyOldState.Field(prev.String()),
		KeyNewState.Field(next.String()),
	)
}

// watch reloads on changes, coalescing bursts within the debounce window.
func (l *Loader) watch(ctx context.Context, changes <-chan []byte) {
	defer func() {
		final := l.State()
		capitan.Emit(ctx, LoaderStopped,
			KeyState.Field(final.String()),
		)
		if l.onStop != nil {
			l.onStop(final)
		}
	}()

	var (
		timer      clockz.Timer
		pending    []byte
		hasPending bool
	)

	for {
		var fire <-chan time.Time
		if timer != nil {
			fire = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case raw, ok := <-changes:
			if !ok {
				if hasPending {
					_ = l.process(ctx, pending) //nolint:errcheck // Errors stored via fail
				}
				return
			}

			capitan.Emit(ctx, DeckChangeReceived)
			pending = raw
			hasPending = true

			if timer == nil {
				timer = l.clock.NewTimer(l.debounce)
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C():
				default:
				}
			}
			timer.Reset(l.debounce)

		case <-fire:
			if hasPending {
				_ = l.process(ctx, pending) //nolint:errcheck // Errors stored via fail
				pending, hasPending = nil, false
			}
		}
	}
}
