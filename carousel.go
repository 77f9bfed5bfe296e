package carousel

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
)

// Slide is one panel of a Carousel. ID is optional and is matched against
// the section token.
type Slide[T any] struct {
	ID      string
	Content T
}

// Carousel steps through an ordered sequence of slides. The current index
// moves immediately on navigation; the visible index follows after the
// reveal delay, and only ever takes the most recent current index.
type Carousel[T any] struct {
	controlled    bool
	onNavigate    func(Direction)
	onSlideChange func(int)
	onReveal      func(int)
	delay         time.Duration
	ctx           context.Context
	reveal        *revealer

	mu      sync.Mutex
	slides  []Slide[T]
	ids     []string
	section string
	current int
	visible int
	closed  bool
}

// change describes a move of the current index, reported after the lock is
// released.
type change struct {
	previous  int
	next      int
	cancelled bool
}

// New mounts a Carousel over slides. A nil mode is treated as
// Uncontrolled{}.
//
// The starting index comes from ResolveInitialIndex. An uncontrolled
// carousel whose section token matches a slide identifier starts on that
// slide instead. Current and visible indexes start equal, so mounting never
// arms a reveal.
//
// Example:
//
//	c := carousel.New(slides, carousel.Uncontrolled{
//	    Initial: carousel.At(2),
//	    OnSlideChange: func(i int) {
//	        log.Printf("slide %d", i)
//	    },
//	})
//	defer c.Close()
//
//	c.Advance()
func New[T any](slides []Slide[T], mode Mode, opts ...Option) *Carousel[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if mode == nil {
		mode = Uncontrolled{}
	}

	c := &Carousel[T]{
		onReveal: cfg.onReveal,
		delay:    cfg.delay,
		ctx:      cfg.ctx,
		section:  cfg.section,
	}
	c.setSlidesLocked(slides)

	var seed int
	switch m := mode.(type) {
	case Controlled:
		c.controlled = true
		c.onNavigate = m.OnNavigate
		seed = ResolveInitialIndex(m.Active, NoIndex)
	case Uncontrolled:
		c.onSlideChange = m.OnSlideChange
		seed = ResolveInitialIndex(NoIndex, m.Initial)
		if idx := ResolveIndexFromToken(c.ids, c.section); idx >= 0 {
			seed = idx
			capitan.Emit(c.ctx, SectionMatched,
				KeySection.Field(c.section),
				KeyIndex.Field(idx),
			)
		}
	}
	seed = clampIndex(seed, len(c.slides))
	c.current = seed
	c.visible = seed
	c.reveal = newRevealer(cfg.clock, cfg.delay, c.applyReveal)

	capitan.Emit(c.ctx, CarouselMounted,
		KeyMode.Field(mode.modeName()),
		KeyCount.Field(len(c.slides)),
		KeyIndex.Field(seed),
		KeyDelay.Field(c.delay),
	)

	return c
}

// Advance moves to the next slide, wrapping from the last to the first.
// A controlled carousel asks its owner for DirectionNext instead.
func (c *Carousel[T]) Advance() {
	c.navigate(DirectionNext)
}

// Retreat moves to the previous slide, wrapping from the first to the last.
// A controlled carousel asks its owner for DirectionPrev instead.
func (c *Carousel[T]) Retreat() {
	c.navigate(DirectionPrev)
}

func (c *Carousel[T]) navigate(dir Direction) {
	if c.controlled {
		c.mu.Lock()
		closed := c.closed
		c.mu.Unlock()
		if closed {
			return
		}
		capitan.Emit(c.ctx, NavigateRequested,
			KeyDirection.Field(dir.String()),
		)
		if c.onNavigate != nil {
			c.onNavigate(dir)
		}
		return
	}

	c.mu.Lock()
	n := len(c.slides)
	if c.closed || n == 0 {
		c.mu.Unlock()
		return
	}
	ch, ok := c.moveLocked(step(c.current, n, dir))
	c.mu.Unlock()

	if ok {
		c.notify(ch)
	}
}

// step applies wrap-around arithmetic. n must be positive.
func step(i, n int, dir Direction) int {
	if dir == DirectionPrev {
		if i == 0 {
			return n - 1
		}
		return i - 1
	}
	if i == n-1 {
		return 0
	}
	return i + 1
}

// SetActiveIndex mirrors the owner's index in controlled mode and arms a
// reveal like any other change. Out-of-range values are clamped to the
// slide range. It has no effect on an uncontrolled carousel.
func (c *Carousel[T]) SetActiveIndex(i int) {
	if !c.controlled {
		return
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	ch, ok := c.moveLocked(clampIndex(i, len(c.slides)))
	c.mu.Unlock()

	if ok {
		c.notify(ch)
	}
}

// SetSlides replaces the slide sequence and re-derives identifiers.
//
// An uncontrolled carousel then jumps to the slide matching the section
// token, if any, and otherwise keeps its index clamped to the new range.
// A controlled carousel keeps mirroring its owner, except that an index
// past the new end is clamped and revealed like any other change.
func (c *Carousel[T]) SetSlides(slides []Slide[T]) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.setSlidesLocked(slides)
	n := len(c.slides)
	c.visible = clampIndex(c.visible, n)

	var (
		ch      change
		ok      bool
		matched = -1
	)
	if !c.controlled {
		target := c.current
		if idx := ResolveIndexFromToken(c.ids, c.section); idx >= 0 {
			target = idx
			matched = idx
		}
		ch, ok = c.moveLocked(clampIndex(target, n))
	} else if c.current >= n {
		ch, ok = c.moveLocked(clampIndex(c.current, n))
	}
	section := c.section
	c.mu.Unlock()

	capitan.Emit(c.ctx, SlidesUpdated,
		KeyCount.Field(n),
	)
	if matched >= 0 {
		capitan.Emit(c.ctx, SectionMatched,
			KeySection.Field(section),
			KeyIndex.Field(matched),
		)
	}
	if ok {
		c.notify(ch)
	}
}

// SetSection replaces the section token. An uncontrolled carousel jumps to
// the matching slide when there is one.
func (c *Carousel[T]) SetSection(token string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.section = token
	matched := ResolveIndexFromToken(c.ids, token)

	var (
		ch change
		ok bool
	)
	if !c.controlled && matched >= 0 {
		ch, ok = c.moveLocked(matched)
	}
	c.mu.Unlock()

	if matched >= 0 {
		capitan.Emit(c.ctx, SectionMatched,
			KeySection.Field(token),
			KeyIndex.Field(matched),
		)
	}
	if ok {
		c.notify(ch)
	}
}

// Close tears the carousel down. Any pending reveal is cancelled and no
// state changes afterwards. Close is idempotent.
func (c *Carousel[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	cancelled := c.reveal.close()
	index := c.current
	c.mu.Unlock()

	if cancelled {
		capitan.Emit(c.ctx, RevealCancelled,
			KeyIndex.Field(index),
		)
	}
	capitan.Emit(c.ctx, CarouselClosed,
		KeyIndex.Field(index),
	)
}

// moveLocked sets the current index and re-arms the reveal timer. It
// reports false when next equals the current index.
func (c *Carousel[T]) moveLocked(next int) (change, bool) {
	if next == c.current {
		return change{}, false
	}
	ch := change{previous: c.current, next: next}
	c.current = next
	ch.cancelled, _ = c.reveal.schedule(next)
	return ch, true
}

// notify emits change signals and runs the uncontrolled change callback.
func (c *Carousel[T]) notify(ch change) {
	if ch.cancelled {
		capitan.Emit(c.ctx, RevealCancelled,
			KeyIndex.Field(ch.previous),
		)
	}
	capitan.Emit(c.ctx, SlideChanged,
		KeyPreviousIndex.Field(ch.previous),
		KeyIndex.Field(ch.next),
	)
	capitan.Emit(c.ctx, RevealScheduled,
		KeyIndex.Field(ch.next),
		KeyDelay.Field(c.delay),
	)
	if !c.controlled && c.onSlideChange != nil {
		c.onSlideChange(ch.next)
	}
}

// applyReveal runs when a reveal timer fires.
func (c *Carousel[T]) applyReveal(gen uint64, index int) {
	c.mu.Lock()
	if c.closed || !c.reveal.current(gen) {
		c.mu.Unlock()
		return
	}
	c.visible = clampIndex(index, len(c.slides))
	visible := c.visible
	c.mu.Unlock()

	capitan.Emit(c.ctx, RevealApplied,
		KeyIndex.Field(visible),
	)
	if c.onReveal == nil {
		return
	}
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if !closed {
		c.onReveal(visible)
	}
}

func (c *Carousel[T]) setSlidesLocked(slides []Slide[T]) {
	c.slides = make([]Slide[T], len(slides))
	copy(c.slides, slides)
	c.ids = make([]string, len(slides))
	for i, s := range slides {
		c.ids[i] = s.ID
	}
}

// Current returns the logically selected slide index.
func (c *Carousel[T]) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Visible returns the index of the slide currently revealed.
func (c *Carousel[T]) Visible() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Len returns the number of slides.
func (c *Carousel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slides)
}

// Slides returns a copy of the slide sequence.
func (c *Carousel[T]) Slides() []Slide[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Slide[T], len(c.slides))
	copy(out, c.slides)
	return out
}

// SlideAt returns the slide at i, or false when i is out of range.
func (c *Carousel[T]) SlideAt(i int) (Slide[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.slides) {
		var zero Slide[T]
		return zero, false
	}
	return c.slides[i], true
}

// Section returns the section token.
func (c *Carousel[T]) Section() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.section
}

// SectionIndex returns the slide matching the section token, or -1.
// Controlled owners use it to pick their initial index.
func (c *Carousel[T]) SectionIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ResolveIndexFromToken(c.ids, c.section)
}

// RevealState reports whether a reveal is pending.
func (c *Carousel[T]) RevealState() RevealState {
	return c.reveal.status()
}

// IsControlled reports whether the owner holds the index.
func (c *Carousel[T]) IsControlled() bool {
	return c.controlled
}
