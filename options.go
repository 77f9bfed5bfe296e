package carousel

import (
	"context"
	"time"

	"github.com/zoobzio/clockz"
)

// config holds configuration options for a Carousel.
type config struct {
	delay    time.Duration
	clock    clockz.Clock
	section  string
	onReveal func(int)
	ctx      context.Context
}

// Option configures a Carousel.
type Option func(*config)

// WithRevealDelay sets how long the visible index lags the current index.
// Non-positive values keep the default.
func WithRevealDelay(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithClock sets a custom clock for the reveal timer.
// Use this with clockz.FakeClock for deterministic reveal testing.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithSection sets the section token matched against slide identifiers,
// typically a route fragment (see SectionFromURL).
func WithSection(token string) Option {
	return func(c *config) {
		c.section = token
	}
}

// WithOnReveal registers a callback invoked with the new visible index each
// time a reveal is applied. It runs on the timer goroutine.
func WithOnReveal(fn func(int)) Option {
	return func(c *config) {
		c.onReveal = fn
	}
}

// WithContext sets the context carried on emitted signals.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		c.ctx = ctx
	}
}

func defaultConfig() *config {
	return &config{
		delay: DefaultRevealDelay,
		clock: clockz.RealClock,
		ctx:   context.Background(),
	}
}
