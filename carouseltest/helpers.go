// Package carouseltest provides helpers for testing code built on a
// carousel.Carousel.
package carouseltest

import (
	"testing"
	"time"

	"github.com/zoobzio/carousel"
	"github.com/zoobzio/clockz"
)

// WaitFor polls condition until it returns true or timeout elapses.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return condition()
}

// WaitForVisible waits until the visible index equals want.
func WaitForVisible[T any](t *testing.T, c *carousel.Carousel[T], want int, timeout time.Duration) bool {
	t.Helper()
	return WaitFor(t, timeout, func() bool {
		return c.Visible() == want
	})
}

// RequireCurrent fails the test immediately if the current index is not want.
func RequireCurrent[T any](t *testing.T, c *carousel.Carousel[T], want int) {
	t.Helper()
	if got := c.Current(); got != want {
		t.Fatalf("expected current index %d, got %d", want, got)
	}
}

// RequireVisible fails the test immediately if the visible index is not want.
func RequireVisible[T any](t *testing.T, c *carousel.Carousel[T], want int) {
	t.Helper()
	if got := c.Visible(); got != want {
		t.Fatalf("expected visible index %d, got %d", want, got)
	}
}

// Reveal advances clock past the reveal delay and waits for the visible
// index to reach want.
func Reveal[T any](t *testing.T, c *carousel.Carousel[T], clock *clockz.FakeClock, delay time.Duration, want int) {
	t.Helper()
	clock.Advance(delay)
	clock.BlockUntilReady()
	if !WaitForVisible(t, c, want, time.Second) {
		t.Fatalf("expected visible index %d after reveal, got %d", want, c.Visible())
	}
}

// Slides builds string slides with the given identifiers.
func Slides(ids ...string) []carousel.Slide[string] {
	out := make([]carousel.Slide[string], len(ids))
	for i, id := range ids {
		out[i] = carousel.Slide[string]{ID: id, Content: id}
	}
	return out
}

// NewTestCarousel mounts an uncontrolled carousel over slides driven by a
// fake clock. The carousel is closed when the test ends.
func NewTestCarousel(t *testing.T, slides []carousel.Slide[string], opts ...carousel.Option) (*carousel.Carousel[string], *clockz.FakeClock) {
	t.Helper()
	clock := clockz.NewFakeClock()
	opts = append([]carousel.Option{carousel.WithClock(clock)}, opts...)
	c := carousel.New(slides, carousel.Uncontrolled{}, opts...)
	t.Cleanup(c.Close)
	return c, clock
}
