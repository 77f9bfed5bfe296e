package carouseltest

import (
	"testing"
	"time"

	"github.com/zoobzio/carousel"
)

func TestWaitFor_ImmediateTrue(t *testing.T) {
	if !WaitFor(t, 50*time.Millisecond, func() bool { return true }) {
		t.Error("expected true")
	}
}

func TestWaitFor_Timeout(t *testing.T) {
	start := time.Now()
	if WaitFor(t, 30*time.Millisecond, func() bool { return false }) {
		t.Error("expected false")
	}
	if time.Since(start) < 30*time.Millisecond {
		t.Error("expected to wait for the timeout")
	}
}

func TestSlides(t *testing.T) {
	s := Slides("a", "/b")
	if len(s) != 2 || s[1].ID != "/b" || s[1].Content != "/b" {
		t.Errorf("unexpected slides %+v", s)
	}
}

func TestNewTestCarousel_RevealFlow(t *testing.T) {
	c, clock := NewTestCarousel(t, Slides("a", "b", "c"), carousel.WithSection("c"))

	RequireCurrent(t, c, 2)
	RequireVisible(t, c, 2)

	c.Advance()
	RequireCurrent(t, c, 0)
	RequireVisible(t, c, 2)

	Reveal(t, c, clock, carousel.DefaultRevealDelay, 0)
}
