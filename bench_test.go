package carousel_test

import (
	"testing"

	"github.com/zoobzio/carousel"
	"github.com/zoobzio/carousel/carouseltest"
	"github.com/zoobzio/clockz"
)

func BenchmarkCarousel_Advance(b *testing.B) {
	c := carousel.New(carouseltest.Slides("a", "b", "c", "d"), carousel.Uncontrolled{},
		carousel.WithClock(clockz.NewFakeClock()),
	)
	defer c.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Advance()
	}
}

func BenchmarkCarousel_AdvanceAndReveal(b *testing.B) {
	clock := clockz.NewFakeClock()
	c := carousel.New(carouseltest.Slides("a", "b", "c", "d"), carousel.Uncontrolled{},
		carousel.WithClock(clock),
	)
	defer c.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Advance()
		clock.Advance(carousel.DefaultRevealDelay)
		clock.BlockUntilReady()
	}
}

func BenchmarkResolveIndexFromToken(b *testing.B) {
	ids := []string{"/intro", "/about", "/work", "/talks", "/contact"}
	for i := 0; i < b.N; i++ {
		carousel.ResolveIndexFromToken(ids, "/contact")
	}
}
