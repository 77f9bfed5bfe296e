/*
Package carousel provides the index and reveal state machine behind a slide
carousel, independent of how slides are rendered.

A Carousel tracks two indexes. The current index is the logically selected
slide and moves the moment navigation happens. The visible index drives the
"in focus" presentation and follows the current index after a fixed reveal
delay. Rapid navigation re-arms the delay, so only the last selection is
ever revealed.

# Modes

An Uncontrolled carousel owns its index and wraps around at either end:

	c := carousel.New(slides, carousel.Uncontrolled{
	    Initial:       carousel.At(2),
	    OnSlideChange: func(i int) { fmt.Println("now on", i) },
	})
	defer c.Close()

	c.Advance() // current moves at once, visible after 500ms

A Controlled carousel mirrors an index held by its owner. Advance and
Retreat only ask the owner to move; the owner answers with SetActiveIndex:

	var c *carousel.Carousel[Page]
	c = carousel.New(pages, carousel.Controlled{
	    Active: carousel.At(0),
	    OnNavigate: func(d carousel.Direction) {
	        owner.Move(d)
	        c.SetActiveIndex(owner.Index())
	    },
	})

# Sections

A section token, usually taken from a route fragment with SectionFromURL,
selects the starting slide by identifier. A single leading "/" on slide
identifiers is ignored when matching:

	c := carousel.New(slides, carousel.Uncontrolled{},
	    carousel.WithSection(carousel.SectionFromURL("https://site/#about")),
	)

# Observability

The carousel emits capitan signals (SlideChanged, RevealScheduled,
RevealApplied and friends) instead of logging. Hook them to log or count:

	capitan.Hook(carousel.RevealApplied, func(_ context.Context, e *capitan.Event) {
	    idx, _ := carousel.KeyIndex.From(e)
	    log.Printf("revealed %d", idx)
	})

# Testing

Inject a clockz.FakeClock with WithClock to drive the reveal delay
deterministically. The carouseltest package has polling helpers.

Slide decks loaded from YAML or JSON files, with hot reload, live in the
deck subpackage.
*/
package carousel
