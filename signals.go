package carousel

import "github.com/zoobzio/capitan"

// Carousel lifecycle signals.
var (
	// CarouselMounted is emitted when a Carousel is created.
	CarouselMounted = capitan.NewSignal(
		"carousel.mounted",
		"Carousel mounted",
	)

	// CarouselClosed is emitted when a Carousel is torn down.
	CarouselClosed = capitan.NewSignal(
		"carousel.closed",
		"Carousel torn down",
	)

	// SlidesUpdated is emitted when the slide sequence is replaced.
	SlidesUpdated = capitan.NewSignal(
		"carousel.slides.updated",
		"Slide sequence replaced",
	)

	// SectionMatched is emitted when the section token selects a slide.
	SectionMatched = capitan.NewSignal(
		"carousel.section.matched",
		"Section token matched a slide identifier",
	)
)

// Navigation signals.
var (
	// SlideChanged is emitted when the current index changes.
	SlideChanged = capitan.NewSignal(
		"carousel.slide.changed",
		"Current slide changed",
	)

	// NavigateRequested is emitted when a controlled carousel asks its owner
	// to move.
	NavigateRequested = capitan.NewSignal(
		"carousel.navigate.requested",
		"Navigation requested from owner",
	)
)

// Reveal signals.
var (
	// RevealScheduled is emitted when a reveal timer is armed.
	RevealScheduled = capitan.NewSignal(
		"carousel.reveal.scheduled",
		"Reveal timer armed",
	)

	// RevealCancelled is emitted when a pending reveal is superseded or torn down.
	RevealCancelled = capitan.NewSignal(
		"carousel.reveal.cancelled",
		"Pending reveal cancelled",
	)

	// RevealApplied is emitted when the visible index catches up.
	RevealApplied = capitan.NewSignal(
		"carousel.reveal.applied",
		"Visible slide updated",
	)
)
