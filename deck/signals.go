package deck

import "github.com/zoobzio/capitan"

// Loader lifecycle signals.
var (
	// LoaderStarted is emitted when a Loader begins watching.
	LoaderStarted = capitan.NewSignal(
		"carousel.deck.started",
		"Deck loader watching started",
	)

	// LoaderStopped is emitted when a Loader stops watching.
	LoaderStopped = capitan.NewSignal(
		"carousel.deck.stopped",
		"Deck loader watching stopped",
	)

	// LoaderStateChanged is emitted when a Loader transitions between states.
	LoaderStateChanged = capitan.NewSignal(
		"carousel.deck.state.changed",
		"Deck loader state transition",
	)
)

// Deck processing signals.
var (
	// DeckChangeReceived is emitted when raw deck bytes arrive from the watcher.
	DeckChangeReceived = capitan.NewSignal(
		"carousel.deck.change.received",
		"Raw deck received from watcher",
	)

	// DeckDecodeFailed is emitted when the codec rejects the payload.
	DeckDecodeFailed = capitan.NewSignal(
		"carousel.deck.decode.failed",
		"Deck decode failed",
	)

	// DeckValidationFailed is emitted when a decoded deck is invalid.
	DeckValidationFailed = capitan.NewSignal(
		"carousel.deck.validation.failed",
		"Deck validation failed",
	)

	// DeckApplyFailed is emitted when the apply callback returns an error.
	DeckApplyFailed = capitan.NewSignal(
		"carousel.deck.apply.failed",
		"Deck apply failed",
	)

	// DeckApplySucceeded is emitted when a deck is applied.
	DeckApplySucceeded = capitan.NewSignal(
		"carousel.deck.apply.succeeded",
		"Deck applied",
	)
)
