package carousel

import "github.com/zoobzio/capitan"

// Field keys for Carousel events.
var (
	// KeyIndex is the slide index an event refers to.
	KeyIndex = capitan.NewIntKey("index")

	// KeyPreviousIndex is the current index before a change.
	KeyPreviousIndex = capitan.NewIntKey("previous_index")

	// KeyDirection is the navigation direction requested from the owner.
	KeyDirection = capitan.NewStringKey("direction")

	// KeyMode is "controlled" or "uncontrolled".
	KeyMode = capitan.NewStringKey("mode")

	// KeyCount is the number of slides.
	KeyCount = capitan.NewIntKey("count")

	// KeySection is the section token consulted for the initial slide.
	KeySection = capitan.NewStringKey("section")

	// KeyDelay is the configured reveal delay.
	KeyDelay = capitan.NewDurationKey("delay")
)
