// Package deck loads slide decks from YAML or JSON sources and keeps a
// carousel in step with them as the source changes.
//
// A deck file looks like:
//
//	title: Portfolio
//	slides:
//	  - id: /intro
//	    title: Hello
//	    body: Welcome aboard.
//	  - id: /work
//	    title: Work
//
// Decks are decoded, validated and applied by a Loader. A deck that fails
// to decode or validate is never applied; the last good deck stays active.
package deck

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/carousel"
)

// validate is the shared validator instance.
var validate = validator.New()

// Deck is an ordered set of slides.
type Deck struct {
	Title  string  `yaml:"title" json:"title" validate:"max=200"`
	Slides []Slide `yaml:"slides" json:"slides" validate:"required,min=1,dive"`
}

// Slide is one panel of a deck. ID is optional and is what section tokens
// match against.
type Slide struct {
	ID    string `yaml:"id" json:"id" validate:"omitempty,max=64"`
	Title string `yaml:"title" json:"title" validate:"required,max=200"`
	Body  string `yaml:"body" json:"body"`
}

// Validate checks struct tags, then that identifiers carry no whitespace
// and are unique once normalized.
func (d Deck) Validate() error {
	if err := validate.Struct(d); err != nil {
		return err
	}
	seen := make(map[string]int, len(d.Slides))
	for i, s := range d.Slides {
		if s.ID == "" {
			continue
		}
		if strings.ContainsAny(s.ID, " \t\r\n") {
			return fmt.Errorf("slide %d: id %q contains whitespace", i, s.ID)
		}
		key := carousel.NormalizeIdentifier(s.ID)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("slide %d: id %q duplicates slide %d", i, s.ID, prev)
		}
		seen[key] = i
	}
	return nil
}

// CarouselSlides converts the deck into carousel slides keyed by slide ID.
func (d Deck) CarouselSlides() []carousel.Slide[Slide] {
	out := make([]carousel.Slide[Slide], len(d.Slides))
	for i, s := range d.Slides {
		out[i] = carousel.Slide[Slide]{ID: s.ID, Content: s}
	}
	return out
}

// Bind returns a Loader callback that replaces the slides of c with each
// newly applied deck.
func Bind(c *carousel.Carousel[Slide]) func(context.Context, Deck, Deck) error {
	return func(_ context.Context, _, curr Deck) error {
		c.SetSlides(curr.CarouselSlides())
		return nil
	}
}

// Parse decodes and validates a deck.
func Parse(data []byte, codec Codec) (Deck, error) {
	var d Deck
	if err := codec.Unmarshal(data, &d); err != nil {
		return Deck{}, fmt.Errorf("decode failed: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Deck{}, fmt.Errorf("validation failed: %w", err)
	}
	return d, nil
}

// ReadFile reads and parses the deck at path, choosing the format from its
// contents.
func ReadFile(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("failed to read deck: %w", err)
	}
	return Parse(data, AutoCodec{})
}
