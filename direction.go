package carousel

// Direction is the navigation request a controlled carousel hands to its
// owner.
type Direction string

const (
	// DirectionNext requests the slide after the current one.
	DirectionNext Direction = "next"

	// DirectionPrev requests the slide before the current one.
	DirectionPrev Direction = "prev"
)

// String returns the wire token for the direction.
func (d Direction) String() string {
	return string(d)
}
