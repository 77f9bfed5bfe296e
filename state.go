package carousel

// RevealState reports whether a reveal is waiting on its timer.
type RevealState int32

const (
	// RevealIdle indicates the visible index has caught up with the current
	// index and no timer is armed.
	RevealIdle RevealState = iota

	// RevealPending indicates a reveal timer is armed.
	RevealPending
)

// String returns the string representation of the state.
func (s RevealState) String() string {
	switch s {
	case RevealIdle:
		return "idle"
	case RevealPending:
		return "pending"
	default:
		return "unknown"
	}
}
