package deck

// State represents the current state of a Loader.
type State int32

const (
	// StateLoading indicates no deck has been processed yet.
	StateLoading State = iota

	// StateHealthy indicates a valid deck is applied.
	StateHealthy

	// StateDegraded indicates the last change failed to decode, validate or
	// apply. The previous deck remains active.
	StateDegraded

	// StateEmpty indicates the initial deck failed and no valid deck has
	// ever been applied. The Loader keeps watching for a valid one.
	StateEmpty
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateHealthy:
		return "healthy"
	case StateDegraded:
		return "degraded"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}
