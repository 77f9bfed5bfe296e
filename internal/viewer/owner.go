package viewer

import "github.com/zoobzio/carousel"

// ClampStep is the controlled-mode owner policy used by the viewer: move
// one slide in dir, stopping at either end instead of wrapping.
func ClampStep(dir carousel.Direction, current, n int) int {
	if n <= 0 {
		return 0
	}
	switch dir {
	case carousel.DirectionNext:
		if current < n-1 {
			return current + 1
		}
		return n - 1
	case carousel.DirectionPrev:
		if current > 0 {
			return current - 1
		}
		return 0
	default:
		return current
	}
}
