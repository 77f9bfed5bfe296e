package viewer

// Region is a pointer hit area.
type Region int

const (
	// RegionNone is the content column between the edges.
	RegionNone Region = iota
	// RegionLeft retreats the carousel.
	RegionLeft
	// RegionRight advances the carousel.
	RegionRight
)

const (
	// contentHalf is half the widest content column, in cells.
	contentHalf = 32
	// edgeGutter widens each edge into the content column.
	edgeGutter = 6
)

// EdgeWidth returns the width of each edge hit region for a terminal of
// the given width: whatever lies outside the content column, plus a
// gutter, never more than half the screen.
func EdgeWidth(width int) int {
	if width <= 0 {
		return 0
	}
	half := width / 2
	edge := half - min(half, contentHalf) + edgeGutter
	return min(edge, half)
}

// HitRegion maps a column to the edge region it falls in.
func HitRegion(x, width int) Region {
	edge := EdgeWidth(width)
	switch {
	case edge == 0 || x < 0 || x >= width:
		return RegionNone
	case x < edge:
		return RegionLeft
	case x >= width-edge:
		return RegionRight
	default:
		return RegionNone
	}
}
