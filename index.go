package carousel

import (
	"math"
	"strings"
)

// Index is an optional slide position. The zero value is absent.
//
// Positions arrive from callers that may not have one (no active index was
// supplied) or that hold a non-finite number, so resolution works on Index
// rather than a bare int.
type Index struct {
	value float64
	set   bool
}

// NoIndex is the absent Index.
var NoIndex = Index{}

// At returns a present Index for i.
func At(i int) Index {
	return Index{value: float64(i), set: true}
}

// Raw returns a present Index holding f. NaN and infinities are carried
// through and reported as invalid by Valid.
func Raw(f float64) Index {
	return Index{value: f, set: true}
}

// Valid reports whether the index is present and finite.
func (i Index) Valid() bool {
	return i.set && !math.IsNaN(i.value) && !math.IsInf(i.value, 0)
}

// Int returns the index truncated to an int, or 0 when invalid.
func (i Index) Int() int {
	if !i.Valid() {
		return 0
	}
	switch {
	case i.value >= maxIndexFloat:
		return math.MaxInt
	case i.value <= -maxIndexFloat:
		return math.MinInt
	}
	return int(i.value)
}

// maxIndexFloat is 2^63 on 64-bit platforms, the first float past MaxInt.
const maxIndexFloat = float64(math.MaxInt) + 1

// ResolveInitialIndex picks the starting position: the active index when
// valid, else the initial index when valid, else 0.
func ResolveInitialIndex(active, initial Index) int {
	if active.Valid() {
		return active.Int()
	}
	if initial.Valid() {
		return initial.Int()
	}
	return 0
}

// NormalizeIdentifier strips a single leading "/" from a slide identifier.
func NormalizeIdentifier(id string) string {
	return strings.TrimPrefix(id, "/")
}

// ResolveIndexFromToken returns the position of the first identifier that
// matches token once normalized, or -1 when token is empty or nothing
// matches.
func ResolveIndexFromToken(ids []string, token string) int {
	if token == "" {
		return -1
	}
	for i, id := range ids {
		if NormalizeIdentifier(id) == token {
			return i
		}
	}
	return -1
}

// clampIndex bounds i to [0, n-1]. It returns 0 when n is 0.
func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
