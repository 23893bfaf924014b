// Package geom models pixel coordinates and their 3x3 neighborhoods.
package geom

import "math"

// invalidSentinel is the maximum representable value for each field of an
// invalid Coord. Kept as an unexported numeric check so Coord itself can stay
// a plain value type without a separate "is valid" flag on the hot path.
const invalidSentinel = math.MaxUint32

// Coord is a pixel position: row Y, column X, and the linear index Y*width+X
// into a flat image or diagram buffer.
type Coord struct {
	Y, X, Idx uint32
}

// New returns the coordinate (y, x, y*width+x). It performs no bounds
// checking; callers provide in-range values.
func New(y, x, width int) Coord {
	return Coord{Y: uint32(y), X: uint32(x), Idx: uint32(y*width + x)}
}

// Invalid returns the sentinel coordinate meaning "no nearest background
// known yet". Every field is the maximum representable uint32.
func Invalid() Coord {
	return Coord{Y: invalidSentinel, X: invalidSentinel, Idx: invalidSentinel}
}

// IsValid reports whether c is a real coordinate rather than the Invalid
// sentinel.
func (c Coord) IsValid() bool {
	return c.Y != invalidSentinel || c.X != invalidSentinel || c.Idx != invalidSentinel
}

// Distance returns the Euclidean distance between a and b. If either operand
// is the Invalid sentinel the result is +Inf, so the sentinel can never win a
// "closer than" comparison against a real coordinate.
func Distance(a, b Coord) float32 {
	if !a.IsValid() || !b.IsValid() {
		return float32(math.Inf(1))
	}
	dy := float64(int64(a.Y) - int64(b.Y))
	dx := float64(int64(a.X) - int64(b.X))
	return float32(math.Sqrt(dy*dy + dx*dx))
}

// SquaredDistance is Distance without the sqrt, usable as a monotone stand-in
// for it in comparisons (spec.md §4.4 "Numeric semantics"). It returns
// math.MaxUint64 when either operand is invalid so it sorts as "infinitely
// far" against any real squared distance for images up to 65535 on a side.
func SquaredDistance(a, b Coord) uint64 {
	if !a.IsValid() || !b.IsValid() {
		return math.MaxUint64
	}
	dy := int64(a.Y) - int64(b.Y)
	dx := int64(a.X) - int64(b.X)
	return uint64(dy*dy + dx*dx)
}
