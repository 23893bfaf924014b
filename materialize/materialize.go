// Package materialize turns a converged voronoi.Diagram into a normalized
// 8-bit distance image: spec.md §4.5.
package materialize

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/FranciscoPDNeto/eucligpu/voronoi"
)

// clamp restricts v to [lo, hi], grounded on golang.org/x/exp/constraints
// (pulled in transitively by the teacher's own dependency tree) rather than
// a hand-rolled per-type min/max pair.
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MaxDistance returns the diagonal sqrt(W^2 + H^2): any true distance in a
// W x H image is at most this.
func MaxDistance(width, height int) float32 {
	return float32(math.Sqrt(float64(width*width + height*height)))
}

// Bytes computes the byte image defined by spec.md §4.5: for each entry,
// d = distance(point, nearestBackground) (0 for background, and an entry
// whose nearest background is still Invalid is treated as +Inf, saturating
// to 255); v = d / maxDistance normalized to [0,1]; byte = clamp(floor(256*v),
// 0, 255). The quantizer explicitly maps 1.0 -> 255, and clamp defends
// against negative v (never produced here, since distances are
// non-negative, but spec.md §4.5 calls it out so the floor+clamp order is
// preserved for an accelerator-produced diagram where that invariant might
// not hold).
func Bytes(diag *voronoi.Diagram, width, height int) []byte {
	maxDist := MaxDistance(width, height)
	out := make([]byte, diag.Len())
	for i := 0; i < diag.Len(); i++ {
		d := diag.DistanceAt(uint32(i))
		v := float64(d) / float64(maxDist)
		q := math.Floor(256 * v)
		out[i] = byte(clamp(q, 0, 255))
	}
	return out
}
