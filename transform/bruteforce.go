package transform

import (
	"github.com/FranciscoPDNeto/eucligpu/geom"
	"github.com/FranciscoPDNeto/eucligpu/imageview"
)

// BruteForceDistances computes, for every pixel, the minimum Euclidean
// distance to any background pixel by scanning all background pixels for
// every foreground pixel: O(N^2) in pixel count. It exists only as a test
// oracle for spec.md §8 property 2 ("no worse than brute force"); nothing
// in cmd/eucligpu calls it, mirroring spec.md §1's note that the source
// keeps a naive all-pairs implementation alongside the wavefront algorithm
// purely as a reference.
func BruteForceDistances(img *imageview.Image) []float32 {
	n := img.Size()
	var backgrounds []geom.Coord
	img.Coordinates(func(c geom.Coord) {
		if img.IsBackground(c) {
			backgrounds = append(backgrounds, c)
		}
	})

	out := make([]float32, n)
	img.Coordinates(func(c geom.Coord) {
		if img.IsBackground(c) {
			out[c.Idx] = 0
			return
		}
		best := geom.Distance(c, geom.Invalid()) // +Inf when there is no background at all
		for _, b := range backgrounds {
			if d := geom.Distance(c, b); d < best {
				best = d
			}
		}
		out[c.Idx] = best
	})
	return out
}
