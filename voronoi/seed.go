package voronoi

import "github.com/FranciscoPDNeto/eucligpu/geom"

// classifier is the minimal read surface Seed needs from an image view.
// imageview.Image satisfies it; kept narrow so voronoi never imports
// imageview and stays a leaf package above geom.
type classifier interface {
	geom.Classifier
	IsBackground(c geom.Coord) bool
	Width() int
	Height() int
	Coordinates(fn func(geom.Coord))
}

// Seed builds the initial diagram and wavefront for img (spec.md §4.3):
// every coordinate is visited once, in row-major order. A background pixel
// becomes its own source; it is enqueued only if some neighbor is
// foreground (it borders the shape, so propagation must start there). A
// foreground pixel is written with an Invalid nearest-background — it has
// no known source until propagation reaches it.
//
// This seeds from the background boundary, not from bordering foreground
// pixels: that is the only variant consistent with propagation reading
// NearestBackground off the wavefront pixel and spreading it outward
// (spec.md §4.3, §9 "Open questions in the source").
func Seed(img classifier) (*Diagram, *Wavefront) {
	n := img.Width() * img.Height()
	diag := New(n)
	wave := NewWavefront(n / 4)

	img.Coordinates(func(c geom.Coord) {
		if img.IsBackground(c) {
			diag.Set(c.Idx, Entry{Point: c, NearestBackground: c})
			nb := geom.Of(img, int(c.Y), int(c.X), img.Width())
			for i := 0; i < nb.Len(); i++ {
				if !nb.At(i).Background {
					wave.Push(c)
					break
				}
			}
			return
		}
		diag.Set(c.Idx, Entry{Point: c, NearestBackground: geom.Invalid()})
	})

	return diag, wave
}
