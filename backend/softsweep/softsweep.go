// Package softsweep is the "equivalent host fallback" spec.md §4.6 calls
// for: a pure-Go implementation of Schedule B (spec.md §4.4) that needs no
// accelerator at all. Where backend/wasmkernel offloads the bulk sweep to a
// compiled kernel, softsweep performs the identical dual-of-Schedule-A sweep
// natively, so the repository has a real Schedule B to test property 7
// ("schedule equivalence") against even on a machine with no kernel file.
package softsweep

import (
	"context"

	"github.com/FranciscoPDNeto/eucligpu/geom"
	"github.com/FranciscoPDNeto/eucligpu/imageview"
	"github.com/FranciscoPDNeto/eucligpu/voronoi"
)

// Backend is the stateless Schedule B implementation.
type Backend struct{}

// New returns a ready-to-use soft-sweep backend.
func New() *Backend { return &Backend{} }

// Name identifies this backend in the registry.
func (*Backend) Name() string { return "softsweep" }

// MaxPasses bounds the number of bulk-sweep passes, per spec.md §5's
// H+W+1 cap for Schedule B.
func (*Backend) MaxPasses(width, height int) int {
	return width + height + 1
}

// RunPass launches one "work-item per pixel index" pass (spec.md §4.4
// Schedule B): for pixel i, every in-range neighbor j's current
// NearestBackground is considered as a candidate source for i, and the best
// one found is written back. Reads are taken from a pre-pass snapshot of the
// diagram so every work-item observes the same generation regardless of
// iteration order, matching the "double-buffered... every observable
// intermediate source is itself a valid background pixel" guarantee of
// spec.md §5. The incoming wavefront is drained and discarded: Schedule B
// re-examines every pixel every pass and needs no worklist.
func (b *Backend) RunPass(ctx context.Context, img *imageview.Image, diag *voronoi.Diagram, wave *voronoi.Wavefront) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	wave.Drain()

	n := diag.Len()
	snapshot := make([]geom.Coord, n)
	for i := 0; i < n; i++ {
		snapshot[i] = diag.At(uint32(i)).NearestBackground
	}

	changed := false
	img.Coordinates(func(c geom.Coord) {
		nb := img.NeighborhoodOf(int(c.Y), int(c.X))
		for i := 0; i < nb.Len(); i++ {
			candidate := snapshot[nb.At(i).Coord.Idx]
			if diag.Relax(c.Idx, candidate) {
				changed = true
			}
		}
	})
	return changed, nil
}
