// Package cpu implements the host worklist backend: spec.md §4.4 Schedule A.
// It is the reference implementation and the terminal fallback of the
// selection policy in package transform — it never reports
// ecode.ErrBackendUnavailable.
package cpu

import (
	"context"
	"fmt"

	"github.com/FranciscoPDNeto/eucligpu/ecode"
	"github.com/FranciscoPDNeto/eucligpu/imageview"
	"github.com/FranciscoPDNeto/eucligpu/voronoi"
)

// Backend is the Schedule A implementation. It carries a running pop count
// to enforce spec.md §5's 8*N worklist-pop safety bound across the whole
// run, so a fresh Backend must be used per transform (transform.Run does
// this; the registry entry registered by init() exists for discovery only).
type Backend struct {
	totalPops int
}

// New returns a fresh CPU backend with a zeroed pop budget.
func New() *Backend { return &Backend{} }

// Name identifies this backend in the registry.
func (*Backend) Name() string { return "cpu" }

// MaxPasses bounds the number of full-wavefront generations. Each
// generation advances the frontier by at most one grid step, so H+W+1
// generations always suffice to cover the diagonal; spec.md §5 separately
// caps total worklist pops at 8*N, enforced inside RunPass itself.
func (*Backend) MaxPasses(width, height int) int {
	return width + height + 1
}

// RunPass drains every pixel currently queued in wave exactly once (one BFS
// generation): for each popped pixel w, source is its own
// NearestBackground, and every neighbor n of w is relaxed against source
// (spec.md §4.4 Schedule A). Neighbors whose entry improves are pushed onto
// wave for the next call. It reports whether any neighbor improved.
func (b *Backend) RunPass(ctx context.Context, img *imageview.Image, diag *voronoi.Diagram, wave *voronoi.Wavefront) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	generation := wave.Drain()
	if len(generation) == 0 {
		return false, nil
	}

	b.totalPops += len(generation)
	if maxPops := 8 * img.Size(); b.totalPops > maxPops {
		return false, fmt.Errorf("%w: total worklist pops %d exceeds budget %d", ecode.ErrNonConvergence, b.totalPops, maxPops)
	}

	changed := false
	for _, w := range generation {
		source := diag.At(w.Idx).NearestBackground
		nb := img.NeighborhoodOf(int(w.Y), int(w.X))
		for i := 0; i < nb.Len(); i++ {
			n := nb.At(i).Coord
			if diag.Relax(n.Idx, source) {
				wave.Push(n)
				changed = true
			}
		}
	}
	return changed, nil
}
