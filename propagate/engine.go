// Package propagate drives a backend.Backend to convergence: spec.md §4.4's
// "until no further improvement is possible" loop, with the safety bound
// spec.md §5 requires ("cap propagation... report non-convergence as a
// fatal internal error").
package propagate

import (
	"context"
	"fmt"

	"github.com/FranciscoPDNeto/eucligpu/backend"
	"github.com/FranciscoPDNeto/eucligpu/ecode"
	"github.com/FranciscoPDNeto/eucligpu/imageview"
	"github.com/FranciscoPDNeto/eucligpu/voronoi"
)

// Engine repeatedly calls a backend's RunPass until it reports no change or
// the backend's safety bound is exceeded.
type Engine struct {
	Backend backend.Backend
}

// New returns an Engine driving b.
func New(b backend.Backend) *Engine {
	return &Engine{Backend: b}
}

// Run converges diag in place against img, draining wave. It returns the
// number of passes performed, or an error wrapping ecode.ErrBackendFailure
// (propagated from the backend unchanged) or ecode.ErrNonConvergence (the
// safety bound was exceeded).
func (e *Engine) Run(ctx context.Context, img *imageview.Image, diag *voronoi.Diagram, wave *voronoi.Wavefront) (int, error) {
	maxPasses := e.Backend.MaxPasses(img.Width(), img.Height())

	passes := 0
	for {
		changed, err := e.Backend.RunPass(ctx, img, diag, wave)
		if err != nil {
			return passes, err
		}
		passes++
		if !changed {
			return passes, nil
		}
		if passes > maxPasses {
			return passes, fmt.Errorf("%w: exceeded %d passes on a %dx%d image using backend %q",
				ecode.ErrNonConvergence, maxPasses, img.Width(), img.Height(), e.Backend.Name())
		}
	}
}
