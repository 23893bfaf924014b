// Package backend defines the accelerator contract (spec.md §4.6, §7) and a
// name-keyed registry for concrete implementations, grounded on the
// teacher's codec.Codec interface and codec.Registry
// (cocosip-go-dicom-codec/codec/codec.go, codec/registry.go): a small
// interface plus a mutex-guarded map with Register/Get/List.
package backend

import (
	"context"
	"fmt"
	"sync"

	"github.com/FranciscoPDNeto/eucligpu/imageview"
	"github.com/FranciscoPDNeto/eucligpu/voronoi"
)

// Backend is the one operation spec.md §4.6 asks an accelerator to expose:
// one dispatch performs one relaxation pass over the diagram, reporting
// whether anything improved. A CPU implementation (Schedule A) and a
// WebAssembly-kernel implementation (Schedule B) are interchangeable behind
// this interface; no other device/platform behavior is observable.
type Backend interface {
	// Name identifies the backend in the registry and in log output.
	Name() string

	// RunPass performs one relaxation pass: img is read-only, diag and wave
	// are mutated in place. It returns whether any entry improved during
	// the pass, and a non-nil error on failure: one wrapping
	// ecode.ErrBackendFailure for a runtime error, or
	// ecode.ErrNonConvergence where the backend enforces its own safety
	// bound (the cpu backend's worklist-pop budget).
	RunPass(ctx context.Context, img *imageview.Image, diag *voronoi.Diagram, wave *voronoi.Wavefront) (changed bool, err error)

	// MaxPasses returns the safety bound (spec.md §5 "Cancellation and
	// timeouts") on the number of RunPass calls for an image of the given
	// dimensions before the engine must report ecode.ErrNonConvergence.
	MaxPasses(width, height int) int
}

// Registry manages the available backends, keyed by name.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

var defaultRegistry = &Registry{backends: make(map[string]Backend)}

// Register registers b in the default registry under b.Name().
func Register(b Backend) { defaultRegistry.Register(b) }

// Get retrieves a backend by name from the default registry.
func Get(name string) (Backend, error) { return defaultRegistry.Get(name) }

// List returns every backend registered in the default registry.
func List() []Backend { return defaultRegistry.List() }

// Register registers b under b.Name().
func (r *Registry) Register(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[b.Name()] = b
}

// Get retrieves a backend by name.
func (r *Registry) Get(name string) (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("backend: no backend registered as %q", name)
	}
	return b, nil
}

// List returns every registered backend in unspecified order.
func (r *Registry) List() []Backend {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		out = append(out, b)
	}
	return out
}
